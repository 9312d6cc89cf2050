package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/ports"
)

const systemActorID = "system"

// TaskService owns the task state machine, its audit history, and the
// overdue/fine sweeps. Mutations are serialized on a single mutex and follow
// reload-before-mutate, persist-full-list-after-mutate; across processes the
// store stays last-write-wins, which the deployment accepts for
// low-concurrency administrative use.
type TaskService struct {
	repo ports.TaskRepository
	mu   sync.Mutex
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(repo ports.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) ListAll(ctx context.Context) ([]domain.Task, error) {
	return s.repo.LoadAll(ctx)
}

func (s *TaskService) ListByBranch(ctx context.Context, branchID string) ([]domain.Task, error) {
	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.BranchID == branchID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (s *TaskService) ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssignedTo == userID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (domain.Task, error) {
	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	now := time.Now()
	task := domain.Task{
		ID:               nextTaskID(tasks),
		Title:            input.Title,
		Description:      input.Description,
		Department:       input.Department,
		Priority:         input.Priority,
		Status:           domain.TaskStatusOpen,
		AssignedTo:       input.AssignedTo,
		AssignedToName:   input.AssignedToName,
		CreatedBy:        input.CreatedBy,
		CreatedByName:    input.CreatedByName,
		BranchID:         input.BranchID,
		DueDate:          input.DueDate,
		IsRecurring:      input.IsRecurring,
		RecurringPattern: input.RecurringPattern,
		FineAmount:       input.FineAmount,
		CreatedAt:        now,
		UpdatedAt:        now,
		Attachments:      []domain.TaskAttachment{},
		Comments:         []domain.TaskComment{},
		History:          []domain.TaskHistoryEntry{},
	}
	if input.AssignedTo != "" {
		task.Status = domain.TaskStatusAssigned
	}

	task.History = append(task.History, newHistoryEntry(
		task.ID,
		domain.HistoryActionCreated,
		fmt.Sprintf("Task %q created", task.Title),
		input.CreatedBy, input.CreatedByName,
		"", "",
		now,
	))
	if input.AssignedTo != "" {
		task.History = append(task.History, newHistoryEntry(
			task.ID,
			domain.HistoryActionAssigned,
			fmt.Sprintf("Assigned to %s", assigneeLabel(input.AssignedTo, input.AssignedToName)),
			input.CreatedBy, input.CreatedByName,
			"", input.AssignedTo,
			now,
		))
	}

	tasks = append(tasks, task)
	if err := s.repo.ReplaceAll(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Update merges a partial update into the task. Changes to status, assignee,
// and due date each append one history entry; other fields (priority) merge
// unaudited, matching the established behavior of the dashboards.
func (s *TaskService) Update(ctx context.Context, taskID string, input domain.UpdateTaskInput, actorID, actorName string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	now := time.Now()
	task := &tasks[idx]
	completed := false

	if input.Status != nil && *input.Status != task.Status {
		oldStatus := task.Status
		task.Status = *input.Status
		task.History = append(task.History, newHistoryEntry(
			task.ID,
			domain.HistoryActionStatusChanged,
			fmt.Sprintf("Status changed from %s to %s", oldStatus, task.Status),
			actorID, actorName,
			string(oldStatus), string(task.Status),
			now,
		))
		if task.Status == domain.TaskStatusCompleted {
			completedAt := now
			task.CompletedAt = &completedAt
			completed = true
		}
	}

	if input.AssignedTo != nil && *input.AssignedTo != task.AssignedTo {
		oldAssignee := assigneeLabel(task.AssignedTo, task.AssignedToName)
		oldID := task.AssignedTo
		task.AssignedTo = *input.AssignedTo
		if input.AssignedToName != nil {
			task.AssignedToName = *input.AssignedToName
		}
		task.History = append(task.History, newHistoryEntry(
			task.ID,
			domain.HistoryActionAssigned,
			fmt.Sprintf("Reassigned from %s to %s", oldAssignee, assigneeLabel(task.AssignedTo, task.AssignedToName)),
			actorID, actorName,
			oldID, task.AssignedTo,
			now,
		))
	}

	// A name-only patch still merges; only the assignee id change above is
	// audited.
	if input.AssignedToName != nil {
		task.AssignedToName = *input.AssignedToName
	}

	if input.DueDate != nil && !input.DueDate.Equal(task.DueDate) {
		oldDue := task.DueDate
		task.DueDate = *input.DueDate
		task.History = append(task.History, newHistoryEntry(
			task.ID,
			domain.HistoryActionDueDateChanged,
			"Due date changed",
			actorID, actorName,
			oldDue.Format(time.RFC3339), task.DueDate.Format(time.RFC3339),
			now,
		))
	}

	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	task.UpdatedAt = now
	updated := *task

	if completed && updated.IsRecurring && updated.RecurringPattern != nil {
		if next, ok := s.nextOccurrence(updated, tasks, now); ok {
			tasks = append(tasks, next)
		}
	}

	if err := s.repo.ReplaceAll(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}

// nextOccurrence builds the follow-up task spawned when a recurring task
// completes. The new task points back at the completed one through
// ParentTaskID and carries the advanced due date.
func (s *TaskService) nextOccurrence(completed domain.Task, tasks []domain.Task, now time.Time) (domain.Task, bool) {
	pattern := *completed.RecurringPattern
	nextDue := pattern.NextAfter(completed.DueDate)
	if pattern.EndDate != nil && nextDue.After(*pattern.EndDate) {
		return domain.Task{}, false
	}

	parentID := completed.ID
	next := domain.Task{
		ID:               nextTaskID(tasks),
		Title:            completed.Title,
		Description:      completed.Description,
		Department:       completed.Department,
		Priority:         completed.Priority,
		Status:           domain.TaskStatusOpen,
		AssignedTo:       completed.AssignedTo,
		AssignedToName:   completed.AssignedToName,
		CreatedBy:        completed.CreatedBy,
		CreatedByName:    completed.CreatedByName,
		BranchID:         completed.BranchID,
		DueDate:          nextDue,
		IsRecurring:      true,
		RecurringPattern: completed.RecurringPattern,
		ParentTaskID:     &parentID,
		FineAmount:       completed.FineAmount,
		CreatedAt:        now,
		UpdatedAt:        now,
		Attachments:      []domain.TaskAttachment{},
		Comments:         []domain.TaskComment{},
		History:          []domain.TaskHistoryEntry{},
	}
	if next.AssignedTo != "" {
		next.Status = domain.TaskStatusAssigned
	}

	next.History = append(next.History, newHistoryEntry(
		next.ID,
		domain.HistoryActionCreated,
		fmt.Sprintf("Recurring task %q regenerated from task %s", next.Title, parentID),
		systemActorID, systemActorID,
		"", "",
		now,
	))
	if next.AssignedTo != "" {
		next.History = append(next.History, newHistoryEntry(
			next.ID,
			domain.HistoryActionAssigned,
			fmt.Sprintf("Assigned to %s", assigneeLabel(next.AssignedTo, next.AssignedToName)),
			systemActorID, systemActorID,
			"", next.AssignedTo,
			now,
		))
	}
	return next, true
}

func (s *TaskService) AddComment(ctx context.Context, taskID, authorID, authorName, text string) (domain.TaskComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.TaskComment{}, err
	}

	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return domain.TaskComment{}, domain.ErrTaskNotFound
	}

	now := time.Now()
	comment := domain.TaskComment{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Text:       text,
		CreatedAt:  now,
	}

	task := &tasks[idx]
	task.Comments = append(task.Comments, comment)
	task.History = append(task.History, newHistoryEntry(
		taskID,
		domain.HistoryActionCommented,
		fmt.Sprintf("%s commented", authorName),
		authorID, authorName,
		"", "",
		now,
	))
	task.UpdatedAt = now

	if err := s.repo.ReplaceAll(ctx, tasks); err != nil {
		return domain.TaskComment{}, err
	}
	return comment, nil
}

func (s *TaskService) AddAttachment(ctx context.Context, taskID, fileName string, fileType domain.AttachmentType, fileSize int64, fileURL, uploadedBy string) (domain.TaskAttachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.TaskAttachment{}, err
	}

	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return domain.TaskAttachment{}, domain.ErrTaskNotFound
	}

	now := time.Now()
	attachment := domain.TaskAttachment{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		FileName:   fileName,
		FileType:   fileType,
		FileSize:   fileSize,
		FileURL:    fileURL,
		UploadedBy: uploadedBy,
		UploadedAt: now,
	}

	task := &tasks[idx]
	task.Attachments = append(task.Attachments, attachment)
	task.History = append(task.History, newHistoryEntry(
		taskID,
		domain.HistoryActionAttachmentAdded,
		fmt.Sprintf("Attachment %q added", fileName),
		uploadedBy, "",
		"", "",
		now,
	))
	task.UpdatedAt = now

	if err := s.repo.ReplaceAll(ctx, tasks); err != nil {
		return domain.TaskAttachment{}, err
	}
	return attachment, nil
}

// SweepOverdue flags every non-terminal task whose due date has passed.
// Repeated calls are idempotent: a task already Overdue is skipped.
func (s *TaskService) SweepOverdue(ctx context.Context, now time.Time) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	changed := make([]domain.Task, 0)
	for i := range tasks {
		t := &tasks[i]
		if t.Status.Terminal() || t.Status == domain.TaskStatusOverdue {
			continue
		}
		if !t.DueDate.Before(now) {
			continue
		}
		t.Status = domain.TaskStatusOverdue
		t.UpdatedAt = now
		changed = append(changed, *t)
	}

	if len(changed) == 0 {
		return changed, nil
	}
	if err := s.repo.ReplaceAll(ctx, tasks); err != nil {
		return nil, err
	}
	return changed, nil
}

// ApplyLateFines flags the fine on every overdue task that has a fine amount
// and an assignee. The FineApplied flag guarantees at-most-once application;
// the fine_applied history entry is the only audit trail of the monetary
// effect, so callers that bill for real must record it durably themselves.
func (s *TaskService) ApplyLateFines(ctx context.Context, now time.Time) ([]domain.FineApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	applied := make([]domain.FineApplication, 0)
	for i := range tasks {
		t := &tasks[i]
		if t.Status != domain.TaskStatusOverdue || t.FineApplied {
			continue
		}
		if t.FineAmount == nil || t.AssignedTo == "" {
			continue
		}
		t.FineApplied = true
		t.UpdatedAt = now
		t.History = append(t.History, newHistoryEntry(
			t.ID,
			domain.HistoryActionFineApplied,
			fmt.Sprintf("Late fine of %.2f applied", *t.FineAmount),
			systemActorID, systemActorID,
			"", fmt.Sprintf("%.2f", *t.FineAmount),
			now,
		))
		applied = append(applied, domain.FineApplication{
			TaskID:     t.ID,
			FineAmount: *t.FineAmount,
			AssignedTo: t.AssignedTo,
		})
	}

	if len(applied) == 0 {
		return applied, nil
	}
	if err := s.repo.ReplaceAll(ctx, tasks); err != nil {
		return nil, err
	}
	return applied, nil
}

func newHistoryEntry(taskID string, action domain.HistoryAction, description, actorID, actorName, oldValue, newValue string, at time.Time) domain.TaskHistoryEntry {
	return domain.TaskHistoryEntry{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		Action:      action,
		Description: description,
		ActorID:     actorID,
		ActorName:   actorName,
		OldValue:    oldValue,
		NewValue:    newValue,
		CreatedAt:   at,
	}
}

// nextTaskID allocates the next sequential id: one past the highest numeric
// id in the list. Non-numeric ids are ignored.
func nextTaskID(tasks []domain.Task) string {
	max := 0
	for _, t := range tasks {
		if n, err := strconv.Atoi(t.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func indexOf(tasks []domain.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func assigneeLabel(id, name string) string {
	if name != "" {
		return name
	}
	if id != "" {
		return id
	}
	return "unassigned"
}
