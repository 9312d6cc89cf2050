package mapper

import (
	"time"

	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/dto"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Department:     string(task.Department),
		Priority:       string(task.Priority),
		Status:         string(task.Status),
		AssignedTo:     task.AssignedTo,
		AssignedToName: task.AssignedToName,
		CreatedBy:      task.CreatedBy,
		CreatedByName:  task.CreatedByName,
		BranchID:       task.BranchID,
		DueDate:        task.DueDate.Format(time.RFC3339),
		IsRecurring:    task.IsRecurring,
		ParentTaskID:   task.ParentTaskID,
		FineAmount:     task.FineAmount,
		FineApplied:    task.FineApplied,
		CreatedAt:      task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      task.UpdatedAt.Format(time.RFC3339),
		Attachments:    toAttachmentItems(task.Attachments),
		Comments:       toCommentItems(task.Comments),
		History:        toHistoryItems(task.History),
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if task.RecurringPattern != nil {
		item.RecurringPattern = toPatternItem(*task.RecurringPattern)
	}

	return item
}

func toPatternItem(pattern domain.RecurringPattern) *dto.RecurringPatternItem {
	item := &dto.RecurringPatternItem{
		Type:       string(pattern.Type),
		Interval:   pattern.Interval,
		DaysOfWeek: pattern.DaysOfWeek,
		DayOfMonth: pattern.DayOfMonth,
		TimeOfDay:  pattern.TimeOfDay,
	}
	if pattern.EndDate != nil {
		value := pattern.EndDate.Format(time.RFC3339)
		item.EndDate = &value
	}
	return item
}

func toCommentItems(comments []domain.TaskComment) []dto.TaskCommentItem {
	items := make([]dto.TaskCommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, ToCommentItem(c))
	}
	return items
}

func ToCommentItem(c domain.TaskComment) dto.TaskCommentItem {
	return dto.TaskCommentItem{
		ID:         c.ID,
		TaskID:     c.TaskID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}

func toAttachmentItems(attachments []domain.TaskAttachment) []dto.TaskAttachmentItem {
	items := make([]dto.TaskAttachmentItem, 0, len(attachments))
	for _, a := range attachments {
		items = append(items, ToAttachmentItem(a))
	}
	return items
}

func ToAttachmentItem(a domain.TaskAttachment) dto.TaskAttachmentItem {
	return dto.TaskAttachmentItem{
		ID:         a.ID,
		TaskID:     a.TaskID,
		FileName:   a.FileName,
		FileType:   string(a.FileType),
		FileSize:   a.FileSize,
		FileURL:    a.FileURL,
		UploadedBy: a.UploadedBy,
		UploadedAt: a.UploadedAt.Format(time.RFC3339),
	}
}

func toHistoryItems(history []domain.TaskHistoryEntry) []dto.TaskHistoryEntryItem {
	items := make([]dto.TaskHistoryEntryItem, 0, len(history))
	for _, h := range history {
		items = append(items, dto.TaskHistoryEntryItem{
			ID:          h.ID,
			TaskID:      h.TaskID,
			Action:      string(h.Action),
			Description: h.Description,
			ActorID:     h.ActorID,
			ActorName:   h.ActorName,
			OldValue:    h.OldValue,
			NewValue:    h.NewValue,
			CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}

func ToFineApplicationItems(fines []domain.FineApplication) []dto.FineApplicationItem {
	items := make([]dto.FineApplicationItem, 0, len(fines))
	for _, f := range fines {
		items = append(items, dto.FineApplicationItem{
			TaskID:     f.TaskID,
			FineAmount: f.FineAmount,
			AssignedTo: f.AssignedTo,
		})
	}
	return items
}
