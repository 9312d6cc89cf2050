package ports

import (
	"context"
	"time"

	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
)

// TaskRepository loads and replaces the full task list. Implementations sit
// on top of a ListStore; LoadAll degrades to an empty list when the backing
// store has nothing usable.
type TaskRepository interface {
	LoadAll(ctx context.Context) ([]domain.Task, error)
	ReplaceAll(ctx context.Context, tasks []domain.Task) error
}

type TaskService interface {
	ListAll(ctx context.Context) ([]domain.Task, error)
	ListByBranch(ctx context.Context, branchID string) ([]domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, taskID string, input domain.UpdateTaskInput, actorID, actorName string) (domain.Task, error)
	AddComment(ctx context.Context, taskID, authorID, authorName, text string) (domain.TaskComment, error)
	AddAttachment(ctx context.Context, taskID, fileName string, fileType domain.AttachmentType, fileSize int64, fileURL, uploadedBy string) (domain.TaskAttachment, error)
	SweepOverdue(ctx context.Context, now time.Time) ([]domain.Task, error)
	ApplyLateFines(ctx context.Context, now time.Time) ([]domain.FineApplication, error)
}
