package domain

import "time"

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusAssigned   TaskStatus = "Assigned"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
	TaskStatusOverdue    TaskStatus = "Overdue"
)

// Terminal reports whether the status admits no further transitions.
// The overdue sweep skips terminal tasks.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "Low"
	TaskPriorityMedium   TaskPriority = "Medium"
	TaskPriorityHigh     TaskPriority = "High"
	TaskPriorityCritical TaskPriority = "Critical"
)

type Department string

const (
	DepartmentCleaning    Department = "Cleaning"
	DepartmentMaintenance Department = "Maintenance"
	DepartmentReception   Department = "Reception"
	DepartmentSecurity    Department = "Security"
	DepartmentIT          Department = "IT"
	DepartmentFinance     Department = "Finance"
	DepartmentMarketing   Department = "Marketing"
	DepartmentOperations  Department = "Operations"
	DepartmentHR          Department = "HR"
)

type HistoryAction string

const (
	HistoryActionCreated         HistoryAction = "created"
	HistoryActionAssigned        HistoryAction = "assigned"
	HistoryActionStatusChanged   HistoryAction = "status_changed"
	HistoryActionCommented       HistoryAction = "commented"
	HistoryActionAttachmentAdded HistoryAction = "attachment_added"
	HistoryActionDueDateChanged  HistoryAction = "due_date_changed"
	HistoryActionFineApplied     HistoryAction = "fine_applied"
)

type AttachmentType string

const (
	AttachmentTypeImage    AttachmentType = "image"
	AttachmentTypeVideo    AttachmentType = "video"
	AttachmentTypeDocument AttachmentType = "document"
	AttachmentTypeOther    AttachmentType = "other"
)

type RecurrenceType string

const (
	RecurrenceHourly  RecurrenceType = "hourly"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceCustom  RecurrenceType = "custom"
)

// RecurringPattern describes how a recurring task regenerates. Embedded in a
// Task only when IsRecurring is set.
type RecurringPattern struct {
	Type       RecurrenceType `json:"type"`
	Interval   int            `json:"interval"`
	DaysOfWeek []int          `json:"daysOfWeek,omitempty"`
	DayOfMonth *int           `json:"dayOfMonth,omitempty"`
	TimeOfDay  string         `json:"timeOfDay,omitempty"`
	EndDate    *time.Time     `json:"endDate,omitempty"`
}

// NextAfter returns the next occurrence strictly after the given due date.
// Custom patterns advance by Interval days, same as daily.
func (p RecurringPattern) NextAfter(due time.Time) time.Time {
	interval := p.Interval
	if interval <= 0 {
		interval = 1
	}
	switch p.Type {
	case RecurrenceHourly:
		return due.Add(time.Duration(interval) * time.Hour)
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7*interval)
	case RecurrenceMonthly:
		return due.AddDate(0, interval, 0)
	default:
		return due.AddDate(0, 0, interval)
	}
}

type Task struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Department       Department         `json:"department"`
	Priority         TaskPriority       `json:"priority"`
	Status           TaskStatus         `json:"status"`
	AssignedTo       string             `json:"assignedTo,omitempty"`
	AssignedToName   string             `json:"assignedToName,omitempty"`
	CreatedBy        string             `json:"createdBy"`
	CreatedByName    string             `json:"createdByName"`
	BranchID         string             `json:"branchId"`
	DueDate          time.Time          `json:"dueDate"`
	CompletedAt      *time.Time         `json:"completedAt,omitempty"`
	IsRecurring      bool               `json:"isRecurring"`
	RecurringPattern *RecurringPattern  `json:"recurringPattern,omitempty"`
	ParentTaskID     *string            `json:"parentTaskId,omitempty"`
	FineAmount       *float64           `json:"fineAmount,omitempty"`
	FineApplied      bool               `json:"fineApplied"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	Attachments      []TaskAttachment   `json:"attachments"`
	Comments         []TaskComment      `json:"comments"`
	History          []TaskHistoryEntry `json:"history"`
}

// TaskComment is immutable once appended to a task.
type TaskComment struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"taskId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TaskAttachment records file metadata only; binary content lives in external
// storage behind FileURL.
type TaskAttachment struct {
	ID         string         `json:"id"`
	TaskID     string         `json:"taskId"`
	FileName   string         `json:"fileName"`
	FileType   AttachmentType `json:"fileType"`
	FileSize   int64          `json:"fileSize"`
	FileURL    string         `json:"fileUrl"`
	UploadedBy string         `json:"uploadedBy"`
	UploadedAt time.Time      `json:"uploadedAt"`
}

// TaskHistoryEntry is an append-only audit record. Every state-affecting
// action on a task appends exactly one entry.
type TaskHistoryEntry struct {
	ID          string        `json:"id"`
	TaskID      string        `json:"taskId"`
	Action      HistoryAction `json:"action"`
	Description string        `json:"description"`
	ActorID     string        `json:"actorId"`
	ActorName   string        `json:"actorName"`
	OldValue    string        `json:"oldValue,omitempty"`
	NewValue    string        `json:"newValue,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type CreateTaskInput struct {
	Title            string
	Description      string
	Department       Department
	Priority         TaskPriority
	CreatedBy        string
	CreatedByName    string
	BranchID         string
	DueDate          time.Time
	AssignedTo       string
	AssignedToName   string
	IsRecurring      bool
	RecurringPattern *RecurringPattern
	FineAmount       *float64
}

// UpdateTaskInput carries a partial update. Nil pointers mean "leave as is".
type UpdateTaskInput struct {
	Status         *TaskStatus
	AssignedTo     *string
	AssignedToName *string
	DueDate        *time.Time
	Priority       *TaskPriority
}

// FineApplication reports one late fine flagged by the fine sweep.
type FineApplication struct {
	TaskID     string  `json:"taskId"`
	FineAmount float64 `json:"fineAmount"`
	AssignedTo string  `json:"assignedTo"`
}
