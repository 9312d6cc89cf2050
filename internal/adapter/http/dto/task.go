package dto

type TaskItem struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description,omitempty"`
	Department       string                 `json:"department"`
	Priority         string                 `json:"priority"`
	Status           string                 `json:"status"`
	AssignedTo       string                 `json:"assignedTo,omitempty"`
	AssignedToName   string                 `json:"assignedToName,omitempty"`
	CreatedBy        string                 `json:"createdBy"`
	CreatedByName    string                 `json:"createdByName"`
	BranchID         string                 `json:"branchId"`
	DueDate          string                 `json:"dueDate"`
	CompletedAt      *string                `json:"completedAt,omitempty"`
	IsRecurring      bool                   `json:"isRecurring"`
	RecurringPattern *RecurringPatternItem  `json:"recurringPattern,omitempty"`
	ParentTaskID     *string                `json:"parentTaskId,omitempty"`
	FineAmount       *float64               `json:"fineAmount,omitempty"`
	FineApplied      bool                   `json:"fineApplied"`
	CreatedAt        string                 `json:"createdAt"`
	UpdatedAt        string                 `json:"updatedAt"`
	Attachments      []TaskAttachmentItem   `json:"attachments"`
	Comments         []TaskCommentItem      `json:"comments"`
	History          []TaskHistoryEntryItem `json:"history"`
}

type RecurringPatternItem struct {
	Type       string  `json:"type"`
	Interval   int     `json:"interval"`
	DaysOfWeek []int   `json:"daysOfWeek,omitempty"`
	DayOfMonth *int    `json:"dayOfMonth,omitempty"`
	TimeOfDay  string  `json:"timeOfDay,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
}

type TaskCommentItem struct {
	ID         string `json:"id"`
	TaskID     string `json:"taskId"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
	CreatedAt  string `json:"createdAt"`
}

type TaskAttachmentItem struct {
	ID         string `json:"id"`
	TaskID     string `json:"taskId"`
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
	FileSize   int64  `json:"fileSize"`
	FileURL    string `json:"fileUrl"`
	UploadedBy string `json:"uploadedBy"`
	UploadedAt string `json:"uploadedAt"`
}

type TaskHistoryEntryItem struct {
	ID          string `json:"id"`
	TaskID      string `json:"taskId"`
	Action      string `json:"action"`
	Description string `json:"description"`
	ActorID     string `json:"actorId"`
	ActorName   string `json:"actorName"`
	OldValue    string `json:"oldValue,omitempty"`
	NewValue    string `json:"newValue,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type FineApplicationItem struct {
	TaskID     string  `json:"taskId"`
	FineAmount float64 `json:"fineAmount"`
	AssignedTo string  `json:"assignedTo"`
}

type CreateTaskRequest struct {
	Title            string                   `json:"title" binding:"required,max=255"`
	Description      string                   `json:"description" binding:"omitempty,max=65535"`
	Department       string                   `json:"department" binding:"required,oneof=Cleaning Maintenance Reception Security IT Finance Marketing Operations HR"`
	Priority         string                   `json:"priority" binding:"required,oneof=Low Medium High Critical"`
	CreatedBy        string                   `json:"createdBy" binding:"required"`
	CreatedByName    string                   `json:"createdByName" binding:"required"`
	BranchID         string                   `json:"branchId" binding:"required"`
	DueDate          string                   `json:"dueDate" binding:"required"`
	AssignedTo       *string                  `json:"assignedTo" binding:"omitempty"`
	AssignedToName   *string                  `json:"assignedToName" binding:"omitempty"`
	IsRecurring      bool                     `json:"isRecurring"`
	RecurringPattern *RecurringPatternRequest `json:"recurringPattern" binding:"omitempty"`
	FineAmount       *float64                 `json:"fineAmount" binding:"omitempty,gt=0"`
}

type RecurringPatternRequest struct {
	Type       string  `json:"type" binding:"required,oneof=hourly daily weekly monthly custom"`
	Interval   int     `json:"interval" binding:"required,gt=0"`
	DaysOfWeek []int   `json:"daysOfWeek" binding:"omitempty,dive,gte=0,lte=6"`
	DayOfMonth *int    `json:"dayOfMonth" binding:"omitempty,gte=1,lte=31"`
	TimeOfDay  string  `json:"timeOfDay" binding:"omitempty"`
	EndDate    *string `json:"endDate" binding:"omitempty"`
}

type UpdateTaskRequest struct {
	Status         *string `json:"status" binding:"omitempty,oneof=Open Assigned 'In Progress' Completed Cancelled Overdue"`
	AssignedTo     *string `json:"assignedTo" binding:"omitempty"`
	AssignedToName *string `json:"assignedToName" binding:"omitempty"`
	DueDate        *string `json:"dueDate" binding:"omitempty"`
	Priority       *string `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	ActorID        string  `json:"actorId" binding:"required"`
	ActorName      string  `json:"actorName" binding:"required"`
}

type AddCommentRequest struct {
	Comment    string `json:"comment" binding:"required,max=65535"`
	AuthorID   string `json:"authorId" binding:"required"`
	AuthorName string `json:"authorName" binding:"required"`
}

type AddAttachmentRequest struct {
	FileName   string `json:"fileName" binding:"required,max=255"`
	FileType   string `json:"fileType" binding:"required,oneof=image video document other"`
	FileSize   int64  `json:"fileSize" binding:"required,gt=0"`
	FileURL    string `json:"fileUrl" binding:"required"`
	UploadedBy string `json:"uploadedBy" binding:"required"`
}
