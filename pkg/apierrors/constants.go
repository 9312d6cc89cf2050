package apierrors

const (
	MsgFailListTasks        = "failListTasks"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgTaskNotFound         = "taskNotFound"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailAddComment       = "failAddComment"
	MsgFailAddAttachment    = "failAddAttachment"
	MsgFailSweep            = "failSweep"
	MsgFailListRecords      = "failListRecords"
	MsgInvalidRecordPayload = "invalidRecordPayload"
	MsgFailCreateRecord     = "failCreateRecord"
)
