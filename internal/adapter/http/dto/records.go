package dto

type CreateComplaintRequest struct {
	CustomerID   string `json:"customerId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	BranchID     string `json:"branchId" binding:"required"`
	Subject      string `json:"subject" binding:"required,max=255"`
	Description  string `json:"description" binding:"omitempty,max=65535"`
}

type CreateBookingRequest struct {
	CustomerID string  `json:"customerId" binding:"required"`
	RoomID     string  `json:"roomId" binding:"required"`
	BranchID   string  `json:"branchId" binding:"required"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	TotalFee   float64 `json:"totalFee" binding:"omitempty,gte=0"`
}
