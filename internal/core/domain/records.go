package domain

import "time"

// Peripheral records. These share the list-store persistence pattern with
// tasks but carry no engine-level invariants beyond field validation at the
// route layer.

type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	ManagerID string    `json:"managerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Room struct {
	ID        string  `json:"id"`
	BranchID  string  `json:"branchId"`
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	HourlyFee float64 `json:"hourlyFee"`
	Available bool    `json:"available"`
}

type Package struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	BranchID     string  `json:"branchId,omitempty"`
}

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "Open"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
)

type Complaint struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	BranchID     string          `json:"branchId"`
	Subject      string          `json:"subject"`
	Description  string          `json:"description"`
	Status       ComplaintStatus `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type Booking struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	RoomID     string    `json:"roomId"`
	BranchID   string    `json:"branchId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalFee   float64   `json:"totalFee"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TimeEntry struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	BranchID   string     `json:"branchId"`
	CheckIn    time.Time  `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
}

type InventoryItem struct {
	ID       string `json:"id"`
	BranchID string `json:"branchId"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}
