package ports

import (
	"context"

	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
)

type RecordService interface {
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListPackages(ctx context.Context) ([]domain.Package, error)
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error)
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	AddComplaint(ctx context.Context, complaint domain.Complaint) (domain.Complaint, error)
	AddBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
}
