package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/store"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
)

func TestRecordService_EmptyStoreListsAreEmptyNotNil(t *testing.T) {
	svc := NewRecordService(store.NewMemoryStore())
	ctx := context.Background()

	branches, err := svc.ListBranches(ctx)
	require.NoError(t, err)
	require.NotNil(t, branches)
	require.Empty(t, branches)

	inventory, err := svc.ListInventory(ctx)
	require.NoError(t, err)
	require.NotNil(t, inventory)
	require.Empty(t, inventory)
}

func TestRecordService_SeededStoreServesSeedLists(t *testing.T) {
	listStore := store.NewFallbackStore(store.NewMemoryStore(), store.DefaultSeeds())
	svc := NewRecordService(listStore)
	ctx := context.Background()

	branches, err := svc.ListBranches(ctx)
	require.NoError(t, err)
	require.Len(t, branches, 2)
	require.Equal(t, "Downtown Hub", branches[0].Name)

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	packages, err := svc.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, packages, 3)
}

func TestRecordService_AddComplaint(t *testing.T) {
	svc := NewRecordService(store.NewMemoryStore())
	ctx := context.Background()

	complaint, err := svc.AddComplaint(ctx, domain.Complaint{
		CustomerID:   "cust-1",
		CustomerName: "Hamza",
		BranchID:     "1",
		Subject:      "AC not working",
		Description:  "Conference A is too warm",
	})
	require.NoError(t, err)
	require.Equal(t, "1", complaint.ID)
	require.Equal(t, domain.ComplaintStatusOpen, complaint.Status)
	require.False(t, complaint.CreatedAt.IsZero())

	complaints, err := svc.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	require.Equal(t, "AC not working", complaints[0].Subject)
}

func TestRecordService_AddComplaintSkipsSeededIDGaps(t *testing.T) {
	listStore := store.NewMemoryStore()
	require.NoError(t, listStore.Write(context.Background(), store.KeyComplaints, []domain.Complaint{
		{ID: "7", CustomerID: "cust-1", Subject: "Noise"},
	}))

	svc := NewRecordService(listStore)
	complaint, err := svc.AddComplaint(context.Background(), domain.Complaint{
		CustomerID: "cust-2",
		Subject:    "Parking",
	})
	require.NoError(t, err)
	require.Equal(t, "8", complaint.ID)
}

func TestRecordService_AddBooking(t *testing.T) {
	svc := NewRecordService(store.NewMemoryStore())
	ctx := context.Background()

	first, err := svc.AddBooking(ctx, domain.Booking{CustomerID: "cust-1", RoomID: "1", BranchID: "1", TotalFee: 3000})
	require.NoError(t, err)
	require.Equal(t, "1", first.ID)

	second, err := svc.AddBooking(ctx, domain.Booking{CustomerID: "cust-2", RoomID: "2", BranchID: "1", TotalFee: 1200})
	require.NoError(t, err)
	require.Equal(t, "2", second.ID)

	bookings, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
}
