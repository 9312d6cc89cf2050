package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/store"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/ports"
)

// RecordService is the shallow accessor layer for the peripheral lists.
// Every list goes through the same ListStore contract as tasks; an unwritten
// key reads as empty and the caller-facing slices are never nil.
type RecordService struct {
	store ports.ListStore
	mu    sync.Mutex
}

var _ ports.RecordService = (*RecordService)(nil)

func NewRecordService(listStore ports.ListStore) *RecordService {
	return &RecordService{store: listStore}
}

func readList[T any](ctx context.Context, s ports.ListStore, key string) ([]T, error) {
	var out []T
	if err := s.Read(ctx, key, &out); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (s *RecordService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return readList[domain.Branch](ctx, s.store, store.KeyBranches)
}

func (s *RecordService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return readList[domain.Room](ctx, s.store, store.KeyRooms)
}

func (s *RecordService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return readList[domain.Package](ctx, s.store, store.KeyPackages)
}

func (s *RecordService) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	return readList[domain.Complaint](ctx, s.store, store.KeyComplaints)
}

func (s *RecordService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return readList[domain.Booking](ctx, s.store, store.KeyBookings)
}

func (s *RecordService) ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	return readList[domain.TimeEntry](ctx, s.store, store.KeyTimeEntries)
}

func (s *RecordService) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return readList[domain.InventoryItem](ctx, s.store, store.KeyInventory)
}

func (s *RecordService) AddComplaint(ctx context.Context, complaint domain.Complaint) (domain.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaints, err := readList[domain.Complaint](ctx, s.store, store.KeyComplaints)
	if err != nil {
		return domain.Complaint{}, err
	}

	ids := make([]string, 0, len(complaints))
	for _, c := range complaints {
		ids = append(ids, c.ID)
	}
	complaint.ID = nextRecordID(ids)
	complaint.Status = domain.ComplaintStatusOpen
	complaint.CreatedAt = time.Now()

	complaints = append(complaints, complaint)
	if err := s.store.Write(ctx, store.KeyComplaints, complaints); err != nil {
		return domain.Complaint{}, err
	}
	return complaint, nil
}

func (s *RecordService) AddBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readList[domain.Booking](ctx, s.store, store.KeyBookings)
	if err != nil {
		return domain.Booking{}, err
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	booking.ID = nextRecordID(ids)
	booking.CreatedAt = time.Now()

	bookings = append(bookings, booking)
	if err := s.store.Write(ctx, store.KeyBookings, bookings); err != nil {
		return domain.Booking{}, err
	}
	return booking, nil
}

// nextRecordID allocates one past the highest numeric id in the list, so ids
// stay unique even when a list was seeded with gaps. Non-numeric ids are
// ignored.
func nextRecordID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
