package store

import (
	"encoding/json"
	"time"

	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
)

// Storage keys. One list per key across every store strategy.
const (
	KeyTasks       = "tasks"
	KeyBranches    = "branches"
	KeyRooms       = "rooms"
	KeyPackages    = "packages"
	KeyComplaints  = "complaints"
	KeyBookings    = "bookings"
	KeyTimeEntries = "time_entries"
	KeyInventory   = "inventory"
)

// DefaultSeeds returns the hardcoded seed lists used when the primary store
// has nothing for a key. Tasks deliberately seed empty: the engine owns task
// creation and its history invariants, so no task may exist without a
// created entry.
func DefaultSeeds() map[string]json.RawMessage {
	seeded := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	return map[string]json.RawMessage{
		KeyTasks: mustMarshal([]domain.Task{}),
		KeyBranches: mustMarshal([]domain.Branch{
			{ID: "1", Name: "Downtown Hub", Address: "12 Mall Road", City: "Lahore", Phone: "+92-42-111-000-111", CreatedAt: seeded},
			{ID: "2", Name: "Gulberg Center", Address: "5 Main Boulevard", City: "Lahore", Phone: "+92-42-111-000-222", CreatedAt: seeded},
		}),
		KeyRooms: mustMarshal([]domain.Room{
			{ID: "1", BranchID: "1", Name: "Conference A", Capacity: 12, HourlyFee: 1500, Available: true},
			{ID: "2", BranchID: "1", Name: "Meeting Pod 1", Capacity: 4, HourlyFee: 600, Available: true},
			{ID: "3", BranchID: "2", Name: "Conference B", Capacity: 10, HourlyFee: 1200, Available: true},
		}),
		KeyPackages: mustMarshal([]domain.Package{
			{ID: "1", Name: "Hot Desk Monthly", Description: "Any open desk, business hours", Price: 15000, DurationDays: 30},
			{ID: "2", Name: "Dedicated Desk", Description: "Reserved desk with locker", Price: 25000, DurationDays: 30},
			{ID: "3", Name: "Day Pass", Description: "Single day access", Price: 1000, DurationDays: 1},
		}),
		KeyComplaints:  mustMarshal([]domain.Complaint{}),
		KeyBookings:    mustMarshal([]domain.Booking{}),
		KeyTimeEntries: mustMarshal([]domain.TimeEntry{}),
		KeyInventory: mustMarshal([]domain.InventoryItem{
			{ID: "1", BranchID: "1", Name: "Coffee Beans", Category: "Pantry", Quantity: 20, Unit: "kg"},
			{ID: "2", BranchID: "1", Name: "Printer Paper", Category: "Office", Quantity: 50, Unit: "ream"},
		}),
	}
}

func mustMarshal(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
