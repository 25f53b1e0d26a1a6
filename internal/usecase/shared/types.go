package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side query types.

type ServiceSnapshot struct {
	ID              uuid.UUID
	WorkshopID      uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      int32
	IsActive        bool
}

type SlotSnapshot struct {
	ID         uuid.UUID
	WorkshopID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Status     string
}

// BookingSnapshot carries the ownership chain (slot -> workshop -> owner)
// so authorization checks need one read.
type BookingSnapshot struct {
	ID              uuid.UUID
	SlotID          uuid.UUID
	ServiceID       uuid.UUID
	UserID          uuid.UUID
	Status          string
	WorkshopID      uuid.UUID
	WorkshopOwnerID uuid.UUID
}

type WorkshopSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}
