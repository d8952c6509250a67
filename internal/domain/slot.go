package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// LockState represents the operator soft-hold state of a slot,
// independent of the reserved flag
type LockState string

const (
	LockStateUnlocked LockState = "unlocked"
	LockStateLocked   LockState = "locked"
)

// Toggled returns the opposite lock state.
func (s LockState) Toggled() LockState {
	if s == LockStateLocked {
		return LockStateUnlocked
	}
	return LockStateLocked
}

// Slot represents a fixed time-of-day interval on a specific date for a
// specific turf, bookable at most once.
type Slot struct {
	ID         int64
	TurfID     int64
	Date       time.Time // полночь UTC
	StartTime  types.TimeString
	EndTime    types.TimeString
	MaxPlayers int
	Reserved   bool
	LockState  LockState
}

// IsBookable returns true if the slot is free and not held by an operator.
func (s *Slot) IsBookable() bool {
	return !s.Reserved && s.LockState == LockStateUnlocked
}

// Key returns the identity tuple of the slot.
func (s *Slot) Key() SlotKey {
	return SlotKey{
		TurfID:    s.TurfID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

// SlotKey is the four-part value identity of a slot. Bookings and slots
// agree on this tuple, never on a foreign key.
type SlotKey struct {
	TurfID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// String formats the key for logs.
func (k SlotKey) String() string {
	return fmt.Sprintf("turf=%d date=%s %s-%s", k.TurfID, k.Date.Format(DateFormat), k.StartTime, k.EndTime)
}

// Trimmed returns the key with whitespace stripped from both time strings.
// Defends against callers that serialize times with stray spaces.
func (k SlotKey) Trimmed() SlotKey {
	k.StartTime = k.StartTime.Trimmed()
	k.EndTime = k.EndTime.Trimmed()
	return k
}

// DaySchedule is the ordered list of slots for one turf on one calendar date.
type DaySchedule struct {
	TurfID int64
	Date   time.Time
	Slots  []Slot
}

// SlotTemplate одна позиция дневного шаблона при генерации слотов
type SlotTemplate struct {
	StartTime  types.TimeString
	EndTime    types.TimeString
	MaxPlayers int
}
