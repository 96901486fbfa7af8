package models

import (
	"math"
	"time"
)

// BookingStatus is the backend-owned lifecycle state of a booking. The
// backend is the single source of truth; this client only displays statuses
// and gates the actions it offers against them.
type BookingStatus string

const (
	StatusPending        BookingStatus = "PENDING"
	StatusWorkerAssigned BookingStatus = "WORKER_ASSIGNED"
	StatusWorkerRejected BookingStatus = "WORKER_REJECTED"
	StatusConfirmed      BookingStatus = "CONFIRMED"
	StatusInProgress     BookingStatus = "IN_PROGRESS"
	StatusCompleted      BookingStatus = "COMPLETED"
	StatusCancelled      BookingStatus = "CANCELLED"
	StatusRejected       BookingStatus = "REJECTED"
)

// BookingAction is something the customer can do to a booking from the
// bookings list.
type BookingAction string

const (
	ActionCancel        BookingAction = "cancel"
	ActionContactWorker BookingAction = "contact_worker"
	ActionRateService   BookingAction = "rate_service"
	ActionBookAgain     BookingAction = "book_again"
)

// Booking mirrors the backend's booking record. The client holds it as a
// read-through snapshot of the last fetch and never mutates status locally.
type Booking struct {
	ID                  uint          `json:"id"`
	WorkID              uint          `json:"workId"`
	WorkerID            *uint         `json:"workerId"`
	WorkTitle           string        `json:"workTitle"`
	WorkerName          string        `json:"workerName"`
	Description         string        `json:"description"`
	Status              BookingStatus `json:"status"`
	ScheduledDate       time.Time     `json:"scheduledDate"`
	CustomerAddress     string        `json:"customerAddress"`
	CustomerPhone       string        `json:"customerPhone"`
	SpecialInstructions string        `json:"specialInstructions,omitempty"`
	TotalAmount         float64       `json:"totalAmount"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// ActionsFor returns the actions offered for a booking in the given status.
// Statuses with no customer action (including WORKER_ASSIGNED, which is
// handled by the assignment review screen) return nil.
func ActionsFor(status BookingStatus) []BookingAction {
	switch status {
	case StatusPending:
		return []BookingAction{ActionCancel}
	case StatusConfirmed:
		return []BookingAction{ActionContactWorker, ActionCancel}
	case StatusInProgress:
		return []BookingAction{ActionContactWorker}
	case StatusCompleted:
		return []BookingAction{ActionRateService, ActionBookAgain}
	default:
		return nil
	}
}

// customerTransitions are the only transitions this client may initiate.
// Everything else (start, complete, re-assignment) is worker or backend
// driven and only ever observed.
var customerTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:        {StatusCancelled},
	StatusWorkerAssigned: {StatusConfirmed, StatusWorkerRejected},
	StatusConfirmed:      {StatusCancelled},
}

// CanTransition reports whether the customer may move a booking from one
// status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range customerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) CanCancel() bool {
	return CanTransition(s, StatusCancelled)
}

func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRejected
}

// Label is the human-readable status text shown next to a booking.
func (s BookingStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusWorkerAssigned:
		return "Worker Assigned - Awaiting Your Approval"
	case StatusWorkerRejected:
		return "Finding New Worker"
	case StatusConfirmed:
		return "Confirmed"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	case StatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// EstimateTotal returns the display-only total for a work's charges,
// applying the 50% emergency surcharge when flagged. The backend recomputes
// the authoritative amount; this value is never submitted.
func EstimateTotal(charges float64, isEmergency bool) float64 {
	total := charges
	if isEmergency {
		total *= 1.5
	}
	return math.Round(total*100) / 100
}
