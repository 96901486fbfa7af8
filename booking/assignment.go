package booking

import (
	"context"
	"fmt"
	"log"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/client"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/notify"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

// DefaultRejectionReason is sent when the customer gives no reason of
// their own.
const DefaultRejectionReason = "Customer requested different worker"

// AssignmentReviewer drives the customer's accept/reject decision for an
// auto-assigned worker. Accept confirms the booking; reject asks the
// backend to find the next best worker.
type AssignmentReviewer struct {
	api      *client.Client
	session  session.Context
	notifier notify.Notifier
	confirm  Confirmer
	nav      Navigator

	booking *models.Booking
	worker  *models.WorkerProfile
}

func NewAssignmentReviewer(api *client.Client, sess session.Context, notifier notify.Notifier, confirm Confirmer, nav Navigator) *AssignmentReviewer {
	return &AssignmentReviewer{
		api:      api,
		session:  sess,
		notifier: notifier,
		confirm:  confirm,
		nav:      nav,
	}
}

// Load fetches the booking and, when one is assigned, the worker's profile.
// A failed profile fetch degrades gracefully: booking details still render,
// the worker section is omitted.
func (r *AssignmentReviewer) Load(ctx context.Context, bookingID uint) error {
	b, err := r.api.GetBooking(ctx, bookingID)
	if err != nil {
		return fail(err, "Failed to load booking details", r.session, r.nav, r.notifier)
	}
	r.booking = b
	r.worker = nil

	if b.WorkerID != nil {
		profile, perr := r.api.GetWorkerProfile(ctx, *b.WorkerID)
		if perr != nil {
			log.Printf("failed to load worker profile %d: %v", *b.WorkerID, perr)
		} else {
			r.worker = profile
		}
	}
	return nil
}

func (r *AssignmentReviewer) Booking() *models.Booking {
	return r.booking
}

// Worker returns the assigned worker's profile, or nil when none is
// assigned or the profile fetch failed.
func (r *AssignmentReviewer) Worker() *models.WorkerProfile {
	return r.worker
}

// CanReview reports whether the accept/reject controls are shown. They are
// visible if and only if the booking awaits assignment review.
func (r *AssignmentReviewer) CanReview() bool {
	return r.booking != nil && r.booking.Status == models.StatusWorkerAssigned
}

// Accept confirms the assigned worker, then sends the user back to the
// bookings list.
func (r *AssignmentReviewer) Accept(ctx context.Context) error {
	if !r.CanReview() {
		return fmt.Errorf("booking is not awaiting assignment review")
	}

	if err := r.api.UpdateBookingStatus(ctx, r.booking.ID, models.StatusConfirmed); err != nil {
		return fail(err, "Failed to confirm worker. Please try again.", r.session, r.nav, r.notifier)
	}

	r.notifier.Success("Worker confirmed! Your booking is now active.")
	r.nav.NavigateTo(BookingsPage)
	return nil
}

// Reject asks for confirmation naming the worker, sends the rejection, and
// re-loads the booking to pick up the re-assignment. Declining the dialog
// issues no request at all.
func (r *AssignmentReviewer) Reject(ctx context.Context, reason string) error {
	if !r.CanReview() {
		return fmt.Errorf("booking is not awaiting assignment review")
	}

	name := "the assigned worker"
	if r.worker != nil {
		name = r.worker.Name
	}
	ok := r.confirm.Confirm("Reject Worker",
		fmt.Sprintf("Are you sure you want to reject %s? We'll assign the next best available worker.", name))
	if !ok {
		return nil
	}

	if reason == "" {
		reason = DefaultRejectionReason
	}
	if err := r.api.RejectWorker(ctx, r.booking.ID, reason); err != nil {
		return fail(err, "Failed to reject worker. Please try again.", r.session, r.nav, r.notifier)
	}

	r.notifier.Success("Worker rejected successfully. Assigning next available worker...")
	// Reload stands in for the page refresh: the next assignment shows up
	// on the fresh fetch.
	return r.Load(ctx, r.booking.ID)
}
