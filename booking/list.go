package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/client"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/notify"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

// DefaultPageSize is how many bookings one page shows.
const DefaultPageSize = 10

// ListView fetches the customer's bookings and presents them filtered,
// searched and paginated, with actions gated by status. It never mutates a
// booking locally: every mutation goes to the backend and is followed by a
// fresh fetch.
type ListView struct {
	api      *client.Client
	session  session.Context
	notifier notify.Notifier
	confirm  Confirmer
	nav      Navigator

	bookings []models.Booking
	filtered []models.Booking
	page     int
	pageSize int

	statusFilter models.BookingStatus
	search       string
}

func NewListView(api *client.Client, sess session.Context, notifier notify.Notifier, confirm Confirmer, nav Navigator) *ListView {
	return &ListView{
		api:      api,
		session:  sess,
		notifier: notifier,
		confirm:  confirm,
		nav:      nav,
		page:     1,
		pageSize: DefaultPageSize,
	}
}

// Load fetches the booking list. A 401 clears the session and navigates to
// the login page; that is the only fatal response.
func (v *ListView) Load(ctx context.Context) error {
	bookings, err := v.api.MyBookings(ctx)
	if err != nil {
		return fail(err, "Failed to load bookings", v.session, v.nav, v.notifier)
	}
	v.bookings = bookings
	v.applyFilters()
	return nil
}

// SetStatusFilter narrows the list to one status. Empty clears the filter.
// Changing filters resets to page 1.
func (v *ListView) SetStatusFilter(status models.BookingStatus) {
	v.statusFilter = status
	v.applyFilters()
}

// SetSearch filters by a case-insensitive substring of the service title,
// worker name or description.
func (v *ListView) SetSearch(term string) {
	v.search = term
	v.applyFilters()
}

func (v *ListView) applyFilters() {
	term := strings.ToLower(v.search)
	filtered := make([]models.Booking, 0, len(v.bookings))
	for _, b := range v.bookings {
		if v.statusFilter != "" && b.Status != v.statusFilter {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.WorkTitle), term) &&
			!strings.Contains(strings.ToLower(b.WorkerName), term) &&
			!strings.Contains(strings.ToLower(b.Description), term) {
			continue
		}
		filtered = append(filtered, b)
	}
	v.filtered = filtered
	v.page = 1
}

func (v *ListView) TotalPages() int {
	if len(v.filtered) == 0 {
		return 0
	}
	return (len(v.filtered) + v.pageSize - 1) / v.pageSize
}

func (v *ListView) CurrentPage() int {
	return v.page
}

// ChangePage moves to the given page; out-of-range requests are ignored.
func (v *ListView) ChangePage(page int) {
	if page < 1 || page > v.TotalPages() {
		return
	}
	v.page = page
}

// Page returns the bookings visible on the current page.
func (v *ListView) Page() []models.Booking {
	start := (v.page - 1) * v.pageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

// ActionsFor returns the status-gated action set for one booking.
func (v *ListView) ActionsFor(b models.Booking) []models.BookingAction {
	return models.ActionsFor(b.Status)
}

// Details returns the full record plus its action set for the detail modal.
func (v *ListView) Details(id uint) (*models.Booking, []models.BookingAction, error) {
	b := v.find(id)
	if b == nil {
		return nil, nil, fmt.Errorf("unknown booking %d", id)
	}
	return b, models.ActionsFor(b.Status), nil
}

// Cancel asks for confirmation, then PUTs the cancel and re-fetches the
// list. Declining the confirmation leaves everything untouched.
func (v *ListView) Cancel(ctx context.Context, id uint) error {
	b := v.find(id)
	if b == nil {
		return fmt.Errorf("unknown booking %d", id)
	}
	if !b.Status.CanCancel() {
		return fmt.Errorf("booking %d cannot be cancelled in status %s", id, b.Status)
	}

	ok := v.confirm.Confirm("Cancel Booking",
		"Are you sure you want to cancel this booking? This action cannot be undone.")
	if !ok {
		return nil
	}

	if err := v.api.CancelBooking(ctx, id); err != nil {
		return fail(err, "Failed to cancel booking. Please try again.", v.session, v.nav, v.notifier)
	}

	v.notifier.Success("Booking cancelled successfully")
	// Fresh fetch, never a local splice: displayed state must be the
	// backend's last write.
	return v.Load(ctx)
}

// ContactWorker surfaces the worker's contact details for an active
// booking.
func (v *ListView) ContactWorker(id uint) error {
	b := v.find(id)
	if b == nil {
		return fmt.Errorf("unknown booking %d", id)
	}
	v.notifier.Info(fmt.Sprintf("Reach %s through the contact details on your booking confirmation.", b.WorkerName))
	return nil
}

// BookAgain navigates to the booking page pre-filled with the completed
// booking's work and worker.
func (v *ListView) BookAgain(id uint) error {
	b := v.find(id)
	if b == nil {
		return fmt.Errorf("unknown booking %d", id)
	}
	if b.WorkerID == nil {
		v.nav.NavigateTo(fmt.Sprintf("%s?workId=%d", BookingPage, b.WorkID))
		return nil
	}
	v.nav.NavigateTo(fmt.Sprintf("%s?workId=%d&workerId=%d", BookingPage, b.WorkID, *b.WorkerID))
	return nil
}

func (v *ListView) find(id uint) *models.Booking {
	for i := range v.bookings {
		if v.bookings[i].ID == id {
			return &v.bookings[i]
		}
	}
	return nil
}
