package booking

import (
	"errors"
	"log"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/client"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/notify"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

// Pages the components navigate between. Names match the served HTML tree.
const (
	LoginPage    = "customer-login.html"
	BookingsPage = "my-bookings.html"
	BookingPage  = "booking.html"
)

// Confirmer asks the user to confirm a destructive action. Returning false
// must leave state completely untouched.
type Confirmer interface {
	Confirm(title, message string) bool
}

// Navigator changes the visible page: the browser location analogue.
type Navigator interface {
	NavigateTo(page string)
}

// fail funnels every backend failure through the error taxonomy. An auth
// failure is fatal to the session: clear it and send the user to login.
// Anything else surfaces as a dismissible alert and the operation is
// abandoned.
func fail(err error, fallback string, sess session.Context, nav Navigator, notifier notify.Notifier) error {
	var authErr *client.AuthError
	if errors.As(err, &authErr) {
		if cerr := sess.Clear(); cerr != nil {
			log.Printf("failed to clear session: %v", cerr)
		}
		nav.NavigateTo(LoginPage)
		return err
	}

	var backendErr *client.BackendError
	if errors.As(err, &backendErr) {
		// The backend's own message, verbatim.
		notifier.Error(backendErr.Message)
		return err
	}

	log.Printf("request failed: %v", err)
	notifier.Error(fallback)
	return err
}
