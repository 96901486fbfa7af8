package booking

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/client"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/geo"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/notify"
)

// Mode selects which booking flow the composer drives.
type Mode string

const (
	// ModeDirect books a worker the customer already picked.
	ModeDirect Mode = "direct"
	// ModeAuto lets the backend assign a worker; the customer reviews the
	// assignment afterwards.
	ModeAuto Mode = "auto"
)

const (
	minDescriptionLen = 10
	minAddressLen     = 10
	maxLeadDays       = 30
	openingMinutes    = 8 * 60  // 08:00
	closingMinutes    = 20 * 60 // 20:00
)

var (
	phoneRe    = regexp.MustCompile(`^[+]?[1-9]\d{9,14}$`)
	phoneSepRe = regexp.MustCompile(`[\s\-()]`)
)

// Form holds the user-entered booking fields prior to submission.
type Form struct {
	Description         string
	ServiceDate         string // YYYY-MM-DD
	ServiceTime         string // HH:MM, 24-hour
	Address             string
	Phone               string
	SpecialInstructions string
	IsEmergency         bool
	AgreeTerms          bool
}

// FieldError is a validation failure scoped to one form field, rendered
// directly below it.
type FieldError struct {
	Field   string
	Message string
}

// Validate checks every field and returns all failures at once so the UI
// can mark each offending field. An empty result means the form may be
// submitted.
func (f *Form) Validate(now time.Time) []FieldError {
	var errs []FieldError

	switch {
	case f.Description == "":
		errs = append(errs, FieldError{"description", "Please describe what you need help with"})
	case len(f.Description) < minDescriptionLen:
		errs = append(errs, FieldError{"description", "Please provide more details (at least 10 characters)"})
	}

	if f.ServiceDate == "" {
		errs = append(errs, FieldError{"serviceDate", "Please select a service date"})
	} else if date, err := time.ParseInLocation("2006-01-02", f.ServiceDate, now.Location()); err != nil {
		errs = append(errs, FieldError{"serviceDate", "Please select a valid service date"})
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if date.Before(today) {
			errs = append(errs, FieldError{"serviceDate", "Service date cannot be in the past"})
		} else if date.After(today.AddDate(0, 0, maxLeadDays)) {
			errs = append(errs, FieldError{"serviceDate", "Service date cannot be more than 30 days ahead"})
		}
	}

	if f.ServiceTime == "" {
		errs = append(errs, FieldError{"serviceTime", "Please select a service time"})
	} else if t, err := time.Parse("15:04", f.ServiceTime); err != nil {
		errs = append(errs, FieldError{"serviceTime", "Please select a valid service time"})
	} else {
		minutes := t.Hour()*60 + t.Minute()
		if minutes < openingMinutes || minutes > closingMinutes {
			errs = append(errs, FieldError{"serviceTime", "Service time must be between 8:00 AM and 8:00 PM"})
		}
	}

	switch {
	case f.Address == "":
		errs = append(errs, FieldError{"address", "Please provide the service address"})
	case len(f.Address) < minAddressLen:
		errs = append(errs, FieldError{"address", "Please provide a complete address"})
	}

	if f.Phone == "" {
		errs = append(errs, FieldError{"phone", "Please provide a contact phone number"})
	} else if !phoneRe.MatchString(phoneSepRe.ReplaceAllString(f.Phone, "")) {
		errs = append(errs, FieldError{"phone", "Please provide a valid phone number"})
	}

	if !f.AgreeTerms {
		errs = append(errs, FieldError{"agreeTerms", "Please agree to the terms and conditions"})
	}

	return errs
}

// scheduledAt combines the date and time fields into the single instant the
// backend expects. Only call after Validate passed.
func (f *Form) scheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", f.ServiceDate+" "+f.ServiceTime, loc)
}

// Receipt is what a successful submission hands back to the UI.
type Receipt struct {
	Booking *models.Booking
	// Estimate is display-only: charges with the emergency surcharge
	// applied client-side. The backend's totalAmount is authoritative.
	Estimate float64
	Guidance string
}

// Composer collects a booking request and submits it. One composer replaces
// the two divergent page scripts; Mode picks the flow.
type Composer struct {
	api      *client.Client
	mode     Mode
	notifier notify.Notifier
	resolver *geo.Resolver
	now      func() time.Time
}

func NewComposer(api *client.Client, mode Mode, notifier notify.Notifier) *Composer {
	return &Composer{
		api:      api,
		mode:     mode,
		notifier: notifier,
		now:      time.Now,
	}
}

// UseLocation enables best-effort address enrichment for the auto-assign
// flow. Optional; resolution failures never block a submission.
func (c *Composer) UseLocation(resolver *geo.Resolver) {
	c.resolver = resolver
}

// FillAddressFromLocation asks the resolver for the device's address and
// puts it in the form. Best-effort: on failure the user types it in.
func (c *Composer) FillAddressFromLocation(ctx context.Context, form *Form) error {
	if c.resolver == nil {
		return fmt.Errorf("location services not available")
	}
	addr, err := c.resolver.CurrentAddress(ctx)
	if err != nil {
		c.notifier.Error("Failed to get current location. Please enter address manually.")
		return err
	}
	form.Address = addr
	c.notifier.Success("Current location added successfully!")
	return nil
}

// Submit validates the form and posts the booking. Field errors come back
// without touching the network; a backend failure preserves the form for
// retry; success clears it.
func (c *Composer) Submit(ctx context.Context, work *models.Work, workerID uint, form *Form) (*Receipt, []FieldError, error) {
	now := c.now()
	if errs := form.Validate(now); len(errs) > 0 {
		return nil, errs, nil
	}

	scheduled, err := form.scheduledAt(now.Location())
	if err != nil {
		return nil, []FieldError{{"serviceDate", "Please select a valid date and time"}}, nil
	}

	var booked *models.Booking
	switch c.mode {
	case ModeAuto:
		req := client.AutoBookingRequest{
			WorkID:              work.ID,
			Description:         form.Description,
			ScheduledDate:       scheduled,
			CustomerAddress:     form.Address,
			CustomerPhone:       form.Phone,
			SpecialInstructions: form.SpecialInstructions,
		}
		if c.resolver != nil {
			if pos, perr := c.resolver.CurrentPosition(ctx); perr != nil {
				log.Printf("location enrichment skipped: %v", perr)
			} else {
				req.CustomerLatitude = &pos.Latitude
				req.CustomerLongitude = &pos.Longitude
			}
		}
		booked, err = c.api.CreateAutoBooking(ctx, req)
	default:
		booked, err = c.api.CreateBooking(ctx, client.BookingRequest{
			WorkID:              work.ID,
			WorkerID:            workerID,
			Description:         form.Description,
			ScheduledDate:       scheduled,
			CustomerAddress:     form.Address,
			CustomerPhone:       form.Phone,
			SpecialInstructions: form.SpecialInstructions,
		})
	}
	if err != nil {
		// Form state is preserved so the user can retry.
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	receipt := &Receipt{
		Booking:  booked,
		Estimate: models.EstimateTotal(work.Charges, form.IsEmergency),
	}
	if c.mode == ModeAuto {
		receipt.Guidance = "We're finding the best worker for you. Check My Bookings to review the assignment."
	} else {
		receipt.Guidance = "Your booking is pending worker confirmation. Track it under My Bookings."
	}

	c.notifier.Success("Booking created successfully!")
	*form = Form{}
	return receipt, nil, nil
}
