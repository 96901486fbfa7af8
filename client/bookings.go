package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
)

// BookingRequest is the direct-booking payload: the customer already picked
// the worker.
type BookingRequest struct {
	WorkID              uint      `json:"workId"`
	WorkerID            uint      `json:"workerId"`
	Description         string    `json:"description"`
	ScheduledDate       time.Time `json:"scheduledDate"`
	CustomerAddress     string    `json:"customerAddress"`
	CustomerPhone       string    `json:"customerPhone"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
}

// AutoBookingRequest is the auto-assign payload. No workerId: the backend
// matches one, helped along by the customer's coordinates when available.
type AutoBookingRequest struct {
	WorkID              uint      `json:"workId"`
	Description         string    `json:"description"`
	ScheduledDate       time.Time `json:"scheduledDate"`
	CustomerAddress     string    `json:"customerAddress"`
	CustomerPhone       string    `json:"customerPhone"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	CustomerLatitude    *float64  `json:"customerLatitude,omitempty"`
	CustomerLongitude   *float64  `json:"customerLongitude,omitempty"`
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.postJSON(ctx, "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CreateAutoBooking(ctx context.Context, req AutoBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.postJSON(ctx, "/api/bookings/auto", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.getJSON(ctx, "/api/bookings/my-bookings", true, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := c.getJSON(ctx, fmt.Sprintf("/api/bookings/%d", id), true, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, id uint) error {
	return c.put(ctx, fmt.Sprintf("/api/bookings/%d/cancel", id), nil)
}

// UpdateBookingStatus drives the status PUT. The backend expects this one
// form-encoded rather than as JSON.
func (c *Client) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	form := url.Values{"status": {string(status)}}
	return c.putForm(ctx, fmt.Sprintf("/api/bookings/%d/status", id), form, nil)
}

// RejectWorker asks the backend to drop the assigned worker and find
// another. The reason travels as a query parameter.
func (c *Client) RejectWorker(ctx context.Context, id uint, reason string) error {
	path := fmt.Sprintf("/api/bookings/%d/reject-worker?rejectionReason=%s", id, url.QueryEscape(reason))
	return c.put(ctx, path, nil)
}

func (c *Client) GetWorkerProfile(ctx context.Context, workerID uint) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	if err := c.getJSON(ctx, fmt.Sprintf("/api/worker-profile/%d", workerID), false, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
