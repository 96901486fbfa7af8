package notify

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
)

// StatusUpdate is a booking status change pushed by the backend's
// notification hub. It only signals that something changed: displayed state
// still comes from a fresh fetch, never from the event payload.
type StatusUpdate struct {
	Type      string               `json:"type"`
	BookingID uint                 `json:"booking_id"`
	Status    models.BookingStatus `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
}

// Watcher holds a WebSocket subscription to the backend notification hub
// and delivers booking status updates on a channel.
type Watcher struct {
	url     string
	token   string
	updates chan StatusUpdate
}

// NewWatcher prepares a watcher for the given hub URL. The hub
// authenticates WebSocket clients through a token query parameter.
func NewWatcher(hubURL, token string) *Watcher {
	return &Watcher{
		url:     hubURL,
		token:   token,
		updates: make(chan StatusUpdate, 16),
	}
}

func (w *Watcher) Updates() <-chan StatusUpdate {
	return w.updates
}

// Run connects and reads until the context is cancelled or the stream
// breaks. Updates that arrive while the buffer is full are dropped: the
// next fetch shows current state anyway.
func (w *Watcher) Run(ctx context.Context) error {
	dialURL := w.url + "?token=" + url.QueryEscape(w.token)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, dialURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to notification hub: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var update StatusUpdate
		if err := conn.ReadJSON(&update); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("notification stream closed: %w", err)
		}
		if update.Type != "" && update.Type != "booking_status" {
			continue
		}
		select {
		case w.updates <- update:
		default:
			log.Printf("⚠️ status update buffer full, dropping update for booking %d", update.BookingID)
		}
	}
}
