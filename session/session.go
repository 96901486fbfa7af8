package session

import (
	"sync"
	"time"
)

// Session is the persisted client session: auth token plus the identity
// fields the pages read. It is the localStorage analogue of the browser
// client.
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	AuthToken string `gorm:"type:text;not null"`
	Role      string `gorm:"size:20"`
	UserID    uint
	UserName  string `gorm:"size:200"`
	UserEmail string `gorm:"size:200"`
	UpdatedAt time.Time
}

// Context is injected session state with an explicit lifecycle: populated
// at login, read by every authenticated call, cleared at logout or on a
// 401. Get returns nil without error when no session exists.
type Context interface {
	Get() (*Session, error)
	Set(*Session) error
	Clear() error
}

// Memory is an in-process Context for tests and one-shot runs.
type Memory struct {
	mu   sync.Mutex
	sess *Session
}

func (m *Memory) Get() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return nil, nil
	}
	copied := *m.sess
	return &copied, nil
}

func (m *Memory) Set(sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *sess
	m.sess = &copied
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}
