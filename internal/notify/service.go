// Package notify manages ephemeral status messages. A notification is shown
// in a fixed screen position and removed after a fixed display window; it is
// never mutated in between. Any number of notifications may coexist, each
// independently timed.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultTTL is the fixed display window before auto-dismissal.
const DefaultTTL = 5 * time.Second

// Notification is one ephemeral status message.
type Notification struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Presenter renders notifications on the page. A nil presenter is tolerated;
// lifecycle bookkeeping still runs so callers can observe it.
type Presenter interface {
	ShowNotification(Notification)
	DismissNotification(id uint64)
}

// Service creates notifications and schedules their time-driven removal.
type Service struct {
	mu        sync.Mutex
	presenter Presenter
	ttl       time.Duration
	nextID    uint64
	active    map[uint64]Notification
}

// NewService creates a service with the default 5 s display window.
func NewService(p Presenter) *Service {
	return NewServiceTTL(p, DefaultTTL)
}

// NewServiceTTL creates a service with an explicit display window.
func NewServiceTTL(p Presenter, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		presenter: p,
		ttl:       ttl,
		active:    make(map[uint64]Notification),
	}
}

// Notify creates and shows one notification and schedules its removal.
// Returns the notification's ID.
func (s *Service) Notify(message string, severity Severity) uint64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	s.nextID++
	n := Notification{
		ID:        s.nextID,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	s.active[n.ID] = n
	s.mu.Unlock()

	if s.presenter != nil {
		s.presenter.ShowNotification(n)
	}
	time.AfterFunc(s.ttl, func() { s.dismiss(n.ID) })
	return n.ID
}

func (s *Service) Info(message string) uint64    { return s.Notify(message, SeverityInfo) }
func (s *Service) Success(message string) uint64 { return s.Notify(message, SeveritySuccess) }
func (s *Service) Warn(message string) uint64    { return s.Notify(message, SeverityWarning) }
func (s *Service) Error(message string) uint64   { return s.Notify(message, SeverityError) }

func (s *Service) dismiss(id uint64) {
	s.mu.Lock()
	_, ok := s.active[id]
	if ok {
		delete(s.active, id)
	}
	s.mu.Unlock()
	if ok && s.presenter != nil {
		s.presenter.DismissNotification(id)
	}
}

// ActiveCount returns the number of notifications currently displayed.
func (s *Service) ActiveCount() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}
