// Package notify is the uniform user-visible notification channel.
// Every operation reports its outcome here with a severity; the UI
// polls the feed and auto-dismisses entries after the duration that
// comes with each one (errors linger longest).
package notify

import (
	"sync"
	"time"

	"salestracker/backend/internal/domain"
	"salestracker/backend/internal/xid"
)

var dismissMS = map[string]int{
	domain.SeveritySuccess: 5000,
	domain.SeverityInfo:    4000,
	domain.SeverityWarning: 6000,
	domain.SeverityError:   7000,
}

type Feed struct {
	mu    sync.Mutex
	limit int
	items []domain.Notification
}

func NewFeed(limit int) *Feed {
	if limit < 1 {
		limit = 50
	}
	return &Feed{limit: limit}
}

func (f *Feed) push(severity string, message string) domain.Notification {
	n := domain.Notification{
		ID:        xid.New("notif"),
		Severity:  severity,
		Message:   message,
		DismissMS: dismissMS[severity],
		CreatedAt: time.Now().UTC(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]domain.Notification{n}, f.items...)
	if len(f.items) > f.limit {
		f.items = f.items[:f.limit]
	}
	return n
}

func (f *Feed) Success(message string) domain.Notification {
	return f.push(domain.SeveritySuccess, message)
}

func (f *Feed) Info(message string) domain.Notification {
	return f.push(domain.SeverityInfo, message)
}

func (f *Feed) Warning(message string) domain.Notification {
	return f.push(domain.SeverityWarning, message)
}

func (f *Feed) Error(message string) domain.Notification {
	return f.push(domain.SeverityError, message)
}

// List returns the feed newest first.
func (f *Feed) List() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]domain.Notification, len(f.items))
	copy(items, f.items)
	return items
}
