package portfolio

import (
	"sync"
	"time"
)

// Default banner lifetimes matching the dashboard UI.
const (
	DefaultSuccessTTL = 5 * time.Second
	DefaultErrorTTL   = 8 * time.Second
)

// Notifications holds the current banner state: at most one success and one
// error message at a time.
type Notifications struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NotificationCenter keeps single-slot success and error banners that
// auto-clear after a fixed delay. A newer message of the same kind replaces
// the old one and restarts its timer; messages never stack.
type NotificationCenter struct {
	mu         sync.Mutex
	success    string
	err        string
	successTTL time.Duration
	errTTL     time.Duration

	successTimer *time.Timer
	errTimer     *time.Timer
}

// NewNotificationCenter creates a center with the given banner lifetimes.
// Zero durations fall back to the defaults.
func NewNotificationCenter(successTTL, errTTL time.Duration) *NotificationCenter {
	if successTTL == 0 {
		successTTL = DefaultSuccessTTL
	}
	if errTTL == 0 {
		errTTL = DefaultErrorTTL
	}
	return &NotificationCenter{successTTL: successTTL, errTTL: errTTL}
}

// Success sets the success banner, replacing any pending one.
func (n *NotificationCenter) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = msg
	if n.successTimer != nil {
		n.successTimer.Stop()
	}
	n.successTimer = time.AfterFunc(n.successTTL, func() {
		n.mu.Lock()
		if n.success == msg {
			n.success = ""
		}
		n.mu.Unlock()
	})
}

// Error sets the error banner, replacing any pending one.
func (n *NotificationCenter) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = msg
	if n.errTimer != nil {
		n.errTimer.Stop()
	}
	n.errTimer = time.AfterFunc(n.errTTL, func() {
		n.mu.Lock()
		if n.err == msg {
			n.err = ""
		}
		n.mu.Unlock()
	})
}

// Current returns the active banners.
func (n *NotificationCenter) Current() Notifications {
	n.mu.Lock()
	defer n.mu.Unlock()
	return Notifications{Success: n.success, Error: n.err}
}

// Close cancels pending timers and clears both banners.
func (n *NotificationCenter) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.successTimer != nil {
		n.successTimer.Stop()
		n.successTimer = nil
	}
	if n.errTimer != nil {
		n.errTimer.Stop()
		n.errTimer = nil
	}
	n.success = ""
	n.err = ""
}
