package portfolio

import (
	"testing"
	"time"
)

func waitForBanner(t *testing.T, n *NotificationCenter, want Notifications) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if n.Current() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("banner = %+v, want %+v", n.Current(), want)
}

func TestNotificationExpiry(t *testing.T) {
	n := NewNotificationCenter(30*time.Millisecond, 60*time.Millisecond)
	defer n.Close()

	n.Success("saved")
	n.Error("failed")

	got := n.Current()
	if got.Success != "saved" || got.Error != "failed" {
		t.Fatalf("Current() = %+v", got)
	}

	// Success expires first, error lives on its own clock.
	waitForBanner(t, n, Notifications{Error: "failed"})
	waitForBanner(t, n, Notifications{})
}

func TestNotificationReplaceRestartsTimer(t *testing.T) {
	n := NewNotificationCenter(60*time.Millisecond, 60*time.Millisecond)
	defer n.Close()

	n.Success("first")
	time.Sleep(40 * time.Millisecond)
	n.Success("second")

	// Past the first message's would-be expiry; the replacement's fresh
	// timer keeps the banner up.
	time.Sleep(40 * time.Millisecond)
	if got := n.Current().Success; got != "second" {
		t.Errorf("Success = %q, want %q (replacement restarts the timer)", got, "second")
	}

	waitForBanner(t, n, Notifications{})
}

func TestNotificationSingleSlot(t *testing.T) {
	n := NewNotificationCenter(time.Minute, time.Minute)
	defer n.Close()

	n.Error("first failure")
	n.Error("second failure")

	if got := n.Current().Error; got != "second failure" {
		t.Errorf("Error = %q, want the newest message only", got)
	}
}

func TestNotificationClose(t *testing.T) {
	n := NewNotificationCenter(time.Minute, time.Minute)

	n.Success("saved")
	n.Error("failed")
	n.Close()

	if got := n.Current(); got != (Notifications{}) {
		t.Errorf("Current() after Close = %+v, want empty", got)
	}
}

func TestNotificationZeroTTLDefaults(t *testing.T) {
	n := NewNotificationCenter(0, 0)
	defer n.Close()

	if n.successTTL != DefaultSuccessTTL || n.errTTL != DefaultErrorTTL {
		t.Errorf("TTLs = %v/%v, want defaults", n.successTTL, n.errTTL)
	}
}
