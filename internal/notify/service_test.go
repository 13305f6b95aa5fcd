package notify

import (
	"sync"
	"testing"
	"time"
)

type recordingPresenter struct {
	mu        sync.Mutex
	shown     []Notification
	dismissed []uint64
}

func (p *recordingPresenter) ShowNotification(n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown = append(p.shown, n)
}

func (p *recordingPresenter) DismissNotification(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dismissed = append(p.dismissed, id)
}

func (p *recordingPresenter) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.shown), len(p.dismissed)
}

func TestNotifyShowsAndAutoDismisses(t *testing.T) {
	p := &recordingPresenter{}
	svc := NewServiceTTL(p, 30*time.Millisecond)

	id := svc.Notify("Patient added successfully!", SeveritySuccess)
	if id == 0 {
		t.Fatalf("expected non-zero notification ID")
	}
	if svc.ActiveCount() != 1 {
		t.Fatalf("expected 1 active notification, got %d", svc.ActiveCount())
	}

	deadline := time.Now().Add(time.Second)
	for svc.ActiveCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("notification was not dismissed within deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
	shown, dismissed := p.counts()
	if shown != 1 || dismissed != 1 {
		t.Fatalf("expected 1 show and 1 dismiss, got %d/%d", shown, dismissed)
	}
}

func TestConcurrentNotificationsCoexist(t *testing.T) {
	p := &recordingPresenter{}
	svc := NewServiceTTL(p, 50*time.Millisecond)

	a := svc.Error("Error adding patient: bad vitals")
	b := svc.Success("Queue refreshed!")
	if a == b {
		t.Fatalf("expected distinct notification IDs, both were %d", a)
	}
	if svc.ActiveCount() != 2 {
		t.Fatalf("expected both notifications active, got %d", svc.ActiveCount())
	}

	deadline := time.Now().Add(time.Second)
	for svc.ActiveCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("notifications were not dismissed within deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSeverityHelpers(t *testing.T) {
	p := &recordingPresenter{}
	svc := NewServiceTTL(p, 20*time.Millisecond)
	svc.Info("i")
	svc.Warn("w")

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.shown) != 2 {
		t.Fatalf("expected 2 notifications shown, got %d", len(p.shown))
	}
	if p.shown[0].Severity != SeverityInfo || p.shown[1].Severity != SeverityWarning {
		t.Fatalf("unexpected severities: %s, %s", p.shown[0].Severity, p.shown[1].Severity)
	}
}
