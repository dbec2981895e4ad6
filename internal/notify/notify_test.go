package notify

import (
	"fmt"
	"testing"

	"salestracker/backend/internal/domain"
)

func TestDismissDurationsPerSeverity(t *testing.T) {
	feed := NewFeed(10)

	cases := map[string]int{
		domain.SeveritySuccess: 5000,
		domain.SeverityInfo:    4000,
		domain.SeverityWarning: 6000,
		domain.SeverityError:   7000,
	}

	feed.Success("ok")
	feed.Info("fyi")
	feed.Warning("careful")
	feed.Error("broke")

	for _, n := range feed.List() {
		if n.DismissMS != cases[n.Severity] {
			t.Errorf("%s dismiss: got %d, want %d", n.Severity, n.DismissMS, cases[n.Severity])
		}
		if n.ID == "" || n.CreatedAt.IsZero() {
			t.Errorf("notification identity: %+v", n)
		}
	}
}

func TestFeedNewestFirstAndBounded(t *testing.T) {
	feed := NewFeed(3)

	for i := 0; i < 5; i++ {
		feed.Info(fmt.Sprintf("message %d", i))
	}

	items := feed.List()
	if len(items) != 3 {
		t.Fatalf("feed length: got %d", len(items))
	}
	if items[0].Message != "message 4" {
		t.Fatalf("newest first: got %q", items[0].Message)
	}
}
