package deals

import (
	"context"
	"testing"
	"time"
)

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) MarkRemoved(ctx context.Context, dealID string) error {
	r.removed = append(r.removed, dealID)
	return nil
}

func testPolicy(now time.Time) (*Policy, *recordingRemover) {
	remover := &recordingRemover{}
	policy := NewPolicy(remover)
	policy.now = func() time.Time { return now }
	return policy, remover
}

func TestEvaluateValidDealConvertsTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	policy, remover := testPolicy(now)

	expiry := "2025-04-01T00:00:00.000Z"
	r := row("r1", "d1")
	r.ExpiryDate = &expiry

	deal, ok := policy.Evaluate(context.Background(), r)
	if !ok {
		t.Fatalf("expected deal to be kept")
	}
	if deal.DatePosted == nil || *deal.DatePosted != 1740830400000 {
		t.Fatalf("expected date_posted in epoch millis, got %v", deal.DatePosted)
	}
	if deal.ExpiryDate == nil {
		t.Fatalf("expected expiry_date to be converted")
	}
	if len(remover.removed) != 0 {
		t.Fatalf("expected no removals, got %v", remover.removed)
	}
}

func TestEvaluateExpiredDealIsRemoved(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	policy, remover := testPolicy(now)

	expiry := "2025-02-01T00:00:00.000Z"
	r := row("r1", "d1")
	r.ExpiryDate = &expiry

	if _, ok := policy.Evaluate(context.Background(), r); ok {
		t.Fatalf("expected expired deal to be excluded")
	}
	if len(remover.removed) != 1 || remover.removed[0] != "d1" {
		t.Fatalf("expected exactly one removal of d1, got %v", remover.removed)
	}
}

func TestEvaluateExpiryExactlyNowIsKept(t *testing.T) {
	// Removal requires the expiry to be strictly before the current instant.
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	policy, remover := testPolicy(now)

	expiry := "2025-04-01T00:00:00.000Z"
	r := row("r1", "d1")
	r.ExpiryDate = &expiry

	if _, ok := policy.Evaluate(context.Background(), r); !ok {
		t.Fatalf("expected deal expiring exactly now to be kept")
	}
	if len(remover.removed) != 0 {
		t.Fatalf("expected no removals, got %v", remover.removed)
	}
}

func TestEvaluateMalformedExpiryTreatedAsNoExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	policy, remover := testPolicy(now)

	expiry := "not-a-date"
	r := row("r1", "d1")
	r.ExpiryDate = &expiry

	deal, ok := policy.Evaluate(context.Background(), r)
	if !ok {
		t.Fatalf("expected deal with malformed expiry to be kept")
	}
	if deal.ExpiryDate != nil {
		t.Fatalf("expected expiry_date to be absent, got %v", *deal.ExpiryDate)
	}
	if len(remover.removed) != 0 {
		t.Fatalf("expected no removals, got %v", remover.removed)
	}
}

func TestEvaluateMalformedDatePostedKeepsDeal(t *testing.T) {
	policy, _ := testPolicy(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	r := row("r1", "d1")
	r.DatePosted = "garbage"

	deal, ok := policy.Evaluate(context.Background(), r)
	if !ok {
		t.Fatalf("expected deal to be kept")
	}
	if deal.DatePosted != nil {
		t.Fatalf("expected date_posted to be absent, got %v", *deal.DatePosted)
	}
}

func TestEvaluateKarmaThreshold(t *testing.T) {
	tests := []struct {
		name      string
		upvotes   int
		downvotes int
		kept      bool
	}{
		{"margin of nine is retained", 1, 10, true},
		{"margin of ten is removed", 0, 10, false},
		{"margin of ten with offsets is removed", 5, 15, false},
		{"popular deal is retained", 50, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, remover := testPolicy(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

			r := row("r1", "d1")
			r.NumUpvote = tt.upvotes
			r.NumDownvote = tt.downvotes

			_, ok := policy.Evaluate(context.Background(), r)
			if ok != tt.kept {
				t.Fatalf("kept=%v, expected %v", ok, tt.kept)
			}

			wantRemovals := 0
			if !tt.kept {
				wantRemovals = 1
			}
			if len(remover.removed) != wantRemovals {
				t.Fatalf("expected %d removals, got %v", wantRemovals, remover.removed)
			}
		})
	}
}

func TestEvaluateKarmaThresholdIsTunable(t *testing.T) {
	policy, remover := testPolicy(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	policy.KarmaThreshold = 3

	r := row("r1", "d1")
	r.NumDownvote = 3

	if _, ok := policy.Evaluate(context.Background(), r); ok {
		t.Fatalf("expected removal at the configured threshold")
	}
	if len(remover.removed) != 1 {
		t.Fatalf("expected one removal, got %v", remover.removed)
	}
}
