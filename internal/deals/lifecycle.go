package deals

import (
	"context"
	"log"
	"time"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/timeutil"
)

// defaultKarmaThreshold is the downvote-minus-upvote margin at which a deal
// is automatically removed.
const defaultKarmaThreshold = 10

// Remover marks a deal as soft-removed in the store. Setting the flag twice
// is harmless, so concurrent removals need no coordination.
type Remover interface {
	MarkRemoved(ctx context.Context, dealID string) error
}

// Policy decides, per deal, whether it is still valid and triggers
// soft-removal when it is not.
type Policy struct {
	remover Remover

	// KarmaThreshold defaults to defaultKarmaThreshold.
	KarmaThreshold int

	now func() time.Time
}

func NewPolicy(remover Remover) *Policy {
	return &Policy{
		remover:        remover,
		KarmaThreshold: defaultKarmaThreshold,
		now:            time.Now,
	}
}

// Evaluate converts a row's timestamps to epoch millis and applies the
// removal rules. It returns the wire-shaped deal and true when the deal is
// still valid; otherwise it issues one MarkRemoved side effect and returns
// false.
func (p *Policy) Evaluate(ctx context.Context, row DealRow) (Deal, bool) {
	var posted *int64
	if ms, err := timeutil.ToEpochMillis(row.DatePosted); err != nil {
		log.Printf("deal %s: unparseable date_posted %q: %v", row.DealID, row.DatePosted, err)
	} else {
		posted = &ms
	}

	var expiry *int64
	if row.ExpiryDate != nil {
		// A malformed expiry is treated as no expiry.
		if ms, err := timeutil.ToEpochMillis(*row.ExpiryDate); err != nil {
			log.Printf("deal %s: unparseable expiry_date %q: %v", row.DealID, *row.ExpiryDate, err)
		} else if ms < p.now().UnixMilli() {
			p.remove(ctx, row.DealID)
			return Deal{}, false
		} else {
			expiry = &ms
		}
	}

	if row.NumDownvote-row.NumUpvote >= p.KarmaThreshold {
		p.remove(ctx, row.DealID)
		return Deal{}, false
	}

	return Deal{
		ID:              row.DealID,
		Item:            row.Item,
		Description:     row.Description,
		Type:            row.Type,
		Price:           row.Price,
		UserID:          row.UserID,
		DatePosted:      posted,
		ExpiryDate:      expiry,
		ImageID:         row.ImageID,
		ApplicableGroup: row.ApplicableGroup,
		DailyStartTimes: row.DailyStartTimes,
		DailyEndTimes:   row.DailyEndTimes,
		NumUpvote:       row.NumUpvote,
		NumDownvote:     row.NumDownvote,
		UserVote:        row.UserVote,
		UserSaved:       row.UserSaved,
	}, true
}

func (p *Policy) remove(ctx context.Context, dealID string) {
	if err := p.remover.MarkRemoved(ctx, dealID); err != nil {
		log.Printf("deal %s: failed to mark removed: %v", dealID, err)
	}
}
