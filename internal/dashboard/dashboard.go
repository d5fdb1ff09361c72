// Package dashboard composes the summary screen: all stats and recent-list
// reads fan out in parallel, and every panel carries its own error so one
// failing source never blanks the rest. Aggregate numbers are trusted from
// the store, never recomputed here.
package dashboard

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"jewel-shop/internal/storage"
)

// RecentCount is how many rows each recent panel shows, and the length cap
// of the merged services feed.
const RecentCount = 5

type Reader interface {
	GetOrderStats(ctx context.Context) (*storage.OrderStats, error)
	GetRecentOrders(ctx context.Context, count int) ([]storage.Order, error)
	GetRepairOrderStats(ctx context.Context) (*storage.RepairOrderStats, error)
	GetRecentRepairOrders(ctx context.Context, count int) ([]storage.RepairOrder, error)
	GetPiercingStats(ctx context.Context) (*storage.PiercingStats, error)
	GetRecentPiercingServices(ctx context.Context, count int) ([]storage.PiercingService, error)
	GetOtherServiceStats(ctx context.Context) (*storage.OtherServiceStats, error)
	GetRecentOtherServices(ctx context.Context, count int) ([]storage.OtherService, error)
}

// ServiceEntry is one row of the merged piercing/other feed.
type ServiceEntry struct {
	Kind    string // "Piercing" or "Other"
	ID      int64
	When    int64 // service date, or record timestamp when no date exists
	Name    string
	Phone   string
	Amount  int64
	Remarks string
}

type Summary struct {
	OrderStats    *storage.OrderStats
	OrderStatsErr error

	RecentOrders    []storage.Order
	RecentOrdersErr error

	RepairStats    *storage.RepairOrderStats
	RepairStatsErr error

	RecentRepairs    []storage.RepairOrder
	RecentRepairsErr error

	PiercingStats    *storage.PiercingStats
	PiercingStatsErr error

	OtherStats    *storage.OtherServiceStats
	OtherStatsErr error

	ServicesFeed    []ServiceEntry
	ServicesFeedErr error
}

type Aggregator struct {
	reader Reader
}

func New(reader Reader) *Aggregator {
	return &Aggregator{reader: reader}
}

// Load issues every read concurrently. Goroutines always return nil so a
// failed panel cannot cancel its siblings; failures land in the per-panel
// error fields instead.
func (a *Aggregator) Load(ctx context.Context) *Summary {
	var s Summary
	var piercing []storage.PiercingService
	var other []storage.OtherService
	var piercingErr, otherErr error

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.OrderStats, s.OrderStatsErr = a.reader.GetOrderStats(gCtx)
		return nil
	})
	g.Go(func() error {
		s.RecentOrders, s.RecentOrdersErr = a.reader.GetRecentOrders(gCtx, RecentCount)
		return nil
	})
	g.Go(func() error {
		s.RepairStats, s.RepairStatsErr = a.reader.GetRepairOrderStats(gCtx)
		return nil
	})
	g.Go(func() error {
		s.RecentRepairs, s.RecentRepairsErr = a.reader.GetRecentRepairOrders(gCtx, RecentCount)
		return nil
	})
	g.Go(func() error {
		s.PiercingStats, s.PiercingStatsErr = a.reader.GetPiercingStats(gCtx)
		return nil
	})
	g.Go(func() error {
		s.OtherStats, s.OtherStatsErr = a.reader.GetOtherServiceStats(gCtx)
		return nil
	})
	g.Go(func() error {
		piercing, piercingErr = a.reader.GetRecentPiercingServices(gCtx, RecentCount)
		return nil
	})
	g.Go(func() error {
		other, otherErr = a.reader.GetRecentOtherServices(gCtx, RecentCount)
		return nil
	})

	_ = g.Wait()

	// The feed degrades to whichever source answered; it errors only when
	// both did not.
	if piercingErr != nil && otherErr != nil {
		s.ServicesFeedErr = piercingErr
	} else {
		s.ServicesFeed = mergeServices(piercing, other)
	}

	return &s
}

func mergeServices(piercing []storage.PiercingService, other []storage.OtherService) []ServiceEntry {
	feed := make([]ServiceEntry, 0, len(piercing)+len(other))

	for _, p := range piercing {
		when := p.Date
		if when == 0 {
			when = p.Timestamp
		}
		feed = append(feed, ServiceEntry{
			Kind:    "Piercing",
			ID:      p.ID,
			When:    when,
			Name:    p.Name,
			Phone:   p.Phone,
			Amount:  p.Amount,
			Remarks: p.Remarks,
		})
	}

	for _, o := range other {
		feed = append(feed, ServiceEntry{
			Kind:    "Other",
			ID:      o.ID,
			When:    o.Timestamp,
			Name:    o.Name,
			Phone:   o.Phone,
			Amount:  o.Amount,
			Remarks: o.Remarks,
		})
	}

	sort.Slice(feed, func(i, j int) bool { return feed[i].When > feed[j].When })

	if len(feed) > RecentCount {
		feed = feed[:RecentCount]
	}

	return feed
}
