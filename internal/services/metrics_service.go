// Package services – MetricsService
//
// This file implements the dashboard snapshot. Every aggregate runs in its
// own goroutine under an errgroup; the first failure cancels the rest and
// the whole snapshot fails.
//
// messagesByDay has two modes. "approximate" spreads the trailing 30-day
// count evenly over the seven weekdays and multiplies each by a jitter in
// [0.7, 1.3), so the series changes between calls. "exact" buckets the
// same 30 days by weekday. userGrowth always counts real UserState creation
// times per calendar month.
package services

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/repo"
)

const (
	ModeApproximate = "approximate"
	ModeExact       = "exact"

	activeWindow  = 7 * 24 * time.Hour
	dailyWindow   = 30 * 24 * time.Hour
	growthMonths  = 6
	healthTimeout = 2 * time.Second
)

// ISOTime is the timestamp layout used in API responses.
const ISOTime = "2006-01-02T15:04:05.000Z07:00"

// DayCount is one point of the weekday series.
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// MonthCount is one point of the user growth series.
type MonthCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Snapshot is the dashboard payload.
type Snapshot struct {
	Status          string              `json:"status"`
	TotalMessages   int64               `json:"totalMessages"`
	TotalThreads    int64               `json:"totalThreads"`
	TotalUsers      int64               `json:"totalUsers"`
	ActiveUsers     int64               `json:"activeUsers"`
	RateLimitEvents int64               `json:"rateLimitEvents"`
	MessageTypes    []repo.TypeCount    `json:"messageTypes"`
	MessagesByDay   []DayCount          `json:"messagesByDay"`
	UserGrowth      []MonthCount        `json:"userGrowth"`
	FeedbackStats   repo.FeedbackCounts `json:"feedbackStats"`
	Timestamp       string              `json:"timestamp"`
}

// Health is the liveness payload.
type Health struct {
	Status       string `json:"status"`
	DBConnection bool   `json:"dbConnection"`
	ServerTime   string `json:"serverTime"`
}

// MetricsService computes dashboard aggregates.
type MetricsService struct {
	DB   *gorm.DB
	Mode string // approximate (default) or exact

	// Test seams.
	Now  func() time.Time
	Rand func() float64 // uniform in [0,1)
}

func (s *MetricsService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *MetricsService) rand() float64 {
	if s.Rand != nil {
		return s.Rand()
	}
	return rand.Float64()
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Snapshot runs every aggregate concurrently and assembles the payload.
func (s *MetricsService) Snapshot(ctx context.Context) (*Snapshot, error) {
	tr := otel.Tracer("services/MetricsService")
	ctx, span := tr.Start(ctx, "Snapshot", trace.WithAttributes(attribute.String("metrics.daily_mode", s.mode())))
	defer span.End()

	now := s.now()
	out := &Snapshot{Status: "ok"}

	var (
		dailyCount  int64
		dailyTimes  []time.Time
		growthTimes []time.Time
	)
	growthStart := monthStart(now, -(growthMonths - 1))

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context, *gorm.DB) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx, s.DB)
			*dst = n
			return err
		})
	}
	count(&out.TotalMessages, repo.CountMessages)
	count(&out.TotalThreads, repo.CountThreads)
	count(&out.TotalUsers, repo.CountUserStates)
	count(&out.RateLimitEvents, repo.CountCooldowns)
	g.Go(func() (err error) {
		out.ActiveUsers, err = repo.CountActiveUsers(gctx, s.DB, now.Add(-activeWindow))
		return err
	})
	g.Go(func() (err error) {
		out.MessageTypes, err = repo.MessageTypeCounts(gctx, s.DB)
		return err
	})
	g.Go(func() (err error) {
		out.FeedbackStats, err = repo.FeedbackStats(gctx, s.DB)
		return err
	})
	g.Go(func() (err error) {
		growthTimes, err = repo.UserCreationTimesSince(gctx, s.DB, growthStart)
		return err
	})
	g.Go(func() (err error) {
		if s.mode() == ModeExact {
			dailyTimes, err = repo.MessageTimesSince(gctx, s.DB, now.Add(-dailyWindow))
			return err
		}
		dailyCount, err = repo.CountMessagesSince(gctx, s.DB, now.Add(-dailyWindow))
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if s.mode() == ModeExact {
		out.MessagesByDay = exactByDay(dailyTimes)
	} else {
		out.MessagesByDay = s.approximateByDay(dailyCount)
	}
	out.UserGrowth = growthByMonth(now, growthTimes)
	out.Timestamp = now.Format(ISOTime)
	return out, nil
}

func (s *MetricsService) mode() string {
	if s.Mode == ModeExact {
		return ModeExact
	}
	return ModeApproximate
}

func (s *MetricsService) approximateByDay(total int64) []DayCount {
	avg := float64(total) / 7
	out := make([]DayCount, len(weekdays))
	for i, d := range weekdays {
		jitter := 0.7 + s.rand()*0.6
		out[i] = DayCount{Day: d, Count: int64(math.Round(avg * jitter))}
	}
	return out
}

func exactByDay(times []time.Time) []DayCount {
	out := make([]DayCount, len(weekdays))
	for i, d := range weekdays {
		out[i].Day = d
	}
	for _, t := range times {
		out[t.UTC().Weekday()].Count++
	}
	return out
}

// monthStart returns the first instant of the month offset months from t.
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// growthByMonth buckets creation times into the last growthMonths calendar
// months, oldest first, labelled with the short month name.
func growthByMonth(now time.Time, times []time.Time) []MonthCount {
	out := make([]MonthCount, growthMonths)
	index := make(map[[2]int]int, growthMonths)
	for i := 0; i < growthMonths; i++ {
		m := monthStart(now, i-(growthMonths-1))
		out[i].Date = m.Format("Jan")
		index[[2]int{m.Year(), int(m.Month())}] = i
	}
	for _, t := range times {
		t = t.UTC()
		if i, ok := index[[2]int{t.Year(), int(t.Month())}]; ok {
			out[i].Count++
		}
	}
	return out
}

// Health pings the database. It never fails; an unreachable database is
// reported as dbConnection=false.
func (s *MetricsService) Health(ctx context.Context) Health {
	tr := otel.Tracer("services/MetricsService")
	ctx, span := tr.Start(ctx, "Health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	ok := s.DB != nil && repo.Ping(ctx, s.DB) == nil
	span.SetAttributes(attribute.Bool("db.connection", ok))
	return Health{Status: "ok", DBConnection: ok, ServerTime: s.now().Format(ISOTime)}
}
