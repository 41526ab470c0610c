package repo

import (
	"context"
	"testing"
	"time"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

func TestStats_MissingTables(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	if _, err := CountMessages(ctx, db); err == nil {
		t.Fatalf("expected error without messages table")
	}
	if _, err := FeedbackStats(ctx, db); err == nil {
		t.Fatalf("expected error without feedback table")
	}
}

func TestStats_Aggregates(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, chat := range []string{"c1", "c2", "c3"} {
		if err := EnsureUserState(ctx, db, chat); err != nil {
			t.Fatalf("state: %v", err)
		}
	}
	_ = SetCooldown(ctx, db, "c3", true)

	msgs := []struct {
		chat, thread, typ string
		at                time.Time
	}{
		{"c1", "t1", "text", now.Add(-time.Hour)},
		{"c1", "t1", "text", now.Add(-2 * time.Hour)},
		{"c1", "t2", "audio", now.Add(-3 * 24 * time.Hour)},
		{"c2", "", "image", now.Add(-10 * 24 * time.Hour)},
		{"c2", "t3", "text", now.Add(-40 * 24 * time.Hour)},
	}
	for _, m := range msgs {
		if _, err := CreateMessage(ctx, db, m.chat, m.thread, m.typ, "x", m.at); err != nil {
			t.Fatalf("message: %v", err)
		}
	}

	if n, err := CountMessages(ctx, db); err != nil || n != 5 {
		t.Fatalf("messages = %d, %v", n, err)
	}
	if n, err := CountThreads(ctx, db); err != nil || n != 3 {
		t.Fatalf("threads = %d, %v", n, err)
	}
	if n, err := CountActiveUsers(ctx, db, now.Add(-7*24*time.Hour)); err != nil || n != 1 {
		t.Fatalf("active = %d, %v", n, err)
	}
	if n, err := CountCooldowns(ctx, db); err != nil || n != 1 {
		t.Fatalf("cooldowns = %d, %v", n, err)
	}
	if n, err := CountMessagesSince(ctx, db, now.Add(-30*24*time.Hour)); err != nil || n != 4 {
		t.Fatalf("last 30 days = %d, %v", n, err)
	}

	types, err := MessageTypeCounts(ctx, db)
	if err != nil || len(types) != 3 {
		t.Fatalf("types = %+v, %v", types, err)
	}
	if types[0].Type != "text" || types[0].Count != 3 {
		t.Fatalf("largest group first, got %+v", types[0])
	}

	times, err := MessageTimesSince(ctx, db, now.Add(-30*24*time.Hour))
	if err != nil || len(times) != 4 {
		t.Fatalf("times = %d, %v", len(times), err)
	}
	created, err := UserCreationTimesSince(ctx, db, now.Add(-24*time.Hour))
	if err != nil || len(created) != 3 {
		t.Fatalf("created = %d, %v", len(created), err)
	}
}

func TestFeedbackStats_KeywordClasses(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	rows := []struct {
		content string
		help    bool
	}{
		{"Very GOOD service", false},
		{"great but slow", true},
		{"bad experience", false},
		{"Poor and bad", true},
		{"good and bad at once", false},
		{"neutral", false},
	}
	for _, r := range rows {
		if _, err := CreateFeedback(ctx, db, nil, r.content, r.help); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	_ = db.Create(&domain.Feedback{ID: "z", Content: "positive vibes", CreatedAt: time.Now()}).Error

	got, err := FeedbackStats(ctx, db)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := FeedbackCounts{Total: 7, Positive: 4, Negative: 3, WantsHelp: 2}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}
