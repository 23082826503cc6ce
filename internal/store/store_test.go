package store

import (
	"context"
	"testing"

	"github.com/dverbin/phrasal/internal/lesson"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func storedLesson(title string) lesson.Lesson {
	l := lesson.New()
	l.Title = title
	l.Level = "beginner"
	l.Activities = []lesson.Activity{{
		ID:       lesson.NewID(),
		Type:     lesson.TypeDialogue,
		Title:    "Say hello",
		Question: lesson.MediaElement{Text: "Read the dialogue"},
		Body: lesson.Dialogue{Items: []lesson.MediaElement{
			{Text: "Zdravo"}, {Text: "Zdravo!"},
		}},
	}}
	return l
}

func TestUpsert_InsertThenOverwrite(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	l := storedLesson("v1")
	if err := repo.Upsert(ctx, l); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	l.Title = "v2"
	if err := repo.Upsert(ctx, l); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "v2" {
		t.Errorf("title = %q, want the overwritten revision", got.Title)
	}

	all, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("loadAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("lessons = %d, upsert must not duplicate", len(all))
	}
}

func TestGet_RoundTripsActivities(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	l := storedLesson("round trip")
	if err := repo.Upsert(ctx, l); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Activities) != 1 || got.Activities[0].Type != lesson.TypeDialogue {
		t.Fatalf("activities = %+v", got.Activities)
	}
	if items := got.Activities[0].Items(); len(items) != 2 || items[0].Text != "Zdravo" {
		t.Errorf("items = %+v", items)
	}
}

func TestGet_Unknown(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LessonRepo().Get(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	l := storedLesson("doomed")
	if err := repo.Upsert(ctx, l); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, l.ID); err != ErrNotFound {
		t.Errorf("lesson still present after delete: %v", err)
	}

	// Deleting again is fine.
	if err := repo.Delete(ctx, l.ID); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:  "mock",
		Model:     "mock",
		Purpose:   "suggest-activity",
		LatencyMs: 5,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
}

func TestListLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := range 3 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "suggest-activity",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(10 + i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := repo.ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Provider != "mock" || !events[0].Success {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for range 2 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "suggest-activity",
			InputTokens:  100,
			OutputTokens: 40,
			LatencyMs:    20,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	stats, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d stats rows, want 1", len(stats))
	}
	st := stats[0]
	if st.Purpose != "suggest-activity" || st.Calls != 2 {
		t.Errorf("unexpected stat: %+v", st)
	}
	if st.InputTokens != 200 || st.OutputTokens != 80 {
		t.Errorf("token sums = %d/%d, want 200/80", st.InputTokens, st.OutputTokens)
	}
}
