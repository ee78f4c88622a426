package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"quiz-gen", "passage-gen", "translation-grade"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			Success:      true,
			ResponseBody: `{"questions":[]}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "translation-grade" {
		t.Errorf("expected newest event first, got %q", events[0].Purpose)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("expected descending sequence order")
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"questions":[]}` {
		t.Errorf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestAppendAndQueryGenerations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendGeneration(ctx, GenerationEventData{
		Mode:           "multiple_choice",
		RequestedCount: 5,
		ItemCount:      5,
		ContentChars:   1421,
		Level:          "beginner",
		Success:        true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendGeneration(ctx, GenerationEventData{
		Mode:      "listening",
		Success:   false,
		ErrorKind: "no_json",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Mode != "listening" || events[0].Success {
		t.Errorf("unexpected newest event: %+v", events[0])
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendGeneration(ctx, GenerationEventData{Mode: "multiple_choice", Success: true}); err != nil {
		t.Fatal(err)
	}

	llms, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	gens, _ := repo.QueryGenerations(ctx, QueryOpts{})
	if len(llms) != 1 || len(gens) != 1 {
		t.Fatalf("expected one event of each type")
	}
	if gens[0].Sequence <= llms[0].Sequence {
		t.Errorf("expected generation sequence %d > llm sequence %d", gens[0].Sequence, llms[0].Sequence)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-a", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "mock-a", Purpose: "quiz-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "mock-b", Purpose: "passage-gen", InputTokens: 50, OutputTokens: 80, LatencyMs: 300, Success: true},
	}
	for _, d := range appends {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	// Sorted by purpose name.
	quiz := byPurpose[1]
	if quiz.Purpose != "quiz-gen" || quiz.Calls != 2 || quiz.InputTokens != 220 || quiz.OutputTokens != 100 {
		t.Errorf("unexpected quiz-gen usage: %+v", quiz)
	}
	if quiz.AvgLatencyMs != 300 {
		t.Errorf("expected avg latency 300, got %d", quiz.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Model != "mock-a" || byModel[0].Calls != 2 || byModel[0].InputTokens != 220 {
		t.Errorf("unexpected model usage: %+v", byModel[0])
	}
}
