package registry

import (
	"context"
	"errors"
	"testing"
)

type staticEngine struct {
	answer string
}

func (e staticEngine) Ask(ctx context.Context, question string) (string, error) {
	_ = ctx
	_ = question
	return e.answer, nil
}

func TestChatEngineExistsOnlyAfterRecordAnalysis(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.ChatEngine("letter.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before analysis, got %v", err)
	}

	if err := reg.RecordAnalysis("letter.pdf", KindPDF, "analysis text", staticEngine{answer: "a"}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}

	engine, err := reg.ChatEngine("letter.pdf")
	if err != nil {
		t.Fatalf("chat engine after analysis: %v", err)
	}
	got, err := engine.Ask(context.Background(), "what is this?")
	if err != nil || got != "a" {
		t.Fatalf("ask = (%q, %v), want (a, nil)", got, err)
	}
}

func TestDeleteThenLookupFailsNotFound(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RecordAnalysis("notice.jpg", KindImage, "analysis", staticEngine{}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}

	reg.Delete("notice.jpg")
	reg.Delete("notice.jpg") // idempotent

	if _, err := reg.ChatEngine("notice.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := reg.Get("notice.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for record after delete, got %v", err)
	}
}

func TestOverwriteReplacesEngine(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RecordAnalysis("x", KindPDF, "first", staticEngine{answer: "first"}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}
	if err := reg.RecordAnalysis("x", KindPDF, "second", staticEngine{answer: "second"}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}

	if reg.Len() != 1 {
		t.Fatalf("expected single record after overwrite, got %d", reg.Len())
	}
	rec, err := reg.Get("x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Analysis != "second" {
		t.Fatalf("expected overwritten analysis, got %q", rec.Analysis)
	}
	engine, err := reg.ChatEngine("x")
	if err != nil {
		t.Fatalf("chat engine: %v", err)
	}
	if got, _ := engine.Ask(context.Background(), "q"); got != "second" {
		t.Fatalf("expected second engine to win, got %q", got)
	}
}

func TestDeleteClearsCurrentReference(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RecordAnalysis("doc", KindPDF, "analysis", staticEngine{}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}
	if err := reg.SetCurrent("doc"); err != nil {
		t.Fatalf("set current: %v", err)
	}
	if reg.Current() != "doc" {
		t.Fatalf("expected current doc, got %q", reg.Current())
	}

	reg.Delete("doc")
	if reg.Current() != "" {
		t.Fatalf("expected current cleared after delete, got %q", reg.Current())
	}
}

func TestSetCurrentUnknownName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetCurrent("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordAnalysisValidation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RecordAnalysis("", KindPDF, "a", staticEngine{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if err := reg.RecordAnalysis("doc", KindPDF, "a", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil engine, got %v", err)
	}
}
