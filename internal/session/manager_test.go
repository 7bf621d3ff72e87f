package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fernsdavid25/CiviDocAI/internal/registry"
)

type noopEngine struct{}

func (noopEngine) Ask(ctx context.Context, question string) (string, error) {
	_ = ctx
	_ = question
	return "", nil
}

func TestGetIsIdempotent(t *testing.T) {
	mgr := NewManager()

	first := mgr.Get("sess-1")
	if first == nil {
		t.Fatal("expected session")
	}
	first.History.Append("doc", "PDF", "content", time.Now().UTC())

	second := mgr.Get("sess-1")
	if first != second {
		t.Fatal("expected the same session instance on repeat Get")
	}
	if second.History.Len() != 1 {
		t.Fatalf("repeat Get must not reset state, got %d entries", second.History.Len())
	}
	if mgr.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", mgr.Len())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	mgr := NewManager()

	a := mgr.Get("a")
	b := mgr.Get("b")

	if err := a.Registry.RecordAnalysis("doc", registry.KindPDF, "analysis", noopEngine{}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}
	a.History.Append("doc", "PDF", "analysis", time.Now().UTC())

	if _, err := b.Registry.ChatEngine("doc"); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("session b must not see session a's engine, got %v", err)
	}
	if b.History.Len() != 0 {
		t.Fatalf("session b must not see session a's history, got %d entries", b.History.Len())
	}
}

func TestDeleteDocumentCascades(t *testing.T) {
	mgr := NewManager()
	sess := mgr.Get("sess")

	if err := sess.Registry.RecordAnalysis("doc", registry.KindImage, "analysis", noopEngine{}); err != nil {
		t.Fatalf("record analysis: %v", err)
	}
	sess.History.Append("doc", "JPEG", "analysis", time.Now().UTC())
	if err := sess.Registry.SetCurrent("doc"); err != nil {
		t.Fatalf("set current: %v", err)
	}

	sess.DeleteDocument("doc")

	if _, err := sess.Registry.ChatEngine("doc"); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected engine gone, got %v", err)
	}
	if _, err := sess.Registry.Get("doc"); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
	if sess.History.Len() != 0 {
		t.Fatalf("expected history gone, got %d entries", sess.History.Len())
	}
	if sess.Registry.Current() != "" {
		t.Fatalf("expected current cleared, got %q", sess.Registry.Current())
	}
}

func TestTranscript(t *testing.T) {
	mgr := NewManager()
	sess := mgr.Get("sess")

	sess.AppendMessage(Message{Role: RoleUser, Content: "hello", Document: "doc"})
	sess.AppendMessage(Message{Role: RoleAssistant, Content: "upstream failed", Document: "doc", IsError: true})

	msgs := sess.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if !msgs[1].IsError {
		t.Fatal("expected failed assistant turn to be recorded as error content")
	}
	if msgs[0].CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}

	// Snapshot isolation.
	msgs[0].Content = "mutated"
	if sess.Messages()[0].Content != "hello" {
		t.Fatal("Messages must return a copy")
	}

	sess.ClearMessages()
	if len(sess.Messages()) != 0 {
		t.Fatal("expected empty transcript after clear")
	}
}

func TestManagerDelete(t *testing.T) {
	mgr := NewManager()
	sess := mgr.Get("sess")
	sess.History.Append("doc", "PDF", "content", time.Now().UTC())

	mgr.Delete("sess")

	fresh := mgr.Get("sess")
	if fresh == sess {
		t.Fatal("expected a fresh session after delete")
	}
	if fresh.History.Len() != 0 {
		t.Fatalf("expected fresh session to be empty, got %d entries", fresh.History.Len())
	}
}
