package writer

import (
	"context"
	"fmt"
	"time"

	"github.com/fernsdavid25/CiviDocAI/internal/llm"
	"github.com/fernsdavid25/CiviDocAI/internal/session"
)

const nameTimestampFormat = "20060102_150405"

// Service drafts formal documents from typed requests.
type Service struct {
	LLM llm.Client
}

// Generated is a successfully drafted document.
type Generated struct {
	Name    string
	Type    string
	Content string
}

// Generate validates the request, drafts the document and records it in
// session history. A drafting failure records nothing; the caller can retry
// the same request.
func (s *Service) Generate(ctx context.Context, sess *session.Session, req Request) (Generated, error) {
	if err := req.Validate(); err != nil {
		return Generated{}, err
	}

	content, err := s.LLM.Generate(ctx, req.Type.Label(), req.Fields())
	if err != nil {
		return Generated{}, fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}

	name := string(req.Type) + "_" + time.Now().Format(nameTimestampFormat)
	sess.History.Append(name, req.Type.Label(), content, time.Now().UTC())

	return Generated{Name: name, Type: req.Type.Label(), Content: content}, nil
}
