package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fernsdavid25/CiviDocAI/internal/extract"
	"github.com/fernsdavid25/CiviDocAI/internal/llm"
	"github.com/fernsdavid25/CiviDocAI/internal/registry"
	"github.com/fernsdavid25/CiviDocAI/internal/session"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/util"
)

const nameTimestampFormat = "20060102_150405"

// EngineBuilder constructs a chat engine over the given document segments.
type EngineBuilder interface {
	Build(ctx context.Context, name string, segments []string) (registry.ChatEngine, error)
}

// Service runs the upload-analyze pipeline.
type Service struct {
	LLM     llm.Client
	Builder EngineBuilder
}

// Upload is one file submitted for analysis.
type Upload struct {
	Name     string
	MimeType string
	Data     []byte
}

// Result is a successfully analyzed document.
type Result struct {
	Name     string
	Kind     string
	Analysis string
}

// ItemError reports a single failed item in a batch.
type ItemError struct {
	Name string
	Err  error
}

// ProcessBatch analyzes each upload independently. A failed item yields one
// ItemError and leaves no trace in the session; the remaining items still
// run to completion.
func (s *Service) ProcessBatch(ctx context.Context, sess *session.Session, uploads []Upload) ([]Result, []ItemError) {
	var results []Result
	var failed []ItemError
	for _, up := range uploads {
		res, err := s.processOne(ctx, sess, up)
		if err != nil {
			failed = append(failed, ItemError{Name: up.Name, Err: err})
			continue
		}
		results = append(results, res)
	}
	return results, failed
}

func (s *Service) processOne(ctx context.Context, sess *session.Session, up Upload) (Result, error) {
	name, err := util.SanitizeFileName(up.Name)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if len(up.Data) == 0 {
		return Result{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	mime := extract.NormalizeMime(up.MimeType, name)
	switch {
	case extract.IsImage(mime):
		return s.analyzeImage(ctx, sess, name, mime, up.Data)
	case mime == extract.MimePDF:
		return s.analyzePDF(ctx, sess, name, up.Data)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
}

// Capture analyzes a photographed document. The name is derived from the
// capture time so repeated captures never collide.
func (s *Service) Capture(ctx context.Context, sess *session.Session, data []byte, mimeType string) (Result, error) {
	if len(data) == 0 {
		return Result{}, fmt.Errorf("%w: empty image", ErrInvalidInput)
	}
	mime := extract.NormalizeMime(mimeType, "")
	if mime == "" {
		mime = extract.MimeJPEG
	}
	if !extract.IsImage(mime) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}

	name := "captured_image_" + time.Now().Format(nameTimestampFormat)

	analysis, err := s.LLM.AnalyzeImage(ctx, data, mime)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrAnalysisFailed, err)
	}
	engine, err := s.Builder.Build(ctx, name, []string{analysis})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrAnalysisFailed, err)
	}
	if err := sess.Registry.RecordAnalysis(name, registry.KindImage, analysis, engine); err != nil {
		return Result{}, err
	}
	sess.History.Append(name, "Captured Image", analysis, time.Now().UTC())

	return Result{Name: name, Kind: registry.KindImage, Analysis: analysis}, nil
}

func (s *Service) analyzeImage(ctx context.Context, sess *session.Session, name, mime string, data []byte) (Result, error) {
	analysis, err := s.LLM.AnalyzeImage(ctx, data, mime)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrAnalysisFailed, err)
	}

	// The analysis text doubles as the retrieval corpus; images have no
	// extractable text of their own.
	engine, err := s.Builder.Build(ctx, name, []string{analysis})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrAnalysisFailed, err)
	}
	if err := sess.Registry.RecordAnalysis(name, registry.KindImage, analysis, engine); err != nil {
		return Result{}, err
	}
	sess.History.Append(name, imageDocType(mime), analysis, time.Now().UTC())

	return Result{Name: name, Kind: registry.KindImage, Analysis: analysis}, nil
}

func (s *Service) analyzePDF(ctx context.Context, sess *session.Session, name string, data []byte) (Result, error) {
	segments, err := extract.PDFSegments(data)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	analysis, err := s.LLM.AnalyzeText(ctx, extract.JoinSegments(segments))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrAnalysisFailed, err)
	}
	engine, err := s.Builder.Build(ctx, name, extract.Texts(segments))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrAnalysisFailed, err)
	}
	if err := sess.Registry.RecordAnalysis(name, registry.KindPDF, analysis, engine); err != nil {
		return Result{}, err
	}
	sess.History.Append(name, "PDF", analysis, time.Now().UTC())

	return Result{Name: name, Kind: registry.KindPDF, Analysis: analysis}, nil
}

func imageDocType(mime string) string {
	sub := strings.TrimPrefix(mime, "image/")
	return strings.ToUpper(sub)
}
