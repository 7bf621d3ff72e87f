package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Media types the analysis pipeline accepts.
const (
	MimePDF  = "application/pdf"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
)

var (
	// ErrNoText indicates the document carried no extractable text.
	ErrNoText = errors.New("no extractable text")

	// ErrUnsupported indicates a media type the pipeline cannot process.
	ErrUnsupported = errors.New("unsupported media type")
)

// Segment is one extracted portion of a document, in reading order.
type Segment struct {
	Index int
	Text  string
}

// PDFSegments extracts per-page plain text from an in-memory PDF using
// github.com/ledongthuc/pdf. Blank pages are skipped; a document with no
// text at all fails with ErrNoText.
func PDFSegments(data []byte) ([]Segment, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var segments []Segment
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		segments = append(segments, Segment{Index: i, Text: text})
	}

	if len(segments) == 0 {
		return nil, ErrNoText
	}
	return segments, nil
}

// JoinSegments concatenates segment texts in order for whole-document
// analysis prompts.
func JoinSegments(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, "\n")
}

// Texts returns the segment bodies in order.
func Texts(segments []Segment) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		out = append(out, seg.Text)
	}
	return out
}

// NormalizeMime maps a declared media type and filename to one of the
// canonical types above, falling back to the file extension when the
// declared type is missing or generic.
func NormalizeMime(mimeType, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case MimePDF, MimeJPEG, MimePNG:
		return clean
	case "image/jpg":
		return MimeJPEG
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".jpg", ".jpeg":
		return MimeJPEG
	case ".png":
		return MimePNG
	}
	return clean
}

// IsImage reports whether mime is one of the accepted image types.
func IsImage(mime string) bool {
	return mime == MimeJPEG || mime == MimePNG
}
