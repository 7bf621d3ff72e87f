package extract

import "testing"

func TestNormalizeMime(t *testing.T) {
	tests := []struct {
		name     string
		mime     string
		fileName string
		want     string
	}{
		{name: "pdf", mime: "application/pdf", fileName: "a.pdf", want: MimePDF},
		{name: "pdf with charset", mime: "application/pdf; charset=binary", fileName: "a.pdf", want: MimePDF},
		{name: "jpeg", mime: "image/jpeg", fileName: "a.jpg", want: MimeJPEG},
		{name: "jpg alias", mime: "image/jpg", fileName: "a.jpg", want: MimeJPEG},
		{name: "png", mime: "image/png", fileName: "a.png", want: MimePNG},
		{name: "octet-stream falls back to extension", mime: "application/octet-stream", fileName: "scan.PDF", want: MimePDF},
		{name: "empty mime uses extension", mime: "", fileName: "photo.JPEG", want: MimeJPEG},
		{name: "unknown stays unknown", mime: "text/plain", fileName: "notes.txt", want: "text/plain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMime(tt.mime, tt.fileName); got != tt.want {
				t.Fatalf("NormalizeMime(%q, %q) = %q, want %q", tt.mime, tt.fileName, got, tt.want)
			}
		})
	}
}

func TestPDFSegmentsRejectsGarbage(t *testing.T) {
	if _, err := PDFSegments([]byte("not a pdf at all")); err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}

func TestJoinAndTexts(t *testing.T) {
	segments := []Segment{
		{Index: 1, Text: "page one"},
		{Index: 2, Text: "page two"},
	}
	if got := JoinSegments(segments); got != "page one\npage two" {
		t.Fatalf("JoinSegments = %q", got)
	}
	texts := Texts(segments)
	if len(texts) != 2 || texts[0] != "page one" || texts[1] != "page two" {
		t.Fatalf("Texts = %v", texts)
	}
}

func TestIsImage(t *testing.T) {
	if !IsImage(MimeJPEG) || !IsImage(MimePNG) {
		t.Fatal("expected jpeg/png to be images")
	}
	if IsImage(MimePDF) {
		t.Fatal("pdf is not an image")
	}
}
