package formatter

import "strings"

// Section is one labeled block of a model-produced analysis.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Sections splits free-form analysis text into labeled sections. The model is
// expected to loosely follow a "Label: content" line convention, sometimes
// interleaved with markup tags and markdown emphasis; both are stripped as
// noise. A line opens a new section when it contains a colon and is not a
// bullet item. Body lines accumulate under the most recent header with
// whitespace collapsed. Text before the first header is kept as a leading
// "Summary" section. When no line ever matches the header pattern the result
// is nil and callers fall back to showing the raw text.
func Sections(text string) []Section {
	var (
		sections []Section
		preamble []string
		current  *Section
		body     []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.Join(body, " ")
		sections = append(sections, *current)
		current = nil
		body = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		clean := stripNoise(raw)
		if clean == "" {
			continue
		}
		if title, rest, ok := splitHeader(raw, clean); ok {
			flush()
			current = &Section{Title: title}
			if rest != "" {
				body = append(body, rest)
			}
			continue
		}
		if current == nil {
			preamble = append(preamble, clean)
			continue
		}
		body = append(body, clean)
	}
	flush()

	if len(sections) == 0 {
		return nil
	}
	if len(preamble) > 0 {
		summary := Section{Title: "Summary", Body: strings.Join(preamble, " ")}
		sections = append([]Section{summary}, sections...)
	}
	return sections
}

// splitHeader reports whether a line opens a section. Bullet items are
// checked against the raw line because stripping removes their markers.
func splitHeader(raw, clean string) (title, rest string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- ") {
		return "", "", false
	}
	idx := strings.Index(clean, ":")
	if idx <= 0 {
		return "", "", false
	}
	title = strings.TrimSpace(clean[:idx])
	if title == "" {
		return "", "", false
	}
	return title, strings.TrimSpace(clean[idx+1:]), true
}

// stripNoise drops <...> markup tags and asterisk emphasis markers, then
// collapses runs of whitespace to single spaces.
func stripNoise(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth > 0:
			// inside a tag
		case r == '*':
			// emphasis marker
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
