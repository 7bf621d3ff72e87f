package llm

import (
	"fmt"
	"sort"
	"strings"
)

// AnalysisPrompt is the instruction used for both vision and extracted-text
// document analysis.
const AnalysisPrompt = `Please analyze this government document and provide:
1. Document type and purpose
2. Key requirements and deadlines
3. Complex terms explained simply
4. Required actions or next steps
5. Important contact information or submission details`

// BuildAnalysisPrompt appends the extracted document content to the analysis
// instruction.
func BuildAnalysisPrompt(text string) string {
	return AnalysisPrompt + "\n\nDocument content:\n" + text
}

// BuildGenerationPrompt renders the generation instruction for a document
// type and its form fields. Fields are emitted in sorted order so the prompt
// is deterministic for response stubbing in tests.
func BuildGenerationPrompt(docType string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a formal %s with the following details:\n\n", docType)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, fields[k])
	}
	b.WriteString("\nPlease format this as a proper official document following standard government formatting.")
	return b.String()
}
