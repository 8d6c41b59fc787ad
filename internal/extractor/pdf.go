package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls plain text out of PDF files page by page.
type PDFExtractor struct{}

// NewPDFExtractor returns a stateless PDF text extractor.
func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

// ExtractText concatenates the text of every page in the file. Pages without
// a text layer (scanned images) yield nothing and are skipped, as is any page
// whose content stream cannot be decoded.
func (e *PDFExtractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
