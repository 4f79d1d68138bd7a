// Package pdftext wraps PDF text extraction behind a small interface so the
// parsing pipeline never touches the PDF library directly.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable means the byte buffer could not be decoded as a PDF at all.
// Per-page extraction problems are not errors: such pages yield no lines.
var ErrUnreadable = errors.New("not a readable PDF document")

// Extractor turns a document byte buffer into per-page text lines.
// A page with no extractable text yields an empty line slice.
type Extractor interface {
	Pages(data []byte) ([][]string, error)
}

type pdfExtractor struct{}

func New() Extractor {
	return pdfExtractor{}
}

func (pdfExtractor) Pages(data []byte) (pages [][]string, err error) {
	// The underlying library panics on some malformed inputs; treat those
	// the same as a decode failure.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// Page yields no text; the caller reports the document as
			// possibly needing image recognition.
			pages = append(pages, nil)
			continue
		}
		var lines []string
		for _, row := range rows {
			var sb strings.Builder
			for _, text := range row.Content {
				sb.WriteString(text.S)
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, lines)
	}
	return pages, nil
}
