package pdftext

import (
	"errors"
	"testing"
)

func TestPages_RejectsNonPDFBytes(t *testing.T) {
	extractor := New()

	cases := map[string][]byte{
		"empty":     nil,
		"plaintext": []byte("Monday, March 2, 2026\nALEX L 9:00AM-5:00PM"),
		"truncated": []byte("%PDF-1.7"),
	}
	for name, data := range cases {
		if _, err := extractor.Pages(data); !errors.Is(err, ErrUnreadable) {
			t.Errorf("%s: Pages() error = %v, want ErrUnreadable", name, err)
		}
	}
}
