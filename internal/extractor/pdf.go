// Package extractor turns statement PDFs into per-page text. It is the
// boundary collaborator for the parsing core, which only ever sees the
// extracted strings.
package extractor

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a PDF file and returns the text content of each page.
// password may be empty; it is only consulted when the file is encrypted.
// Thai statement PDFs are mailed out password-protected (typically the
// holder's birth date), so the encrypted path is the common one.
func ExtractText(filePath, password string) (pages []string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction crashed: %v", r)
		}
	}()

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r, err := pdf.NewReaderEncrypted(f, info.Size(), func() string { return password })
	if err != nil {
		if err == pdf.ErrInvalidPassword {
			return nil, fmt.Errorf("PDF %s is password-protected and the supplied password did not open it", filePath)
		}
		return nil, fmt.Errorf("open PDF %s: %w", filePath, err)
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF %s has no pages", filePath)
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	if !IsReadableText(pages) {
		return nil, fmt.Errorf("no readable text extracted from %s; the file may be image-based or use undecodable font encodings", filePath)
	}
	return pages, nil
}

// IsReadableText guards against mojibake from identity-encoded fonts: the
// pages must carry a minimum amount of text, and most of it must be Thai
// script, ASCII, or digits rather than arbitrary decoded garbage.
func IsReadableText(pages []string) bool {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			switch {
			case r >= '฀' && r <= '๿': // Thai block
				readable++
			case r < 128 && (unicode.IsPrint(r) || unicode.IsSpace(r)):
				readable++
			}
		}
	}
	if total <= 50 {
		return false
	}
	return float64(readable)/float64(total) > 0.6
}
