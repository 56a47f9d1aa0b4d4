package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chaiyo/thaistatement/internal/extractor"
	"github.com/chaiyo/thaistatement/internal/models"
	"github.com/chaiyo/thaistatement/internal/parser"
)

// parseFile extracts and parses a single statement PDF.
func parseFile(path, password string) (*models.Statement, error) {
	pages, err := extractor.ExtractText(path, password)
	if err != nil {
		return nil, err
	}
	return parser.ParsePages(pages, filepath.Base(path))
}

// parsePath parses a single PDF or every PDF in a directory. Files that fail
// extraction or parsing are skipped and tallied, not fatal: a batch should
// survive one bad download.
func parsePath(path, password string) (statements []models.Statement, skipped int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}

	if !info.IsDir() {
		stmt, err := parseFile(path, password)
		if err != nil {
			return nil, 0, err
		}
		return []models.Statement{*stmt}, 0, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, 0, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		full := filepath.Join(path, entry.Name())
		stmt, err := parseFile(full, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", full, err)
			skipped++
			continue
		}
		statements = append(statements, *stmt)
	}
	return statements, skipped, nil
}
