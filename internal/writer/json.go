package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/chaiyo/thaistatement/internal/models"
)

// WriteJSON writes the consolidated accounts as a single indented JSON
// document. shopspring decimals marshal as quoted strings, so amounts keep
// their exact decimal representation.
func WriteJSON(out io.Writer, accounts []models.Account) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	return nil
}

// WriteJSONFile writes the accounts JSON to path.
func WriteJSONFile(path string, accounts []models.Account) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	err = WriteJSON(f, accounts)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
