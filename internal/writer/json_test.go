package writer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chaiyo/thaistatement/internal/models"
)

func TestWriteJSON(t *testing.T) {
	account := testAccount()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, []models.Account{account}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Amounts must survive as quoted decimal strings, never float64.
	out := buf.String()
	if !strings.Contains(out, `"8400"`) {
		t.Errorf("withdrawal not a quoted decimal:\n%s", out)
	}
	if !strings.Contains(out, `"53600"`) {
		t.Errorf("balance not a quoted decimal:\n%s", out)
	}

	var decoded []models.Account
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round-trip decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0].AccountNumber != "123-4-56789-0" {
		t.Errorf("decoded: %+v", decoded)
	}
	if len(decoded[0].AllTransactions) != 2 {
		t.Errorf("transactions: got %d, want 2", len(decoded[0].AllTransactions))
	}
}
