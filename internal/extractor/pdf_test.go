package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  bool
	}{
		{
			name:  "english statement text",
			pages: []string{strings.Repeat("Transfer Withdrawal 8,400.00 50,000.00 K PLUS\n", 3)},
			want:  true,
		},
		{
			name:  "thai statement text",
			pages: []string{strings.Repeat("โอนเงิน ยอดยกมา ยอดคงเหลือ ", 5)},
			want:  true,
		},
		{
			name:  "too short",
			pages: []string{"Period 01/11/2025"},
			want:  false,
		},
		{
			name:  "mojibake from identity-encoded fonts",
			pages: []string{strings.Repeat("�ȴէ中©", 20)},
			want:  false,
		},
		{
			name:  "empty",
			pages: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReadableText(tt.pages); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	if _, err := ExtractText("does-not-exist.pdf", ""); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
