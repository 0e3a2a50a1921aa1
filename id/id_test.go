package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/tokenledger/id"
)

func TestNewAccountID(t *testing.T) {
	got := id.NewAccountID()
	if got.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if got.Prefix() != id.PrefixAccount {
		t.Errorf("expected prefix %q, got %q", id.PrefixAccount, got.Prefix())
	}
	if !strings.HasPrefix(got.String(), "acct_") {
		t.Errorf("expected acct_ prefix, got %q", got.String())
	}
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := id.NewAccountID().String()
		if seen[s] {
			t.Fatalf("duplicate ID generated: %s", s)
		}
		seen[s] = true
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := id.NewAccountID()

	parsed, err := id.ParseAccountID(original.String())
	if err != nil {
		t.Fatalf("ParseAccountID: %v", err)
	}
	if parsed.String() != original.String() {
		t.Errorf("round trip: got %q, want %q", parsed.String(), original.String())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"garbage", "not-a-typeid"},
		{"missing suffix", "acct_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := id.Parse(tt.input); err == nil {
				t.Errorf("Parse(%q): expected error", tt.input)
			}
		})
	}
}

func TestParseAccountIDRejectsOtherPrefix(t *testing.T) {
	other := id.New(id.Prefix("user"))

	if _, err := id.ParseAccountID(other.String()); err == nil {
		t.Error("expected prefix mismatch error")
	}
}

func TestAddress(t *testing.T) {
	i := id.NewAccountID()

	addr := i.Address()
	if string(addr) != i.String() {
		t.Errorf("Address: got %q, want %q", addr, i.String())
	}

	if got := id.Nil.Address(); got != "" {
		t.Errorf("Nil.Address: got %q, want empty", got)
	}
}

func TestMarshalTextRoundTrip(t *testing.T) {
	original := id.NewAccountID()

	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var decoded id.ID
	if err := decoded.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if decoded.String() != original.String() {
		t.Errorf("round trip: got %q, want %q", decoded.String(), original.String())
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid input")
		}
	}()

	id.MustParse("definitely not valid")
}
