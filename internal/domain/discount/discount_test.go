package discount

import (
	"errors"
	"testing"
)

func TestResolveKnownCodes(t *testing.T) {
	resolver := NewResolver(nil)

	tests := []struct {
		code       string
		percentage float64
	}{
		{"RAZER", 10},
		{"TUKI", 100},
		{"GONCY", 30},
		{"WALLBIT", 50},
	}

	for _, tt := range tests {
		d, err := resolver.Resolve(tt.code)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.code, err)
			continue
		}
		if d.Code != tt.code || d.Percentage != tt.percentage {
			t.Errorf("Resolve(%q) = %+v, want %v%%", tt.code, d, tt.percentage)
		}
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	resolver := NewResolver(nil)

	for _, code := range []string{"razer", "Razer", "WALLBIT ", "", "FOO"} {
		if _, err := resolver.Resolve(code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidCode", code, err)
		}
	}
}

func TestResolverWithCustomTable(t *testing.T) {
	resolver := NewResolver(map[string]float64{"TEST": 25})

	if _, err := resolver.Resolve("RAZER"); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("default codes must not leak into a custom table")
	}

	d, err := resolver.Resolve("TEST")
	if err != nil {
		t.Fatalf("Resolve(TEST) failed: %v", err)
	}
	if d.Percentage != 25 {
		t.Errorf("percentage = %v, want 25", d.Percentage)
	}
}
