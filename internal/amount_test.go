package internal

import (
	"errors"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{500, "500.00"},
		{-75.5, "-75.50"},
		{0, "0.00"},
		{75.505, "75.51"},
		{-0.125, "-0.13"},
		{1234.567, "1234.57"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatAmount(tt.amount); got != tt.want {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "500", 500, false},
		{"cents", "75.50", 75.5, false},
		{"surrounding space", "  12.30 ", 12.3, false},
		{"rounded to cents", "10.005", 10.01, false},
		{"zero", "0", 0, true},
		{"rounds to zero", "0.001", 0, true},
		{"smallest positive", "0.005", 0.01, false},
		{"too large", "1e400", 0, true},
		{"infinity", "Inf", 0, true},
		{"nan", "NaN", 0, true},
		{"negative", "-3", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMagnitude(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseMagnitude(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMagnitude(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMagnitude(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSigned(t *testing.T) {
	if got := Signed(75.5, true); got != -75.5 {
		t.Errorf("Signed(75.5, payment) = %v, want -75.5", got)
	}
	if got := Signed(75.5, false); got != 75.5 {
		t.Errorf("Signed(75.5, deposit) = %v, want 75.5", got)
	}
	if got := Signed(-20, false); got != 20 {
		t.Errorf("Signed(-20, deposit) = %v, want 20", got)
	}
}
