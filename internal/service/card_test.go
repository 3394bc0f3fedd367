package service

import (
	"errors"
	"testing"

	"github.com/straatfanaat/shop/internal/constants"
)

func TestDetectCardBrand(t *testing.T) {
	cases := []struct {
		number string
		want   string
	}{
		{"4242424242424242", constants.CardBrandVisa},
		{"4000 0566 5566 5556", constants.CardBrandVisa},
		{"5555555555554444", constants.CardBrandMastercard},
		{"5105105105105100", constants.CardBrandMastercard},
		{"340000000000009", constants.CardBrandAmex},
		{"370000000000002", constants.CardBrandAmex},
		{"6011111111111117", constants.CardBrandUnknown},
		{"", constants.CardBrandUnknown},
	}
	for _, tc := range cases {
		if got := DetectCardBrand(tc.number); got != tc.want {
			t.Fatalf("DetectCardBrand(%q) want %s got %s", tc.number, tc.want, got)
		}
	}
}

func TestNormalizeCardNumber(t *testing.T) {
	if got := NormalizeCardNumber("4242 4242 4242 4242"); got != "4242424242424242" {
		t.Fatalf("unexpected normalized number: %s", got)
	}
	// Extra digits past 16 are dropped.
	if got := NormalizeCardNumber("42424242424242429999"); got != "4242424242424242" {
		t.Fatalf("normalization did not cap at 16 digits: %s", got)
	}
}

func TestFormatCardNumber(t *testing.T) {
	if got := FormatCardNumber("4242424242424242"); got != "4242 4242 4242 4242" {
		t.Fatalf("unexpected formatted number: %q", got)
	}
	if got := FormatCardNumber("42424"); got != "4242 4" {
		t.Fatalf("unexpected partial format: %q", got)
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1228", "12/28"},
		{"12/28", "12/28"},
		{"1", "1"},
		{"12", "12"},
		{"123", "12/3"},
	}
	for _, tc := range cases {
		if got := FormatExpiry(tc.raw); got != tc.want {
			t.Fatalf("FormatExpiry(%q) want %q got %q", tc.raw, tc.want, got)
		}
	}
}

func TestValidateCardNumber(t *testing.T) {
	if err := validateCardNumber("4242 4242 4242 4242"); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}
	if err := validateCardNumber("4242 4242 4242"); !errors.Is(err, ErrInvalidCardNumber) {
		t.Fatalf("want ErrInvalidCardNumber got %v", err)
	}
	// Over-length numbers are rejected, not truncated to 16 digits.
	if err := validateCardNumber("4242 4242 4242 4242 9"); !errors.Is(err, ErrInvalidCardNumber) {
		t.Fatalf("17-digit card want ErrInvalidCardNumber got %v", err)
	}
}

func TestValidateExpiry(t *testing.T) {
	if err := validateExpiry("12/28"); err != nil {
		t.Fatalf("valid expiry rejected: %v", err)
	}
	for _, raw := range []string{"13/28", "00/28", "1/28", "1228", "ab/cd"} {
		if err := validateExpiry(raw); !errors.Is(err, ErrInvalidExpiry) {
			t.Fatalf("validateExpiry(%q) want ErrInvalidExpiry got %v", raw, err)
		}
	}
}

func TestValidateCVV(t *testing.T) {
	for _, raw := range []string{"123", "1234"} {
		if err := validateCVV(raw); err != nil {
			t.Fatalf("validateCVV(%q) rejected: %v", raw, err)
		}
	}
	for _, raw := range []string{"12", "12345", "12a"} {
		if err := validateCVV(raw); !errors.Is(err, ErrInvalidCVV) {
			t.Fatalf("validateCVV(%q) want ErrInvalidCVV got %v", raw, err)
		}
	}
}
