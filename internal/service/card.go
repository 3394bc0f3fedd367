package service

import (
	"strings"

	"github.com/straatfanaat/shop/internal/constants"
)

// NormalizeCardNumber strips every non-digit and caps at 16 digits.
func NormalizeCardNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 16 {
				break
			}
		}
	}
	return b.String()
}

// FormatCardNumber renders a card number in groups of four digits.
func FormatCardNumber(raw string) string {
	digits := NormalizeCardNumber(raw)
	groups := make([]string, 0, 4)
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// FormatExpiry renders raw input as MM/YY.
func FormatExpiry(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 4 {
				break
			}
		}
	}
	s := digits.String()
	if len(s) < 3 {
		return s
	}
	return s[:2] + "/" + s[2:]
}

// DetectCardBrand classifies a normalized card number by prefix.
// Anything not matching a known range is "unknown".
func DetectCardBrand(cardNumber string) string {
	digits := NormalizeCardNumber(cardNumber)
	if digits == "" {
		return constants.CardBrandUnknown
	}
	switch {
	case digits[0] == '4':
		return constants.CardBrandVisa
	case digits[0] == '5' && len(digits) > 1 && digits[1] >= '1' && digits[1] <= '5':
		return constants.CardBrandMastercard
	case digits[0] == '3' && len(digits) > 1 && (digits[1] == '4' || digits[1] == '7'):
		return constants.CardBrandAmex
	default:
		return constants.CardBrandUnknown
	}
}

// validateCardNumber requires exactly 16 digits. Digits are counted
// without the display cap so over-length input is rejected rather than
// silently truncated.
func validateCardNumber(raw string) error {
	count := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	if count != 16 {
		return ErrInvalidCardNumber
	}
	return nil
}

// validateExpiry requires MM/YY with a real month.
func validateExpiry(raw string) error {
	if len(raw) != 5 || raw[2] != '/' {
		return ErrInvalidExpiry
	}
	for i, r := range raw {
		if i == 2 {
			continue
		}
		if r < '0' || r > '9' {
			return ErrInvalidExpiry
		}
	}
	month := int(raw[0]-'0')*10 + int(raw[1]-'0')
	if month < 1 || month > 12 {
		return ErrInvalidExpiry
	}
	return nil
}

// validateCVV requires 3 or 4 digits.
func validateCVV(raw string) error {
	if len(raw) != 3 && len(raw) != 4 {
		return ErrInvalidCVV
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return ErrInvalidCVV
		}
	}
	return nil
}
