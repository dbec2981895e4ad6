package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Errors collects per-field messages for one form submission.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Field checks one raw form value and returns a message, or "" when the
// value passes. Unknown field names always pass.
func Field(name string, value string) string {
	switch name {
	case "customer_name":
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "Customer name is required"
		}
		if len(trimmed) < 2 {
			return "Customer name must be at least 2 characters"
		}
		return ""
	case "phone_number":
		if strings.TrimSpace(value) == "" {
			return "Phone number is required"
		}
		if len(Digits(value)) != 10 {
			return "Please enter a valid 10-digit phone number"
		}
		return ""
	case "category":
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "Category is required"
		}
		if len(trimmed) < 2 {
			return "Category must be at least 2 characters"
		}
		return ""
	case "cost_price":
		return priceMessage(value, "Cost price")
	case "selling_price":
		return priceMessage(value, "Selling price")
	case "cost":
		return priceMessage(value, "Cost")
	default:
		return ""
	}
}

func priceMessage(value string, label string) string {
	if strings.TrimSpace(value) == "" {
		return label + " is required"
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || parsed < 0 {
		return label + " must be a valid positive number"
	}
	return ""
}

// Digits strips every non-digit rune, mirroring how phone numbers are
// normalized before the 10-digit check.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Price parses an already-validated price string.
func Price(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}
