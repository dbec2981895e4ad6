package validate

import "testing"

func TestFieldCustomerName(t *testing.T) {
	if msg := Field("customer_name", ""); msg != "Customer name is required" {
		t.Fatalf("empty name: got %q", msg)
	}
	if msg := Field("customer_name", "  A "); msg != "Customer name must be at least 2 characters" {
		t.Fatalf("one-char name: got %q", msg)
	}
	if msg := Field("customer_name", "Ravi"); msg != "" {
		t.Fatalf("valid name rejected: %q", msg)
	}
}

func TestFieldPhoneNumber(t *testing.T) {
	if msg := Field("phone_number", ""); msg != "Phone number is required" {
		t.Fatalf("empty phone: got %q", msg)
	}
	if msg := Field("phone_number", "12345"); msg == "" {
		t.Fatalf("short phone accepted")
	}
	// Formatting characters are stripped before the digit count.
	if msg := Field("phone_number", "(987) 654-3210"); msg != "" {
		t.Fatalf("formatted 10-digit phone rejected: %q", msg)
	}
	if msg := Field("phone_number", "98765432101"); msg == "" {
		t.Fatalf("11-digit phone accepted")
	}
}

func TestFieldPrices(t *testing.T) {
	if msg := Field("cost_price", ""); msg != "Cost price is required" {
		t.Fatalf("empty cost price: got %q", msg)
	}
	if msg := Field("selling_price", "abc"); msg != "Selling price must be a valid positive number" {
		t.Fatalf("non-numeric price: got %q", msg)
	}
	if msg := Field("cost", "-5"); msg != "Cost must be a valid positive number" {
		t.Fatalf("negative cost: got %q", msg)
	}
	if msg := Field("cost_price", "0"); msg != "" {
		t.Fatalf("zero price rejected: %q", msg)
	}
	if msg := Field("selling_price", " 1200.50 "); msg != "" {
		t.Fatalf("padded price rejected: %q", msg)
	}
}

func TestFieldUnknownNamePasses(t *testing.T) {
	if msg := Field("whatever", ""); msg != "" {
		t.Fatalf("unknown field should pass, got %q", msg)
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("+91 98765-43210"); got != "919876543210" {
		t.Fatalf("got %q", got)
	}
}

func TestErrorsMessageListsFields(t *testing.T) {
	errs := Errors{"phone_number": "Phone number is required"}
	if errs.Error() != "validation failed: phone_number" {
		t.Fatalf("got %q", errs.Error())
	}
}
