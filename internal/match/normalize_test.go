package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"Address", "address"},
		{"UserDTO", "userdto"},
		{"orderLine", "orderline"},
		{"order_line", "orderline"},
		{"ORDER_LINE", "orderline"},

		// Qualifiers are dropped
		{"com.acme.Address", "address"},
		{"Outer$Inner", "outerinner"},

		// Acronyms
		{"XMLPayload", "xmlpayload"},
		{"HTTPRequestDto", "httprequestdto"},

		// Edge cases
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"UserDto", "user"},
		{"UserDTO", "user"},
		{"user_entity", "user"},
		{"AddressVO", "address"},
		{"PriceModel", "price"},

		// Nothing left to keep: no strip
		{"Dto", "dto"},
		{"Entity", "entity"},

		// No suffix
		{"Customer", "customer"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdentWithSuffixStrip(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdentWithSuffixStrip(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"UserDTO", []string{"User", "DTO"}},
		{"XMLPayload", []string{"XML", "Payload"}},
		{"order_line", []string{"order", "line"}},
		{"Outer$Inner", []string{"Outer", "Inner"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}

			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("tokenizeCamelCase(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}
