package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePincode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain six digits", "560001", "560001"},
		{"separators stripped", "56-00 01", "560001"},
		{"trailing text stripped", "560001 Bengaluru", "560001"},
		{"over six digits truncated", "5600012345", "560001"},
		{"letters removed", "abc560001", "560001"},
		{"too short kept short", "123", "123"},
		{"empty", "", ""},
		{"only letters", "abcdef", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePincode(tt.input))
		})
	}
}

func TestValidatePincode(t *testing.T) {
	tests := []struct {
		name    string
		pincode string
		valid   bool
	}{
		{"six digits", "560001", true},
		{"leading zero", "011011", true},
		{"five digits", "56000", false},
		{"seven digits", "5600011", false},
		{"with letter", "56000a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePincode(tt.pincode))
		})
	}
}
