package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHostelID(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{
			name:     "Already canonical",
			raw:      "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
			expected: "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		},
		{
			name:     "Undashed hex form",
			raw:      "7f9c24e83b124d7190ab1c2d3e4f5a6b",
			expected: "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		},
		{
			name:     "Embedded spaces",
			raw:      "7f9c24e8-3b12-4d71 90ab-1c2d3e4f5a6b",
			expected: "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		},
		{
			name:     "Leading and trailing whitespace",
			raw:      "  7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b\n",
			expected: "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		},
		{
			name:     "Uppercase input lowercased",
			raw:      "7F9C24E8-3B12-4D71-90AB-1C2D3E4F5A6B",
			expected: "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		},
		{
			name:     "Spaces inside undashed form",
			raw:      "7f9c24e8 3b12 4d71 90ab 1c2d3e4f5a6b",
			expected: "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		},
		{
			name:     "Dashes in non-canonical positions",
			raw:      "7f9c-24e83b12-4d7190ab-1c2d3e4f5a6b",
			expected: "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		},
		{
			name:      "Empty input",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "Whitespace only",
			raw:       "   ",
			expectErr: true,
		},
		{
			name:      "Not a uuid",
			raw:       "sunrise-hostel",
			expectErr: true,
		},
		{
			name:      "Truncated uuid",
			raw:       "7f9c24e8-3b12-4d71-90ab",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeHostelID(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
