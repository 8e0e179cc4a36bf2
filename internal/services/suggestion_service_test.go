package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{
			name:        "blank input",
			description: "   ",
			expected:    "New Task",
		},
		{
			name:        "short description kept as is",
			description: "Fix login bug",
			expected:    "Fix login bug",
		},
		{
			name:        "exactly six words",
			description: "one two three four five six",
			expected:    "one two three four five six",
		},
		{
			name:        "long description truncated with ellipsis",
			description: "one two three four five six seven eight",
			expected:    "one two three four five six...",
		},
		{
			name:        "surrounding whitespace trimmed",
			description: "  Fix login bug  ",
			expected:    "Fix login bug",
		},
		{
			name:        "internal whitespace collapsed",
			description: "Fix   login\tbug",
			expected:    "Fix login bug...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateTitle(tt.description))
		})
	}
}

func TestSuggestTitle_NoAPIKeyUsesFallback(t *testing.T) {
	service := NewSuggestionService("")

	title := service.SuggestTitle(context.Background(), "Investigate the flaky payment webhook retries seen in staging")
	assert.Equal(t, "Investigate the flaky payment webhook retries...", title)
}
