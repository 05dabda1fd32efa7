package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	entry := &LogEntry{ActionType: ActionPlan}

	result := entry.WithField("vehicles", 2).WithField("vehicles", 3)

	assert.Same(t, entry, result)
	assert.Equal(t, 3, entry.Fields["vehicles"])
}

func TestLogEntry_WithFields(t *testing.T) {
	tests := []struct {
		name     string
		initial  map[string]interface{}
		fields   map[string]interface{}
		expected map[string]interface{}
	}{
		{
			name:     "creates the map on first use",
			fields:   map[string]interface{}{"units": 4, "over_capacity": false},
			expected: map[string]interface{}{"units": 4, "over_capacity": false},
		},
		{
			name:     "merges into existing fields",
			initial:  map[string]interface{}{"catalog_version": 2},
			fields:   map[string]interface{}{"units": 4},
			expected: map[string]interface{}{"catalog_version": 2, "units": 4},
		},
		{
			name:     "empty input leaves fields untouched",
			initial:  map[string]interface{}{"units": 1},
			fields:   map[string]interface{}{},
			expected: map[string]interface{}{"units": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &LogEntry{Fields: tt.initial}
			assert.Same(t, entry, entry.WithFields(tt.fields))
			assert.Equal(t, tt.expected, entry.Fields)
		})
	}
}
