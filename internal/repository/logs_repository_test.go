//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name string
		opts LogQueryOptions
		want bson.M
	}{
		{name: "empty", opts: LogQueryOptions{}, want: bson.M{}},
		{
			name: "exact fields",
			opts: LogQueryOptions{RequestID: "r", Level: "warn", Method: "PUT", ActionType: "export"},
			want: bson.M{"request_id": "r", "level": "warn", "method": "PUT", "action_type": "export"},
		},
		{
			name: "path is escaped",
			opts: LogQueryOptions{Path: "/plans/export?x=1"},
			want: bson.M{"path": primitive.Regex{Pattern: `/plans/export\?x=1`, Options: "i"}},
		},
		{
			name: "start only",
			opts: LogQueryOptions{StartTime: &start},
			want: bson.M{"timestamp": bson.M{"$gte": start}},
		},
		{
			name: "window",
			opts: LogQueryOptions{StartTime: &start, EndTime: &end},
			want: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.filter())
		})
	}
}

func TestStampLogEntry(t *testing.T) {
	entry := &LogEntryDocument{}
	stampLogEntry(entry)
	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())

	id, ts := entry.ID, entry.Timestamp
	stampLogEntry(entry)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, ts, entry.Timestamp)
}
