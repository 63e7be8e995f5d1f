package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
	}{
		{name: "number", input: `42`, expected: "42"},
		{name: "string", input: `"abc-1"`, expected: "abc-1"},
		{name: "null", input: `null`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestIDMarshalKeepsNumbers(t *testing.T) {
	b, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}{A: "7", B: "x7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":7,"b":"x7"}`, string(b))
}

func TestIDMarshalNonCanonicalDigits(t *testing.T) {
	tests := []struct {
		id       ID
		expected string
	}{
		{"007", `"007"`},
		{"+5", `"+5"`},
		{"-0", `"-0"`},
		{"-12", `-12`},
		{"0", `0`},
		{"99999999999999999999", `"99999999999999999999"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			b, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(b))

			var back ID
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, tt.id, back)
		})
	}
}

func TestTimestampLayouts(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{`"2024-05-01T10:30:00Z"`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{`"2024-05-01T10:30:00"`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{`"2024-05-01T10:30:00.123456"`, time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC)},
		{`"2024-05-01 10:30:00"`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{`"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{`"yesterday"`, time.Time{}},
		{`null`, time.Time{}},
	}

	for _, tt := range tests {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tt.input), &ts), tt.input)
		assert.True(t, tt.expected.Equal(ts.Time), "%s: got %v", tt.input, ts.Time)
	}
}

func TestListAcceptsArrayAndEnvelope(t *testing.T) {
	var bare List[JobPosting]
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"title":"A","company":"X"}]`), &bare))
	require.Len(t, bare, 1)
	assert.Equal(t, ID("1"), bare[0].ID)

	var wrapped List[JobPosting]
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"jobs":[{"id":1},{"id":2}]}`), &wrapped))
	assert.Len(t, wrapped, 2)

	var bad List[JobPosting]
	assert.Error(t, json.Unmarshal([]byte(`{"success":true}`), &bad))
}

func TestCrawlResultFailed(t *testing.T) {
	var omitted CrawlResult
	require.NoError(t, json.Unmarshal([]byte(`{"jobs":[],"message":"ok"}`), &omitted))
	assert.False(t, omitted.Failed())

	var explicit CrawlResult
	require.NoError(t, json.Unmarshal([]byte(`{"success":false,"message":"blocked"}`), &explicit))
	assert.True(t, explicit.Failed())
}

func TestFeedbackOptionalJob(t *testing.T) {
	var fb Feedback
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"resume_title":"r","feedback_text":"t","job_id":null}`), &fb))
	assert.False(t, fb.HasJob())

	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"job_id":9}`), &fb))
	assert.True(t, fb.HasJob())
}
