package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"todo", StatusTodo},
		{"To Do", StatusTodo},
		{"in-progress", StatusInProgress},
		{"In Progress", StatusInProgress},
		{"in_progress", StatusInProgress},
		{"DONE", StatusDone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStatus("blocked")
	assert.Error(t, err)
}

func TestStatusLabelsFollowColumnOrder(t *testing.T) {
	var labels []string
	for _, s := range AllStatuses() {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{"To Do", "In Progress", "Done"}, labels)
	assert.Equal(t, StatusTodo, StatusDone.Next())
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	p, err = ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("critical")
	assert.Error(t, err)

	assert.Equal(t, PriorityLow, PriorityHigh.Next())
}
