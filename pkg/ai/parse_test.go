package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBullets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
		want []string
	}{
		{
			name: "dashed list",
			in:   "- Led a team of five\n- Shipped the billing service",
			ok:   true,
			want: []string{"Led a team of five", "Shipped the billing service"},
		},
		{
			name: "numbered list",
			in:   "1. First point\n2) Second point",
			ok:   true,
			want: []string{"First point", "Second point"},
		},
		{
			name: "unicode bullets",
			in:   "• One thing\n• Another thing",
			ok:   true,
			want: []string{"One thing", "Another thing"},
		},
		{
			name: "single marked item",
			in:   "- Just one improvement",
			ok:   true,
			want: []string{"Just one improvement"},
		},
		{
			name: "several unmarked lines",
			in:   "Improved deploy times\nReduced error budget burn\nMentored two juniors",
			ok:   true,
			want: []string{"Improved deploy times", "Reduced error budget burn", "Mentored two juniors"},
		},
		{
			name: "blank lines skipped",
			in:   "- First\n\n\n- Second\n",
			ok:   true,
			want: []string{"First", "Second"},
		},
		{
			name: "prose paragraph",
			in:   "Your summary reads well overall, though it could mention leadership.",
			ok:   false,
		},
		{
			name: "empty input",
			in:   "",
			ok:   false,
		},
		{
			name: "only whitespace and markers",
			in:   "-\n  \n*",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBullets(tt.in)
			assert.Equal(t, tt.ok, got.OK)
			if tt.ok {
				assert.Equal(t, tt.want, got.Items)
			} else {
				assert.Equal(t, tt.in, got.Raw)
				assert.Empty(t, got.Items)
			}
		})
	}
}

func TestParseBullets_KeepsRawOnFailure(t *testing.T) {
	in := "Consider quantifying your impact."
	got := ParseBullets(in)
	require.False(t, got.OK)
	assert.Equal(t, in, got.Raw)
}
