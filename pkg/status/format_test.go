package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestDefaultFileFormatter tests the default file formatter implementation
func TestDefaultFileFormatter(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "modified_file",
			got:  f.FormatOutcome(Outcome{Path: "views/orders.view.lkml", Modified: true}),
			want: "views/orders.view.lkml is modified",
		},
		{
			name: "skipped_file",
			got:  f.FormatOutcome(Outcome{Path: "model.lkml"}),
			want: "model.lkml is skipped",
		},
		{
			name: "summary",
			got:  f.FormatSummary(Summary{Modified: 2, Skipped: 5}),
			want: "2 files are modified, 5 files are skipped.",
		},
		{
			name: "empty_summary",
			got:  f.FormatSummary(Summary{}),
			want: "0 files are modified, 0 files are skipped.",
		},
		{
			name: "summary_with_failures",
			got:  f.FormatSummary(Summary{Modified: 1, Skipped: 1, Failed: 3}),
			want: "1 files are modified, 1 files are skipped, 3 files failed.",
		},
		{
			name: "error",
			got:  f.FormatError("bad.lkml", errors.New("permission denied")),
			want: "bad.lkml failed: permission denied",
		},
		{
			name: "nil_error",
			got:  f.FormatError("bad.lkml", nil),
			want: "bad.lkml failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestColorFileFormatter_NoColor(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	f := NewColorFileFormatter(nil)
	assert.Equal(t, "a.lkml is modified", f.FormatOutcome(Outcome{Path: "a.lkml", Modified: true}))
	assert.Equal(t, "a.lkml is skipped", f.FormatOutcome(Outcome{Path: "a.lkml"}))
	assert.Equal(t, "0 files are modified, 1 files are skipped.", f.FormatSummary(Summary{Skipped: 1}))
	assert.Equal(t, "a.lkml failed: boom", f.FormatError("a.lkml", errors.New("boom")))
}
