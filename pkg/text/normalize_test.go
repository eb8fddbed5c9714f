package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		normalizer Normalizer
		in         string
		want       string
	}{
		{
			name:       "already_normalized",
			normalizer: DefaultNormalizer(),
			in:         "view: orders {\n  dimension: id {}\n}\n",
			want:       "view: orders {\n  dimension: id {}\n}\n",
		},
		{
			name:       "trailing_whitespace",
			normalizer: DefaultNormalizer(),
			in:         "view: orders {  \n\tdimension: id {}\t\n}\n",
			want:       "view: orders {\n\tdimension: id {}\n}\n",
		},
		{
			name:       "missing_final_newline",
			normalizer: DefaultNormalizer(),
			in:         "view: orders {}",
			want:       "view: orders {}\n",
		},
		{
			name:       "extra_final_newlines",
			normalizer: DefaultNormalizer(),
			in:         "view: orders {}\n\n\n",
			want:       "view: orders {}\n",
		},
		{
			name:       "crlf",
			normalizer: DefaultNormalizer(),
			in:         "a\r\nb\r\n",
			want:       "a\nb\n",
		},
		{
			name:       "blank_line_runs",
			normalizer: DefaultNormalizer(),
			in:         "a\n\n\n\nb\n",
			want:       "a\n\nb\n",
		},
		{
			name:       "blank_line_runs_uncapped",
			normalizer: Normalizer{FinalNewline: true},
			in:         "a\n\n\n\nb\n",
			want:       "a\n\n\n\nb\n",
		},
		{
			name:       "whitespace_only",
			normalizer: DefaultNormalizer(),
			in:         "  \n\t\n",
			want:       "",
		},
		{
			name:       "empty",
			normalizer: DefaultNormalizer(),
			in:         "",
			want:       "",
		},
		{
			name:       "nothing_enabled_only_fixes_line_endings",
			normalizer: Normalizer{},
			in:         "a  \r\n\r\n\r\nb",
			want:       "a  \n\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.normalizer.Normalize(tt.in)
			assert.Equal(t, tt.want, got)

			// idempotence
			assert.Equal(t, got, tt.normalizer.Normalize(got), "normalizing twice should equal normalizing once")
		})
	}
}
