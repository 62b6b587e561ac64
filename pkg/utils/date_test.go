package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "data e hora completas",
			input:    "2017-10-02 10:56:33",
			expected: time.Date(2017, 10, 2, 10, 56, 33, 0, time.UTC),
		},
		{
			name:     "sem segundos",
			input:    "2017-10-02 10:56",
			expected: time.Date(2017, 10, 2, 10, 56, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 com fuso convertido para UTC",
			input:    "2017-10-02T10:56:33-03:00",
			expected: time.Date(2017, 10, 2, 13, 56, 33, 0, time.UTC),
		},
		{
			name:     "ISO sem fuso é tratado como UTC",
			input:    "2017-10-02T10:56:33",
			expected: time.Date(2017, 10, 2, 10, 56, 33, 0, time.UTC),
		},
		{
			name:     "apenas data com espaços",
			input:    " 2017-10-18 ",
			expected: time.Date(2017, 10, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "valor inválido",
			input:   "ontem",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2018, 2, 28, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC), got)
}
