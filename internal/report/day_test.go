package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		want    string
		wantErr bool
	}{
		{
			name: "regular day",
			day:  "2024-01-01",
			want: "2024-01-01T00:00:00.000Z",
		},
		{
			name: "leap day",
			day:  "2024-02-29",
			want: "2024-02-29T00:00:00.000Z",
		},
		{
			name:    "empty",
			day:     "",
			wantErr: true,
		},
		{
			name:    "wrong layout",
			day:     "01/02/2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StartOfDay(tt.day)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndOfDay(t *testing.T) {
	tests := []struct {
		name string
		day  string
		want string
	}{
		{
			name: "regular day",
			day:  "2024-01-01",
			want: "2024-01-01T23:59:59.999Z",
		},
		{
			name: "end of year",
			day:  "2023-12-31",
			want: "2023-12-31T23:59:59.999Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EndOfDay(tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTodayMatchesLayout(t *testing.T) {
	_, err := StartOfDay(Today())
	assert.NoError(t, err)
}
