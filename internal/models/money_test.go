package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name    string
		cents   uint64
		wantErr bool
	}{
		{
			name:    "zero amount",
			cents:   0,
			wantErr: false,
		},
		{
			name:    "typical amount",
			cents:   100,
			wantErr: false,
		},
		{
			name:    "largest representable amount",
			cents:   math.MaxInt64,
			wantErr: false,
		},
		{
			name:    "amount overflowing the signed accumulator",
			cents:   math.MaxInt64 + 1,
			wantErr: true,
		},
		{
			name:    "maximum unsigned amount",
			cents:   math.MaxUint64,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.cents)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(tt.cents), m.Cents())
		})
	}
}
