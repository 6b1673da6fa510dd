package oor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(1000, 1010)
	require.NoError(t, err)

	assert.Equal(t, 1000, iv.Start())
	assert.Equal(t, 1010, iv.End())
	assert.Equal(t, 11, iv.Count())
	assert.False(t, iv.IsSingle())
}

func TestNewInterval_Reversed(t *testing.T) {
	_, err := NewInterval(10, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestSingle(t *testing.T) {
	iv := Single(1050)

	assert.Equal(t, 1050, iv.Start())
	assert.Equal(t, 1050, iv.End())
	assert.Equal(t, 1, iv.Count())
	assert.True(t, iv.IsSingle())
}

func TestInterval_String(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want string
	}{
		{"range", Interval{start: 1000, end: 1010}, "1000-1010"},
		{"single", Single(1050), "1050"},
		{"degenerate range", Interval{start: 5, end: 5}, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.iv.String())
		})
	}
}
