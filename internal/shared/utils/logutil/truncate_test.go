package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short text kept", in: "tavolo 4", max: 20, want: "tavolo 4"},
		{name: "exact length kept", in: "abc", max: 3, want: "abc"},
		{name: "cut with marker", in: "portate il conto", max: 7, want: "portate..."},
		{name: "multibyte runes", in: "caffè caffè", max: 5, want: "caffè..."},
		{name: "non positive max", in: "x", max: 0, want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateForLog(tt.in, tt.max))
		})
	}
}
