package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound3(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{0.6666666666, 0.667},
		{0.3333333333, 0.333},
		{0.0004, 0},
		{0.0005, 0.001},
		{0.4*0.5 + 0.6*1.0, 0.8},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Round3(c.in), "Round3(%v)", c.in)
	}
}
