package evaluator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordScore(t *testing.T) {
	cases := []struct {
		name     string
		answer   string
		keywords []string
		want     float64
	}{
		{"empty list scores full credit", "anything at all", nil, 1.0},
		{"empty list and empty answer", "", []string{}, 1.0},
		{"all keywords present", "Use VLOOKUP against the table", []string{"VLOOKUP", "table"}, 1.0},
		{"case insensitive both ways", "i would use vlookup here", []string{"VLOOKUP"}, 1.0},
		{"partial coverage", "absolute references use the dollar sign", []string{"relative", "absolute", "cell reference", "dollar sign"}, 0.5},
		{"no coverage", "I do not know", []string{"VLOOKUP", "INDEX"}, 0.0},
		{"duplicates each count", "pivot", []string{"pivot", "pivot", "slicer"}, 0.667},
		{"substring match is enough", "IFERROR(A1,0)", []string{"IFERROR"}, 1.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := KeywordScore(c.answer, c.keywords)
			require.Equal(t, c.want, got)
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestKeywordScoreIgnoresKeywordOrder(t *testing.T) {
	answer := "relative and absolute references"
	a := KeywordScore(answer, []string{"relative", "absolute", "mixed"})
	b := KeywordScore(answer, []string{"mixed", "absolute", "relative"})
	require.Equal(t, a, b)
}
