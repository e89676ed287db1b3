package evaluator

import (
	"strings"

	"github.com/gridhire/gridhire/internal/utils"
)

// KeywordScore is the deterministic lexical coverage metric: the fraction of
// expected keywords appearing case-insensitively anywhere in the answer,
// rounded to 3 decimals. An empty keyword list means no expectation and
// scores full credit. Duplicate keywords each count separately.
func KeywordScore(answer string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 1.0
	}

	ans := strings.ToLower(answer)
	hits := 0
	for _, k := range keywords {
		if strings.Contains(ans, strings.ToLower(k)) {
			hits++
		}
	}
	return utils.Round3(float64(hits) / float64(len(keywords)))
}
