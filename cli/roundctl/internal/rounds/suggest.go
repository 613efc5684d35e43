package rounds

import "github.com/agnivade/levenshtein"

// Suggest returns the defined key closest to key when it is close enough to
// be a plausible typo (edit distance 1). Disabled rounds are never suggested.
// Ties resolve to table order.
func Suggest(key string) (string, bool) {
	best := ""
	bestDist := 2
	for _, r := range table {
		if r.Disabled {
			continue
		}
		if d := levenshtein.ComputeDistance(key, r.Key); d < bestDist {
			best, bestDist = r.Key, d
		}
	}
	return best, best != ""
}
