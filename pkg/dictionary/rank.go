package dictionary

import "sort"

// Rank sorts candidates by frequency, highest first, breaking ties by word in
// ascending order, and truncates the result to limit entries. A limit <= 0
// keeps everything. The input slice is reordered in place.
func Rank(candidates []WordFrequency, limit int) []WordFrequency {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Frequency != candidates[j].Frequency {
			return candidates[i].Frequency > candidates[j].Frequency
		}
		return candidates[i].Word < candidates[j].Word
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	if candidates == nil {
		return []WordFrequency{}
	}
	return candidates
}
