package mapreduce

import "github.com/legalbuddy/case-ingest/pkg/analytics"

// Map generates a word frequency map for a single document's clean text.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// Reduce aggregates per-document word frequency maps into a corpus-wide map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
