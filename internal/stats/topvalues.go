package stats

import "sort"

// CategoryCount is one distinct value with its frequency.
type CategoryCount struct {
	Value string
	Count int
}

// TopValues counts the distinct values and returns the n most frequent,
// highest count first. Equal counts keep the order of first appearance.
// n <= 0 returns every distinct value.
func TopValues(values []string, n int) []CategoryCount {
	index := make(map[string]int, len(values))
	var counts []CategoryCount
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, CategoryCount{Value: v, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
