package match

// GroupByDate buckets matches under their date key, preserving relative
// source order within each bucket. Every match lands in exactly one bucket.
func GroupByDate(matches []Match) map[string][]Match {
	grouped := make(map[string][]Match)
	for _, m := range matches {
		key := m.DateKey()
		grouped[key] = append(grouped[key], m)
	}
	return grouped
}

// LatestDate returns the lexicographically greatest date key in the grouped
// map — the most recent results day. ok is false for an empty map; that is
// "no data", not an error.
func LatestDate(grouped map[string][]Match) (string, bool) {
	best := ""
	for key := range grouped {
		if key > best {
			best = key
		}
	}
	return best, best != ""
}

// NextDate returns the lexicographically smallest date key — the next
// upcoming day.
func NextDate(grouped map[string][]Match) (string, bool) {
	best := ""
	for key := range grouped {
		if best == "" || key < best {
			best = key
		}
	}
	return best, best != ""
}
