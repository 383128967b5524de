package utils

// Dedupe returns the items with duplicates removed, keeping first-seen order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Union returns the deduplicated concatenation of a and b, keeping the order
// of first appearance.
func Union(a, b []string) []string {
	return Dedupe(append(append([]string{}, a...), b...))
}

// Intersect returns the items of a that also appear in b, in a's order.
func Intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, item := range b {
		inB[item] = struct{}{}
	}
	out := []string{}
	for _, item := range Dedupe(a) {
		if _, ok := inB[item]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the items of a that do not appear in b, in a's order.
func Difference(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, item := range b {
		inB[item] = struct{}{}
	}
	out := []string{}
	for _, item := range Dedupe(a) {
		if _, ok := inB[item]; !ok {
			out = append(out, item)
		}
	}
	return out
}
