package fuzzy

import (
	"strings"
	"unicode"
)

// LevenshteinDistance calculates the edit distance between two strings
func LevenshteinDistance(s1, s2 string) int {
	s1 = Normalize(s1)
	s2 = Normalize(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,
				d[i][j-1]+1,
				d[i-1][j-1]+cost,
			)
		}
	}

	return d[m][n]
}

// Match checks if query fuzzy-matches text within a given edit-distance
// threshold. Substring and prefix matches always pass.
func Match(query, text string, threshold int) bool {
	query = Normalize(query)
	text = Normalize(text)

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// Threshold picks a typo tolerance from the query length
func Threshold(query string) int {
	switch {
	case len(query) <= 3:
		return 1
	case len(query) >= 8:
		return 3
	}
	return 2
}

// Score rates how relevant a candidate record is to a query. The candidate
// name carries the most weight, then the position, then the service type.
func Score(query, candidateName, position, serviceType string) float64 {
	query = Normalize(query)
	score := 0.0

	score += fieldScore(query, candidateName, 100, 50)
	score += fieldScore(query, position, 80, 40)
	score += fieldScore(query, serviceType, 40, 20)

	return score
}

func fieldScore(query, field string, containsWeight, fuzzyWeight float64) float64 {
	norm := Normalize(field)
	if strings.Contains(norm, query) {
		if containsWord(norm, query) {
			return containsWeight * 1.5
		}
		return containsWeight
	}

	score := 0.0
	for _, word := range strings.Fields(norm) {
		if dist := LevenshteinDistance(query, word); dist <= 2 {
			score += fuzzyWeight - float64(dist)*fuzzyWeight/4
		} else if strings.HasPrefix(word, query) {
			score += fuzzyWeight * 0.8
		}
	}
	return score
}

// Normalize lowercases, collapses whitespace and strips French accents so
// "sénior" matches "senior"
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	return strings.Join(strings.Fields(s), " ")
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}

func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'à', 'â', 'ä':
			result.WriteRune('a')
		case 'é', 'è', 'ê', 'ë':
			result.WriteRune('e')
		case 'î', 'ï':
			result.WriteRune('i')
		case 'ô', 'ö':
			result.WriteRune('o')
		case 'ù', 'û', 'ü':
			result.WriteRune('u')
		case 'ÿ':
			result.WriteRune('y')
		case 'ç':
			result.WriteRune('c')
		case 'œ':
			result.WriteString("oe")
		case 'æ':
			result.WriteString("ae")
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
