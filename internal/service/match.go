package service

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const dishSimilarityThreshold = 0.6

func dishMatches(name, query string) bool {
	n := strings.ToUpper(strings.TrimSpace(name))
	q := strings.ToUpper(strings.TrimSpace(query))
	if n == "" || q == "" {
		return false
	}
	if strings.Contains(n, q) {
		return true
	}
	return similarity(n, q) >= dishSimilarityThreshold
}

func similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
