// Package fuzzy scores how closely two strings match on a 0-100 scale and
// picks the best candidate from a set.
//
// The score is a weighted ratio: the plain Levenshtein similarity of the
// normalized strings, their token-sorted and token-set forms, and, when one
// string is much longer than the other, the best-aligned partial window of
// each of those, scaled down so that a partial hit never beats a full one.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

const (
	tokenScale       = 0.95
	partialScale     = 0.9
	longPartialScale = 0.6
)

// Match is the best candidate returned by ExtractOne.
type Match struct {
	Choice string
	Score  int
	Index  int
}

// ExtractOne returns the highest scoring choice for query. The first choice
// wins ties. ok is false when choices is empty.
func ExtractOne(query string, choices []string) (match Match, ok bool) {
	if len(choices) == 0 {
		return Match{}, false
	}

	match = Match{Index: -1, Score: -1}
	for i, choice := range choices {
		score := Score(query, choice)
		if score > match.Score {
			match = Match{Choice: choice, Score: score, Index: i}
		}
	}
	return match, true
}

// Score returns the weighted similarity of a and b in [0, 100].
func Score(a, b string) int {
	p1, p2 := Normalize(a), Normalize(b)
	if p1 == "" || p2 == "" {
		return 0
	}

	base := ratio(p1, p2)

	l1, l2 := float64(runeLen(p1)), float64(runeLen(p2))
	lenRatio := math.Max(l1, l2) / math.Min(l1, l2)

	if lenRatio < 1.5 {
		best := math.Max(base, tokenSortRatio(p1, p2, ratio)*tokenScale)
		best = math.Max(best, tokenSetRatio(p1, p2, ratio)*tokenScale)
		return int(math.Round(best))
	}

	scale := partialScale
	if lenRatio >= 8 {
		scale = longPartialScale
	}

	best := math.Max(base, partialRatio(p1, p2)*scale)
	best = math.Max(best, tokenSortRatio(p1, p2, partialRatio)*tokenScale*scale)
	best = math.Max(best, tokenSetRatio(p1, p2, partialRatio)*tokenScale*scale)
	return int(math.Round(best))
}

// Normalize lower-cases s, replaces anything that is not a letter or digit
// with a space and collapses runs of whitespace.
func Normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

type scorer func(a, b string) float64

// ratio is the Levenshtein similarity of a and b as a percentage.
func ratio(a, b string) float64 {
	la, lb := runeLen(a), runeLen(b)
	longest := max(la, lb)
	if longest == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 100 * float64(longest-distance) / float64(longest)
}

// partialRatio slides the shorter string over the longer one and keeps the
// best window ratio.
func partialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	shortStr := string(short)
	best := 0.0
	for start := 0; start+len(short) <= len(long); start++ {
		r := ratio(shortStr, string(long[start:start+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

func tokenSortRatio(a, b string, score scorer) float64 {
	return score(sortedTokens(a), sortedTokens(b))
}

// tokenSetRatio compares the shared tokens against each side's shared plus
// remaining tokens, so extra words on one side cost little.
func tokenSetRatio(a, b string, score scorer) float64 {
	setA, setB := tokenSet(a), tokenSet(b)

	var common, onlyA, onlyB []string
	for token := range setA {
		if setB[token] {
			common = append(common, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if !setA[token] {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	intersection := strings.Join(common, " ")
	combinedA := strings.TrimSpace(intersection + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(intersection + " " + strings.Join(onlyB, " "))

	best := score(combinedA, combinedB)
	if intersection != "" {
		best = math.Max(best, score(intersection, combinedA))
		best = math.Max(best, score(intersection, combinedB))
	}
	return best
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		set[token] = true
	}
	return set
}

func runeLen(s string) int {
	return len([]rune(s))
}
