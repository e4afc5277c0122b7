package skills

import "math"

// FuzzyThreshold is the minimum similarity for a half-credit match.
const FuzzyThreshold = 0.8

// Similarity scores how alike two strings are as 2*LCS/(len(a)+len(b)),
// a longest-common-subsequence ratio that behaves like difflib-style
// sequence matching around the threshold: spelling variants clear 0.8,
// unrelated terms do not.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 1
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}

	return 2 * float64(prev[len(rb)]) / float64(len(ra)+len(rb))
}

// Overlap computes the share of project keywords covered by the candidate
// skills. An exact match after normalization earns full credit, a close
// spelling half credit. Zero extracted keywords mean no evidence either
// way and return the neutral 0.5.
func Overlap(projectKeywords, candidateSkills []string) float64 {
	project := dedupe(projectKeywords)
	if len(project) == 0 {
		return 0.5
	}
	candidates := normalizeSet(candidateSkills)

	credit := 0.0
	for _, kw := range project {
		n := Normalize(kw)
		switch {
		case candidates[n]:
			credit++
		case fuzzyAny(n, candidates):
			credit += 0.5
		}
	}

	return math.Min(1, credit/float64(len(project)))
}

// TeamPool unions all members' skills into one deduplicated, normalized
// candidate pool. Team fit is the union of skills, not an average of
// per-member overlaps.
func TeamPool(memberSkills [][]string) []string {
	var pool []string
	seen := make(map[string]bool)
	for _, member := range memberSkills {
		for _, s := range member {
			n := Normalize(s)
			if !seen[n] {
				seen[n] = true
				pool = append(pool, n)
			}
		}
	}
	return pool
}

// TeamOverlap scores the project keywords against the whole team's pool.
func TeamOverlap(projectKeywords []string, memberSkills [][]string) float64 {
	return Overlap(projectKeywords, TeamPool(memberSkills))
}

// Matching lists the project keywords the candidate skills cover, exactly
// or fuzzily. Keywords keep their original spelling.
func Matching(projectKeywords, candidateSkills []string) []string {
	candidates := normalizeSet(candidateSkills)

	var out []string
	for _, kw := range dedupe(projectKeywords) {
		n := Normalize(kw)
		if candidates[n] || fuzzyAny(n, candidates) {
			out = append(out, kw)
		}
	}
	return out
}

// Missing lists the project keywords no candidate skill covers.
func Missing(projectKeywords, candidateSkills []string) []string {
	candidates := normalizeSet(candidateSkills)

	var out []string
	for _, kw := range dedupe(projectKeywords) {
		n := Normalize(kw)
		if !candidates[n] && !fuzzyAny(n, candidates) {
			out = append(out, kw)
		}
	}
	return out
}

func dedupe(keywords []string) []string {
	var out []string
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}

func normalizeSet(skills []string) map[string]bool {
	out := make(map[string]bool, len(skills))
	for _, s := range skills {
		out[Normalize(s)] = true
	}
	return out
}

func fuzzyAny(skill string, candidates map[string]bool) bool {
	for candidate := range candidates {
		if Similarity(skill, candidate) >= FuzzyThreshold {
			return true
		}
	}
	return false
}
