// Package normalize builds matching keys for artist names and song titles,
// so that metadata from different sources can be joined on them.
//
// A name maps to a set of keys: lower-cased, folded to ASCII, stripped of
// questionable prefixes and suffixes, split on collaboration words and
// permuted, then reduced to alphanumerics without spaces. Two names match
// when their key sets intersect.
package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxRotationParts bounds the permutations generated for a collaboration.
const maxRotationParts = 5

// fuzzyMinLen is the length from which edit distance and containment are
// used to match names.
const fuzzyMinLen = 10

// maxEditDistance is the largest edit distance still counted as a match.
const maxEditDistance = 2

var rotationWords = []string{
	"and", "y", "et", "vs", "vs.", "v", "with", "feat",
	"feat.", "featuring", "presents", "ft.", "pres.",
}

var (
	reSpace        = regexp.MustCompile(`\s`)
	reNonAlnum     = regexp.MustCompile(`\W+`)
	reRotSymbols   = regexp.MustCompile(`\s*(?:\||/|&|,|\+|;|_)\s*`)
	reRotWords     = regexp.MustCompile(`\s(?:` + quoteAll(rotationWords) + `)\s`)
	reStub         = regexp.MustCompile(`^(?:dj|dj\.|mc|m\.c\.|mc\.|the|los|les)\s(.*)$`)
	reEnding       = regexp.MustCompile(`^(.*)\s(?:big band|trio|quartet|ensemble|orchestra)$`)
	reEndingBand   = regexp.MustCompile(`^(.*)\sband$`)
	reQuotes       = regexp.MustCompile(`^(.+)\s(".+?")\s(.+)$`)
	reParenthesis  = regexp.MustCompile(`^(.+)\s(\(.+?\))\s*(.*)$`)
	reBrackets     = regexp.MustCompile(`^(.+)\s(\[.+?\])\s*(.*)$`)
	rotationWordOK = func() map[string]bool {
		m := make(map[string]bool, len(rotationWords))
		for _, w := range rotationWords {
			m[w] = true
		}
		return m
	}()
)

func quoteAll(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// ToASCII decomposes s (NFKD) and drops everything outside 7-bit ASCII, so
// accented letters keep their base letter.
func ToASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r >= 0x7f
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RemoveStub drops a leading "dj", "mc", "the", "los" or "les".
func RemoveStub(s string) string {
	if m := reStub.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// RemoveEndings drops a trailing "band", "trio", "orchestra" and the like.
func RemoveEndings(s string) string {
	if m := reEnding.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	if m := reEndingBand.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	return s
}

// RemoveQuotes drops a quoted nickname: `Thierry "The Awesomest" BM`.
func RemoveQuotes(s string) string {
	if m := reQuotes.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[3]
	}
	return s
}

// RemoveParenthesis drops a parenthesised part: "Thierry (Coolest guy)".
func RemoveParenthesis(s string) string {
	return removeEnclosed(reParenthesis, s)
}

// RemoveBrackets drops a bracketed part: "Thierry [Coolest guy]".
func RemoveBrackets(s string) string {
	return removeEnclosed(reBrackets, s)
}

func removeEnclosed(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return strings.TrimSpace(m[1] + " " + m[3])
}

// RemoveNonAlphanumeric replaces punctuation runs with a single space.
func RemoveNonAlphanumeric(s string) string {
	return strings.Join(strings.Fields(reNonAlnum.ReplaceAllString(s, " ")), " ")
}

// RemoveSpaces drops all whitespace.
func RemoveSpaces(s string) string {
	return reSpace.ReplaceAllString(s, "")
}

func replaceRotationSymbols(s string) string {
	return reRotSymbols.ReplaceAllString(s, " and ")
}

func normalizeNoRotation(s string) string {
	s = RemoveStub(s)
	s = RemoveEndings(s)
	s = RemoveParenthesis(s)
	return RemoveQuotes(s)
}

// splitRotationWords splits a collaboration ("a and b feat. c") into its
// parts and returns the parts plus every ordering of them, with and without
// stubs and endings removed.
func splitRotationWords(s string) map[string]bool {
	var parts []string
	for _, p := range reRotWords.Split(s, -1) {
		if !rotationWordOK[p] {
			parts = append(parts, p)
		}
	}
	if len(parts) > maxRotationParts {
		parts = parts[:maxRotationParts]
	}

	results := make(map[string]bool)
	addWithPermutations(results, parts)

	stripped := make([]string, len(parts))
	for i, p := range parts {
		stripped[i] = normalizeNoRotation(p)
	}
	addWithPermutations(results, stripped)
	return results
}

func addWithPermutations(results map[string]bool, parts []string) {
	for _, p := range parts {
		results[p] = true
	}
	permute(append([]string(nil), parts...), 0, func(perm []string) {
		results[strings.Join(perm, " ")] = true
	})
}

// permute calls fn with every ordering of parts[k:] behind parts[:k].
func permute(parts []string, k int, fn func([]string)) {
	if k >= len(parts) {
		fn(parts)
		return
	}
	for i := k; i < len(parts); i++ {
		parts[k], parts[i] = parts[i], parts[k]
		permute(parts, k+1, fn)
		parts[k], parts[i] = parts[i], parts[k]
	}
}

// keys reduces every variant to alphanumerics without spaces and returns
// the sorted, non-empty, distinct results.
func keys(variants map[string]bool) []string {
	set := make(map[string]bool, len(variants))
	for v := range variants {
		k := RemoveSpaces(RemoveNonAlphanumeric(v))
		if k != "" {
			set[k] = true
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Artist returns the normalized keys of an artist name.
func Artist(name string) []string {
	variants := make(map[string]bool)

	s := strings.ToLower(name)
	variants[s] = true
	s = ToASCII(s)
	variants[s] = true
	// A parenthesis may hide an '&', try without it first.
	variants[RemoveParenthesis(s)] = true

	for v := range splitRotationWords(replaceRotationSymbols(s)) {
		variants[v] = true
	}
	return keys(variants)
}

// Title returns the normalized keys of a song title.
func Title(title string) []string {
	variants := make(map[string]bool)

	s := strings.ToLower(title)
	variants[s] = true
	s = ToASCII(s)
	variants[s] = true
	s = RemoveParenthesis(s)
	variants[s] = true
	s = RemoveBrackets(s)
	variants[s] = true
	return keys(variants)
}

// SameArtist reports whether two artist names likely name the same artist.
func SameArtist(name1, name2 string) bool {
	return same(name1, name2, Artist)
}

// SameTitle reports whether two titles likely name the same song.
func SameTitle(title1, title2 string) bool {
	return same(title1, title2, Title)
}

func same(a, b string, normalize func(string) []string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la >= fuzzyMinLen || lb >= fuzzyMinLen {
		if levenshtein.ComputeDistance(a, b) <= maxEditDistance {
			return true
		}
	}
	if la >= fuzzyMinLen && lb >= fuzzyMinLen {
		if la > lb && strings.Contains(a, b) {
			return true
		}
		if la <= lb && strings.Contains(b, a) {
			return true
		}
	}

	return intersects(normalize(a), normalize(b))
}

// intersects reports whether two sorted slices share an element.
func intersects(a, b []string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}
