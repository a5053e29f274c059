package main

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// index maps trigrams to the words containing them.
type index struct {
	words []string
	grams map[string][]string
}

func newIndex(words ...string) *index {
	a := &index{grams: make(map[string][]string)}
	for _, s := range words {
		a.words = append(a.words, s)
		for _, t := range parse(s) {
			a.grams[t] = append(a.grams[t], s)
		}
	}
	sort.Strings(a.words)
	return a
}

// parse returns the sorted trigrams of s lowered with everything but
// letters and digits dropped. Words are padded so that a shared first
// letter scores.
func parse(s string) []string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
	if s == "" {
		return nil
	}
	s = "\x00\x00" + s + "\x00"
	var p []string
	for i := 0; i <= len(s)-3; i++ {
		p = append(p, s[i:i+3])
	}
	slices.Sort(p)
	return slices.Compact(p)
}

// match returns indexed words sharing at least min of the trigrams of x,
// best first.
func (a *index) match(x string, min float64) []string {
	q := parse(x)
	if len(q) == 0 {
		return nil
	}
	hits := make(map[string]int)
	for _, t := range q {
		for _, s := range a.grams[t] {
			hits[s]++
		}
	}
	var p []string
	for s, n := range hits {
		if min <= float64(n)/float64(len(q)) {
			p = append(p, s)
		}
	}
	sort.Slice(p, func(i, j int) bool {
		if hits[p[i]] != hits[p[j]] {
			return hits[p[i]] > hits[p[j]]
		}
		return p[i] < p[j]
	})
	return p
}

// Do completes the word under the cursor by prefix, satisfying
// readline.AutoCompleter.
func (a *index) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}
	for _, s := range a.words {
		if strings.HasPrefix(s, prefix) {
			newLine = append(newLine, []rune(s[len(prefix):]+" "))
		}
	}
	return newLine, len([]rune(prefix))
}
