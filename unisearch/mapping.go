package unisearch

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	mappingOnce sync.Once
	mapping     map[string][]rune
	// keys of mapping, longest first
	mappingKeys []string
	// single rune variant -> single rune base
	baseOf map[rune]rune
)

// letterVariants combines every letter with the combining sequences it
// composes with, giving letter -> sorted precomposed variants
func letterVariants(table map[string]string) map[string]string {
	variants := map[string][]string{}

	for marks, letters := range table {
		for _, letter := range letters {
			composed := norm.NFKC.String(string(letter) + marks)
			variants[string(letter)] = append(variants[string(letter)], composed)
		}
	}

	result := make(map[string]string, len(variants))
	for letter, v := range variants {
		sort.Strings(v)
		result[letter] = strings.Join(v, "")
	}

	return result
}

func buildMapping() {
	mapping = map[string][]rune{}

	for _, table := range []map[string]string{letterVariants(diacritics), ucaDecomps, punctConfusables} {
		for key, repl := range table {
			mapping[key] = append(mapping[key], []rune(repl)...)
		}
	}

	mappingKeys = make([]string, 0, len(mapping))
	for key := range mapping {
		mappingKeys = append(mappingKeys, key)
	}

	sort.Slice(mappingKeys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(mappingKeys[i]), utf8.RuneCountInString(mappingKeys[j])
		if li != lj {
			return li > lj
		}
		return mappingKeys[i] < mappingKeys[j]
	})

	baseOf = map[rune]rune{}
	for _, key := range mappingKeys {
		if utf8.RuneCountInString(key) != 1 {
			continue
		}
		base, _ := utf8.DecodeRuneInString(key)
		for _, v := range mapping[key] {
			if _, exists := baseOf[v]; !exists {
				baseOf[v] = base
			}
		}
	}
}

// Mapping returns the replacement table: if a key occurs in a text, any of
// the runes in its value should match as well
func Mapping() map[string][]rune {
	mappingOnce.Do(buildMapping)
	return mapping
}

// Variants returns r followed by all runes considered equal to it
func Variants(r rune) []rune {
	m := Mapping()
	return append([]rune{r}, m[string(r)]...)
}

// Fold returns the base letter for a decorated rune, e.g. 'Å' -> 'A'.
// Runes which are themselves a base, or unknown, are returned unchanged.
func Fold(r rune) rune {
	m := Mapping()
	if _, isBase := m[string(r)]; isBase {
		return r
	}
	if base, ok := baseOf[r]; ok {
		return base
	}
	return r
}
