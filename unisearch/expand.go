package unisearch

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"regexp/syntax"

	"github.com/pkg/errors"
)

// ErrUnsupported is returned by Expand for regular expression constructs
// which can't be rewritten; callers should use the pattern as is
var ErrUnsupported = errors.New("regular expression not supported for diacritic expansion")

// Expand rewrites pattern so that every literal character also matches all of
// its variants with a diacritic mark (and similar looking letters and
// punctuation), e.g.
//
//	"föhn" -> "[fḟ][oòóôõö...][hĥȟḣḥḧḩḫẖ][nñńņňǹṅṇṉṋ]"
//
// Decorated letters in the pattern are folded to their base letter first,
// so "Å" matches "A" as well as "Ä". Pattern is parsed with flags, and the
// result carries these flags inline so it can be compiled without them.
func Expand(pattern string, flags syntax.Flags) (string, error) {
	re, err := syntax.Parse(pattern, flags)
	if err != nil {
		return "", err
	}

	Mapping()

	re, err = expandNode(re)
	if err != nil {
		return "", err
	}

	return re.String(), nil
}

func expandNode(re *syntax.Regexp) (*syntax.Regexp, error) {
	switch re.Op {
	case syntax.OpLiteral:
		return expandLiteral(re), nil
	case syntax.OpCharClass:
		return expandClass(re), nil
	case syntax.OpNoMatch, syntax.OpEmptyMatch, syntax.OpAnyCharNotNL, syntax.OpAnyChar,
		syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return re, nil
	case syntax.OpCapture, syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat,
		syntax.OpConcat, syntax.OpAlternate:
		for i, sub := range re.Sub {
			expanded, err := expandNode(sub)
			if err != nil {
				return nil, err
			}
			re.Sub[i] = expanded
		}
		return re, nil
	}

	return nil, errors.Wrap(ErrUnsupported, re.Op.String())
}

// expandLiteral replaces a run of literal runes: runes with variants become
// classes, and substrings forming a known multi-rune key alternate with the
// class of their single rune equivalents, longest key first.
func expandLiteral(re *syntax.Regexp) *syntax.Regexp {
	foldCase := re.Flags&syntax.FoldCase != 0

	runes := make([]rune, len(re.Rune))
	for i, r := range re.Rune {
		runes[i] = Fold(r)
	}

	var parts []*syntax.Regexp
	var plain []rune

	flushPlain := func() {
		if len(plain) > 0 {
			parts = append(parts, &syntax.Regexp{Op: syntax.OpLiteral, Flags: re.Flags, Rune: plain})
			plain = nil
		}
	}

	for pos := 0; pos < len(runes); {
		key := longestKeyAt(runes[pos:])
		if key == "" {
			plain = append(plain, re.Rune[pos])
			pos++
			continue
		}

		flushPlain()

		keyRunes := []rune(key)
		singles := make([]*syntax.Regexp, len(keyRunes))
		for i, r := range keyRunes {
			singles[i] = classOf(append(Variants(r), re.Rune[pos+i]), foldCase)
		}

		var node *syntax.Regexp
		if len(singles) == 1 {
			node = singles[0]
		} else {
			node = &syntax.Regexp{
				Op: syntax.OpAlternate,
				Sub: []*syntax.Regexp{
					{Op: syntax.OpConcat, Sub: singles},
					classOf(mapping[key], foldCase),
				},
			}
		}
		parts = append(parts, node)
		pos += len(keyRunes)
	}

	flushPlain()

	if len(parts) == 1 {
		return parts[0]
	}
	return &syntax.Regexp{Op: syntax.OpConcat, Flags: re.Flags, Sub: parts}
}

func longestKeyAt(runes []rune) string {
	for _, key := range mappingKeys {
		n := utf8.RuneCountInString(key)
		if n > len(runes) {
			continue
		}
		if string(runes[:n]) == key {
			return key
		}
	}
	return ""
}

// expandClass adds variants of every base letter inside the class (and the
// base letter plus its variants for every decorated rune). Negated classes
// are expanded on their complement, so [^o] doesn't match "ö" either.
func expandClass(re *syntax.Regexp) *syntax.Regexp {
	ranges := re.Rune
	negated := len(ranges) > 0 && ranges[0] == 0 && ranges[len(ranges)-1] == unicode.MaxRune
	if negated {
		ranges = complement(ranges)
	}

	var extra []rune
	for i := 0; i+1 < len(ranges); i += 2 {
		lo, hi := ranges[i], ranges[i+1]
		for _, key := range mappingKeys {
			r, size := utf8.DecodeRuneInString(key)
			if size != len(key) || r < lo || r > hi {
				continue
			}
			extra = append(extra, mapping[key]...)
		}
		for variant, base := range baseOf {
			if variant >= lo && variant <= hi {
				extra = append(extra, Variants(base)...)
			}
		}
	}

	if len(extra) == 0 {
		return re
	}

	merged := mergeRanges(append(append([]rune{}, ranges...), pairs(extra)...))
	if re.Flags&syntax.FoldCase != 0 {
		merged = mergeRanges(append(merged, pairs(caseOrbits(extra))...))
	}
	if negated {
		merged = complement(merged)
	}

	return &syntax.Regexp{Op: syntax.OpCharClass, Flags: re.Flags, Rune: merged}
}

func classOf(runes []rune, foldCase bool) *syntax.Regexp {
	if foldCase {
		runes = append(runes, caseOrbits(runes)...)
	}
	return &syntax.Regexp{Op: syntax.OpCharClass, Rune: mergeRanges(pairs(runes))}
}

func caseOrbits(runes []rune) []rune {
	var result []rune
	for _, r := range runes {
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			result = append(result, f)
		}
	}
	return result
}

func pairs(runes []rune) []rune {
	result := make([]rune, 0, 2*len(runes))
	for _, r := range runes {
		result = append(result, r, r)
	}
	return result
}

// mergeRanges sorts [lo, hi] pairs and merges the overlapping or adjacent ones
func mergeRanges(ranges []rune) []rune {
	type span struct{ lo, hi rune }

	spans := make([]span, 0, len(ranges)/2)
	for i := 0; i+1 < len(ranges); i += 2 {
		spans = append(spans, span{ranges[i], ranges[i+1]})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	result := make([]rune, 0, len(ranges))
	for _, s := range spans {
		n := len(result)
		if n > 0 && s.lo <= result[n-1]+1 {
			if s.hi > result[n-1] {
				result[n-1] = s.hi
			}
			continue
		}
		result = append(result, s.lo, s.hi)
	}
	return result
}

// complement of sorted, merged ranges over [0, unicode.MaxRune]
func complement(ranges []rune) []rune {
	var result []rune
	next := rune(0)
	for i := 0; i+1 < len(ranges); i += 2 {
		if ranges[i] > next {
			result = append(result, next, ranges[i]-1)
		}
		next = ranges[i+1] + 1
	}
	if next <= unicode.MaxRune {
		result = append(result, next, unicode.MaxRune)
	}
	return result
}

// Describe returns expanded pattern or a note about why expansion was skipped,
// used by the explain command
func Describe(pattern string) string {
	expanded, err := Expand(pattern, syntax.Perl&^syntax.OneLine)
	if err != nil {
		return fmt.Sprintf("%s (not expanded: %s)", pattern, err)
	}
	return strings.TrimSpace(expanded)
}
