package name

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures expands composed letters into their ASCII-equivalent sequences.
// These survive NFD untouched, so they need explicit replacement before any
// diacritic stripping can reach them.
var ligatures = strings.NewReplacer(
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Ĳ", "IJ", "ĳ", "ij",
	"ẞ", "SS", "ß", "ss",
	"Ǆ", "DZ", "ǅ", "Dz", "ǆ", "dz",
	"Ǉ", "LJ", "ǈ", "Lj", "ǉ", "lj",
	"Ǌ", "NJ", "ǋ", "Nj", "ǌ", "nj",
	"ﬀ", "ff", "ﬁ", "fi", "ﬂ", "fl",
	"ﬃ", "ffi", "ﬄ", "ffl", "ﬅ", "ft", "ﬆ", "st",
)

// Decompose replaces Unicode ligatures and composed letters with their
// decomposed ASCII-equivalent sequences. Idempotent.
func Decompose(s string) string {
	return ligatures.Replace(s)
}

// stripMarks removes combining marks after canonical decomposition, turning
// é into e, ü into u and so on.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// asciiLetters transliterates the Latin letters that carry no combining
// mark and therefore survive mark stripping.
var asciiLetters = map[rune]string{
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ħ': "h", 'Ħ': "H",
	'ł': "l", 'Ł': "L",
	'ŧ': "t", 'Ŧ': "T",
	'þ': "th", 'Þ': "Th",
	'ı': "i", 'ĸ': "k",
	'ŋ': "n", 'Ŋ': "N",
}

// ASCIIFold strips diacritics and transliterates the remaining non-ASCII
// Latin letters to their nearest ASCII counterpart. Characters without an
// ASCII counterpart, the hybrid sign among them, pass through unchanged.
// Idempotent; run Decompose first so expanded ligature parts fold too.
func ASCIIFold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			sb.WriteRune(r)
			continue
		}
		if repl, ok := asciiLetters[r]; ok {
			sb.WriteString(repl)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
