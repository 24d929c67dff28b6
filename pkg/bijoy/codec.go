package bijoy

import "strings"

// TableCodec is a built-in Bijoy-to-Unicode codec covering the common glyph
// repertoire of the Bijoy (SutonnyMJ) font mapping. It is deliberately
// pragmatic: glyphs outside the table pass through unchanged, and callers
// wanting a full-fidelity converter can plug their own Codec into the
// Converter instead.
//
// Conversion runs in three passes over a line:
//  1. reorder pre-base vowel glyphs after the consonant cluster they attach
//     to, and move the reph glyph in front of its consonant (Bijoy stores
//     both in visual order, Unicode wants logical order)
//  2. replace the two-glyph "Av" sequence with the independent vowel আ
//  3. map the remaining glyphs one by one
type TableCodec struct{}

// Pre-base vowel glyphs: rendered before the consonant in Bijoy, stored
// after it in Unicode.
const preBaseVowels = "w‡†‰ˆ"

// Phala glyphs attach to the preceding consonant and stay with it when a
// pre-base vowel is reordered across the cluster.
const phalaGlyphs = "ª¨"

// rephGlyph follows its consonant in Bijoy but precedes it in Unicode.
const rephGlyph = '©'

// consonantGlyphs are the Bijoy code points that map to a Bengali consonant
// or conjunct, i.e. the glyphs a vowel sign can attach to.
const consonantGlyphs = "KLMNOPQRSTUVWXYZ_`abcdefghijklmnopqÎÐ¶"

var glyphMap = map[rune]string{
	// independent vowels
	'A': "অ", 'B': "ই", 'C': "ঈ", 'D': "উ", 'E': "ঊ", 'F': "ঋ",
	'G': "এ", 'H': "ঐ", 'I': "ও", 'J': "ঔ",
	// consonants
	'K': "ক", 'L': "খ", 'M': "গ", 'N': "ঘ", 'O': "ঙ",
	'P': "চ", 'Q': "ছ", 'R': "জ", 'S': "ঝ", 'T': "ঞ",
	'U': "ট", 'V': "ঠ", 'W': "ড", 'X': "ঢ", 'Y': "ণ",
	'Z': "ত", '_': "থ", '`': "দ", 'a': "ধ", 'b': "ন",
	'c': "প", 'd': "ফ", 'e': "ব", 'f': "ভ", 'g': "ম",
	'h': "য", 'i': "র", 'j': "ল", 'k': "শ", 'l': "ষ",
	'm': "স", 'n': "হ", 'o': "ড়", 'p': "ঢ়", 'q': "য়",
	// signs
	'r': "ৎ", 's': "ং", 't': "ঃ", 'u': "ঁ",
	// dependent vowel signs
	'v': "া", 'w': "ি", 'x': "ী", 'y': "ু", 'z': "ূ",
	'„': "ৃ", '‡': "ে", '†': "ে", '‰': "ৈ", 'ˆ': "ৈ", 'Š': "ৗ",
	// phalas, reph, hasanta
	'ª': "্র", '¨': "্য", '©': "র্", '&': "্",
	// common conjunct glyphs
	'Î': "ত্র", 'Ð': "ণ্ড", '¶': "ক্ষ",
	// punctuation
	'|': "।", 'Ô': "‘", 'Õ': "’", 'Ò': "“", 'Ó': "”",
}

// Convert maps a Bijoy-encoded line to Unicode Bengali. It never fails;
// the error return satisfies the Codec contract.
func (TableCodec) Convert(text string) (string, error) {
	runes := reorder([]rune(text))

	var b strings.Builder
	b.Grow(len(runes) * 3)
	for i := 0; i < len(runes); i++ {
		// "Av" renders as আ under the Bijoy font; mapping the glyphs
		// separately would leave a dangling অ + া pair.
		if runes[i] == 'A' && i+1 < len(runes) && runes[i+1] == 'v' {
			b.WriteString("আ")
			i++
			continue
		}
		if mapped, ok := glyphMap[runes[i]]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteRune(runes[i])
		}
	}
	return b.String(), nil
}

// reorder rewrites visual glyph order into logical order: pre-base vowels
// move after the consonant cluster that follows them, reph moves in front
// of the consonant it trails.
func reorder(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if strings.ContainsRune(preBaseVowels, r) && i+1 < len(runes) && isConsonantGlyph(runes[i+1]) {
			j := i + 2
			for j < len(runes) && strings.ContainsRune(phalaGlyphs, runes[j]) {
				j++
			}
			out = append(out, runes[i+1:j]...)
			out = append(out, r)
			i = j - 1
			continue
		}

		if r == rephGlyph && len(out) > 0 && isConsonantGlyph(out[len(out)-1]) {
			last := out[len(out)-1]
			out[len(out)-1] = rephGlyph
			out = append(out, last)
			continue
		}

		out = append(out, r)
	}
	return out
}

func isConsonantGlyph(r rune) bool {
	return strings.ContainsRune(consonantGlyphs, r)
}
