// Package normalize canonicalizes Persian text scraped from registration
// tables. Arabic and Persian codepoints that render identically are folded
// together so that identifiers and names compare equal.
package normalize

import "strings"

// letterforms maps the Arabic Yeh and Kaf to their Persian forms.
// These two are also fixed in raw markup, see FixLetterforms.
var letterforms = strings.NewReplacer(
	"ي", "ی", // Arabic Yeh -> Farsi Yeh
	"ك", "ک", // Arabic Kaf -> Farsi Kaf
)

var replacer = strings.NewReplacer(
	"ي", "ی",
	"ك", "ک",
	"ة", "ه", // Teh Marbuta -> Heh

	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",

	"\u200c", " ", // zero-width non-joiner
)

// Normalize applies the full substitution table, collapses every run of
// whitespace into a single space and trims the result.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(replacer.Replace(text)), " ")
}

// FixLetterforms replaces only the Arabic Yeh and Kaf. It is safe to run on
// serialized markup: digits, whitespace and the zero-width non-joiner are
// left exactly as they were.
func FixLetterforms(markup string) string {
	return letterforms.Replace(markup)
}
