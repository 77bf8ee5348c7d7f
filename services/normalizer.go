package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MarcaDesconhecida is the sentinel for brands that could not be
// resolved. It is excluded from every multi-brand count.
const MarcaDesconhecida = "DESCONHECIDA"

var nonDigits = regexp.MustCompile(`\D+`)

// brandAliases collapses the spelling variants seen in the catalog
// spreadsheets onto the canonical display names of the five group
// brands. Keys are upper-cased before lookup.
var brandAliases = map[string]string{
	// oBoticário
	"OBOTICÁRIO":  "oBoticário",
	"OBOTICARIO":  "oBoticário",
	"O BOTICÁRIO": "oBoticário",
	"O BOTICARIO": "oBoticário",
	"BOTICÁRIO":   "oBoticário",
	"BOTICARIO":   "oBoticário",
	"BOT":         "oBoticário",

	// Eudora
	"EUD":    "Eudora",
	"EUDORA": "Eudora",

	// Quem Disse Berenice
	"QDB":                   "Quem Disse Berenice",
	"QUEM DISSE BERENICE":   "Quem Disse Berenice",
	"QUEM DISSE, BERENICE?": "Quem Disse Berenice",

	// O.U.I
	"OUI":    "O.U.I",
	"O.U.I":  "O.U.I",
	"O.U.I.": "O.U.I",

	// AuAmigos
	"AUMIGOS":   "AuAmigos",
	"AU MIGOS":  "AuAmigos",
	"AU AMIGOS": "AuAmigos",
}

// GroupBrands lists the canonical brand names tracked by the group.
var GroupBrands = []string{"oBoticário", "Eudora", "Quem Disse Berenice", "O.U.I", "AuAmigos"}

// NormalizeSKU turns a raw product-code cell into its canonical form:
// trimmed, digits only, leading zeros preserved. A trailing ".0" is
// stripped first because spreadsheet readers hand integer codes over
// as floats. Anything without digits normalizes to "".
//
// The function is total and idempotent: normalizing an already
// normalized code returns it unchanged.
func NormalizeSKU(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimSuffix(s, ".0")
	return nonDigits.ReplaceAllString(s, "")
}

// NormalizeSKUFloat normalizes a numeric cell. NaN means an absent
// value. Integral floats use their integer representation (1234.0 ->
// "1234"); fractional floats keep their digits with the point removed
// (1234.5 -> "12345"), matching how the catalog stores such codes.
func NormalizeSKUFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return NormalizeSKU(strconv.FormatInt(int64(v), 10))
	}
	return NormalizeSKU(strconv.FormatFloat(v, 'f', -1, 64))
}

// NormalizeBrand maps a raw brand cell onto its canonical display
// name. Blank input yields the DESCONHECIDA sentinel; brands outside
// the alias table pass through trimmed but otherwise untouched.
func NormalizeBrand(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return MarcaDesconhecida
	}
	if canonical, ok := brandAliases[strings.ToUpper(s)]; ok {
		return canonical
	}
	return s
}
