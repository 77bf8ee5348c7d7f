package services

import "strings"

// CategoriaOutros is the fallback for names no rule matches.
const CategoriaOutros = "Outros"

type categoryRule struct {
	Name     string
	Keywords []string
}

// categoryRules is scanned top to bottom and the first keyword hit
// wins. Keywords overlap across categories on purpose, so the order
// is load bearing: demo and promo material first, generic buckets
// last. Keep new keywords inside the right rule instead of reordering.
var categoryRules = []categoryRule{
	{"Demonstradores", []string{
		"DEM ", "DEMON", "DEMONSTRAD", "DEMONSTRADOR", " CJ ", "CJ ", " FLAC", "FLAC ",
	}},
	{"Cabelos", []string{
		"SIAGE", "SIÀGE", "MATCH",
	}},
	{"Maquiagem", []string{
		"GLAM", "PO COMP", " PO ", "CORR LIQ", " CORR ", "MASC CILIO", " MASC ",
		"BASE LIQ", "BASE STICK", " BASE ", " BAS ", "GLOSS", " GLOS ",
		"BLUSH LIQ", " BLUSH ", "BAT LIQ", " BAT ", " SOUL ", "BALM",
		"GLIT", "OIL SHIN", "PLT MULTIF", " PLT ", "CORRET", "LAP OLH",
		" ILUM ", "PRIMER", "SOMBRA", " SOMB ", "SOBRANC", " MAKE ",
		"FAC STICK", "HID LAB", "BATOM",
	}},
	{"Perfumaria", []string{
		" COL ", " EDP ", "EDP ", " COL",
	}},
	{"Barba", []string{
		"BARB", "BARBA",
	}},
	{"Acessorios", []string{
		"PINCEL", "PINCEIS", "NECESS", "NECESSAIRE", "PALETA", "MASSAG",
		"MASSAGEADOR", "APONTADOR", "ESPONJA", "ESPNJ", "FRASQUEIRA",
		"VAPORIZADOR", "MALETA", "TOALHA", " CASE ", "BOLSA", "CURVADOR",
		" CLIP ", "PORTA ", "ESPELHO", "LENCO", " LUVA",
	}},
	{"Cuidados com a Pele", []string{
		" CPO ", "CORPORAL", " MAO ", " MAOS ", " HID ", "INSTANCE CR",
	}},
	{"Cuidados Faciais", []string{
		" FAC ", "NEO DERMO", "NEO D", " SKIN ", "SKINQ", "FACIAL",
	}},
	{"Desodorantes", []string{
		" DES ", "ROLL ON", " AER ", "AEROSSOL", "ANTIT", " ANT ",
		" SPR ", "BDY SPR",
	}},
	{"Embalagens", []string{
		"SACOLA", "KIT TAG", " TAG ",
	}},
	{"Gifts", []string{
		"PMPCK", " ESTJ ", " KIT ",
	}},
	{"Sabonete Corpo", []string{
		"ESF CPO", "SAB BARR", " SAB ", " SHW ", "SHW GEL",
	}},
	{"Solar", []string{
		" SOL ", " PR ", " PROT ", "PROT ",
	}},
	{"Unhas", []string{
		"ESMLT", "ESMALTE",
	}},
	{"Oleos", []string{
		" OL ", "OLEO", "ÓLEO",
	}},
}

// ClassifyCategory maps a free text product name to a category. The
// name is upper cased and padded with boundary spaces so keywords like
// " PO " match at the start and end of the name too.
func ClassifyCategory(productName string) string {
	if strings.TrimSpace(productName) == "" {
		return CategoriaOutros
	}
	padded := " " + strings.ToUpper(productName) + " "
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(padded, kw) {
				return rule.Name
			}
		}
	}
	return CategoriaOutros
}

// AvailableCategories lists every category the classifier can return,
// in rule order, with the fallback appended.
func AvailableCategories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.Name)
	}
	return append(out, CategoriaOutros)
}

// Name based premium detection. The premium sub-catalogs lag behind
// launches and never carry combo, kit or sachet bundles, so rows the
// catalog misses still get flagged when the name is unambiguous.

var premiumHairKeywords = []string{
	" SH ", "SHAMP", " COND", "CONDIC", "MASC CAP", "CR PENT",
	"CREME PENT", "AMPOLA", "LEAVE", " SER CAP", "REPAR",
}

var premiumMakeupIndicators = []string{
	"GLAM", "MAKE B", " SOUL ", " QDB ", "INTENSE",
}

var premiumMakeupKeywords = []string{
	"BATOM", " BAT ", "BAT LIQ", " BASE ", "BASE LIQ", "BASE STICK",
	" PO ", "PO COMP", "SOMBRA", " SOMB ", "GLOSS", " BLUSH ",
	"MASC CILIO", "DELIN", "LAP OLH", "CORRET", "PRIMER", " ILUM ",
}

var premiumMakeupExclusions = []string{
	" CPO ", "CORPORAL", " CAP ", "CABELO", " SAB ", " DES ", "PERFUM",
}

// IsPremiumHairProduct reports whether a product name looks like a
// premium hair care item: the sub-brand indicator must appear together
// with a hair care keyword.
func IsPremiumHairProduct(name string) bool {
	padded := " " + strings.ToUpper(name) + " "
	if !strings.Contains(padded, "SIAGE") && !strings.Contains(padded, "SIÀGE") {
		return false
	}
	for _, kw := range premiumHairKeywords {
		if strings.Contains(padded, kw) {
			return true
		}
	}
	return false
}

// IsPremiumMakeupProduct reports whether a product name looks like a
// premium makeup item. Body and hair care names share a lot of the
// makeup lexicon ("BASE", "HID"), so the exclusion list runs first.
func IsPremiumMakeupProduct(name string) bool {
	padded := " " + strings.ToUpper(name) + " "
	for _, ex := range premiumMakeupExclusions {
		if strings.Contains(padded, ex) {
			return false
		}
	}
	indicator := false
	for _, in := range premiumMakeupIndicators {
		if strings.Contains(padded, in) {
			indicator = true
			break
		}
	}
	if !indicator {
		return false
	}
	for _, kw := range premiumMakeupKeywords {
		if strings.Contains(padded, kw) {
			return true
		}
	}
	return false
}
