package services

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// Match outcomes, ordered by confidence. The wire values are shared
// with the reporting spreadsheets and must not change.
const (
	MatchExato    = "MATCH_EXATO"
	MatchComZero  = "MATCH_COM_ZERO"
	MatchSemZero  = "MATCH_SEM_ZERO"
	NaoEncontrado = "NAO_ENCONTRADO"
)

// Premium (IAF) sub-program names.
const (
	IAFCabelos = "Cabelos"
	IAFMake    = "Make"
)

type variant uint8

const (
	variantNone    variant = iota
	variantComZero         // key is the catalog key minus its leading zero
	variantSemZero         // key is the catalog key plus a leading zero
)

// CatalogEntry is one resolvable product in the index.
type CatalogEntry struct {
	SKU     string
	Name    string
	Brand   string
	IsIAF   bool
	IAFType string // Cabelos or Make when IsIAF
	variant variant
}

// CatalogIndex maps normalized SKUs (and their zero-padding variants)
// to catalog entries. It is rebuilt from the catalog store for every
// import, so it is never shared between sessions.
type CatalogIndex struct {
	entries map[string]CatalogEntry
}

// Match is the outcome of resolving one raw product code.
type Match struct {
	Outcome string
	Entry   CatalogEntry
	Found   bool
}

// NewCatalogIndex builds an empty index; used directly by tests,
// normally populated via BuildCatalogIndex.
func NewCatalogIndex() *CatalogIndex {
	return &CatalogIndex{entries: make(map[string]CatalogEntry)}
}

// Len reports how many keys (variants included) are resolvable.
func (ix *CatalogIndex) Len() int { return len(ix.entries) }

// Add inserts an entry under its normalized key plus the zero-padding
// variants. First writer wins for every key: the primary catalog is
// loaded before the premium tables, which gives it precedence over a
// premium entry with a colliding key.
func (ix *CatalogIndex) Add(skuNormalized string, e CatalogEntry) {
	if skuNormalized == "" {
		return
	}
	e.variant = variantNone
	if _, taken := ix.entries[skuNormalized]; !taken {
		ix.entries[skuNormalized] = e
	}

	// A 5-digit key with a leading zero is also reachable through its
	// 4-digit form: a query hitting that form matched the zero-padded
	// catalog entry, so the variant reads "with zero".
	if len(skuNormalized) == 5 && skuNormalized[0] == '0' {
		short := skuNormalized[1:]
		if _, taken := ix.entries[short]; !taken {
			ve := e
			ve.variant = variantComZero
			ix.entries[short] = ve
		}
	}

	// A 4-digit key is also reachable through its zero-padded form; a
	// query hitting it matched by dropping its own zero.
	if len(skuNormalized) == 4 {
		long := "0" + skuNormalized
		if _, taken := ix.entries[long]; !taken {
			ve := e
			ve.variant = variantSemZero
			ix.entries[long] = ve
		}
	}
}

// Resolve looks a raw product code up using the three-tier strategy:
//
//  1. direct hit on the normalized key (EXATO, or the variant's
//     outcome when the key was a precomputed padding variant);
//  2. 4-digit key retried with a leading zero (COM_ZERO);
//  3. 5+-digit key starting with '0' retried with the zeros stripped,
//     collapsing at most to "0" (SEM_ZERO).
//
// The order is fixed: the catalog and the sales export are maintained
// independently and disagree on zero padding, but an exact hit must
// always win over a padding variant.
func (ix *CatalogIndex) Resolve(rawCode string) Match {
	key := NormalizeSKU(rawCode)
	if key == "" {
		return Match{Outcome: NaoEncontrado}
	}

	if e, ok := ix.entries[key]; ok {
		outcome := MatchExato
		switch e.variant {
		case variantComZero:
			outcome = MatchComZero
		case variantSemZero:
			outcome = MatchSemZero
		}
		return Match{Outcome: outcome, Entry: e, Found: true}
	}

	if len(key) == 4 {
		if e, ok := ix.entries["0"+key]; ok {
			return Match{Outcome: MatchComZero, Entry: e, Found: true}
		}
	}

	if len(key) >= 5 && key[0] == '0' {
		stripped := strings.TrimLeft(key, "0")
		if stripped == "" {
			stripped = "0"
		}
		if e, ok := ix.entries[stripped]; ok {
			return Match{Outcome: MatchSemZero, Entry: e, Found: true}
		}
	}

	return Match{Outcome: NaoEncontrado}
}

// BuildCatalogIndex loads the primary catalog and both premium
// sub-catalogs into a fresh index. A failure on the primary table is
// fatal for the import; missing premium tables only cost premium
// coverage (the entries simply are not there).
func BuildCatalogIndex(db *gorm.DB) (*CatalogIndex, error) {
	ix := NewCatalogIndex()

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		ix.Add(p.SKUNormalized, CatalogEntry{
			SKU:   p.SKU,
			Name:  p.Name,
			Brand: p.Brand,
		})
	}

	var hair []models.IAFHairProduct
	if err := db.Find(&hair).Error; err != nil {
		log.Printf("[catalog.index] iaf_hair_products unavailable: %v", err)
	}
	for _, p := range hair {
		brand := p.Brand
		// Siàge is a Eudora sub-brand; fold it so multi-brand counts
		// see one brand, not two.
		switch strings.ToUpper(strings.TrimSpace(brand)) {
		case "SIAGE", "SIÀGE", "SIEGE":
			brand = "Eudora"
		}
		ix.Add(p.SKUNormalized, CatalogEntry{
			SKU:     p.SKU,
			Name:    p.Description,
			Brand:   brand,
			IsIAF:   true,
			IAFType: IAFCabelos,
		})
	}

	var makeup []models.IAFMakeupProduct
	if err := db.Find(&makeup).Error; err != nil {
		log.Printf("[catalog.index] iaf_makeup_products unavailable: %v", err)
	}
	for _, p := range makeup {
		ix.Add(p.SKUNormalized, CatalogEntry{
			SKU:     p.SKU,
			Name:    p.Description,
			Brand:   p.Brand,
			IsIAF:   true,
			IAFType: IAFMake,
		})
	}

	return ix, nil
}
