package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/config"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/utils"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main imports the catalog spreadsheets into the SQLite database.
// Usage: go run cmd/seed/main.go
// Expects estoqueplanilha.xlsx (main catalog) plus the optional
// cabelos_iaf.xlsx and make_iaf.xlsx premium sub-catalogs in DATA_DIR.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MULTIMARKS ANALYTICS - Catalog Import")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to catalog database")

	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	products := importProducts(config.CatalogDB, filepath.Join(dir, "estoqueplanilha.xlsx"))
	hair := importIAFHair(config.CatalogDB, filepath.Join(dir, "cabelos_iaf.xlsx"))
	makeup := importIAFMakeup(config.CatalogDB, filepath.Join(dir, "make_iaf.xlsx"))

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Done: %d products, %d IAF Cabelos, %d IAF Make\n", products, hair, makeup)
	fmt.Println("════════════════════════════════════════════════════════════")

	config.CloseDB()
}

func importProducts(db *gorm.DB, path string) int {
	sheet := readSheet(path)
	if sheet == nil {
		return 0
	}

	skuCol := findColumn(sheet, []string{"sku", "codigo", "código", "cod", "codigoproduto"}, 0)
	nameCol := findColumn(sheet, []string{"nome", "nomeproduto", "descricao", "descrição", "produto"}, 1)
	brandCol := findColumn(sheet, []string{"marca"}, 2)

	if err := db.Exec("DELETE FROM products").Error; err != nil {
		log.Fatalf("Failed to clear products table: %v", err)
	}

	imported := 0
	skipped := 0
	seen := make(map[string]bool)

	for _, row := range sheet.Rows {
		sku := sheet.Cell(row, skuCol)
		skuNorm := services.NormalizeSKU(sku)
		if skuNorm == "" || seen[skuNorm] {
			skipped++
			continue
		}
		seen[skuNorm] = true

		product := models.Product{
			SKU:           sku,
			SKUNormalized: skuNorm,
			Name:          sheet.Cell(row, nameCol),
			Brand:         services.NormalizeBrand(sheet.Cell(row, brandCol)),
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("[WARN] Skipping SKU %s: %v", skuNorm, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("✓ Imported %d products, skipped %d (%s)", imported, skipped, path)
	return imported
}

func importIAFHair(db *gorm.DB, path string) int {
	return importIAF(db, path, "iaf_hair_products", func(sku, skuNorm, desc, brand string) error {
		return db.Create(&models.IAFHairProduct{
			SKU:           sku,
			SKUNormalized: skuNorm,
			Description:   desc,
			Brand:         brand,
		}).Error
	})
}

func importIAFMakeup(db *gorm.DB, path string) int {
	return importIAF(db, path, "iaf_makeup_products", func(sku, skuNorm, desc, brand string) error {
		return db.Create(&models.IAFMakeupProduct{
			SKU:           sku,
			SKUNormalized: skuNorm,
			Description:   desc,
			Brand:         brand,
		}).Error
	})
}

func importIAF(db *gorm.DB, path, table string, insert func(sku, skuNorm, desc, brand string) error) int {
	sheet := readSheet(path)
	if sheet == nil {
		return 0
	}

	skuCol := findColumn(sheet, []string{"sku", "codigo", "código", "cod"}, 0)
	descCol := findColumn(sheet, []string{"descricao", "descrição", "nome", "produto"}, 1)
	brandCol := findColumn(sheet, []string{"marca"}, 2)

	if err := db.Exec("DELETE FROM " + table).Error; err != nil {
		log.Fatalf("Failed to clear %s table: %v", table, err)
	}

	imported := 0
	for _, row := range sheet.Rows {
		sku := sheet.Cell(row, skuCol)
		skuNorm := services.NormalizeSKU(sku)
		if skuNorm == "" {
			continue
		}
		desc := sheet.Cell(row, descCol)
		brand := services.NormalizeBrand(sheet.Cell(row, brandCol))
		if err := insert(sku, skuNorm, desc, brand); err != nil {
			log.Printf("[WARN] Skipping IAF SKU %s: %v", skuNorm, err)
			continue
		}
		imported++
	}

	log.Printf("✓ Imported %d IAF items into %s (%s)", imported, table, path)
	return imported
}

// readSheet loads a spreadsheet, returning nil when the file is
// absent so optional sub-catalogs can be skipped.
func readSheet(path string) *utils.Sheet {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[WARN] File not found, skipping: %s", path)
			return nil
		}
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	sheet, err := utils.ReadSheet(content, filepath.Base(path))
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}
	log.Printf("✓ Read %d rows from %s", len(sheet.Rows), path)
	return sheet
}

// findColumn locates a header by its known aliases, falling back to a
// positional guess the way the source spreadsheets are laid out.
func findColumn(sheet *utils.Sheet, aliases []string, fallback int) int {
	for i, h := range sheet.Header {
		header := strings.ToLower(strings.TrimSpace(h))
		for _, alias := range aliases {
			if header == alias {
				return i
			}
		}
	}
	if fallback < len(sheet.Header) {
		log.Printf("[WARN] Column %v not found, using position %d (%s)", aliases, fallback, sheet.Header[fallback])
		return fallback
	}
	return -1
}
