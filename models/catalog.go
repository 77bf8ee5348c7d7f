package models

import "time"

// Product is one row of the reference catalog. SKUNormalized is the
// lookup key used by the matching index; it keeps leading zeros.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SKU           string    `gorm:"index" json:"sku"`
	SKUNormalized string    `gorm:"uniqueIndex;column:sku_normalized" json:"sku_normalizado"`
	Name          string    `json:"nome"`
	Brand         string    `gorm:"index" json:"marca"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
}

// IAFHairProduct is the premium hair-care sub-catalog (IAF Cabelos).
type IAFHairProduct struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SKU           string    `json:"sku"`
	SKUNormalized string    `gorm:"index;column:sku_normalized" json:"sku_normalizado"`
	Description   string    `json:"descricao"`
	Brand         string    `json:"marca"`
	CreatedAt     time.Time `json:"created_at"`
}

// IAFMakeupProduct is the premium makeup sub-catalog (IAF Make).
type IAFMakeupProduct struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SKU           string    `json:"sku"`
	SKUNormalized string    `gorm:"index;column:sku_normalized" json:"sku_normalizado"`
	Description   string    `json:"descricao"`
	Brand         string    `json:"marca"`
	CreatedAt     time.Time `json:"created_at"`
}

// BrandCount is the per-brand catalog tally used by /catalogo/marcas.
type BrandCount struct {
	Brand string `json:"marca"`
	Count int64  `json:"qtde"`
}
