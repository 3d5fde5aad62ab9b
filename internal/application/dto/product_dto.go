package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel *int64          `json:"max_stock_level,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. El SKU no se acepta:
// es inmutable una vez asignado.
type UpdateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel *int64          `json:"max_stock_level,omitempty"`
	IsActive      *bool           `json:"is_active,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel *int64          `json:"max_stock_level,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse convierte la entidad al DTO de respuesta.
func ToProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		UnitPrice:     p.UnitPrice,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
