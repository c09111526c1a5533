package catalog

import "github.com/shopspring/decimal"

// Category is the fixed set of shelves items can belong to.
type Category string

const (
	CategoryFruits     Category = "Fruits"
	CategoryVegetables Category = "Vegetables"
	CategoryDairy      Category = "Dairy"
	CategorySnacks     Category = "Snacks"
	CategoryBeverages  Category = "Beverages"
	CategoryClothing   Category = "Clothing"

	// CategoryAll is a listing filter only, never stored on an item.
	CategoryAll Category = "All"
)

// Categories returns every real category plus the "All" filter, in menu order.
func Categories() []Category {
	return []Category{
		CategoryFruits,
		CategoryVegetables,
		CategoryDairy,
		CategorySnacks,
		CategoryBeverages,
		CategoryClothing,
		CategoryAll,
	}
}

// Valid reports whether c is a category an item may be stored under.
func (c Category) Valid() bool {
	switch c {
	case CategoryFruits, CategoryVegetables, CategoryDairy, CategorySnacks, CategoryBeverages, CategoryClothing:
		return true
	}
	return false
}

// VariantKind tags the variant-specific payload an item carries.
type VariantKind string

const (
	KindStandard   VariantKind = "standard"
	KindPerishable VariantKind = "perishable"
	KindApparel    VariantKind = "apparel"
)

// Variant is the tagged payload that differs between item kinds.
// Rendering dispatches on Kind instead of a type hierarchy.
type Variant struct {
	Kind   VariantKind `json:"kind"`
	Expiry string      `json:"expiry,omitempty"` // perishable only
	Size   string      `json:"size,omitempty"`   // apparel only
}

func Standard() Variant {
	return Variant{Kind: KindStandard}
}

func Perishable(expiry string) Variant {
	return Variant{Kind: KindPerishable, Expiry: expiry}
}

func Apparel(size string) Variant {
	return Variant{Kind: KindApparel, Size: size}
}

// Note returns the display annotation for the variant, empty for standard items.
func (v Variant) Note() string {
	switch v.Kind {
	case KindPerishable:
		return "(Expires on: " + v.Expiry + ")"
	case KindApparel:
		return "(Size: " + v.Size + ")"
	}
	return ""
}

// Item is a sellable catalog entry. Identity is the name,
// matched case-insensitively.
type Item struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Barcode  string          `json:"barcode"`
	Category Category        `json:"category"`
	BOGO     bool            `json:"bogo"`
	Variant  Variant         `json:"variant"`
}
