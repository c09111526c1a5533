package catalog

import "github.com/shopspring/decimal"

// SeedItems returns the demo product set loaded at startup.
func SeedItems() []Item {
	price := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

	return []Item{
		{Name: "Banana", Price: price(30.00), Stock: 100, Barcode: "FR001", Category: CategoryFruits, Variant: Standard()},
		{Name: "Apple", Price: price(30.00), Stock: 100, Barcode: "FR002", Category: CategoryFruits, Variant: Standard()},
		{Name: "Orange", Price: price(30.00), Stock: 100, Barcode: "FR003", Category: CategoryFruits, Variant: Standard()},
		{Name: "Grapes", Price: price(30.00), Stock: 100, Barcode: "FR004", Category: CategoryFruits, Variant: Standard()},
		{Name: "Milk", Price: price(25.00), Stock: 50, Barcode: "DA001", Category: CategoryDairy, BOGO: true, Variant: Perishable("2025-05-01")},
		{Name: "Oil", Price: price(25.00), Stock: 50, Barcode: "DA001", Category: CategoryDairy, BOGO: true, Variant: Perishable("2025-05-01")},
		{Name: "Cheese", Price: price(120.00), Stock: 30, Barcode: "DA002", Category: CategoryDairy, Variant: Standard()},
		{Name: "Ghee", Price: price(120.00), Stock: 30, Barcode: "DA001", Category: CategoryDairy, Variant: Standard()},
		{Name: "Butter", Price: price(120.00), Stock: 30, Barcode: "DA003", Category: CategoryDairy, Variant: Standard()},
		{Name: "Potato Chips", Price: price(20.00), Stock: 80, Barcode: "SN001", Category: CategorySnacks, Variant: Standard()},
		{Name: "Moongdal", Price: price(20.00), Stock: 80, Barcode: "SN001", Category: CategorySnacks, Variant: Standard()},
		{Name: "Puffcorn", Price: price(20.00), Stock: 80, Barcode: "SN001", Category: CategorySnacks, Variant: Standard()},
		{Name: "Soda", Price: price(35.00), Stock: 120, Barcode: "BE001", Category: CategoryBeverages, BOGO: true, Variant: Standard()},
		{Name: "Sprite", Price: price(35.00), Stock: 120, Barcode: "BE001", Category: CategoryBeverages, BOGO: true, Variant: Standard()},
		{Name: "T-Shirt", Price: price(299.00), Stock: 40, Barcode: "CL001", Category: CategoryClothing, Variant: Apparel("L")},
		{Name: "Skirt", Price: price(299.00), Stock: 40, Barcode: "CL001", Category: CategoryClothing, Variant: Apparel("L")},
		{Name: "Frock", Price: price(299.00), Stock: 40, Barcode: "CL001", Category: CategoryClothing, Variant: Apparel("L")},
	}
}

// NewSeededStore creates a memory store preloaded with the demo products.
func NewSeededStore() *MemoryStore {
	store := NewMemoryStore()
	for _, item := range SeedItems() {
		if err := store.Add(item); err != nil {
			// seed data is static, a failure here is a programming error
			panic(err)
		}
	}
	return store
}
