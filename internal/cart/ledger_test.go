package cart

import (
	"testing"

	"github.com/fjod/go_pos/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedger(t *testing.T) (*Ledger, *catalog.MemoryStore) {
	t.Helper()
	store := catalog.NewMemoryStore()
	require.NoError(t, store.Add(catalog.Item{
		Name:     "Apple",
		Price:    decimal.NewFromFloat(30.00),
		Stock:    100,
		Category: catalog.CategoryFruits,
	}))
	require.NoError(t, store.Add(catalog.Item{
		Name:     "Milk",
		Price:    decimal.NewFromFloat(25.00),
		Stock:    50,
		Category: catalog.CategoryDairy,
		BOGO:     true,
	}))
	return NewLedger(store), store
}

func stockOf(t *testing.T, store *catalog.MemoryStore, name string) int {
	t.Helper()
	item, err := store.FindByName(name)
	require.NoError(t, err)
	return item.Stock
}

func TestLedger_AddItem_SnapshotsPriceAndOffer(t *testing.T) {
	ledger, store := setupLedger(t)

	line, err := ledger.AddItem("milk", 5)
	require.NoError(t, err)

	assert.Equal(t, "Milk", line.Name) // canonical catalog name, not the input
	assert.Equal(t, 5, line.Qty)
	assert.True(t, line.BOGO)
	assert.True(t, line.UnitPrice.Equal(decimal.NewFromFloat(25.00)))
	assert.Equal(t, 45, stockOf(t, store, "Milk"))
}

func TestLedger_AddItem_InvalidQuantity(t *testing.T) {
	ledger, store := setupLedger(t)

	_, err := ledger.AddItem("Apple", 0)
	assert.ErrorIs(t, err, catalog.ErrInvalidQuantity)

	_, err = ledger.AddItem("Apple", -2)
	assert.ErrorIs(t, err, catalog.ErrInvalidQuantity)

	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 100, stockOf(t, store, "Apple"))
}

func TestLedger_AddItem_NotFound(t *testing.T) {
	ledger, _ := setupLedger(t)

	_, err := ledger.AddItem("Durian", 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_AddItem_InsufficientStock(t *testing.T) {
	ledger, store := setupLedger(t)

	_, err := ledger.AddItem("Apple", 1000)

	var insufficient *catalog.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 100, insufficient.Available)

	// no partial reservation, no line
	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 100, stockOf(t, store, "Apple"))
}

func TestLedger_AddItem_CaseInsensitiveSameEntry(t *testing.T) {
	ledger, store := setupLedger(t)

	_, err := ledger.AddItem("apple", 1)
	require.NoError(t, err)
	_, err = ledger.AddItem("APPLE", 1)
	require.NoError(t, err)

	assert.Equal(t, 98, stockOf(t, store, "Apple"))
	lines := ledger.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Apple", lines[0].Name)
	assert.Equal(t, "Apple", lines[1].Name)
}

func TestLedger_RemoveItem_ReleasesStock(t *testing.T) {
	ledger, store := setupLedger(t)
	_, err := ledger.AddItem("Apple", 5)
	require.NoError(t, err)
	require.Equal(t, 95, stockOf(t, store, "Apple"))

	require.NoError(t, ledger.RemoveItem(0))

	assert.Equal(t, 100, stockOf(t, store, "Apple"))
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_RemoveItem_PreservesOrder(t *testing.T) {
	ledger, _ := setupLedger(t)
	_, _ = ledger.AddItem("Apple", 1)
	_, _ = ledger.AddItem("Milk", 2)
	_, _ = ledger.AddItem("Apple", 3)

	require.NoError(t, ledger.RemoveItem(1))

	lines := ledger.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Qty)
	assert.Equal(t, 3, lines[1].Qty)
}

func TestLedger_RemoveItem_IndexOutOfRange(t *testing.T) {
	ledger, _ := setupLedger(t)
	_, _ = ledger.AddItem("Apple", 1)

	assert.ErrorIs(t, ledger.RemoveItem(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, ledger.RemoveItem(1), ErrIndexOutOfRange)
	assert.Equal(t, 1, ledger.Len())
}

func TestLedger_Clear_DoesNotTouchStock(t *testing.T) {
	ledger, store := setupLedger(t)
	_, _ = ledger.AddItem("Apple", 5)
	_, _ = ledger.AddItem("Milk", 3)

	ledger.Clear()

	assert.Equal(t, 0, ledger.Len())
	// the sale is final, stock stays consumed
	assert.Equal(t, 95, stockOf(t, store, "Apple"))
	assert.Equal(t, 47, stockOf(t, store, "Milk"))
}

func TestLedger_StockConservation(t *testing.T) {
	ledger, store := setupLedger(t)

	check := func() {
		held := 0
		for _, line := range ledger.Lines() {
			if line.Name == "Apple" {
				held += line.Qty
			}
		}
		assert.Equal(t, 100, stockOf(t, store, "Apple")+held)
	}

	check()
	_, _ = ledger.AddItem("Apple", 10)
	check()
	_, _ = ledger.AddItem("Apple", 7)
	check()
	require.NoError(t, ledger.RemoveItem(0))
	check()
	_, _ = ledger.AddItem("Apple", 2)
	check()
	require.NoError(t, ledger.RemoveItem(1))
	check()
}

func TestLedger_Lines_IsASnapshot(t *testing.T) {
	ledger, _ := setupLedger(t)
	_, _ = ledger.AddItem("Apple", 1)

	lines := ledger.Lines()
	lines[0].Qty = 999

	assert.Equal(t, 1, ledger.Lines()[0].Qty)
}
