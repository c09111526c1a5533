package repository_test

import (
	"context"
	"testing"
	"time"

	db "github.com/fjod/go_pos/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.Repository {
	t.Helper()

	// Use in-memory database for tests
	repo, err := db.NewRepository(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	if err := repo.RunMigrations("./migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return repo
}

func sampleOrder(id string) *db.Order {
	return &db.Order{
		ID:          id,
		Customer:    "divya",
		Method:      "UPI",
		Subtotal:    "135",
		Discount:    "0",
		Tax:         "24.3",
		GrandTotal:  "159.3",
		ReceiptJSON: []byte(`{"order_id":"` + id + `"}`),
		CreatedAt:   time.Date(2025, 4, 12, 15, 4, 5, 0, time.UTC),
		Items: []db.OrderItem{
			{Name: "Milk", Qty: 5, PaidQty: 3, UnitPrice: "25", LineTotal: "75", BOGO: true},
			{Name: "Apple", Qty: 2, PaidQty: 2, UnitPrice: "30", LineTotal: "60"},
		},
	}
}

func TestSaveOrder_And_GetOrder(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveOrder(ctx, sampleOrder("ord-1")))

	got, err := repo.GetOrder(ctx, "ord-1")
	require.NoError(t, err)

	assert.Equal(t, "divya", got.Customer)
	assert.Equal(t, "UPI", got.Method)
	assert.Equal(t, "159.3", got.GrandTotal)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Milk", got.Items[0].Name)
	assert.Equal(t, 3, got.Items[0].PaidQty)
	assert.True(t, got.Items[0].BOGO)
	assert.Equal(t, "Apple", got.Items[1].Name)
	assert.False(t, got.Items[1].BOGO)
}

func TestGetOrder_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, db.ErrOrderNotFound)
}

func TestSaveOrder_DuplicateID(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveOrder(ctx, sampleOrder("ord-1")))
	assert.Error(t, repo.SaveOrder(ctx, sampleOrder("ord-1")))
}

func TestSaveOrder_WritesOutboxEvent(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveOrder(ctx, sampleOrder("ord-1")))
	require.NoError(t, repo.SaveOrder(ctx, sampleOrder("ord-2")))

	events, err := repo.GetUnprocessedEvents(ctx, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "ord-1", events[0].AggregateID)
	assert.Equal(t, db.EventOrderFinalized, events[0].EventType)
	assert.JSONEq(t, `{"order_id":"ord-1"}`, string(events[0].Payload))
}

func TestMarkEventAsProcessed(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveOrder(ctx, sampleOrder("ord-1")))

	events, err := repo.GetUnprocessedEvents(ctx, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, repo.MarkEventAsProcessed(ctx, events[0].ID))

	events, err = repo.GetUnprocessedEvents(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetUnprocessedEvents_RespectsLimit(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	for _, id := range []string{"ord-1", "ord-2", "ord-3"} {
		require.NoError(t, repo.SaveOrder(ctx, sampleOrder(id)))
	}

	events, err := repo.GetUnprocessedEvents(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
