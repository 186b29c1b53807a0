package repo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/postgres"
	"github.com/SergeyBogomolovv/garden-shop/internal/repo"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db        *sqlx.DB
	userID    int64
	addressID int64
	basil     int64
	pot       int64
}

// setupDB требует TEST_POSTGRES_DSN и очищает все таблицы перед тестом.
func setupDB(t *testing.T) fixture {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, postgres.Migrate(ctx, db, logger))

	_, err = db.ExecContext(ctx, `TRUNCATE quote_items, quotes, stock_movements, order_items, orders, addresses, stock,
		product_variants, products, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	f := fixture{db: db}
	require.NoError(t, db.GetContext(ctx, &f.userID,
		`INSERT INTO users (email, name, password_hash) VALUES ('gardener@example.com', 'Sam', 'x') RETURNING id`))
	require.NoError(t, db.GetContext(ctx, &f.addressID,
		`INSERT INTO addresses (user_id, street, city, postal_code, country, is_default)
		 VALUES ($1, '1 Garden Lane', 'Leeds', 'LS1 1AA', 'UK', TRUE) RETURNING id`, f.userID))

	var productID int64
	require.NoError(t, db.GetContext(ctx, &productID, `INSERT INTO products (name) VALUES ('Basil') RETURNING id`))
	require.NoError(t, db.GetContext(ctx, &f.basil,
		`INSERT INTO product_variants (product_id, sku, attributes, price)
		 VALUES ($1, 'SEED-BASIL', '{"pack": "small"}', 4.99) RETURNING id`, productID))
	require.NoError(t, db.GetContext(ctx, &f.pot,
		`INSERT INTO product_variants (product_id, sku, attributes, price)
		 VALUES ($1, 'POT-20', '{"size": "20cm"}', 12.50) RETURNING id`, productID))

	_, err = db.ExecContext(ctx, `INSERT INTO stock (variant_id, quantity) VALUES ($1, 3), ($2, 1)`, f.basil, f.pot)
	require.NoError(t, err)

	return f
}

func (f fixture) store() *service.OrderStore {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderStore(logger, trm.NewManager(f.db), repo.NewOrderRepo(f.db), repo.NewStockRepo(f.db))
}

func (f fixture) draft(lines ...entities.DraftLine) entities.OrderDraft {
	return entities.OrderDraft{
		UserID:            f.userID,
		DeliveryAddressID: f.addressID,
		BillingAddressID:  f.addressID,
		Lines:             lines,
		Total:             entities.OrderTotal(lines),
	}
}

func TestStockRepo(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()
	stock := repo.NewStockRepo(f.db)

	available, err := stock.GetAvailable(ctx, f.basil)
	require.NoError(t, err)
	assert.Equal(t, 3, available)

	ok, err := stock.TryReserve(ctx, f.basil, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = stock.TryReserve(ctx, f.basil, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, stock.Release(ctx, f.basil, 2))
	available, err = stock.GetAvailable(ctx, f.basil)
	require.NoError(t, err)
	assert.Equal(t, 2, available)

	_, err = stock.GetAvailable(ctx, 999)
	assert.ErrorIs(t, err, entities.ErrStockNotFound)
	assert.ErrorIs(t, stock.Release(ctx, 999, 1), entities.ErrStockNotFound)

	_, err = stock.TryReserve(ctx, f.basil, 0)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestOrderStore_Postgres_CreateAndCancel(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()
	store := f.store()

	order, err := store.CreateOrder(ctx, f.draft(
		entities.DraftLine{VariantID: f.basil, Quantity: 2, UnitPrice: decimal.RequireFromString("4.99")},
		entities.DraftLine{VariantID: f.pot, Quantity: 1, UnitPrice: decimal.RequireFromString("12.50")},
	))
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, order.Status)
	assert.Equal(t, "22.48", order.Total.StringFixed(2))
	require.Len(t, order.Lines, 2)
	assert.Equal(t, f.basil, order.Lines[0].VariantID)

	stored, err := store.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(stored.Total))
	assert.Len(t, stored.Lines, 2)

	cancelled, changed, err := store.UpdateStatus(ctx, order.ID, entities.StatusCancelled)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, entities.StatusCancelled, cancelled.Status)

	stock := repo.NewStockRepo(f.db)
	basil, err := stock.GetAvailable(ctx, f.basil)
	require.NoError(t, err)
	assert.Equal(t, 3, basil)

	var movements int
	require.NoError(t, f.db.GetContext(ctx, &movements, `SELECT COUNT(*) FROM stock_movements WHERE order_id = $1`, order.ID))
	assert.Equal(t, 4, movements)

	_, _, err = store.UpdateStatus(ctx, order.ID, entities.StatusProcessing)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestOrderStore_Postgres_RollbackOnShortage(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()

	_, err := f.store().CreateOrder(ctx, f.draft(
		entities.DraftLine{VariantID: f.basil, Quantity: 2, UnitPrice: decimal.RequireFromString("4.99")},
		entities.DraftLine{VariantID: f.pot, Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
	))

	var target *entities.InsufficientStockError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, f.pot, target.VariantID)
	assert.Equal(t, 1, target.Available)

	available, err := repo.NewStockRepo(f.db).GetAvailable(ctx, f.basil)
	require.NoError(t, err)
	assert.Equal(t, 3, available)

	var orders int
	require.NoError(t, f.db.GetContext(ctx, &orders, `SELECT COUNT(*) FROM orders`))
	assert.Zero(t, orders)
}

func TestOrderStore_Postgres_ConcurrentOrders(t *testing.T) {
	f := setupDB(t)
	store := f.store()

	draft := f.draft(entities.DraftLine{VariantID: f.basil, Quantity: 2, UnitPrice: decimal.RequireFromString("4.99")})

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = store.CreateOrder(context.Background(), draft)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)
	}
	assert.Equal(t, 1, succeeded)

	available, err := repo.NewStockRepo(f.db).GetAvailable(context.Background(), f.basil)
	require.NoError(t, err)
	assert.Equal(t, 1, available)
}

func TestVariantRepo(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()
	variants := repo.NewVariantRepo(f.db)

	v, err := variants.GetBySKU(ctx, "SEED-BASIL")
	require.NoError(t, err)
	assert.Equal(t, f.basil, v.ID)
	assert.Equal(t, map[string]string{"pack": "small"}, v.Attributes)
	assert.Equal(t, "4.99", v.Price.StringFixed(2))

	list, err := variants.ListByProductName(ctx, "basil")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = variants.GetByID(ctx, 999)
	assert.ErrorIs(t, err, entities.ErrVariantNotFound)
}

func TestStockService_Postgres_Adjust(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stock := repo.NewStockRepo(f.db)
	svc := service.NewStockService(logger, trm.NewManager(f.db), stock)

	level, err := svc.AdjustStock(ctx, f.basil, 7, "supplier delivery")
	require.NoError(t, err)
	assert.Equal(t, 10, level.Quantity)
	assert.Equal(t, "SEED-BASIL", level.SKU)
	assert.Equal(t, "Basil", level.ProductName)

	level, err = svc.AdjustStock(ctx, f.pot, -1, "cracked")
	require.NoError(t, err)
	assert.Zero(t, level.Quantity)

	// списание больше остатка откатывается целиком, движение не пишется
	_, err = svc.AdjustStock(ctx, f.pot, -1, "cracked")
	assert.ErrorIs(t, err, entities.ErrInsufficientStock)

	low, err := svc.ListLowStock(ctx, 5, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, low.Total)
	require.Len(t, low.Items, 1)
	assert.Equal(t, f.pot, low.Items[0].VariantID)

	page, err := svc.ListMovements(ctx, entities.MovementFilter{Type: entities.MovementAdjustment})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, f.pot, page.Items[0].VariantID)
	assert.Equal(t, -1, page.Items[0].QuantityChange)
	assert.Equal(t, "cracked", page.Items[0].Reason)
	assert.Zero(t, page.Items[0].OrderID)

	movement, err := svc.GetMovement(ctx, page.Items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 7, movement.QuantityChange)

	_, err = svc.GetMovement(ctx, 999)
	assert.ErrorIs(t, err, entities.ErrMovementNotFound)
	_, err = svc.AdjustStock(ctx, 999, 1, "recount")
	assert.ErrorIs(t, err, entities.ErrStockNotFound)
}

func TestStockRepo_ListMovements_ByOrder(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()

	order, err := f.store().CreateOrder(ctx, f.draft(
		entities.DraftLine{VariantID: f.basil, Quantity: 1, UnitPrice: decimal.RequireFromString("4.99")},
	))
	require.NoError(t, err)

	movements, total, err := repo.NewStockRepo(f.db).ListMovements(ctx, entities.MovementFilter{OrderID: order.ID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, movements, 1)
	assert.Equal(t, entities.MovementOrder, movements[0].Type)
	assert.Equal(t, order.ID, movements[0].OrderID)
	assert.Equal(t, -1, movements[0].QuantityChange)
}

func TestQuoteRepo(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()
	quotes := repo.NewQuoteRepo(f.db)

	lines := []entities.DraftLine{
		{VariantID: f.pot, Quantity: 1, UnitPrice: decimal.RequireFromString("12.50")},
		{VariantID: f.basil, Quantity: 3, UnitPrice: decimal.RequireFromString("4.99")},
	}
	quote, err := quotes.InsertQuote(ctx, entities.QuoteDraft{UserID: f.userID, Lines: lines, Total: entities.OrderTotal(lines)})
	require.NoError(t, err)
	assert.Equal(t, entities.QuotePending, quote.Status)
	assert.Equal(t, "27.47", quote.Total.StringFixed(2))
	require.Len(t, quote.Lines, 2)
	assert.Equal(t, f.pot, quote.Lines[0].VariantID)

	// цена в смете не меняется вместе с каталогом
	_, err = f.db.ExecContext(ctx, `UPDATE product_variants SET price = 99 WHERE id = $1`, f.pot)
	require.NoError(t, err)

	stored, err := quotes.GetQuoteByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "12.50", stored.Lines[0].UnitPrice.StringFixed(2))

	list, total, err := quotes.ListForUser(ctx, f.userID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Lines, 2)

	accepted, err := quotes.UpdateQuoteStatus(ctx, quote.ID, entities.QuoteAccepted)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteAccepted, accepted.Status)

	_, err = quotes.GetQuoteByID(ctx, 999)
	assert.ErrorIs(t, err, entities.ErrQuoteNotFound)
	_, err = quotes.InsertQuote(ctx, entities.QuoteDraft{UserID: f.userID})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestAddressRepo_UpdateDelete(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()
	addresses := repo.NewAddressRepo(f.db)

	updated, err := addresses.Update(ctx, f.addressID, entities.AddressInput{
		Street: "2 Orchard Row", City: "York", PostalCode: "YO1 7HH", Country: "UK",
	})
	require.NoError(t, err)
	assert.Equal(t, "York", updated.City)
	assert.True(t, updated.IsDefault)

	spare, err := addresses.Create(ctx, f.userID, entities.AddressInput{
		Street: "3 Shed Lane", City: "Leeds", PostalCode: "LS2 2BB", Country: "UK",
	}, false)
	require.NoError(t, err)
	require.NoError(t, addresses.Delete(ctx, spare.ID))
	assert.ErrorIs(t, addresses.Delete(ctx, spare.ID), entities.ErrAddressNotFound)

	_, err = f.store().CreateOrder(ctx, f.draft(
		entities.DraftLine{VariantID: f.basil, Quantity: 1, UnitPrice: decimal.RequireFromString("4.99")},
	))
	require.NoError(t, err)
	err = addresses.Delete(ctx, f.addressID)
	assert.ErrorIs(t, err, entities.ErrAddressInUse)
	assert.ErrorIs(t, err, entities.ErrConflict)

	_, err = addresses.Update(ctx, 999, entities.AddressInput{Street: "x", City: "x", PostalCode: "x", Country: "x"})
	assert.ErrorIs(t, err, entities.ErrAddressNotFound)
}

func TestUserRepo_Create(t *testing.T) {
	f := setupDB(t)
	ctx := context.Background()
	users := repo.NewUserRepo(f.db)

	user, err := users.Create(ctx, "robin@example.com", "Robin", "hash")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsAdmin)

	found, err := users.GetByEmail(ctx, "ROBIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = users.Create(ctx, "Gardener@Example.com", "Sam", "hash")
	assert.ErrorIs(t, err, entities.ErrEmailTaken)
}
