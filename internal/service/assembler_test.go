package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderAssembler_Build(t *testing.T) {
	type MockBehavior func(catalog *mocks.MockVariantCatalog, stock *mocks.MockStockLedger)

	seeds := entities.Variant{ID: 10, SKU: "SEED-BASIL", Price: decimal.RequireFromString("4.99"), Active: true}
	pot := entities.Variant{ID: 11, SKU: "POT-20", Price: decimal.RequireFromString("12.50"), Active: true}
	retired := entities.Variant{ID: 12, SKU: "OLD-HOSE", Price: decimal.RequireFromString("9.00"), Active: false}

	testCases := []struct {
		name         string
		lines        []entities.LineRequest
		mockBehavior MockBehavior
		wantTotal    string
		wantErr      error
	}{
		{
			name: "OK",
			lines: []entities.LineRequest{
				{VariantID: 10, Quantity: 3},
				{SKU: "POT-20", Quantity: 1},
			},
			mockBehavior: func(catalog *mocks.MockVariantCatalog, stock *mocks.MockStockLedger) {
				catalog.EXPECT().GetByID(mock.Anything, int64(10)).Return(seeds, nil).Once()
				catalog.EXPECT().GetBySKU(mock.Anything, "POT-20").Return(pot, nil).Once()
				stock.EXPECT().GetAvailable(mock.Anything, int64(10)).Return(5, nil).Once()
				stock.EXPECT().GetAvailable(mock.Anything, int64(11)).Return(1, nil).Once()
			},
			wantTotal: "27.47",
		},
		{
			name:         "no lines",
			lines:        nil,
			mockBehavior: func(*mocks.MockVariantCatalog, *mocks.MockStockLedger) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "zero quantity is rejected before lookups",
			lines: []entities.LineRequest{
				{VariantID: 10, Quantity: 1},
				{VariantID: 11, Quantity: 0},
			},
			mockBehavior: func(*mocks.MockVariantCatalog, *mocks.MockStockLedger) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "unknown variant",
			lines: []entities.LineRequest{{SKU: "NOPE", Quantity: 1}},
			mockBehavior: func(catalog *mocks.MockVariantCatalog, _ *mocks.MockStockLedger) {
				catalog.EXPECT().GetBySKU(mock.Anything, "NOPE").Return(entities.Variant{}, entities.ErrVariantNotFound).Once()
			},
			wantErr: entities.ErrVariantNotFound,
		},
		{
			name:  "inactive variant",
			lines: []entities.LineRequest{{VariantID: 12, Quantity: 1}},
			mockBehavior: func(catalog *mocks.MockVariantCatalog, _ *mocks.MockStockLedger) {
				catalog.EXPECT().GetByID(mock.Anything, int64(12)).Return(retired, nil).Once()
			},
			wantErr: entities.ErrValidation,
		},
		{
			name: "missing stock row counts as zero",
			lines: []entities.LineRequest{
				{VariantID: 11, Quantity: 1},
			},
			mockBehavior: func(catalog *mocks.MockVariantCatalog, stock *mocks.MockStockLedger) {
				catalog.EXPECT().GetByID(mock.Anything, int64(11)).Return(pot, nil).Once()
				stock.EXPECT().GetAvailable(mock.Anything, int64(11)).Return(0, entities.ErrStockNotFound).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockVariantCatalog(t)
			stock := mocks.NewMockStockLedger(t)
			tc.mockBehavior(catalog, stock)

			assembler := service.NewOrderAssembler(service.NewVariantResolver(catalog), stock, 0)
			draft, err := assembler.Build(context.Background(), 7, 1, 2, tc.lines)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, draft.Total.StringFixed(2))
			assert.Equal(t, int64(7), draft.UserID)
			assert.Equal(t, int64(1), draft.DeliveryAddressID)
			assert.Equal(t, int64(2), draft.BillingAddressID)
			require.Len(t, draft.Lines, len(tc.lines))
			assert.Equal(t, "SEED-BASIL", draft.Lines[0].SKU)
		})
	}
}

func TestOrderAssembler_Build_TooManyLines(t *testing.T) {
	assembler := service.NewOrderAssembler(service.NewVariantResolver(mocks.NewMockVariantCatalog(t)), mocks.NewMockStockLedger(t), 2)

	lines := []entities.LineRequest{{VariantID: 1, Quantity: 1}, {VariantID: 2, Quantity: 1}, {VariantID: 3, Quantity: 1}}
	_, err := assembler.Build(context.Background(), 1, 1, 1, lines)

	var target *entities.ValidationError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "lines", target.Field)
}

func TestOrderAssembler_Build_AggregatesRepeatedVariant(t *testing.T) {
	seeds := entities.Variant{ID: 10, SKU: "SEED-BASIL", Price: decimal.RequireFromString("4.99"), Active: true}

	catalog := mocks.NewMockVariantCatalog(t)
	catalog.EXPECT().GetByID(mock.Anything, int64(10)).Return(seeds, nil).Twice()
	stock := mocks.NewMockStockLedger(t)
	stock.EXPECT().GetAvailable(mock.Anything, int64(10)).Return(3, nil).Once()

	assembler := service.NewOrderAssembler(service.NewVariantResolver(catalog), stock, 0)
	_, err := assembler.Build(context.Background(), 1, 1, 1, []entities.LineRequest{
		{VariantID: 10, Quantity: 2},
		{VariantID: 10, Quantity: 2},
	})

	var target *entities.InsufficientStockError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, int64(10), target.VariantID)
	assert.Equal(t, 4, target.Requested)
	assert.Equal(t, 3, target.Available)
}

func TestOrderAssembler_Price_SkipsStock(t *testing.T) {
	seeds := entities.Variant{ID: 10, SKU: "SEED-BASIL", Price: decimal.RequireFromString("4.99"), Active: true}

	catalog := mocks.NewMockVariantCatalog(t)
	catalog.EXPECT().GetByID(mock.Anything, int64(10)).Return(seeds, nil).Once()

	// остатков нет совсем, но для сметы это не важно
	assembler := service.NewOrderAssembler(service.NewVariantResolver(catalog), mocks.NewMockStockLedger(t), 0)
	lines, err := assembler.Price(context.Background(), []entities.LineRequest{{VariantID: 10, Quantity: 500}})

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "4.99", lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "2495.00", entities.OrderTotal(lines).StringFixed(2))
}
