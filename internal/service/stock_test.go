package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStockService(t *testing.T) (*service.StockService, *mocks.MockStockInventory) {
	stock := mocks.NewMockStockInventory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewStockService(logger, passThroughTx(t), stock), stock
}

func TestStockService_AdjustStock(t *testing.T) {
	testCases := []struct {
		name         string
		change       int
		reason       string
		mockBehavior func(stock *mocks.MockStockInventory)
		wantQuantity int
		wantErr      error
	}{
		{
			name:   "delivery from supplier",
			change: 20,
			reason: " supplier delivery ",
			mockBehavior: func(stock *mocks.MockStockInventory) {
				stock.EXPECT().Release(mock.Anything, int64(10), 20).Return(nil).Once()
				stock.EXPECT().RecordMovements(mock.Anything, []entities.StockMovement{
					{VariantID: 10, QuantityChange: 20, Type: entities.MovementAdjustment, Reason: "supplier delivery"},
				}).Return(nil).Once()
				stock.EXPECT().GetLevel(mock.Anything, int64(10)).Return(entities.StockLevel{VariantID: 10, Quantity: 25}, nil).Once()
			},
			wantQuantity: 25,
		},
		{
			name:   "write-off",
			change: -3,
			reason: "frost damage",
			mockBehavior: func(stock *mocks.MockStockInventory) {
				stock.EXPECT().TryReserve(mock.Anything, int64(10), 3).Return(true, nil).Once()
				stock.EXPECT().RecordMovements(mock.Anything, []entities.StockMovement{
					{VariantID: 10, QuantityChange: -3, Type: entities.MovementAdjustment, Reason: "frost damage"},
				}).Return(nil).Once()
				stock.EXPECT().GetLevel(mock.Anything, int64(10)).Return(entities.StockLevel{VariantID: 10, Quantity: 2}, nil).Once()
			},
			wantQuantity: 2,
		},
		{
			name:   "write-off above stock",
			change: -9,
			reason: "frost damage",
			mockBehavior: func(stock *mocks.MockStockInventory) {
				stock.EXPECT().TryReserve(mock.Anything, int64(10), 9).Return(false, nil).Once()
				stock.EXPECT().GetAvailable(mock.Anything, int64(10)).Return(5, nil).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:   "unknown variant",
			change: 1,
			reason: "recount",
			mockBehavior: func(stock *mocks.MockStockInventory) {
				stock.EXPECT().Release(mock.Anything, int64(10), 1).Return(entities.ErrStockNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name:         "zero change",
			change:       0,
			reason:       "recount",
			mockBehavior: func(*mocks.MockStockInventory) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "blank reason",
			change:       1,
			reason:       "  ",
			mockBehavior: func(*mocks.MockStockInventory) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "reason too long",
			change:       1,
			reason:       strings.Repeat("x", 501),
			mockBehavior: func(*mocks.MockStockInventory) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, stock := newStockService(t)
			tc.mockBehavior(stock)

			level, err := svc.AdjustStock(context.Background(), 10, tc.change, tc.reason)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantQuantity, level.Quantity)
		})
	}
}

func TestStockService_AdjustStock_ReportsAvailable(t *testing.T) {
	svc, stock := newStockService(t)
	stock.EXPECT().TryReserve(mock.Anything, int64(10), 9).Return(false, nil).Once()
	stock.EXPECT().GetAvailable(mock.Anything, int64(10)).Return(5, nil).Once()

	_, err := svc.AdjustStock(context.Background(), 10, -9, "recount")

	var target *entities.InsufficientStockError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 9, target.Requested)
	assert.Equal(t, 5, target.Available)
}

func TestStockService_ListLowStock(t *testing.T) {
	testCases := []struct {
		name      string
		threshold int
		limit     int
		offset    int
		wantLimit int
		wantErr   error
	}{
		{name: "default page", threshold: 10, wantLimit: 50},
		{name: "clamped", threshold: 0, limit: 1000, wantLimit: 200},
		{name: "negative threshold", threshold: -1, wantErr: entities.ErrValidation},
		{name: "negative offset", threshold: 5, offset: -1, wantErr: entities.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, stock := newStockService(t)
			if tc.wantErr == nil {
				stock.EXPECT().ListLow(mock.Anything, tc.threshold, tc.wantLimit, tc.offset).
					Return([]entities.StockLevel{{VariantID: 10, Quantity: 0}}, 1, nil).Once()
			}

			page, err := svc.ListLowStock(context.Background(), tc.threshold, tc.limit, tc.offset)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, page.Limit)
			assert.Equal(t, 1, page.Total)
			assert.Len(t, page.Items, 1)
		})
	}
}

func TestStockService_ListMovements(t *testing.T) {
	t.Run("filter is passed with clamped limit", func(t *testing.T) {
		svc, stock := newStockService(t)
		stock.EXPECT().ListMovements(mock.Anything, entities.MovementFilter{
			VariantID: 10, Type: entities.MovementAdjustment, Limit: 100,
		}).Return([]entities.StockMovement{{ID: 1, VariantID: 10}}, 1, nil).Once()

		page, err := svc.ListMovements(context.Background(), entities.MovementFilter{VariantID: 10, Type: entities.MovementAdjustment})
		require.NoError(t, err)
		assert.Equal(t, 100, page.Limit)
		assert.Len(t, page.Items, 1)
	})

	t.Run("unknown type", func(t *testing.T) {
		svc, _ := newStockService(t)
		_, err := svc.ListMovements(context.Background(), entities.MovementFilter{Type: "theft"})
		assert.ErrorIs(t, err, entities.ErrValidation)
	})
}

func TestStockService_GetMovement(t *testing.T) {
	svc, stock := newStockService(t)
	stock.EXPECT().GetMovement(mock.Anything, int64(5)).Return(entities.StockMovement{ID: 5}, nil).Once()
	stock.EXPECT().GetMovement(mock.Anything, int64(6)).Return(entities.StockMovement{}, entities.ErrMovementNotFound).Once()

	movement, err := svc.GetMovement(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), movement.ID)

	_, err = svc.GetMovement(context.Background(), 6)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
