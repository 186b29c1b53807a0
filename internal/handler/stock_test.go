package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/handler"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStockHandler(t *testing.T) {
	basil := entities.StockLevel{
		VariantID:   10,
		SKU:         "SEED-BASIL",
		ProductName: "Basil seeds",
		Quantity:    25,
		UpdatedAt:   time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	adjustment := entities.StockMovement{ID: 5, VariantID: 10, QuantityChange: 20, Type: entities.MovementAdjustment, Reason: "supplier delivery"}
	reservation := entities.StockMovement{ID: 6, VariantID: 10, QuantityChange: -3, Type: entities.MovementOrder, OrderID: 100}

	testCases := []struct {
		name         string
		principal    entities.Principal
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockStockService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "get stock",
			principal: admin,
			method:    http.MethodGet,
			target:    "/stock/10",
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().GetStock(mock.Anything, int64(10)).Return(basil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"quantity":25`,
		},
		{
			name:         "customer cannot read stock",
			principal:    customer,
			method:       http.MethodGet,
			target:       "/stock/10",
			mockBehavior: func(*mocks.MockStockService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:      "unknown variant",
			principal: admin,
			method:    http.MethodGet,
			target:    "/stock/99",
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().GetStock(mock.Anything, int64(99)).Return(entities.StockLevel{}, entities.ErrStockNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"stock not found"`,
		},
		{
			name:      "adjust",
			principal: admin,
			method:    http.MethodPatch,
			target:    "/stock/10",
			body:      `{"quantity_change":20,"reason":"supplier delivery"}`,
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().AdjustStock(mock.Anything, int64(10), 20, "supplier delivery").Return(basil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"sku":"SEED-BASIL"`,
		},
		{
			name:      "write-off above stock",
			principal: admin,
			method:    http.MethodPatch,
			target:    "/stock/10",
			body:      `{"quantity_change":-40,"reason":"frost damage"}`,
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().AdjustStock(mock.Anything, int64(10), -40, "frost damage").
					Return(entities.StockLevel{}, &entities.InsufficientStockError{VariantID: 10, Requested: 40, Available: 25}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"available":25`,
		},
		{
			name:         "adjust without reason",
			principal:    admin,
			method:       http.MethodPatch,
			target:       "/stock/10",
			body:         `{"quantity_change":5}`,
			mockBehavior: func(*mocks.MockStockService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Reason":"required"`,
		},
		{
			name:      "low stock with default threshold",
			principal: admin,
			method:    http.MethodGet,
			target:    "/stock/low",
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().ListLowStock(mock.Anything, 10, 0, 0).
					Return(entities.StockLevelPage{Items: []entities.StockLevel{basil}, Total: 1, Limit: 50}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1,"limit":50,"offset":0`,
		},
		{
			name:         "low stock with bad threshold",
			principal:    admin,
			method:       http.MethodGet,
			target:       "/stock/low?threshold=few",
			mockBehavior: func(*mocks.MockStockService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:      "movements filtered",
			principal: admin,
			method:    http.MethodGet,
			target:    "/stock-movements?variant_id=10&type=adjustment&limit=5",
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().ListMovements(mock.Anything, entities.MovementFilter{VariantID: 10, Type: entities.MovementAdjustment, Limit: 5}).
					Return(entities.MovementPage{Items: []entities.StockMovement{adjustment}, Total: 1, Limit: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"reason":"supplier delivery"`,
		},
		{
			name:      "movements of unknown type",
			principal: admin,
			method:    http.MethodGet,
			target:    "/stock-movements?type=theft",
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().ListMovements(mock.Anything, entities.MovementFilter{Type: "theft"}).
					Return(entities.MovementPage{}, entities.NewValidationError("type", `unknown movement type "theft"`)).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:      "movement of an order",
			principal: admin,
			method:    http.MethodGet,
			target:    "/stock-movements/6",
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().GetMovement(mock.Anything, int64(6)).Return(reservation, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":100`,
		},
		{
			name:      "unknown movement",
			principal: admin,
			method:    http.MethodGet,
			target:    "/stock-movements/7",
			mockBehavior: func(svc *mocks.MockStockService) {
				svc.EXPECT().GetMovement(mock.Anything, int64(7)).Return(entities.StockMovement{}, entities.ErrMovementNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"movement not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockStockService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewStockHandler(logger, svc, authAs(tc.principal))

			status, body := serve(t, h, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
