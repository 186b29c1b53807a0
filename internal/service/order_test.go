package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/service/mocks"
	"github.com/SergeyBogomolovv/garden-shop/pkg/cache"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	addresses *mocks.MockAddressRepo
	builder   *mocks.MockOrderBuilder
	storage   *mocks.MockOrderStorage
	cache     *mocks.MockCache
	notifier  *mocks.MockNotifier
}

func newOrderService(t *testing.T) (*service.OrderService, orderServiceMocks) {
	m := orderServiceMocks{
		addresses: mocks.NewMockAddressRepo(t),
		builder:   mocks.NewMockOrderBuilder(t),
		storage:   mocks.NewMockOrderStorage(t),
		cache:     mocks.NewMockCache(t),
		notifier:  mocks.NewMockNotifier(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, m.addresses, m.builder, m.storage, m.cache, m.notifier, service.OrderServiceConfig{
		DefaultPageSize: 20,
		MaxPageSize:     50,
		Retry:           utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond},
	})
	return svc, m
}

func placedOrder() entities.Order {
	return entities.Order{
		ID:                100,
		UserID:            7,
		Status:            entities.StatusPending,
		DeliveryAddressID: 1,
		BillingAddressID:  2,
		Total:             decimal.RequireFromString("14.97"),
		Lines: []entities.OrderLine{
			{ID: 1, OrderID: 100, VariantID: 10, Quantity: 3, UnitPrice: decimal.RequireFromString("4.99")},
		},
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	lines := []entities.LineRequest{{VariantID: 10, Quantity: 3}}

	testCases := []struct {
		name         string
		mockBehavior func(m orderServiceMocks)
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(m orderServiceMocks) {
				m.addresses.EXPECT().GetByID(mock.Anything, int64(1)).Return(entities.Address{ID: 1, UserID: 7}, nil).Once()
				m.addresses.EXPECT().GetByID(mock.Anything, int64(2)).Return(entities.Address{ID: 2, UserID: 7}, nil).Once()
				m.builder.EXPECT().Build(mock.Anything, int64(7), int64(1), int64(2), lines).Return(entities.OrderDraft{UserID: 7}, nil).Once()
				m.storage.EXPECT().CreateOrder(mock.Anything, entities.OrderDraft{UserID: 7}).Return(placedOrder(), nil).Once()
				m.notifier.EXPECT().Notify(mock.Anything, entities.NotificationOrderConfirmation, placedOrder()).Return(nil).Once()
			},
		},
		{
			name: "notification failure does not fail the order",
			mockBehavior: func(m orderServiceMocks) {
				m.addresses.EXPECT().GetByID(mock.Anything, mock.Anything).Return(entities.Address{UserID: 7}, nil).Twice()
				m.builder.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(entities.OrderDraft{}, nil).Once()
				m.storage.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(placedOrder(), nil).Once()
				m.notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()
			},
		},
		{
			name: "billing address of another user",
			mockBehavior: func(m orderServiceMocks) {
				m.addresses.EXPECT().GetByID(mock.Anything, int64(1)).Return(entities.Address{ID: 1, UserID: 7}, nil).Once()
				m.addresses.EXPECT().GetByID(mock.Anything, int64(2)).Return(entities.Address{ID: 2, UserID: 8}, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name: "unknown delivery address",
			mockBehavior: func(m orderServiceMocks) {
				m.addresses.EXPECT().GetByID(mock.Anything, int64(1)).Return(entities.Address{}, entities.ErrAddressNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name: "insufficient stock",
			mockBehavior: func(m orderServiceMocks) {
				m.addresses.EXPECT().GetByID(mock.Anything, mock.Anything).Return(entities.Address{UserID: 7}, nil).Twice()
				m.builder.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(entities.OrderDraft{}, nil).Once()
				m.storage.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{VariantID: 10, Requested: 3, Available: 1}).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			order, err := svc.PlaceOrder(context.Background(), 7, 1, 2, lines)
			svc.Wait()

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), order.ID)
		})
	}
}

func TestOrderService_PlaceOrder_SameAddressCheckedOnce(t *testing.T) {
	svc, m := newOrderService(t)
	m.addresses.EXPECT().GetByID(mock.Anything, int64(1)).Return(entities.Address{ID: 1, UserID: 7}, nil).Once()
	m.builder.EXPECT().Build(mock.Anything, int64(7), int64(1), int64(1), mock.Anything).Return(entities.OrderDraft{}, nil).Once()
	m.storage.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(placedOrder(), nil).Once()
	m.notifier.EXPECT().Notify(mock.Anything, entities.NotificationOrderConfirmation, mock.Anything).Return(nil).Once()

	_, err := svc.PlaceOrder(context.Background(), 7, 1, 1, []entities.LineRequest{{VariantID: 10, Quantity: 1}})
	svc.Wait()
	require.NoError(t, err)
}

func TestOrderService_GetOrder(t *testing.T) {
	cached, err := func() ([]byte, error) {
		o := placedOrder()
		return o.Marshal()
	}()
	require.NoError(t, err)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		principal    entities.Principal
		mockBehavior func(m orderServiceMocks)
		wantErr      error
	}{
		{
			name:      "cache hit",
			principal: entities.Principal{UserID: 7},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("100").Return(cached, true).Once()
			},
		},
		{
			name:      "cache miss loads and stores",
			principal: entities.Principal{UserID: 7},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("100").Return(nil, false).Once()
				m.storage.EXPECT().GetByID(mock.Anything, int64(100)).Return(placedOrder(), nil).Once()
				m.cache.EXPECT().Set("100", mock.Anything).Return().Once()
			},
		},
		{
			name:      "corrupted cache entry is dropped",
			principal: entities.Principal{UserID: 7},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("100").Return([]byte("garbage"), true).Once()
				m.cache.EXPECT().Delete("100").Return().Once()
				m.storage.EXPECT().GetByID(mock.Anything, int64(100)).Return(placedOrder(), nil).Once()
				m.cache.EXPECT().Set("100", mock.Anything).Return().Once()
			},
		},
		{
			name:      "admin reads any order",
			principal: entities.Principal{UserID: 1, IsAdmin: true},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("100").Return(cached, true).Once()
			},
		},
		{
			name:      "other user is forbidden",
			principal: entities.Principal{UserID: 8},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("100").Return(cached, true).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "not found is not retried",
			principal: entities.Principal{UserID: 7},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("100").Return(nil, false).Once()
				m.storage.EXPECT().GetByID(mock.Anything, int64(100)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name:      "db error is retried",
			principal: entities.Principal{UserID: 7},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("100").Return(nil, false).Once()
				m.storage.EXPECT().GetByID(mock.Anything, int64(100)).Return(entities.Order{}, dbError).Twice()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			order, err := svc.GetOrder(context.Background(), tc.principal, 100)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), order.ID)
			assert.Equal(t, "14.97", order.Total.StringFixed(2))
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	testCases := []struct {
		name      string
		limit     int
		offset    int
		wantLimit int
		wantErr   error
	}{
		{name: "default page", limit: 0, wantLimit: 20},
		{name: "explicit page", limit: 5, offset: 10, wantLimit: 5},
		{name: "clamped", limit: 500, wantLimit: 50},
		{name: "negative offset", limit: 5, offset: -1, wantErr: entities.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			if tc.wantErr == nil {
				m.storage.EXPECT().ListForUser(mock.Anything, int64(7), tc.wantLimit, tc.offset).
					Return([]entities.Order{placedOrder()}, nil).Once()
			}

			page, err := svc.ListOrders(context.Background(), 7, tc.limit, tc.offset)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, page.Orders, 1)
			assert.Equal(t, tc.wantLimit, page.Limit)
			assert.Equal(t, tc.offset, page.Offset)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	processing := placedOrder()
	processing.Status = entities.StatusProcessing

	t.Run("changed", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.storage.EXPECT().UpdateStatus(mock.Anything, int64(100), entities.StatusProcessing).Return(processing, true, nil).Once()
		m.cache.EXPECT().Set("100", mock.Anything).Return().Once()
		m.notifier.EXPECT().Notify(mock.Anything, entities.NotificationStatusUpdate, processing).Return(nil).Once()

		order, err := svc.UpdateStatus(context.Background(), 100, entities.StatusProcessing)
		svc.Wait()
		require.NoError(t, err)
		assert.Equal(t, entities.StatusProcessing, order.Status)
	})

	t.Run("unchanged sends nothing", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.storage.EXPECT().UpdateStatus(mock.Anything, int64(100), entities.StatusProcessing).Return(processing, false, nil).Once()

		_, err := svc.UpdateStatus(context.Background(), 100, entities.StatusProcessing)
		svc.Wait()
		require.NoError(t, err)
	})

	t.Run("invalid transition", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.storage.EXPECT().UpdateStatus(mock.Anything, int64(100), entities.StatusDelivered).
			Return(entities.Order{}, false, &entities.InvalidTransitionError{From: entities.StatusPending, To: entities.StatusDelivered}).Once()

		_, err := svc.UpdateStatus(context.Background(), 100, entities.StatusDelivered)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}

// Чтение, начатое до смены статуса, не должно перезаписать кэш старой строкой.
func TestOrderService_GetOrder_ConcurrentStatusChange(t *testing.T) {
	storage := mocks.NewMockOrderStorage(t)
	notifier := mocks.NewMockNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, mocks.NewMockAddressRepo(t), mocks.NewMockOrderBuilder(t), storage,
		cache.NewLRUCache(10, time.Minute), notifier, service.OrderServiceConfig{})

	pending := placedOrder()
	cancelled := placedOrder()
	cancelled.Status = entities.StatusCancelled

	storage.EXPECT().UpdateStatus(mock.Anything, int64(100), entities.StatusCancelled).Return(cancelled, true, nil).Once()
	notifier.EXPECT().Notify(mock.Anything, entities.NotificationStatusUpdate, cancelled).Return(nil).Once()
	storage.EXPECT().GetByID(mock.Anything, int64(100)).
		RunAndReturn(func(ctx context.Context, id int64) (entities.Order, error) {
			// строка уже прочитана, а отмена коммитится до записи в кэш
			_, err := svc.UpdateStatus(ctx, id, entities.StatusCancelled)
			require.NoError(t, err)
			return pending, nil
		}).Once()

	principal := entities.Principal{UserID: 7}
	first, err := svc.GetOrder(context.Background(), principal, 100)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, first.Status)

	second, err := svc.GetOrder(context.Background(), principal, 100)
	svc.Wait()
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancelled, second.Status)
}

func TestOrderService_GetOrder_ReadAfterStatusChangeIsCached(t *testing.T) {
	storage := mocks.NewMockOrderStorage(t)
	notifier := mocks.NewMockNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lru := cache.NewLRUCache(10, time.Minute)
	svc := service.NewOrderService(logger, mocks.NewMockAddressRepo(t), mocks.NewMockOrderBuilder(t), storage,
		lru, notifier, service.OrderServiceConfig{})

	shipped := placedOrder()
	shipped.ID = 101
	shipped.Status = entities.StatusShipped

	storage.EXPECT().UpdateStatus(mock.Anything, int64(101), entities.StatusShipped).Return(shipped, true, nil).Once()
	notifier.EXPECT().Notify(mock.Anything, entities.NotificationStatusUpdate, shipped).Return(nil).Once()
	storage.EXPECT().GetByID(mock.Anything, int64(100)).Return(placedOrder(), nil).Once()

	_, err := svc.UpdateStatus(context.Background(), 101, entities.StatusShipped)
	require.NoError(t, err)
	svc.Wait()

	// одно чтение из базы, дальше заказ отдается из кэша
	for range 2 {
		order, err := svc.GetOrder(context.Background(), entities.Principal{UserID: 7}, 100)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, order.Status)
	}
	assert.Equal(t, 2, lru.Size())
}

func TestOrderService_WarmUpCache(t *testing.T) {
	svc, m := newOrderService(t)

	second := placedOrder()
	second.ID = 101
	m.storage.EXPECT().LatestOrders(mock.Anything, 2).Return([]entities.Order{placedOrder(), second}, nil).Once()
	m.cache.EXPECT().Set("100", mock.Anything).Return().Once()
	m.cache.EXPECT().Set("101", mock.Anything).Return().Once()

	require.NoError(t, svc.WarmUpCache(context.Background(), 2))
}

func TestIsUserError(t *testing.T) {
	assert.True(t, service.IsUserError(entities.NewValidationError("lines", "empty")))
	assert.True(t, service.IsUserError(&entities.InsufficientStockError{}))
	assert.True(t, service.IsUserError(&entities.AmbiguousOrNotFoundError{}))
	assert.False(t, service.IsUserError(entities.ErrOrderNotFound))
	assert.False(t, service.IsUserError(errors.New("db error")))
}
