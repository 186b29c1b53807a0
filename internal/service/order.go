package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
)

type OrderBuilder interface {
	Build(ctx context.Context, userID, deliveryAddressID, billingAddressID int64, requested []entities.LineRequest) (entities.OrderDraft, error)
}

type OrderStorage interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.Order, bool, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type OrderServiceConfig struct {
	DefaultPageSize     int
	MaxPageSize         int
	NotificationTimeout time.Duration
	Retry               utils.RetryConfig
}

type OrderService struct {
	logger    *slog.Logger
	addresses AddressRepo
	builder   OrderBuilder
	storage   OrderStorage
	cache     Cache
	notifier  Notifier
	cfg       OrderServiceConfig

	// незавершенные уведомления
	pending sync.WaitGroup

	// cacheMu упорядочивает записи в кэш; cacheGen растет при каждой смене статуса.
	// Чтение из базы попадает в кэш, только если поколение за время чтения не изменилось.
	cacheMu  sync.Mutex
	cacheGen uint64
}

func NewOrderService(
	logger *slog.Logger,
	addresses AddressRepo,
	builder OrderBuilder,
	storage OrderStorage,
	cache Cache,
	notifier Notifier,
	cfg OrderServiceConfig,
) *OrderService {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	if cfg.NotificationTimeout <= 0 {
		cfg.NotificationTimeout = 5 * time.Second
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		}
	}

	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		addresses: addresses,
		builder:   builder,
		storage:   storage,
		cache:     cache,
		notifier:  notifier,
		cfg:       cfg,
	}
}

// PlaceOrder проверяет, что оба адреса принадлежат пользователю, собирает черновик
// и сохраняет заказ. Подтверждение отправляется после коммита и не влияет на результат.
func (s *OrderService) PlaceOrder(
	ctx context.Context,
	userID, deliveryAddressID, billingAddressID int64,
	lines []entities.LineRequest,
) (entities.Order, error) {
	if err := s.checkAddress(ctx, userID, deliveryAddressID); err != nil {
		return entities.Order{}, err
	}
	if billingAddressID != deliveryAddressID {
		if err := s.checkAddress(ctx, userID, billingAddressID); err != nil {
			return entities.Order{}, err
		}
	}

	draft, err := s.builder.Build(ctx, userID, deliveryAddressID, billingAddressID, lines)
	if err != nil {
		return entities.Order{}, err
	}

	order, err := s.storage.CreateOrder(ctx, draft)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", userID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	s.notify(ctx, entities.NotificationOrderConfirmation, order)
	return order, nil
}

func (s *OrderService) checkAddress(ctx context.Context, userID, addressID int64) error {
	address, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return fmt.Errorf("address %d: %w", addressID, entities.ErrForbidden)
	}
	return nil
}

// GetOrder отдает заказ владельцу или администратору.
func (s *OrderService) GetOrder(ctx context.Context, principal entities.Principal, id int64) (entities.Order, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if !principal.IsAdmin && order.UserID != principal.UserID {
		return entities.Order{}, fmt.Errorf("order %d: %w", id, entities.ErrForbidden)
	}
	return order, nil
}

func (s *OrderService) loadOrder(ctx context.Context, id int64) (entities.Order, error) {
	key := cacheKey(id)

	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		s.logger.ErrorContext(ctx, "failed to unmarshal cached order", slog.Int64("order_id", id), slog.Any("error", err))
		s.cache.Delete(key)
	}

	gen := s.generation()

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.storage.GetByID(ctx, id)
		return err
	}
	if err := utils.Retry(s.cfg.Retry, fn, entities.ErrNotFound); err != nil {
		return entities.Order{}, err
	}

	s.storeIfCurrent(ctx, gen, order)
	return order, nil
}

// ListOrders возвращает страницу с limit, который реально применен после ограничений.
func (s *OrderService) ListOrders(ctx context.Context, userID int64, limit, offset int) (entities.OrderPage, error) {
	if offset < 0 {
		return entities.OrderPage{}, entities.NewValidationError("offset", "must not be negative")
	}
	limit = clampLimit(limit, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	orders, err := s.storage.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		return entities.OrderPage{}, err
	}
	return entities.OrderPage{Orders: orders, Limit: limit, Offset: offset}, nil
}

// UpdateStatus меняет статус заказа. Повторная установка того же статуса ничего не отправляет.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.Order, error) {
	order, changed, err := s.storage.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if !changed {
		return order, nil
	}

	s.refresh(ctx, order)
	s.logger.InfoContext(ctx, "order status changed", slog.Int64("order_id", id), slog.String("status", string(status)))

	s.notify(ctx, entities.NotificationStatusUpdate, order)
	return order, nil
}

func (s *OrderService) WarmUpCache(ctx context.Context, count int) error {
	gen := s.generation()
	orders, err := s.storage.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		s.storeIfCurrent(ctx, gen, order)
	}

	s.logger.Info("cache warmed up", slog.Int("count", len(orders)))
	return nil
}

// Wait дожидается отправки уже запущенных уведомлений.
func (s *OrderService) Wait() {
	s.pending.Wait()
}

func (s *OrderService) generation() uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.cacheGen
}

// storeIfCurrent пропускает запись, если после чтения из базы статус какого-либо заказа менялся:
// прочитанная строка могла быть старше той, что уже лежит в кэше.
func (s *OrderService) storeIfCurrent(ctx context.Context, gen uint64, order entities.Order) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.cacheGen != gen {
		return
	}
	s.store(ctx, order)
}

// refresh кладет в кэш заказ, только что закоммиченный со сменой статуса.
func (s *OrderService) refresh(ctx context.Context, order entities.Order) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cacheGen++
	s.store(ctx, order)
}

func (s *OrderService) store(ctx context.Context, order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal order", slog.Int64("order_id", order.ID), slog.Any("error", err))
		s.cache.Delete(cacheKey(order.ID))
		return
	}
	s.cache.Set(cacheKey(order.ID), data)
}

func (s *OrderService) notify(ctx context.Context, kind entities.NotificationKind, order entities.Order) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.NotificationTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, kind, order); err != nil {
			s.logger.WarnContext(ctx, "failed to send order notification",
				slog.Int64("order_id", order.ID),
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
	}()
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, max)
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// IsUserError сообщает, что ошибку должен исправить пользователь, а не сервис.
func IsUserError(err error) bool {
	return errors.Is(err, entities.ErrValidation) ||
		errors.Is(err, entities.ErrInsufficientStock) ||
		errors.Is(err, entities.ErrAmbiguous)
}
