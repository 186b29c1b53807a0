package service

import (
	"context"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
)

type StockLedger interface {
	GetAvailable(ctx context.Context, variantID int64) (int, error)
	TryReserve(ctx context.Context, variantID int64, quantity int) (bool, error)
	Release(ctx context.Context, variantID int64, quantity int) error
	RecordMovements(ctx context.Context, movements []entities.StockMovement) error
}

type VariantCatalog interface {
	GetByID(ctx context.Context, id int64) (entities.Variant, error)
	GetBySKU(ctx context.Context, sku string) (entities.Variant, error)
	ListByProductName(ctx context.Context, name string) ([]entities.Variant, error)
}

type OrderRepo interface {
	InsertOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	InsertLines(ctx context.Context, orderID int64, lines []entities.DraftLine) ([]entities.OrderLine, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, id int64) (entities.Order, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.Order, error)
}

type AddressRepo interface {
	GetByID(ctx context.Context, id int64) (entities.Address, error)
	GetDefault(ctx context.Context, userID int64) (entities.Address, error)
	ListForUser(ctx context.Context, userID int64) ([]entities.Address, error)
	CountForUser(ctx context.Context, userID int64) (int, error)
	Create(ctx context.Context, userID int64, in entities.AddressInput, isDefault bool) (entities.Address, error)
	Update(ctx context.Context, id int64, in entities.AddressInput) (entities.Address, error)
	Delete(ctx context.Context, id int64) error
	ClearDefaults(ctx context.Context, userID int64) error
	SetDefault(ctx context.Context, id int64) error
}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Create(ctx context.Context, email, name, passwordHash string) (entities.User, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Notifier доставляет уведомления о заказе. Вызывается только после коммита.
type Notifier interface {
	Notify(ctx context.Context, kind entities.NotificationKind, order entities.Order) error
}
