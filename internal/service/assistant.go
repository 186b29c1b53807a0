package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
)

// IntentParser - внешняя языковая модель: извлекает намерение и отвечает на общие вопросы.
type IntentParser interface {
	ParseIntent(ctx context.Context, message string) (entities.Intent, error)
	Chat(ctx context.Context, message string) (string, error)
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID, deliveryAddressID, billingAddressID int64, lines []entities.LineRequest) (entities.Order, error)
}

type ChatService struct {
	logger    *slog.Logger
	parser    IntentParser
	resolver  *VariantResolver
	stock     StockLedger
	addresses AddressRepo
	orders    OrderPlacer
}

func NewChatService(
	logger *slog.Logger,
	parser IntentParser,
	resolver *VariantResolver,
	stock StockLedger,
	addresses AddressRepo,
	orders OrderPlacer,
) *ChatService {
	return &ChatService{
		logger:    logger.With(slog.String("service", "chat")),
		parser:    parser,
		resolver:  resolver,
		stock:     stock,
		addresses: addresses,
		orders:    orders,
	}
}

// Reply разбирает сообщение и выполняет намерение. Ошибки, которые может исправить
// пользователь (неоднозначный товар, нехватка остатка), возвращаются как уточняющий ответ.
func (s *ChatService) Reply(ctx context.Context, principal entities.Principal, message string) (entities.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.ChatReply{}, entities.NewValidationError("message", "must not be empty")
	}

	intent, err := s.parser.ParseIntent(ctx, message)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to parse intent, falling back to general chat", slog.Any("error", err))
		intent = entities.Intent{Kind: entities.IntentGeneral}
	}

	switch intent.Kind {
	case entities.IntentProductInfo:
		if len(intent.Items) > 0 {
			return s.productInfo(ctx, intent.Items)
		}
	case entities.IntentPlaceOrder:
		return s.placeOrder(ctx, principal, intent.Items)
	}

	return s.general(ctx, message)
}

func (s *ChatService) general(ctx context.Context, message string) (entities.ChatReply, error) {
	answer, err := s.parser.Chat(ctx, message)
	if err != nil {
		return entities.ChatReply{}, fmt.Errorf("%w: assistant: %v", entities.ErrUnavailable, err)
	}
	return entities.ChatReply{Message: answer, Intent: entities.IntentGeneral}, nil
}

func (s *ChatService) productInfo(ctx context.Context, items []entities.IntentItem) (entities.ChatReply, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		variant, err := s.resolveItem(ctx, item)
		if err != nil {
			if reply, ok := clarification(entities.IntentProductInfo, err); ok {
				return reply, nil
			}
			return entities.ChatReply{}, err
		}

		available, err := s.stock.GetAvailable(ctx, variant.ID)
		if errors.Is(err, entities.ErrStockNotFound) {
			available = 0
		} else if err != nil {
			return entities.ChatReply{}, err
		}

		parts = append(parts, fmt.Sprintf("%s (%s): %s, %d in stock",
			variant.ProductName, variant.SKU, variant.Price.StringFixed(2), available))
	}

	return entities.ChatReply{
		Message: strings.Join(parts, "\n"),
		Intent:  entities.IntentProductInfo,
	}, nil
}

// placeOrder использует адрес по умолчанию и для доставки, и для оплаты.
func (s *ChatService) placeOrder(ctx context.Context, principal entities.Principal, items []entities.IntentItem) (entities.ChatReply, error) {
	if len(items) == 0 {
		return entities.ChatReply{
			Message:            "Which products would you like to order?",
			Intent:             entities.IntentPlaceOrder,
			NeedsClarification: true,
		}, nil
	}

	lines := make([]entities.LineRequest, 0, len(items))
	for _, item := range items {
		variant, err := s.resolveItem(ctx, item)
		if err != nil {
			if reply, ok := clarification(entities.IntentPlaceOrder, err); ok {
				return reply, nil
			}
			return entities.ChatReply{}, err
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lines = append(lines, entities.LineRequest{VariantID: variant.ID, SKU: variant.SKU, Quantity: quantity})
	}

	address, err := s.addresses.GetDefault(ctx, principal.UserID)
	if errors.Is(err, entities.ErrAddressNotFound) {
		return entities.ChatReply{
			Message:            "Please add a delivery address before ordering.",
			Intent:             entities.IntentPlaceOrder,
			NeedsClarification: true,
		}, nil
	}
	if err != nil {
		return entities.ChatReply{}, err
	}

	order, err := s.orders.PlaceOrder(ctx, principal.UserID, address.ID, address.ID, lines)
	if err != nil {
		if reply, ok := clarification(entities.IntentPlaceOrder, err); ok {
			return reply, nil
		}
		return entities.ChatReply{}, err
	}

	return entities.ChatReply{
		Message: fmt.Sprintf("Order #%d placed, total %s.", order.ID, order.Total.StringFixed(2)),
		Intent:  entities.IntentPlaceOrder,
		Order:   &order,
	}, nil
}

func (s *ChatService) resolveItem(ctx context.Context, item entities.IntentItem) (entities.Variant, error) {
	if strings.TrimSpace(item.SKU) != "" {
		variant, err := s.resolver.Resolve(ctx, item.SKU)
		if err == nil || !errors.Is(err, entities.ErrNotFound) || item.BaseProduct == "" {
			return variant, err
		}
	}
	return s.resolver.ResolveByDescription(ctx, item.BaseProduct, item.Attributes)
}

func clarification(kind entities.IntentKind, err error) (entities.ChatReply, bool) {
	var (
		ambiguous    *entities.AmbiguousOrNotFoundError
		insufficient *entities.InsufficientStockError
		message      string
	)
	switch {
	case errors.As(err, &ambiguous) && ambiguous.Candidates == 0:
		message = fmt.Sprintf("I could not find %q with these attributes. Could you give the SKU?", ambiguous.BaseProduct)
	case errors.As(err, &ambiguous):
		message = fmt.Sprintf("Several variants of %q match. Please specify the attributes or the SKU.", ambiguous.BaseProduct)
	case errors.As(err, &insufficient):
		message = fmt.Sprintf("Only %d left in stock for one of the items, you asked for %d.",
			insufficient.Available, insufficient.Requested)
	case errors.Is(err, entities.ErrVariantNotFound):
		message = "I could not find that product. Could you check the SKU?"
	case IsUserError(err):
		message = "I could not place this order: " + err.Error()
	default:
		return entities.ChatReply{}, false
	}

	return entities.ChatReply{Message: message, Intent: kind, NeedsClarification: true}, true
}
