package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatMocks struct {
	parser    *mocks.MockIntentParser
	catalog   *mocks.MockVariantCatalog
	stock     *mocks.MockStockLedger
	addresses *mocks.MockAddressRepo
	orders    *mocks.MockOrderPlacer
}

func newChatService(t *testing.T) (*service.ChatService, chatMocks) {
	m := chatMocks{
		parser:    mocks.NewMockIntentParser(t),
		catalog:   mocks.NewMockVariantCatalog(t),
		stock:     mocks.NewMockStockLedger(t),
		addresses: mocks.NewMockAddressRepo(t),
		orders:    mocks.NewMockOrderPlacer(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewChatService(logger, m.parser, service.NewVariantResolver(m.catalog), m.stock, m.addresses, m.orders)
	return svc, m
}

func TestChatService_Reply(t *testing.T) {
	principal := entities.Principal{UserID: 7}
	redRose := roseVariants()[0]

	orderIntent := func(items ...entities.IntentItem) entities.Intent {
		return entities.Intent{Kind: entities.IntentPlaceOrder, Items: items}
	}

	testCases := []struct {
		name              string
		mockBehavior      func(m chatMocks)
		wantIntent        entities.IntentKind
		wantClarification bool
		wantMessage       string
		wantOrder         bool
		wantErr           error
	}{
		{
			name: "product info",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(entities.Intent{
					Kind:  entities.IntentProductInfo,
					Items: []entities.IntentItem{{SKU: "ROSE-RED-M"}},
				}, nil).Once()
				m.catalog.EXPECT().GetBySKU(mock.Anything, "ROSE-RED-M").Return(redRose, nil).Once()
				m.stock.EXPECT().GetAvailable(mock.Anything, int64(1)).Return(12, nil).Once()
			},
			wantIntent:  entities.IntentProductInfo,
			wantMessage: "Rose (ROSE-RED-M): 4.99, 12 in stock",
		},
		{
			name: "place order by description",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(orderIntent(entities.IntentItem{
					BaseProduct: "rose",
					Attributes:  map[string]string{"color": "red", "size": "M"},
					Quantity:    3,
				}), nil).Once()
				m.catalog.EXPECT().ListByProductName(mock.Anything, "rose").Return(roseVariants(), nil).Once()
				m.addresses.EXPECT().GetDefault(mock.Anything, int64(7)).Return(entities.Address{ID: 4, UserID: 7}, nil).Once()
				m.orders.EXPECT().PlaceOrder(mock.Anything, int64(7), int64(4), int64(4),
					[]entities.LineRequest{{VariantID: 1, SKU: "ROSE-RED-M", Quantity: 3}}).
					Return(placedOrder(), nil).Once()
			},
			wantIntent:  entities.IntentPlaceOrder,
			wantMessage: "Order #100 placed, total 14.97.",
			wantOrder:   true,
		},
		{
			name: "ambiguous product asks for clarification",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(orderIntent(entities.IntentItem{
					BaseProduct: "rose",
					Attributes:  map[string]string{"color": "red"},
				}), nil).Once()
				m.catalog.EXPECT().ListByProductName(mock.Anything, "rose").Return(roseVariants(), nil).Once()
			},
			wantIntent:        entities.IntentPlaceOrder,
			wantClarification: true,
		},
		{
			name: "no default address",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(orderIntent(entities.IntentItem{SKU: "ROSE-RED-M"}), nil).Once()
				m.catalog.EXPECT().GetBySKU(mock.Anything, "ROSE-RED-M").Return(redRose, nil).Once()
				m.addresses.EXPECT().GetDefault(mock.Anything, int64(7)).Return(entities.Address{}, entities.ErrAddressNotFound).Once()
			},
			wantIntent:        entities.IntentPlaceOrder,
			wantClarification: true,
			wantMessage:       "Please add a delivery address before ordering.",
		},
		{
			name: "insufficient stock becomes a reply",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(orderIntent(entities.IntentItem{SKU: "ROSE-RED-M", Quantity: 5}), nil).Once()
				m.catalog.EXPECT().GetBySKU(mock.Anything, "ROSE-RED-M").Return(redRose, nil).Once()
				m.addresses.EXPECT().GetDefault(mock.Anything, int64(7)).Return(entities.Address{ID: 4}, nil).Once()
				m.orders.EXPECT().PlaceOrder(mock.Anything, int64(7), int64(4), int64(4), mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{VariantID: 1, Requested: 5, Available: 2}).Once()
			},
			wantIntent:        entities.IntentPlaceOrder,
			wantClarification: true,
			wantMessage:       "Only 2 left in stock for one of the items, you asked for 5.",
		},
		{
			name: "order without items",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(orderIntent(), nil).Once()
			},
			wantIntent:        entities.IntentPlaceOrder,
			wantClarification: true,
		},
		{
			name: "parse failure falls back to general",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(entities.Intent{}, errors.New("bad json")).Once()
				m.parser.EXPECT().Chat(mock.Anything, "msg").Return("Water in the morning.", nil).Once()
			},
			wantIntent:  entities.IntentGeneral,
			wantMessage: "Water in the morning.",
		},
		{
			name: "assistant unavailable",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(entities.Intent{Kind: entities.IntentGeneral}, nil).Once()
				m.parser.EXPECT().Chat(mock.Anything, "msg").Return("", entities.ErrUnavailable).Once()
			},
			wantErr: entities.ErrUnavailable,
		},
		{
			name: "database failure is returned",
			mockBehavior: func(m chatMocks) {
				m.parser.EXPECT().ParseIntent(mock.Anything, "msg").Return(orderIntent(entities.IntentItem{SKU: "ROSE-RED-M"}), nil).Once()
				m.catalog.EXPECT().GetBySKU(mock.Anything, "ROSE-RED-M").Return(entities.Variant{}, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newChatService(t)
			tc.mockBehavior(m)

			reply, err := svc.Reply(context.Background(), principal, " msg ")
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, entities.ErrUnavailable) {
					assert.ErrorIs(t, err, entities.ErrUnavailable)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantIntent, reply.Intent)
			assert.Equal(t, tc.wantClarification, reply.NeedsClarification)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, reply.Message)
			}
			assert.Equal(t, tc.wantOrder, reply.Order != nil)
		})
	}
}

func TestChatService_Reply_EmptyMessage(t *testing.T) {
	svc, _ := newChatService(t)

	_, err := svc.Reply(context.Background(), entities.Principal{UserID: 7}, "   ")
	assert.ErrorIs(t, err, entities.ErrValidation)
}
