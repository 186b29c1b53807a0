package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/handler"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testQuote() entities.Quote {
	return entities.Quote{
		ID:     40,
		UserID: 7,
		Status: entities.QuotePending,
		Total:  decimal.RequireFromString("14.97"),
		Lines: []entities.QuoteLine{
			{ID: 1, QuoteID: 40, VariantID: 10, Quantity: 3, UnitPrice: decimal.RequireFromString("4.99")},
		},
	}
}

func TestQuoteHandler(t *testing.T) {
	accepted := testQuote()
	accepted.Status = entities.QuoteAccepted

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockQuoteService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/quotes",
			body:   `{"lines":[{"variant_id":10,"quantity":3}]}`,
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().CreateQuote(mock.Anything, int64(7), []entities.LineRequest{{VariantID: 10, Quantity: 3}}).
					Return(testQuote(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"unit_price":"4.99","total":"14.97"`,
		},
		{
			name:   "create with unknown sku",
			method: http.MethodPost,
			target: "/quotes",
			body:   `{"lines":[{"sku":"NOPE","quantity":1}]}`,
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().CreateQuote(mock.Anything, int64(7), mock.Anything).
					Return(entities.Quote{}, entities.ErrVariantNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"variant not found"`,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/quotes/40",
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().GetQuote(mock.Anything, customer, int64(40)).Return(testQuote(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"pending"`,
		},
		{
			name:   "get foreign quote",
			method: http.MethodGet,
			target: "/quotes/41",
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().GetQuote(mock.Anything, customer, int64(41)).Return(entities.Quote{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"quote not found"`,
		},
		{
			name:   "list",
			method: http.MethodGet,
			target: "/quotes?limit=5",
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().ListQuotes(mock.Anything, int64(7), 5, 0).
					Return(entities.QuotePage{Quotes: []entities.Quote{testQuote()}, Total: 1, Limit: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1,"limit":5`,
		},
		{
			name:   "accept",
			method: http.MethodPatch,
			target: "/quotes/40/status",
			body:   `{"status":"accepted"}`,
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().UpdateQuoteStatus(mock.Anything, customer, int64(40), entities.QuoteAccepted).Return(accepted, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"accepted"`,
		},
		{
			name:   "decision already made",
			method: http.MethodPatch,
			target: "/quotes/40/status",
			body:   `{"status":"rejected"}`,
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().UpdateQuoteStatus(mock.Anything, customer, int64(40), entities.QuoteRejected).
					Return(entities.Quote{}, &entities.QuoteTransitionError{From: entities.QuoteAccepted, To: entities.QuoteRejected}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `cannot change quote status`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockQuoteService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewQuoteHandler(logger, svc, authAs(customer))

			status, body := serve(t, h, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
