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

func roseVariants() []entities.Variant {
	return []entities.Variant{
		{ID: 1, SKU: "ROSE-RED-M", ProductName: "Rose", Attributes: map[string]string{"color": "red", "size": "M"}, Price: decimal.RequireFromString("4.99"), Active: true},
		{ID: 2, SKU: "ROSE-RED-L", ProductName: "Rose", Attributes: map[string]string{"color": "red", "size": "L"}, Price: decimal.RequireFromString("6.49"), Active: true},
		{ID: 3, SKU: "ROSE-WHITE-M", ProductName: "Rose", Attributes: map[string]string{"color": "White", "size": "M"}, Price: decimal.RequireFromString("4.99"), Active: true},
	}
}

func TestVariantResolver_Resolve(t *testing.T) {
	testCases := []struct {
		name         string
		sku          string
		mockBehavior func(catalog *mocks.MockVariantCatalog)
		wantID       int64
		wantErr      error
	}{
		{
			name: "found",
			sku:  " ROSE-RED-M ",
			mockBehavior: func(catalog *mocks.MockVariantCatalog) {
				catalog.EXPECT().GetBySKU(mock.Anything, "ROSE-RED-M").Return(roseVariants()[0], nil).Once()
			},
			wantID: 1,
		},
		{
			name: "not found",
			sku:  "TULIP",
			mockBehavior: func(catalog *mocks.MockVariantCatalog) {
				catalog.EXPECT().GetBySKU(mock.Anything, "TULIP").Return(entities.Variant{}, entities.ErrVariantNotFound).Once()
			},
			wantErr: entities.ErrVariantNotFound,
		},
		{
			name:         "empty sku",
			sku:          "  ",
			mockBehavior: func(catalog *mocks.MockVariantCatalog) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockVariantCatalog(t)
			tc.mockBehavior(catalog)

			variant, err := service.NewVariantResolver(catalog).Resolve(context.Background(), tc.sku)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, variant.ID)
		})
	}
}

func TestVariantResolver_ResolveByDescription(t *testing.T) {
	testCases := []struct {
		name           string
		attrs          map[string]string
		wantID         int64
		wantCandidates int
	}{
		{
			name:   "exact match",
			attrs:  map[string]string{"color": "red", "size": "M"},
			wantID: 1,
		},
		{
			name:   "case and spaces are ignored",
			attrs:  map[string]string{" Color ": "WHITE", "SIZE": "m "},
			wantID: 3,
		},
		{
			name:           "subset of attributes does not match",
			attrs:          map[string]string{"color": "red"},
			wantCandidates: 0,
		},
		{
			name:           "no match",
			attrs:          map[string]string{"color": "blue", "size": "M"},
			wantCandidates: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockVariantCatalog(t)
			catalog.EXPECT().ListByProductName(mock.Anything, "rose").Return(roseVariants(), nil).Once()

			variant, err := service.NewVariantResolver(catalog).ResolveByDescription(context.Background(), "rose", tc.attrs)
			if tc.wantID == 0 {
				var target *entities.AmbiguousOrNotFoundError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, tc.wantCandidates, target.Candidates)
				assert.ErrorIs(t, err, entities.ErrAmbiguous)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, variant.ID)
		})
	}
}

func TestVariantResolver_ResolveByDescription_Duplicates(t *testing.T) {
	variants := roseVariants()
	duplicate := variants[0]
	duplicate.ID, duplicate.SKU = 9, "ROSE-RED-M-2"

	catalog := mocks.NewMockVariantCatalog(t)
	catalog.EXPECT().ListByProductName(mock.Anything, "Rose").Return(append(variants, duplicate), nil).Once()

	_, err := service.NewVariantResolver(catalog).ResolveByDescription(context.Background(), "Rose",
		map[string]string{"color": "red", "size": "M"})

	var target *entities.AmbiguousOrNotFoundError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 2, target.Candidates)
}

func TestVariantResolver_Lookup(t *testing.T) {
	catalog := mocks.NewMockVariantCatalog(t)
	catalog.EXPECT().GetByID(mock.Anything, int64(2)).Return(roseVariants()[1], nil).Once()
	catalog.EXPECT().GetBySKU(mock.Anything, "ROSE-WHITE-M").Return(roseVariants()[2], nil).Once()

	resolver := service.NewVariantResolver(catalog)

	byID, err := resolver.Lookup(context.Background(), entities.LineRequest{VariantID: 2, SKU: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "ROSE-RED-L", byID.SKU)

	bySKU, err := resolver.Lookup(context.Background(), entities.LineRequest{SKU: "ROSE-WHITE-M"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), bySKU.ID)

	_, err = resolver.Lookup(context.Background(), entities.LineRequest{Quantity: 1})
	assert.ErrorIs(t, err, entities.ErrValidation)
}
