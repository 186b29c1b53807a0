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

func TestAddressService_CreateAddress(t *testing.T) {
	input := entities.AddressInput{Street: " 1 Garden Lane ", City: "Leeds", PostalCode: "LS1 1AA", Country: "UK"}
	trimmed := entities.AddressInput{Street: "1 Garden Lane", City: "Leeds", PostalCode: "LS1 1AA", Country: "UK"}

	testCases := []struct {
		name         string
		input        entities.AddressInput
		mockBehavior func(addresses *mocks.MockAddressRepo)
		wantDefault  bool
		wantField    string
	}{
		{
			name:  "first address becomes default",
			input: input,
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().CountForUser(mock.Anything, int64(7)).Return(0, nil).Once()
				addresses.EXPECT().Create(mock.Anything, int64(7), trimmed, true).
					Return(entities.Address{ID: 1, UserID: 7, IsDefault: true}, nil).Once()
			},
			wantDefault: true,
		},
		{
			name:  "next address is not default",
			input: input,
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().CountForUser(mock.Anything, int64(7)).Return(2, nil).Once()
				addresses.EXPECT().Create(mock.Anything, int64(7), trimmed, false).
					Return(entities.Address{ID: 3, UserID: 7}, nil).Once()
			},
		},
		{
			name:         "blank city",
			input:        entities.AddressInput{Street: "1 Garden Lane", City: "  ", PostalCode: "LS1", Country: "UK"},
			mockBehavior: func(*mocks.MockAddressRepo) {},
			wantField:    "city",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addresses := mocks.NewMockAddressRepo(t)
			tc.mockBehavior(addresses)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewAddressService(logger, passThroughTx(t), addresses)

			address, err := svc.CreateAddress(context.Background(), 7, tc.input)
			if tc.wantField != "" {
				var target *entities.ValidationError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, tc.wantField, target.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDefault, address.IsDefault)
		})
	}
}

func TestAddressService_SetDefault(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(addresses *mocks.MockAddressRepo)
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 7}, nil).Once()
				addresses.EXPECT().ClearDefaults(mock.Anything, int64(7)).Return(nil).Once()
				addresses.EXPECT().SetDefault(mock.Anything, int64(3)).Return(nil).Once()
			},
		},
		{
			name: "already default",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 7, IsDefault: true}, nil).Once()
			},
		},
		{
			name: "address of another user",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 8}, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name: "unknown address",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{}, entities.ErrAddressNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addresses := mocks.NewMockAddressRepo(t)
			tc.mockBehavior(addresses)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewAddressService(logger, passThroughTx(t), addresses)

			address, err := svc.SetDefault(context.Background(), 7, 3)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, address.IsDefault)
		})
	}
}

func TestAddressService_UpdateAddress(t *testing.T) {
	input := entities.AddressInput{Street: "2 Orchard Row ", City: "York", PostalCode: "YO1 7HH", Country: "UK"}
	trimmed := entities.AddressInput{Street: "2 Orchard Row", City: "York", PostalCode: "YO1 7HH", Country: "UK"}

	testCases := []struct {
		name         string
		input        entities.AddressInput
		mockBehavior func(addresses *mocks.MockAddressRepo)
		wantErr      error
	}{
		{
			name:  "OK",
			input: input,
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 7}, nil).Once()
				addresses.EXPECT().Update(mock.Anything, int64(3), trimmed).
					Return(entities.Address{ID: 3, UserID: 7, Street: "2 Orchard Row", City: "York"}, nil).Once()
			},
		},
		{
			name:         "blank street",
			input:        entities.AddressInput{Street: " ", City: "York", PostalCode: "YO1", Country: "UK"},
			mockBehavior: func(*mocks.MockAddressRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "address of another user",
			input: input,
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 8}, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addresses := mocks.NewMockAddressRepo(t)
			tc.mockBehavior(addresses)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewAddressService(logger, passThroughTx(t), addresses)

			address, err := svc.UpdateAddress(context.Background(), 7, 3, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "York", address.City)
		})
	}
}

func TestAddressService_DeleteAddress(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(addresses *mocks.MockAddressRepo)
		wantErr      error
	}{
		{
			name: "regular address",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 7}, nil).Once()
				addresses.EXPECT().Delete(mock.Anything, int64(3)).Return(nil).Once()
			},
		},
		{
			name: "default moves to the next address",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 7, IsDefault: true}, nil).Once()
				addresses.EXPECT().Delete(mock.Anything, int64(3)).Return(nil).Once()
				addresses.EXPECT().ListForUser(mock.Anything, int64(7)).
					Return([]entities.Address{{ID: 4, UserID: 7}, {ID: 5, UserID: 7}}, nil).Once()
				addresses.EXPECT().SetDefault(mock.Anything, int64(4)).Return(nil).Once()
			},
		},
		{
			name: "last default address",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 7, IsDefault: true}, nil).Once()
				addresses.EXPECT().Delete(mock.Anything, int64(3)).Return(nil).Once()
				addresses.EXPECT().ListForUser(mock.Anything, int64(7)).Return(nil, nil).Once()
			},
		},
		{
			name: "used by orders",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 7}, nil).Once()
				addresses.EXPECT().Delete(mock.Anything, int64(3)).Return(entities.ErrAddressInUse).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name: "address of another user",
			mockBehavior: func(addresses *mocks.MockAddressRepo) {
				addresses.EXPECT().GetByID(mock.Anything, int64(3)).Return(entities.Address{ID: 3, UserID: 8}, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addresses := mocks.NewMockAddressRepo(t)
			tc.mockBehavior(addresses)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewAddressService(logger, passThroughTx(t), addresses)

			err := svc.DeleteAddress(context.Background(), 7, 3)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
