package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"
)

type AddressService struct {
	logger    *slog.Logger
	txManager trm.Manager
	addresses AddressRepo
}

func NewAddressService(logger *slog.Logger, txManager trm.Manager, addresses AddressRepo) *AddressService {
	return &AddressService{
		logger:    logger.With(slog.String("service", "address")),
		txManager: txManager,
		addresses: addresses,
	}
}

func (s *AddressService) ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error) {
	return s.addresses.ListForUser(ctx, userID)
}

func (s *AddressService) DefaultAddress(ctx context.Context, userID int64) (entities.Address, error) {
	return s.addresses.GetDefault(ctx, userID)
}

// CreateAddress делает первый адрес пользователя адресом по умолчанию.
func (s *AddressService) CreateAddress(ctx context.Context, userID int64, in entities.AddressInput) (entities.Address, error) {
	in, err := normalizeAddress(in)
	if err != nil {
		return entities.Address{}, err
	}

	var address entities.Address
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.addresses.CountForUser(ctx, userID)
		if err != nil {
			return err
		}

		address, err = s.addresses.Create(ctx, userID, in, count == 0)
		return err
	})
	if err != nil {
		return entities.Address{}, err
	}

	s.logger.DebugContext(ctx, "address created", slog.Int64("address_id", address.ID), slog.Int64("user_id", userID))
	return address, nil
}

// SetDefault снимает флаг со всех адресов пользователя и ставит его на выбранный, в одной транзакции.
func (s *AddressService) SetDefault(ctx context.Context, userID, addressID int64) (entities.Address, error) {
	var address entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		address, err = s.owned(ctx, userID, addressID)
		if err != nil {
			return err
		}
		if address.IsDefault {
			return nil
		}

		if err := s.addresses.ClearDefaults(ctx, userID); err != nil {
			return err
		}
		if err := s.addresses.SetDefault(ctx, addressID); err != nil {
			return err
		}
		address.IsDefault = true
		return nil
	})
	if err != nil {
		return entities.Address{}, err
	}
	return address, nil
}

// UpdateAddress меняет поля адреса, флаг по умолчанию не трогает.
func (s *AddressService) UpdateAddress(ctx context.Context, userID, addressID int64, in entities.AddressInput) (entities.Address, error) {
	in, err := normalizeAddress(in)
	if err != nil {
		return entities.Address{}, err
	}

	var address entities.Address
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.owned(ctx, userID, addressID); err != nil {
			return err
		}

		address, err = s.addresses.Update(ctx, addressID, in)
		return err
	})
	if err != nil {
		return entities.Address{}, err
	}
	return address, nil
}

// DeleteAddress удаляет адрес. Если он был адресом по умолчанию, флаг переходит
// к первому из оставшихся адресов пользователя.
func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		address, err := s.owned(ctx, userID, addressID)
		if err != nil {
			return err
		}

		if err := s.addresses.Delete(ctx, addressID); err != nil {
			return err
		}
		if !address.IsDefault {
			return nil
		}

		rest, err := s.addresses.ListForUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(rest) == 0 {
			return nil
		}
		return s.addresses.SetDefault(ctx, rest[0].ID)
	})
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "address deleted", slog.Int64("address_id", addressID), slog.Int64("user_id", userID))
	return nil
}

func (s *AddressService) owned(ctx context.Context, userID, addressID int64) (entities.Address, error) {
	address, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return entities.Address{}, err
	}
	if address.UserID != userID {
		return entities.Address{}, fmt.Errorf("address %d: %w", addressID, entities.ErrForbidden)
	}
	return address, nil
}

func normalizeAddress(in entities.AddressInput) (entities.AddressInput, error) {
	in = entities.AddressInput{
		Street:     strings.TrimSpace(in.Street),
		City:       strings.TrimSpace(in.City),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
	}
	required := []struct{ field, value string }{
		{"street", in.Street}, {"city", in.City}, {"postal_code", in.PostalCode}, {"country", in.Country},
	}
	for _, r := range required {
		if r.value == "" {
			return entities.AddressInput{}, entities.NewValidationError(r.field, "must not be empty")
		}
	}
	return in, nil
}
