package repo

import (
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// wrapErr дописывает к ошибке базы контекст операции.
// Дедлок и конфликт сериализации становятся entities.ErrConcurrentUpdate.
func wrapErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeDeadlockDetected, codeSerializationFailure:
			return fmt.Errorf("%s: %w: %w", op, entities.ErrConcurrentUpdate, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isViolation(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
