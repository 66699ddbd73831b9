package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert loses to a unique constraint.
// Uniqueness is enforced by the store, not by check-then-act in the
// application: concurrent writers race past any existence pre-check, the
// constraint is what actually decides.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolationCode = "23505"

func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
