package repositories

import (
	"errors"

	"github.com/disgoorg/snowflake/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// ErrDuplicate is returned when an insert collides with an existing key.
var ErrDuplicate = errors.New("duplicate key")

// ErrFull is returned when a capped insert finds no room left.
var ErrFull = errors.New("no room left")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolation
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == uniqueViolation
	}
	return false
}

// id converts a snowflake to the signed form used for pgx parameters.
func id(s snowflake.ID) int64 {
	return int64(s)
}
