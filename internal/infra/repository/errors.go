package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ActiveSlotIndex is the partial unique index guarding one active appointment
// per (date, time). It is created by db.Migrate.
const ActiveSlotIndex = "idx_appointments_active_slot"

func pgCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isSlotViolation(err error) bool {
	code, constraint := pgCode(err)
	return code == pgUniqueViolation && constraint == ActiveSlotIndex
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgCode(err)
	return code == pgForeignKeyViolation
}

func isUniqueViolation(err error) bool {
	code, _ := pgCode(err)
	return code == pgUniqueViolation
}
