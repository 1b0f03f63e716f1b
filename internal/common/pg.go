package common

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// ParseID parses value as a UUID, reporting failures as a VALIDATION_ERROR on field.
func ParseID(field, value string) (pgtype.UUID, error) {
	var id pgtype.UUID
	if err := id.Scan(strings.TrimSpace(value)); err != nil || !id.Valid {
		return pgtype.UUID{}, Invalid(field, field+" must be a valid uuid", err)
	}
	return id, nil
}

// ParseOptionalID is ParseID for nullable references; nil and blank map to NULL.
func ParseOptionalID(field string, value *string) (pgtype.UUID, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return pgtype.UUID{}, nil
	}
	return ParseID(field, *value)
}

// UUIDString renders a pgtype.UUID, returning "" for NULL.
func UUIDString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}

// UUIDPtr renders a nullable pgtype.UUID.
func UUIDPtr(id pgtype.UUID) *string {
	if !id.Valid {
		return nil
	}
	s := uuid.UUID(id.Bytes).String()
	return &s
}

// ToPGUUID converts a google/uuid value.
func ToPGUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// Timestamptz wraps t; the zero time maps to NULL.
func Timestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// TimeFromPG unwraps a nullable timestamp.
func TimeFromPG(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}

// Date wraps the calendar day of t.
func Date(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// DateString renders a nullable date as YYYY-MM-DD.
func DateString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(time.DateOnly)
}

// IsNoRows reports whether err is a missed single-row lookup.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// PgErrorCode returns the SQLSTATE carried by err, if any.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports a duplicate key error.
func IsUniqueViolation(err error) bool { return PgErrorCode(err) == pgUniqueViolation }

// IsForeignKeyViolation reports a dangling reference error.
func IsForeignKeyViolation(err error) bool { return PgErrorCode(err) == pgForeignKeyViolation }

// IsCheckViolation reports a CHECK constraint failure.
func IsCheckViolation(err error) bool { return PgErrorCode(err) == pgCheckViolation }

// MapWriteError converts the constraint failures of an insert or update into
// client errors. Other errors are returned unchanged.
func MapWriteError(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsNoRows(err):
		return NotFound(resource, err)
	case IsUniqueViolation(err):
		return Conflict(resource+" already exists", err)
	case IsForeignKeyViolation(err):
		return Invalid("", "referenced record does not exist", err)
	case IsCheckViolation(err):
		return Invalid("", resource+" violates a data constraint", err)
	default:
		return err
	}
}
