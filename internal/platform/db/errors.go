package db

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

type ViolationKind int

const (
	ViolationNone ViolationKind = iota
	ViolationUnique
	ViolationForeignKey
	ViolationNotNull
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationUnique:
		return "unique"
	case ViolationForeignKey:
		return "foreign_key"
	case ViolationNotNull:
		return "not_null"
	default:
		return "none"
	}
}

// Violation is a classified constraint failure reported by the store.
// Constraint and Column are best effort: postgres reports both names,
// sqlite only reports the columns of unique and not-null failures.
type Violation struct {
	Kind       ViolationKind
	Constraint string
	Column     string
	Code       string
}

// Mentions reports whether the constraint or column of v names the given fragment.
func (v Violation) Mentions(fragment string) bool {
	fragment = strings.ToLower(fragment)
	return strings.Contains(strings.ToLower(v.Constraint), fragment) ||
		strings.Contains(strings.ToLower(v.Column), fragment)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Classify inspects a driver error. The second return value is false when err
// is not a recognised constraint violation.
func Classify(err error) (Violation, bool) {
	if err == nil {
		return Violation{}, false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		v := Violation{
			Constraint: pgErr.ConstraintName,
			Column:     pgErr.ColumnName,
			Code:       pgErr.Code,
		}
		switch pgErr.Code {
		case pgUniqueViolation:
			v.Kind = ViolationUnique
		case pgForeignKeyViolation:
			v.Kind = ViolationForeignKey
		case pgNotNullViolation:
			v.Kind = ViolationNotNull
		default:
			return v, false
		}
		return v, true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		v := Violation{Code: strconv.Itoa(int(liteErr.ExtendedCode))}
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			v.Kind = ViolationUnique
		case sqlite3.ErrConstraintForeignKey:
			v.Kind = ViolationForeignKey
		case sqlite3.ErrConstraintTrigger:
			// ON DELETE RESTRICT is enforced by a trigger and reported as 1811.
			if !strings.Contains(strings.ToUpper(liteErr.Error()), "FOREIGN KEY") {
				return v, false
			}
			v.Kind = ViolationForeignKey
		case sqlite3.ErrConstraintNotNull:
			v.Kind = ViolationNotNull
		default:
			return v, false
		}
		v.Column = sqliteColumns(liteErr.Error())
		return v, true
	}

	return Violation{}, false
}

// sqliteColumns extracts "users.email" from "UNIQUE constraint failed: users.email".
func sqliteColumns(message string) string {
	_, columns, found := strings.Cut(message, "constraint failed:")
	if !found {
		return ""
	}
	return strings.TrimSpace(columns)
}

// StoreError is a store failure no adapter could translate into a domain error.
type StoreError struct {
	Op   string
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: store error (code %s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: store error: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Unclassified wraps err with the operation name and any driver code.
func Unclassified(op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *StoreError
	if errors.As(err, &existing) {
		return err
	}
	return &StoreError{Op: op, Code: driverCode(err), Err: err}
}

func driverCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return strconv.Itoa(int(liteErr.ExtendedCode))
	}
	return ""
}
