package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

type ViolationKind int

const (
	NoViolation ViolationKind = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
)

// Violation describes a storage constraint failure. Detail carries the
// constraint name on Postgres and the offending column list on SQLite.
type Violation struct {
	Kind   ViolationKind
	Detail string
}

// Mentions reports whether the violation names any of the given constraints or columns.
func (v Violation) Mentions(names ...string) bool {
	for _, n := range names {
		if n != "" && strings.Contains(v.Detail, n) {
			return true
		}
	}
	return false
}

// Classify inspects a driver error for constraint violations.
func Classify(err error) Violation {
	if err == nil {
		return Violation{}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		detail := pgErr.ConstraintName + " " + pgErr.ColumnName
		switch pgErr.Code {
		case "23505":
			return Violation{Kind: UniqueViolation, Detail: detail}
		case "23503":
			return Violation{Kind: ForeignKeyViolation, Detail: detail}
		case "23514":
			return Violation{Kind: CheckViolation, Detail: detail}
		}
		return Violation{}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return Violation{Kind: UniqueViolation, Detail: liteErr.Error()}
		case sqlite3.ErrConstraintForeignKey:
			return Violation{Kind: ForeignKeyViolation, Detail: liteErr.Error()}
		case sqlite3.ErrConstraintCheck:
			return Violation{Kind: CheckViolation, Detail: liteErr.Error()}
		}
	}
	return Violation{}
}
