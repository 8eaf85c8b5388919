package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPostgres(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_setlist_event_order"})

	v := Classify(err)
	assert.Equal(t, UniqueViolation, v.Kind)
	assert.True(t, v.Mentions("idx_setlist_event_order"))
	assert.False(t, v.Mentions("idx_setlist_event_song"))

	assert.Equal(t, ForeignKeyViolation, Classify(&pgconn.PgError{Code: "23503"}).Kind)
	assert.Equal(t, CheckViolation, Classify(&pgconn.PgError{Code: "23514"}).Kind)
	assert.Equal(t, NoViolation, Classify(&pgconn.PgError{Code: "40001"}).Kind)
}

func TestClassifySQLite(t *testing.T) {
	err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	assert.Equal(t, UniqueViolation, Classify(err).Kind)

	err = sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	assert.Equal(t, ForeignKeyViolation, Classify(fmt.Errorf("wrapped: %w", err)).Kind)
}

func TestClassifyOther(t *testing.T) {
	assert.Equal(t, NoViolation, Classify(nil).Kind)
	assert.Equal(t, NoViolation, Classify(errors.New("connection refused")).Kind)
}
