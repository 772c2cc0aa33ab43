package trm

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestExtractTx(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))

	tx := &sqlx.Tx{}
	assert.Same(t, tx, ExtractTx(withTx(context.Background(), tx)))
}

func TestDo_JoinsOuterTransaction(t *testing.T) {
	// db is nil: beginning a new transaction would panic.
	m := NewManager(nil)
	outer := withTx(context.Background(), &sqlx.Tx{})

	var called bool
	err := m.Do(outer, func(ctx context.Context) error {
		called = true
		assert.Same(t, ExtractTx(outer), ExtractTx(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	err = m.Do(outer, func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWithIsolation(t *testing.T) {
	m := NewManager(nil, WithIsolation(sql.LevelRepeatableRead)).(*txManager)
	assert.Equal(t, sql.LevelRepeatableRead, m.opts.Isolation)
	assert.False(t, m.opts.ReadOnly)
}
