package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Driver mínimo em memória para observar commits e rollbacks da transação
type stubDriver struct {
	lastConn *stubConn
}

func (d *stubDriver) Open(name string) (driver.Conn, error) {
	d.lastConn = &stubConn{}
	return d.lastConn, nil
}

type stubConn struct {
	commits   int
	rollbacks int
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return nil, fmt.Errorf("não suportado")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{conn: c}, nil
}

type stubTx struct {
	conn *stubConn
}

func (t *stubTx) Commit() error {
	t.conn.commits++
	return nil
}

func (t *stubTx) Rollback() error {
	t.conn.rollbacks++
	return nil
}

var testDriver = &stubDriver{}

func init() {
	sql.Register("stub-postgres", testDriver)
}

func openStubConnection(t *testing.T) *Connection {
	t.Helper()

	db, err := sql.Open("stub-postgres", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Connection{DB: db}
}

func TestRunInTransactionCommit(t *testing.T) {
	conn := openStubConnection(t)

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, testDriver.lastConn.commits)
	assert.Equal(t, 0, testDriver.lastConn.rollbacks)
}

func TestRunInTransactionRollbackOnError(t *testing.T) {
	conn := openStubConnection(t)

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return fmt.Errorf("falha na escrita")
	})
	require.EqualError(t, err, "falha na escrita")

	assert.Equal(t, 0, testDriver.lastConn.commits)
	assert.Equal(t, 1, testDriver.lastConn.rollbacks)
}

func TestRunInTransactionRollbackOnPanic(t *testing.T) {
	conn := openStubConnection(t)

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("falha inesperada")
		})
	})

	// A transação não pode ficar aberta após um panic dentro de fn
	assert.Equal(t, 0, testDriver.lastConn.commits)
	assert.Equal(t, 1, testDriver.lastConn.rollbacks)
}
