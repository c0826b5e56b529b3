package ioload

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// statement is an executed SQL statement with its arguments.
type statement struct {
	sql  string
	args []any
}

// table returns the table of an INSERT statement.
func (s statement) table() string {
	f := strings.Fields(s.sql)
	for i, v := range f {
		if v == "INTO" && i+1 < len(f) {
			return f[i+1]
		}
	}
	return ""
}

// catalogKey identifies a song for the fake lookup.
type catalogKey struct {
	title, artist string
	length        float64
}

// fakeTx records statements. Methods that are not overridden panic
// through the nil embedded interface.
type fakeTx struct {
	pgx.Tx

	stmts   []statement
	catalog map[catalogKey][2]string

	// execErr fails statements on failTable, or all statements
	// when failTable is empty.
	execErr   error
	failTable string
	queryErr  error
	commitErr error

	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Exec(
	_ context.Context,
	sql string,
	args ...any,
) (pgconn.CommandTag, error) {
	st := statement{sql: sql, args: args}
	if tx.execErr != nil && (tx.failTable == "" || st.table() == tx.failTable) {
		return pgconn.CommandTag{}, tx.execErr
	}
	tx.stmts = append(tx.stmts, st)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (tx *fakeTx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if tx.queryErr != nil {
		return fakeRow{err: tx.queryErr}
	}
	title, _ := args[0].(*string)
	artist, _ := args[1].(*string)
	length, _ := args[2].(*float64)
	if title == nil || artist == nil || length == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	ids, ok := tx.catalog[catalogKey{*title, *artist, *length}]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{vals: ids[:]}
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

// byTable returns statements executed against the table.
func (tx *fakeTx) byTable(table string) []statement {
	var res []statement
	for _, v := range tx.stmts {
		if v.table() == table {
			res = append(res, v)
		}
	}
	return res
}

type fakeRow struct {
	vals []string
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return errors.New("wrong number of scan targets")
	}
	for i, d := range dest {
		p, ok := d.(*string)
		if !ok {
			return errors.New("scan target is not *string")
		}
		*p = r.vals[i]
	}
	return nil
}

// fakeStarter hands out a new fakeTx per Begin. failOn makes the
// transaction of the n-th file (1-based) fail on commit.
type fakeStarter struct {
	txs      []*fakeTx
	catalog  map[catalogKey][2]string
	beginErr error
	failOn   int
}

func (s *fakeStarter) Begin(context.Context) (pgx.Tx, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	tx := &fakeTx{catalog: s.catalog}
	if s.failOn == len(s.txs)+1 {
		tx.commitErr = errors.New("commit failed")
	}
	s.txs = append(s.txs, tx)
	return tx, nil
}

// recReporter remembers progress calls.
type recReporter struct {
	calls    [][2]int
	finished bool
}

func (r *recReporter) Progress(done, total int) {
	r.calls = append(r.calls, [2]int{done, total})
}

func (r *recReporter) Finish() {
	r.finished = true
}
