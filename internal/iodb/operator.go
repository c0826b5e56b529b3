// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"

	"github.com/gnames/playetl/pkg/config"
	"github.com/gnames/playetl/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// publicTablesSQL lists tables of the public schema, all of them or
// only the ones named in $1.
const publicTablesSQL = `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = 'public'
	AND ($1::text[] IS NULL OR table_name = ANY($1))
	ORDER BY table_name`

// pgxOperator implements db.Operator on top of a pgxpool.Pool.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates an operator. Nothing is connected until
// Connect is called.
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// DSN builds a PostgreSQL connection URL from the configuration.
// User and password are escaped, so any characters are allowed in them.
func DSN(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.SSLMode),
	}
	return u.String()
}

// Connect opens the pool and pings the server. Files are loaded one
// after another, so a couple of connections is all the loader uses.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	fail := func(err error) error {
		return ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}

	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return fail(err)
	}
	poolCfg.MaxConns = int32(max(cfg.MaxConns, 1))
	poolCfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fail(err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return fail(err)
	}

	p.pool = pool
	return nil
}

// Close releases all connections. Closing an operator that never
// connected does nothing.
func (p *pgxOperator) Close() error {
	if p.pool == nil {
		return nil
	}
	p.pool.Close()
	p.pool = nil
	return nil
}

// Pool returns the connection pool, nil before Connect.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists tells if the public schema has the table.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	found, err := p.publicTables(ctx, []string{tableName})
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return len(found) > 0, nil
}

// MissingTables returns the tables from the list that are absent
// from the public schema, in the order they were given.
func (p *pgxOperator) MissingTables(
	ctx context.Context,
	tables ...string,
) ([]string, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}
	if len(tables) == 0 {
		return nil, nil
	}

	found, err := p.publicTables(ctx, tables)
	if err != nil {
		return nil, TableCheckError(err)
	}

	var res []string
	for _, v := range tables {
		if !slices.Contains(found, v) {
			res = append(res, v)
		}
	}
	return res, nil
}

// HasTables tells if the public schema has any table at all.
func (p *pgxOperator) HasTables(ctx context.Context) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	tables, err := p.publicTables(ctx, nil)
	if err != nil {
		return false, TableCheckError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops every table of the public schema with CASCADE.
func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	tables, err := p.publicTables(ctx, nil)
	if err != nil {
		return QueryTablesError(err)
	}

	for _, table := range tables {
		q := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE",
			pgx.Identifier{table}.Sanitize())
		if _, err = p.pool.Exec(ctx, q); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

// publicTables lists tables of the public schema. A nil filter
// lists all of them.
func (p *pgxOperator) publicTables(
	ctx context.Context,
	filter []string,
) ([]string, error) {
	rows, err := p.pool.Query(ctx, publicTablesSQL, filter)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}
