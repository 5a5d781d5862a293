package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/chalicecompass/internal/dbx"
	"github.com/dmitrijs2005/chalicecompass/internal/logging"

	_ "modernc.org/sqlite"
)

var (
	ErrNoDatabase  = errors.New("failed to connect to any database")
	ErrQueryFailed = errors.New("query failed")
	ErrClosed      = errors.New("gateway closed")
)

// Row is one result row, column values in statement order.
type Row []string

// Opener opens the database stored at path.
type Opener func(ctx context.Context, path string) (*sql.DB, error)

// Option configures a Gateway.
type Option func(*Gateway)

// WithOpener replaces the default SQLite opener.
func WithOpener(o Opener) Option {
	return func(g *Gateway) { g.open = o }
}

// WithLogger sets the logger used for connection and statement failures.
func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

type Gateway struct {
	mu         sync.Mutex
	db         *sql.DB
	path       string
	candidates []string
	open       Opener
	logger     logging.Logger
}

// New opens the first candidate that works. It fails with ErrNoDatabase when
// none does.
func New(ctx context.Context, candidates []string, opts ...Option) (*Gateway, error) {
	g := &Gateway{
		candidates: candidates,
		open:       OpenSQLite,
		logger:     logging.Nop(),
	}
	for _, o := range opts {
		o(g)
	}

	if err := g.connect(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// OpenSQLite opens an existing SQLite file with the modernc driver and checks
// it answers. A missing file is an error rather than a fresh empty database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// connect walks the candidates in order and swaps in the first one that opens.
// The previous handle survives if nothing opens. The caller must hold g.mu
// (or be constructing g).
func (g *Gateway) connect(ctx context.Context) error {
	var errs []error
	for _, path := range g.candidates {
		db, err := g.open(ctx, path)
		if err != nil {
			g.logger.Warn(ctx, "failed to connect", "db", path, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if g.db != nil {
			_ = g.db.Close()
		}
		g.db = db
		g.path = path
		g.logger.Info(ctx, "connected", "db", path)
		return nil
	}

	if len(errs) == 0 {
		return fmt.Errorf("%w: no candidate paths", ErrNoDatabase)
	}
	return fmt.Errorf("%w: %w", ErrNoDatabase, errors.Join(errs...))
}

// Query executes a single statement and commits. See the package docs for the
// failure contract.
func (g *Gateway) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil, ErrClosed
	}

	g.logger.Debug(ctx, "query", "db", g.path, "sql", compact(query), "args", args)

	result := make([]Row, 0)
	err := dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if !returnsRows(query) {
			_, err := tx.ExecContext(ctx, query, args...)
			return err
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		vals, err := dbx.ReadStrings(rows)
		if err != nil {
			return err
		}
		for _, v := range vals {
			result = append(result, Row(v))
		}
		return nil
	})
	if err == nil {
		return result, nil
	}

	g.logger.Error(ctx, "database error", "db", g.path, "err", err)
	if cerr := g.connect(ctx); cerr != nil {
		g.logger.Error(ctx, "reconnect failed", "err", cerr)
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, errors.Join(err, cerr))
	}
	return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
}

// Path reports the database file currently in use.
func (g *Gateway) Path() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.path
}

// Close releases the connection. It is safe to call more than once.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}

// returnsRows guesses from the leading keyword whether a statement yields a
// result set.
func returnsRows(query string) bool {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH", "PRAGMA", "VALUES", "EXPLAIN":
		return true
	}
	return strings.Contains(strings.ToUpper(query), "RETURNING")
}

func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
