package repository

import (
	"context"
	stdsql "database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/eslsoft/kelimo/internal/entity"
)

const (
	wordsTable       = "words"
	swipesTable      = "swipe_records"
	gameResultsTable = "game_results"
)

var wordColumns = []string{"id", "text", "meaning", "example", "level", "created_at"}

// base carries the driver shared by every repository.
type base struct {
	drv dialect.Driver
}

func (b base) builder() *sql.DialectBuilder {
	return sql.Dialect(b.drv.Dialect())
}

// query runs q and hands each row to scan. Rows are closed before returning.
func (b base) query(ctx context.Context, op string, q sql.Querier, scan func(*sql.Rows) error) error {
	query, args := q.Query()
	rows := &sql.Rows{}
	if err := b.drv.Query(ctx, query, args, rows); err != nil {
		return translateError(op, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return translateError(op, err)
		}
	}
	return translateError(op, rows.Err())
}

func (b base) exec(ctx context.Context, op string, ex dialect.ExecQuerier, q sql.Querier) (int64, error) {
	query, args := q.Query()
	var res stdsql.Result
	if err := ex.Exec(ctx, query, args, &res); err != nil {
		return 0, translateError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translateError(op, err)
	}
	return n, nil
}

// qualified returns the word columns prefixed with the table of t.
func qualified(t *sql.SelectTable, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = t.C(c)
	}
	return out
}

// orderBy appends an ORDER BY term built with the selector's dialect.
func orderBy(s *sql.Selector, column string, desc bool) {
	s.OrderExprFunc(func(b *sql.Builder) {
		b.Ident(column)
		if desc {
			b.WriteString(" DESC")
		}
	})
}

func scanWord(rows *sql.Rows, extra ...any) (entity.Word, error) {
	var w entity.Word
	dest := append([]any{&w.ID, &w.Text, &w.Meaning, &w.Example, &w.Level, &w.CreatedAt}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return entity.Word{}, err
	}
	w.CreatedAt = w.CreatedAt.UTC()
	return w, nil
}

// storeTime normalizes a timestamp to the precision every supported database keeps.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// translateError classifies connectivity failures as entity.StoreUnavailableError.
// Other errors are wrapped with the operation name.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if unavailable(err) {
		return &entity.StoreUnavailableError{Op: op, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func unavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, stdsql.ErrConnDone) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08: connection exception, 57P0x: server shutting down.
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0")
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "08" || pqErr.Code.Class() == "57"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// cleanStrings trims values and drops blanks and repeats.
func cleanStrings(in []string) []any {
	seen := make(map[string]struct{}, len(in))
	out := make([]any, 0, len(in))
	for _, item := range in {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
