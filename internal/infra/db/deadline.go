package db

import (
	"context"
	"time"

	sqlc "barista-cafe-api/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DeadlineDBTX bounds every statement issued through it by timeout.
// A caller deadline that is already shorter wins.
type DeadlineDBTX struct {
	next    sqlc.DBTX
	timeout time.Duration
}

func NewDeadlineDBTX(next sqlc.DBTX, timeout time.Duration) *DeadlineDBTX {
	return &DeadlineDBTX{next: next, timeout: timeout}
}

func (d *DeadlineDBTX) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.timeout)
}

func (d *DeadlineDBTX) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	ctx, cancel := d.withDeadline(ctx)
	defer cancel()
	return d.next.Exec(ctx, sql, args...)
}

// Query keeps the deadline alive until the returned rows are closed.
func (d *DeadlineDBTX) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	ctx, cancel := d.withDeadline(ctx)
	rows, err := d.next.Query(ctx, sql, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return &deadlineRows{Rows: rows, cancel: cancel}, nil
}

// QueryRow keeps the deadline alive until Scan is called. Every generated :one
// query scans its row; a row that is never scanned is still released when its
// timeout fires.
func (d *DeadlineDBTX) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	ctx, cancel := d.withDeadline(ctx)
	return &deadlineRow{row: d.next.QueryRow(ctx, sql, args...), cancel: cancel}
}

type deadlineRows struct {
	pgx.Rows
	cancel context.CancelFunc
}

func (r *deadlineRows) Close() {
	r.Rows.Close()
	r.cancel()
}

type deadlineRow struct {
	row    pgx.Row
	cancel context.CancelFunc
}

func (r *deadlineRow) Scan(dest ...any) error {
	defer r.cancel()
	return r.row.Scan(dest...)
}
