//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestBooking inserts a booking directly, bypassing the capacity guard.
func CreateTestBooking(t *testing.T, db DBLike, date, at, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (customer_name, phone, booking_date, booking_time, number_of_people, status)
		VALUES ('Seeded Guest', '555-0000', $1::date, $2::time, 2, $3)
		RETURNING id`, date, at, status).Scan(&id)
	require.NoError(t, err)
	return id
}

// CountBookings counts bookings in one slot regardless of status.
func CountBookings(t *testing.T, db DBLike, date, at string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM bookings WHERE booking_date = $1::date AND booking_time = $2::time", date, at).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountNotificationJobs counts outbox rows for a topic.
func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the menu that ships with the schema migration
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO menu_items (name, description, price, category, is_recommended) VALUES
		    ('Pancakes',       'Fresh brewed coffee and steamed milk', 12.50, 'breakfast', FALSE),
		    ('Toasted Waffle', 'Brewed coffee and steamed milk',       12.00, 'breakfast', FALSE),
		    ('Fried Chips',    'Rich Milk and Foam',                   15.00, 'breakfast', TRUE),
		    ('Banana Cakes',   'Rich Milk and Foam',                   18.00, 'breakfast', FALSE),
		    ('Latte',          'Fresh brewed coffee and steamed milk',  7.50, 'coffee',    FALSE),
		    ('White Coffee',   'Brewed coffee and steamed milk',        5.90, 'coffee',    TRUE),
		    ('Chocolate Milk', 'Rich Milk and Foam',                    5.50, 'coffee',    FALSE),
		    ('Greentea',       'Fresh brewed coffee and steamed milk',  7.50, 'coffee',    FALSE),
		    ('Dark Chocolate', 'Rich Milk and Foam',                    7.25, 'coffee',    FALSE)
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
