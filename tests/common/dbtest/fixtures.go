//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pharmashift/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ShiftFixture struct {
	ID         uuid.UUID
	Name       string
	Status     string
	Schedule   schedule.Schedule
	// Legacy stores the shift the old way: no session list, shift-level date and times.
	Legacy     *schedule.Legacy
	CreatedBy  uuid.UUID
	AssignedTo *uuid.UUID
}

// SessionAt returns a single-session schedule starting at start, in UTC.
// The session is cut at 23:59 rather than crossing midnight.
func SessionAt(start time.Time, d time.Duration) schedule.Schedule {
	start = start.UTC().Truncate(time.Minute)
	end := start.Add(d)
	endClock := end.Format("15:04")
	if end.YearDay() != start.YearDay() || end.Year() != start.Year() {
		endClock = "23:59"
	}
	return schedule.Schedule{{
		Date:      start.Format("2006-01-02"),
		StartTime: start.Format("15:04"),
		EndTime:   endClock,
	}}
}

func CreateShift(t *testing.T, db DBLike, f ShiftFixture) uuid.UUID {
	t.Helper()

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Name == "" {
		f.Name = "E2E shift"
	}
	if f.Status == "" {
		f.Status = "open"
		if f.AssignedTo != nil {
			f.Status = "filled"
		}
	}
	var (
		raw              []byte
		date, start, end *string
		err              error
	)
	if f.Legacy != nil {
		date, start, end = nullable(f.Legacy.ShiftDate), nullable(f.Legacy.StartTime), nullable(f.Legacy.EndTime)
	} else {
		raw, err = json.Marshal(f.Schedule)
		require.NoError(t, err)
	}

	var filledAt *time.Time
	if f.AssignedTo != nil {
		now := time.Now()
		filledAt = &now
	}

	_, err = db.Exec(context.Background(), `
		INSERT INTO shifts (id, name, location, status, assigned_to, schedule, shift_date, start_time, end_time,
		                    hourly_rate_cents, created_by, filled_at)
		VALUES ($1, $2, 'Main Street Pharmacy', $3, $4, $5, $6, $7, $8, 6500, $9, $10)`,
		f.ID, f.Name, f.Status, f.AssignedTo, raw, date, start, end, f.CreatedBy, filledAt)
	require.NoError(t, err)
	return f.ID
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

type InvitationFixture struct {
	ShiftID      uuid.UUID
	PharmacistID *uuid.UUID
	Email        string
	InvitedBy    uuid.UUID
	Status       string
	ExpiresAt    *time.Time
}

func CreateInvitation(t *testing.T, db DBLike, f InvitationFixture) uuid.UUID {
	t.Helper()

	if f.Status == "" {
		f.Status = "pending"
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO shift_invitations (id, shift_id, pharmacist_id, pharmacist_email, invited_by, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, f.ShiftID, f.PharmacistID, f.Email, f.InvitedBy, f.Status, f.ExpiresAt)
	require.NoError(t, err)
	return id
}

func CreateDefaultPaymentMethod(t *testing.T, db DBLike, userID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO payment_methods (id, user_id, provider_ref, brand, last4, is_default)
		VALUES ($1, $2, $3, 'visa', '4242', true)`,
		id, userID, "pm_"+strings.ReplaceAll(id.String(), "-", ""))
	require.NoError(t, err)
	return id
}

func ShiftState(t *testing.T, db DBLike, id uuid.UUID) (status string, assignedTo *uuid.UUID) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT status, assigned_to FROM shifts WHERE id = $1", id).Scan(&status, &assignedTo)
	require.NoError(t, err)
	return status, assignedTo
}

func InvitationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM shift_invitations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", table, where), args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
