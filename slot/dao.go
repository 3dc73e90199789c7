package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetAvailableSlots returns unbooked slots joined with their creator's name,
// earliest first. If date is non-nil only slots on that date are returned.
func (a *Accessor) GetAvailableSlots(ctx context.Context, date *Date) ([]AvailableSlot, error) {
	query := `SELECT s.id, s.title, s.description, s.date, s.start_time, s.end_time, u.name AS creator_name
		FROM slots s
		LEFT JOIN users u ON s.user_id = u.id
		WHERE s.is_booked = false`

	var args []any
	if date != nil {
		query += ` AND s.date = $1`
		args = append(args, *date)
	}
	query += ` ORDER BY s.date, s.start_time`

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query slots: %w", err)
	}
	defer rows.Close()

	var slots []AvailableSlot
	for rows.Next() {
		var s AvailableSlot
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Date, &s.StartTime, &s.EndTime, &s.CreatorName); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, s)
	}

	return slots, rows.Err()
}

// BookSlot atomically claims an unbooked slot for userID and returns the
// updated row joined with the booking user's name. It fails with
// ErrSlotUnavailable if the slot does not exist or is already booked, leaving
// the row untouched.
func (a *Accessor) BookSlot(ctx context.Context, slotID, userID int64) (*Slot, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// The row lock is held until commit/rollback, so a concurrent booking of
	// the same slot blocks here and then sees is_booked = true.
	var isBooked bool
	lockQuery := `SELECT is_booked FROM slots WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, slotID).Scan(&isBooked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("lock slot: %w", err)
	}
	if isBooked {
		return nil, ErrSlotUnavailable
	}

	updateQuery := `UPDATE slots SET is_booked = true, booked_by = $1, booked_at = NOW() WHERE id = $2`
	if _, err := tx.ExecContext(ctx, updateQuery, userID, slotID); err != nil {
		return nil, fmt.Errorf("book slot: %w", err)
	}

	var s Slot
	selectQuery := `SELECT s.id, s.title, s.description, s.date, s.start_time, s.end_time, s.user_id, s.is_booked, s.booked_by, s.booked_at, u.name AS booked_by_name
		FROM slots s
		LEFT JOIN users u ON s.booked_by = u.id
		WHERE s.id = $1`
	row := tx.QueryRowContext(ctx, selectQuery, slotID)
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Date, &s.StartTime, &s.EndTime, &s.UserID, &s.IsBooked, &s.BookedBy, &s.BookedAt, &s.BookedByName); err != nil {
		return nil, fmt.Errorf("reload slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &s, nil
}
