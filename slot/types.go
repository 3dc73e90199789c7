package slot

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Date holds a date-only column value and marshals as "2006-01-02".
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date: %w", err)
	}
	return Date{Time: t}, nil
}

// Value implements driver.Valuer for query parameters.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for SELECT.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("unsupported date type: %T", value)
	}
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// TimeOfDay holds a time-only column value and marshals as "15:04:05".
type TimeOfDay struct {
	time.Time
}

// Value implements driver.Valuer for query parameters.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Time, nil
}

// Scan implements sql.Scanner for SELECT.
func (t *TimeOfDay) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		t.Time = v
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported time type: %T", value)
	}
}

func (t *TimeOfDay) parse(s string) error {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return fmt.Errorf("parse time: %w", err)
	}
	t.Time = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

// AvailableSlot is the shape returned by the availability listing: an unbooked
// slot joined with its creator's name.
type AvailableSlot struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        Date      `json:"date"`
	StartTime   TimeOfDay `json:"start_time"`
	EndTime     TimeOfDay `json:"end_time"`
	CreatorName *string   `json:"creator_name"`
}

// Slot mirrors a full row of the slots table, joined with the booking user's
// name. JSON keys match the column names that existing consumers expect.
type Slot struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Date         Date       `json:"date"`
	StartTime    TimeOfDay  `json:"start_time"`
	EndTime      TimeOfDay  `json:"end_time"`
	UserID       *int64     `json:"user_id"`
	IsBooked     bool       `json:"is_booked"`
	BookedBy     *int64     `json:"booked_by"`
	BookedAt     *time.Time `json:"booked_at"`
	BookedByName *string    `json:"booked_by_name"`
}
