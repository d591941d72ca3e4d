package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateFromPgtype renders a DATE column as YYYY-MM-DD.
func DateFromPgtype(pd pgtype.Date) string {
	if !pd.Valid {
		return ""
	}
	return pd.Time.Format(dateLayout)
}

func DateToPgtype(date string) (pgtype.Date, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// TimeOfDayFromPgtype renders a TIME column as HH:MM:SS.
func TimeOfDayFromPgtype(pt pgtype.Time) string {
	if !pt.Valid {
		return ""
	}
	total := pt.Microseconds / 1_000_000
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

func TimeOfDayToPgtype(timeOfDay string) (pgtype.Time, error) {
	t, err := time.Parse(timeLayout, timeOfDay)
	if err != nil {
		return pgtype.Time{}, fmt.Errorf("invalid time %q: %w", timeOfDay, err)
	}
	micros := int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
	return pgtype.Time{Microseconds: micros * 1_000_000, Valid: true}, nil
}

// DecimalFromNumeric converts a NUMERIC column to a decimal without passing
// through float64.
func DecimalFromNumeric(pn pgtype.Numeric) decimal.Decimal {
	if !pn.Valid || pn.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(pn.Int, pn.Exp)
}

func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
