package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/calpick/internal/calendar"
)

// GetBoundDate returns the committed date stored under key.
func (d *Database) GetBoundDate(ctx context.Context, key string) (calendar.Date, bool, error) {
	var date calendar.Date
	var found bool
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		var raw string
		err := d.DB.QueryRowContext(ctx, "SELECT date FROM bound_dates WHERE key = ?", key).Scan(&raw)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return wrapErr(EntityBoundDate, "load", key, err)
		}
		if date, err = calendar.ParseDate(raw); err != nil {
			return wrapErr(EntityBoundDate, "parse", key, err)
		}
		found = true
		return nil
	})
	return date, found, err
}

// SetBoundDate overwrites the committed date stored under key.
func (d *Database) SetBoundDate(ctx context.Context, key string, date calendar.Date) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO bound_dates (key, date) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET date = excluded.date",
			key, date.String())
		return wrapErr(EntityBoundDate, "store", key, err)
	})
}
