package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/models"
)

// LoadSelection returns the working selection stored under key.
func (d *Database) LoadSelection(ctx context.Context, key string) (calendar.Selection, bool, error) {
	rec, err := d.GetPickerRecord(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return calendar.Selection{}, false, nil
	}
	if err != nil {
		return calendar.Selection{}, false, err
	}
	return calendar.Selection{
		Year:        rec.Year,
		Month:       rec.Month,
		Day:         rec.Day,
		Initialized: rec.Initialized,
	}, true, nil
}

// StoreSelection upserts the working selection under key.
func (d *Database) StoreSelection(ctx context.Context, key string, sel calendar.Selection) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, `INSERT INTO picker_state (key, year, month, day, initialized, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				year = excluded.year,
				month = excluded.month,
				day = excluded.day,
				initialized = excluded.initialized,
				updated_at = excluded.updated_at`,
			key, sel.Year, sel.Month, sel.Day, boolToInt(sel.Initialized), time.Now().UTC())
		return wrapErr(EntitySelection, "store", key, err)
	})
}

// GetPickerRecord returns the raw persisted row for key.
func (d *Database) GetPickerRecord(ctx context.Context, key string) (models.PickerRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.PickerRecord, error) {
		rec := models.PickerRecord{Key: key}
		var initialized int64
		var updatedAt sql.NullTime
		err := d.DB.QueryRowContext(ctx,
			"SELECT year, month, day, initialized, updated_at FROM picker_state WHERE key = ?", key).
			Scan(&rec.Year, &rec.Month, &rec.Day, &initialized, &updatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return rec, wrapErr(EntitySelection, "load", key, ErrNotFound)
		}
		if err != nil {
			return rec, wrapErr(EntitySelection, "load", key, err)
		}
		rec.Initialized = initialized != 0
		if updatedAt.Valid {
			rec.UpdatedAt = updatedAt.Time
		}
		return rec, nil
	})
}

// DeleteSelection forgets the working selection stored under key.
func (d *Database) DeleteSelection(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM picker_state WHERE key = ?", key)
		return wrapErr(EntitySelection, "delete", key, err)
	})
}
