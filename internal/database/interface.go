package database

import (
	"context"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/models"
)

// SelectionRepository persists working selections by picker key.
type SelectionRepository interface {
	LoadSelection(ctx context.Context, key string) (calendar.Selection, bool, error)
	StoreSelection(ctx context.Context, key string, sel calendar.Selection) error
	GetPickerRecord(ctx context.Context, key string) (models.PickerRecord, error)
	DeleteSelection(ctx context.Context, key string) error
}

// BoundDateRepository persists committed dates by picker key.
type BoundDateRepository interface {
	GetBoundDate(ctx context.Context, key string) (calendar.Date, bool, error)
	SetBoundDate(ctx context.Context, key string, date calendar.Date) error
}

// SettingsRepository persists user preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SelectionRepository
	BoundDateRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
