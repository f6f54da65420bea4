package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jengzang/trip-metrics-backend-go/internal/database"
	"github.com/jengzang/trip-metrics-backend-go/internal/models"
)

// Setting keys
const (
	SettingMetricUnits    = "metric_units"
	SettingMetricDistance = "metric_distance"
)

// SettingsRepository stores process-wide user settings as key/value rows
type SettingsRepository struct {
	db       *sql.DB
	defaults models.UnitPreference
}

// NewSettingsRepository creates a settings repository. defaults is returned
// for every unit setting that has never been saved.
func NewSettingsRepository(db *sql.DB, defaults models.UnitPreference) *SettingsRepository {
	return &SettingsRepository{db: db, defaults: defaults}
}

// GetUnitPreference reads the current unit preference
func (r *SettingsRepository) GetUnitPreference(ctx context.Context) (models.UnitPreference, error) {
	pref := r.defaults

	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM settings WHERE key IN (?, ?)`,
		SettingMetricUnits, SettingMetricDistance)
	if err != nil {
		return pref, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return pref, fmt.Errorf("failed to scan setting: %w", err)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return pref, fmt.Errorf("invalid value %q for setting %s: %w", value, key, err)
		}
		switch key {
		case SettingMetricUnits:
			pref.MetricUnits = b
		case SettingMetricDistance:
			pref.MetricDistance = b
		}
	}
	if err := rows.Err(); err != nil {
		return pref, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return pref, nil
}

// SaveUnitPreference persists both unit settings
func (r *SettingsRepository) SaveUnitPreference(ctx context.Context, pref models.UnitPreference) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		values := map[string]bool{
			SettingMetricUnits:    pref.MetricUnits,
			SettingMetricDistance: pref.MetricDistance,
		}
		for _, key := range []string{SettingMetricUnits, SettingMetricDistance} {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO settings (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
				key, strconv.FormatBool(values[key]))
			if err != nil {
				return fmt.Errorf("failed to save setting %s: %w", key, err)
			}
		}
		return nil
	})
}
