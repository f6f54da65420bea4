package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/trip-metrics-backend-go/internal/models"
)

func TestSettingsRepositoryDefaults(t *testing.T) {
	defaults := models.UnitPreference{MetricDistance: true}
	repo := NewSettingsRepository(newTestDB(t), defaults)

	got, err := repo.GetUnitPreference(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults, got)
}

func TestSettingsRepositorySaveAndReload(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(newTestDB(t), models.UnitPreference{})

	want := models.UnitPreference{MetricUnits: true, MetricDistance: false}
	require.NoError(t, repo.SaveUnitPreference(ctx, want))

	got, err := repo.GetUnitPreference(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want = models.UnitPreference{MetricUnits: false, MetricDistance: true}
	require.NoError(t, repo.SaveUnitPreference(ctx, want))

	got, err = repo.GetUnitPreference(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsRepositoryInvalidValue(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	_, err := conn.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, SettingMetricUnits, "sometimes")
	require.NoError(t, err)

	_, err = NewSettingsRepository(conn, models.UnitPreference{}).GetUnitPreference(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), SettingMetricUnits)
}

func TestSettingsRepositoryQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT key, value FROM settings`).WillReturnError(errors.New("no such table"))

	_, err = NewSettingsRepository(db, models.UnitPreference{}).GetUnitPreference(context.Background())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
