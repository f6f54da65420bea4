package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/trip-metrics-backend-go/internal/database"
	"github.com/jengzang/trip-metrics-backend-go/internal/models"
)

// TripRepository handles database operations for trips and their points
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// GetTrips retrieves trip summaries with filtering and pagination
func (r *TripRepository) GetTrips(ctx context.Context, filter models.TripFilter) ([]models.TripSummary, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.StartTime > 0 {
		conditions = append(conditions, "t.start_ms >= ?")
		args = append(args, filter.StartTime*1000)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "t.start_ms <= ?")
		args = append(args, filter.EndTime*1000)
	}
	if filter.Name != "" {
		conditions = append(conditions, "t.name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips t"+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	normalizePage(&filter.Page, &filter.PageSize)
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT t.id, t.name, t.start_ms, COUNT(p.sequence)
		FROM trips t LEFT JOIN trip_points p ON p.trip_id = t.id` + where + `
		GROUP BY t.id ORDER BY t.start_ms DESC LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.TripSummary
	for rows.Next() {
		var s models.TripSummary
		var startMs int64
		if err := rows.Scan(&s.ID, &s.Name, &startMs, &s.PointCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		s.StartTimestamp = fromMillis(startMs)
		trips = append(trips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, total, nil
}

// GetTripByID retrieves a trip with its points ordered by sequence.
// It returns nil without error when no trip has the given ID.
func (r *TripRepository) GetTripByID(ctx context.Context, id string) (*models.Trip, error) {
	var t models.Trip
	var startMs int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, start_ms FROM trips WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &startMs)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	t.StartTimestamp = fromMillis(startMs)

	points, err := r.getPoints(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Points = points

	return &t, nil
}

func (r *TripRepository) getPoints(ctx context.Context, tripID string) ([]models.TripPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, recorded_ms, latitude, longitude, speed, has_obd_data, mass_flow_rate
		FROM trip_points WHERE trip_id = ? ORDER BY sequence`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip points: %w", err)
	}
	defer rows.Close()

	points := []models.TripPoint{}
	for rows.Next() {
		var p models.TripPoint
		var recordedMs int64
		var flow sql.NullFloat64
		if err := rows.Scan(&p.Sequence, &recordedMs, &p.Latitude, &p.Longitude,
			&p.Speed, &p.HasOBDData, &flow); err != nil {
			return nil, fmt.Errorf("failed to scan trip point: %w", err)
		}
		p.Timestamp = fromMillis(recordedMs)
		if flow.Valid {
			v := flow.Float64
			p.MassFlowRate = &v
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip points: %w", err)
	}

	return points, nil
}

// CreateTrip stores a trip and all of its points in one transaction
func (r *TripRepository) CreateTrip(ctx context.Context, trip models.Trip) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trips (id, name, start_ms) VALUES (?, ?, ?)`,
			trip.ID, trip.Name, trip.StartTimestamp.UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO trip_points (trip_id, sequence, recorded_ms, latitude, longitude, speed, has_obd_data, mass_flow_rate)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare point insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range trip.Points {
			var flow sql.NullFloat64
			if p.MassFlowRate != nil {
				flow = sql.NullFloat64{Float64: *p.MassFlowRate, Valid: true}
			}
			if _, err := stmt.ExecContext(ctx, trip.ID, p.Sequence, p.Timestamp.UnixMilli(),
				p.Latitude, p.Longitude, p.Speed, p.HasOBDData, flow); err != nil {
				return fmt.Errorf("failed to insert trip point %d: %w", p.Sequence, err)
			}
		}
		return nil
	})
}

// DeleteTrip removes a trip and its points. It reports whether a trip was deleted.
func (r *TripRepository) DeleteTrip(ctx context.Context, id string) (bool, error) {
	var deleted int64
	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM trip_points WHERE trip_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete trip points: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete trip: %w", err)
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func normalizePage(page, pageSize *int) {
	if *page < 1 {
		*page = 1
	}
	if *pageSize < 1 {
		*pageSize = 100
	}
	if *pageSize > 1000 {
		*pageSize = 1000
	}
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
