package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prithvinet/backend/internal/domain"
)

// historyLimit caps rows returned by history queries
const historyLimit = 100

// PostgresRepository implements domain.DataRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveReadings persists a snapshot of readings in one batch
func (r *PostgresRepository) SaveReadings(ctx context.Context, readings []domain.AirQualityReading) error {
	if len(readings) == 0 {
		return nil
	}

	query := `
		INSERT INTO air_quality_readings (
			city, aqi, status, pm25, pm10, no2, so2, o3, co, lat, lng, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	batch := &pgx.Batch{}
	for _, d := range readings {
		batch.Queue(query,
			d.City, d.AQI, string(d.Status), d.PM25, d.PM10, d.NO2, d.SO2, d.O3, d.CO,
			d.Lat, d.Lng, d.Timestamp,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range readings {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("postgres: failed to save readings: %w", err)
		}
	}

	return nil
}

// SaveSimulation persists a simulator run
func (r *PostgresRepository) SaveSimulation(ctx context.Context, run domain.SimulationRun) error {
	query := `
		INSERT INTO simulation_runs (
			id, user_id, role, params, predicted_aqi, emissions,
			sustainability_score, risk_level, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	params, err := json.Marshal(run.Params)
	if err != nil {
		return fmt.Errorf("postgres: failed to marshal simulation params: %w", err)
	}

	// Anonymous CLI runs have no user
	var userID interface{}
	if run.UserID != "" {
		userID = run.UserID
	}

	_, err = r.pool.Exec(ctx, query,
		run.ID, userID, string(run.Role), params,
		run.Result.PredictedAQI, run.Result.Emissions, run.Result.SustainabilityScore,
		string(run.Result.RiskLevel), run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save simulation run: %w", err)
	}

	return nil
}

// GetHistoricalReadings retrieves a city's readings, newest first
func (r *PostgresRepository) GetHistoricalReadings(ctx context.Context, city string, from, to time.Time) ([]domain.AirQualityReading, error) {
	query := `
		SELECT city, aqi, status, pm25, pm10, no2, so2, o3, co, lat, lng, timestamp
		FROM air_quality_readings
		WHERE city = $1 AND timestamp BETWEEN $2 AND $3
		ORDER BY timestamp DESC
		LIMIT $4
	`

	rows, err := r.pool.Query(ctx, query, city, from, to, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query readings: %w", err)
	}
	defer rows.Close()

	var results []domain.AirQualityReading
	for rows.Next() {
		var (
			d      domain.AirQualityReading
			status string
		)
		err := rows.Scan(
			&d.City, &d.AQI, &status, &d.PM25, &d.PM10, &d.NO2, &d.SO2, &d.O3, &d.CO,
			&d.Lat, &d.Lng, &d.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan reading row: %w", err)
		}
		d.Status = domain.AQIStatus(status)
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate readings: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
