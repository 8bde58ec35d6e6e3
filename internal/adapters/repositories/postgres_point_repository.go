package repositories

import (
	"context"
	"database/sql"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the PointRepository port.
// Registration order is kept by a serial column.
type PostgresPointRepository struct{ DB *sql.DB }

func NewPostgresPointRepository(db *sql.DB) *PostgresPointRepository {
	return &PostgresPointRepository{DB: db}
}

// Return all points stored in the database in registration order.
func (s *PostgresPointRepository) ListPoints(ctx context.Context) (_ []domain.DeliveryPoint, err error) {
	defer obs.Time(ctx, "points.repo.ListPoints")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres point repository: DB is nil")
	}

	query := `
	SELECT
		point_id,
		name,
		lat,
		lon,
		weight_kg
	FROM delivery_points
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list points: query delivery_points table: %w", err)
	}
	defer rows.Close()

	points := make([]domain.DeliveryPoint, 0, 64)
	for rows.Next() {
		var p domain.DeliveryPoint
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lon, &p.WeightKg); err != nil {
			return nil, fmt.Errorf("list points: scan row: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points: row iteration: %w", err)
	}

	return points, nil
}

func (s *PostgresPointRepository) AddPoint(ctx context.Context, p domain.DeliveryPoint) error {
	if s.DB == nil {
		return errors.New("postgres point repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `
	INSERT INTO delivery_points (point_id, name, lat, lon, weight_kg)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (point_id) DO NOTHING;
	`, p.ID, p.Name, p.Lat, p.Lon, p.WeightKg)
	if err != nil {
		return fmt.Errorf("add point id=%q: %w", p.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("add point id=%q: rows affected: %w", p.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("add point id=%q: %w", p.ID, domain.ErrDuplicatePoint)
	}

	return nil
}

func (s *PostgresPointRepository) DeletePoint(ctx context.Context, id string) error {
	if s.DB == nil {
		return errors.New("postgres point repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM delivery_points WHERE point_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete point id=%q: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete point id=%q: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete point id=%q: %w", id, domain.ErrPointNotFound)
	}

	return nil
}

func (s *PostgresPointRepository) Clear(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("postgres point repository: DB is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM delivery_points;`); err != nil {
		return fmt.Errorf("clear points: %w", err)
	}
	return nil
}
