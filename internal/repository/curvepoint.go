package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmeshcher/backoffice-system/internal/model"
)

// CurvePoints предоставляет CRUD-доступ к таблице точек кривых.
type CurvePoints struct {
	pool *pgxpool.Pool
}

// GetAll возвращает все точки кривых.
func (r *CurvePoints) GetAll(ctx context.Context) ([]model.CurvePoint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, curve_id, term, curve_point_value FROM curve_points`,
	)
	if err != nil {
		return nil, fmt.Errorf("select curve points: %w", err)
	}
	defer rows.Close()

	var points []model.CurvePoint
	for rows.Next() {
		var p model.CurvePoint
		if err := rows.Scan(&p.ID, &p.CurveID, &p.Term, &p.CurvePointValue); err != nil {
			return nil, fmt.Errorf("scan curve point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return points, nil
}

// GetByID возвращает точку кривой по идентификатору либо nil, если записи нет.
func (r *CurvePoints) GetByID(ctx context.Context, id int64) (*model.CurvePoint, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, curve_id, term, curve_point_value FROM curve_points WHERE id = $1`,
		id,
	)

	var p model.CurvePoint
	err := row.Scan(&p.ID, &p.CurveID, &p.Term, &p.CurvePointValue)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get curve point: %w", err)
	}

	return &p, nil
}

// Create сохраняет новую точку кривой и возвращает её с присвоенным идентификатором.
func (r *CurvePoints) Create(ctx context.Context, p *model.CurvePoint) (*model.CurvePoint, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO curve_points (curve_id, term, curve_point_value)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.CurveID, p.Term, p.CurvePointValue,
	).Scan(&p.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert curve point: %w", err)
	}

	return p, nil
}

// Update сохраняет изменения ранее полученной точки кривой.
func (r *CurvePoints) Update(ctx context.Context, p *model.CurvePoint) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE curve_points
		 SET curve_id = $2, term = $3, curve_point_value = $4
		 WHERE id = $1`,
		p.ID, p.CurveID, p.Term, p.CurvePointValue,
	)
	if err != nil {
		return fmt.Errorf("update curve point: %w", err)
	}
	return nil
}

// Delete удаляет точку кривой.
func (r *CurvePoints) Delete(ctx context.Context, p *model.CurvePoint) (bool, error) {
	_, err := r.pool.Exec(ctx, `DELETE FROM curve_points WHERE id = $1`, p.ID)
	if err != nil {
		return false, fmt.Errorf("delete curve point: %w", err)
	}
	return true, nil
}
