package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmeshcher/backoffice-system/internal/model"
)

// Ratings предоставляет CRUD-доступ к таблице кредитных рейтингов.
type Ratings struct {
	pool *pgxpool.Pool
}

// GetAll возвращает все рейтинги.
func (r *Ratings) GetAll(ctx context.Context) ([]model.Rating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, moodys_rating, sandp_rating, fitch_rating, order_number FROM ratings`,
	)
	if err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}
	defer rows.Close()

	var ratings []model.Rating
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.MoodysRating, &rt.SandPRating, &rt.FitchRating, &rt.OrderNumber); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return ratings, nil
}

// GetByID возвращает рейтинг по идентификатору либо nil, если записи нет.
func (r *Ratings) GetByID(ctx context.Context, id int64) (*model.Rating, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, moodys_rating, sandp_rating, fitch_rating, order_number FROM ratings WHERE id = $1`,
		id,
	)

	var rt model.Rating
	err := row.Scan(&rt.ID, &rt.MoodysRating, &rt.SandPRating, &rt.FitchRating, &rt.OrderNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}

	return &rt, nil
}

// Create сохраняет новый рейтинг и возвращает его с присвоенным идентификатором.
func (r *Ratings) Create(ctx context.Context, rt *model.Rating) (*model.Rating, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ratings (moodys_rating, sandp_rating, fitch_rating, order_number)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		rt.MoodysRating, rt.SandPRating, rt.FitchRating, rt.OrderNumber,
	).Scan(&rt.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert rating: %w", err)
	}

	return rt, nil
}

// Update сохраняет изменения ранее полученного рейтинга.
func (r *Ratings) Update(ctx context.Context, rt *model.Rating) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE ratings
		 SET moodys_rating = $2, sandp_rating = $3, fitch_rating = $4, order_number = $5
		 WHERE id = $1`,
		rt.ID, rt.MoodysRating, rt.SandPRating, rt.FitchRating, rt.OrderNumber,
	)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

// Delete удаляет рейтинг.
func (r *Ratings) Delete(ctx context.Context, rt *model.Rating) (bool, error) {
	_, err := r.pool.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, rt.ID)
	if err != nil {
		return false, fmt.Errorf("delete rating: %w", err)
	}
	return true, nil
}
