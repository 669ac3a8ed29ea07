package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmeshcher/backoffice-system/internal/model"
)

// Trades предоставляет CRUD-доступ к таблице сделок.
type Trades struct {
	pool *pgxpool.Pool
}

// GetAll возвращает все сделки.
func (r *Trades) GetAll(ctx context.Context) ([]model.Trade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account, deal_type, buy_quantity, sell_quantity FROM trades`,
	)
	if err != nil {
		return nil, fmt.Errorf("select trades: %w", err)
	}
	defer rows.Close()

	var trades []model.Trade
	for rows.Next() {
		var t model.Trade
		if err := rows.Scan(&t.ID, &t.Account, &t.DealType, &t.BuyQuantity, &t.SellQuantity); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		trades = append(trades, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return trades, nil
}

// GetByID возвращает сделку по идентификатору либо nil, если записи нет.
func (r *Trades) GetByID(ctx context.Context, id int64) (*model.Trade, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, account, deal_type, buy_quantity, sell_quantity FROM trades WHERE id = $1`,
		id,
	)

	var t model.Trade
	err := row.Scan(&t.ID, &t.Account, &t.DealType, &t.BuyQuantity, &t.SellQuantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get trade: %w", err)
	}

	return &t, nil
}

// Create сохраняет новую сделку и возвращает её с присвоенным идентификатором.
func (r *Trades) Create(ctx context.Context, t *model.Trade) (*model.Trade, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trades (account, deal_type, buy_quantity, sell_quantity)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		t.Account, t.DealType, t.BuyQuantity, t.SellQuantity,
	).Scan(&t.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert trade: %w", err)
	}

	return t, nil
}

// Update сохраняет изменения ранее полученной сделки.
func (r *Trades) Update(ctx context.Context, t *model.Trade) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE trades
		 SET account = $2, deal_type = $3, buy_quantity = $4, sell_quantity = $5
		 WHERE id = $1`,
		t.ID, t.Account, t.DealType, t.BuyQuantity, t.SellQuantity,
	)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	return nil
}

// Delete удаляет сделку.
func (r *Trades) Delete(ctx context.Context, t *model.Trade) (bool, error) {
	_, err := r.pool.Exec(ctx, `DELETE FROM trades WHERE id = $1`, t.ID)
	if err != nil {
		return false, fmt.Errorf("delete trade: %w", err)
	}
	return true, nil
}
