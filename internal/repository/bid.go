package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmeshcher/backoffice-system/internal/model"
)

// Bids предоставляет CRUD-доступ к таблице торговых заявок.
type Bids struct {
	pool *pgxpool.Pool
}

// GetAll возвращает все заявки в порядке, определяемом хранилищем.
func (r *Bids) GetAll(ctx context.Context) ([]model.Bid, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account, bid_type, bid_quantity, ask_quantity, bid, ask,
		        bid_list_date, bid_status, trader,
		        creation_name, creation_date, revision_name, revision_date
		 FROM bids`,
	)
	if err != nil {
		return nil, fmt.Errorf("select bids: %w", err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(
			&b.ID, &b.Account, &b.BidType, &b.BidQuantity, &b.AskQuantity, &b.Bid, &b.Ask,
			&b.BidListDate, &b.BidStatus, &b.Trader,
			&b.CreationName, &b.CreationDate, &b.RevisionName, &b.RevisionDate,
		); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return bids, nil
}

// GetByID возвращает заявку по идентификатору либо nil, если записи нет.
func (r *Bids) GetByID(ctx context.Context, id int64) (*model.Bid, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, account, bid_type, bid_quantity, ask_quantity, bid, ask,
		        bid_list_date, bid_status, trader,
		        creation_name, creation_date, revision_name, revision_date
		 FROM bids WHERE id = $1`,
		id,
	)

	var b model.Bid
	err := row.Scan(
		&b.ID, &b.Account, &b.BidType, &b.BidQuantity, &b.AskQuantity, &b.Bid, &b.Ask,
		&b.BidListDate, &b.BidStatus, &b.Trader,
		&b.CreationName, &b.CreationDate, &b.RevisionName, &b.RevisionDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get bid: %w", err)
	}

	return &b, nil
}

// Create сохраняет новую заявку и возвращает её с присвоенным идентификатором.
// Если вставка не вернула строку, возвращается nil без ошибки.
func (r *Bids) Create(ctx context.Context, b *model.Bid) (*model.Bid, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bids (account, bid_type, bid_quantity, ask_quantity, bid, ask,
		                   bid_list_date, bid_status, trader,
		                   creation_name, creation_date, revision_name, revision_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		b.Account, b.BidType, b.BidQuantity, b.AskQuantity, b.Bid, b.Ask,
		b.BidListDate, b.BidStatus, b.Trader,
		b.CreationName, b.CreationDate, b.RevisionName, b.RevisionDate,
	).Scan(&b.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert bid: %w", err)
	}

	return b, nil
}

// Update сохраняет изменения ранее полученной заявки.
func (r *Bids) Update(ctx context.Context, b *model.Bid) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE bids
		 SET account = $2, bid_type = $3, bid_quantity = $4, ask_quantity = $5,
		     bid = $6, ask = $7, bid_list_date = $8, bid_status = $9, trader = $10,
		     creation_name = $11, creation_date = $12, revision_name = $13, revision_date = $14
		 WHERE id = $1`,
		b.ID, b.Account, b.BidType, b.BidQuantity, b.AskQuantity,
		b.Bid, b.Ask, b.BidListDate, b.BidStatus, b.Trader,
		b.CreationName, b.CreationDate, b.RevisionName, b.RevisionDate,
	)
	if err != nil {
		return fmt.Errorf("update bid: %w", err)
	}
	return nil
}

// Delete удаляет заявку.
func (r *Bids) Delete(ctx context.Context, b *model.Bid) (bool, error) {
	_, err := r.pool.Exec(ctx, `DELETE FROM bids WHERE id = $1`, b.ID)
	if err != nil {
		return false, fmt.Errorf("delete bid: %w", err)
	}
	return true, nil
}
