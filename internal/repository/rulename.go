package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmeshcher/backoffice-system/internal/model"
)

// RuleNames предоставляет CRUD-доступ к таблице бизнес-правил.
type RuleNames struct {
	pool *pgxpool.Pool
}

// GetAll возвращает все правила.
func (r *RuleNames) GetAll(ctx context.Context) ([]model.RuleName, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, json, template, sql_str, sql_part FROM rule_names`,
	)
	if err != nil {
		return nil, fmt.Errorf("select rule names: %w", err)
	}
	defer rows.Close()

	var rules []model.RuleName
	for rows.Next() {
		var rn model.RuleName
		if err := rows.Scan(&rn.ID, &rn.Name, &rn.Description, &rn.Json, &rn.Template, &rn.SqlStr, &rn.SqlPart); err != nil {
			return nil, fmt.Errorf("scan rule name: %w", err)
		}
		rules = append(rules, rn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return rules, nil
}

// GetByID возвращает правило по идентификатору либо nil, если записи нет.
func (r *RuleNames) GetByID(ctx context.Context, id int64) (*model.RuleName, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, description, json, template, sql_str, sql_part FROM rule_names WHERE id = $1`,
		id,
	)

	var rn model.RuleName
	err := row.Scan(&rn.ID, &rn.Name, &rn.Description, &rn.Json, &rn.Template, &rn.SqlStr, &rn.SqlPart)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get rule name: %w", err)
	}

	return &rn, nil
}

// Create сохраняет новое правило и возвращает его с присвоенным идентификатором.
func (r *RuleNames) Create(ctx context.Context, rn *model.RuleName) (*model.RuleName, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO rule_names (name, description, json, template, sql_str, sql_part)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		rn.Name, rn.Description, rn.Json, rn.Template, rn.SqlStr, rn.SqlPart,
	).Scan(&rn.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert rule name: %w", err)
	}

	return rn, nil
}

// Update сохраняет изменения ранее полученного правила.
func (r *RuleNames) Update(ctx context.Context, rn *model.RuleName) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE rule_names
		 SET name = $2, description = $3, json = $4, template = $5, sql_str = $6, sql_part = $7
		 WHERE id = $1`,
		rn.ID, rn.Name, rn.Description, rn.Json, rn.Template, rn.SqlStr, rn.SqlPart,
	)
	if err != nil {
		return fmt.Errorf("update rule name: %w", err)
	}
	return nil
}

// Delete удаляет правило.
func (r *RuleNames) Delete(ctx context.Context, rn *model.RuleName) (bool, error) {
	_, err := r.pool.Exec(ctx, `DELETE FROM rule_names WHERE id = $1`, rn.ID)
	if err != nil {
		return false, fmt.Errorf("delete rule name: %w", err)
	}
	return true, nil
}
