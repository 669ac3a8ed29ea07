// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrDuplicateUserName возвращается при попытке создать пользователя с уже занятым именем.
var ErrDuplicateUserName = errors.New("user name already taken")

// Store предоставляет доступ к хранилищу данных в PostgreSQL.
// Типизированные репозитории по видам записей выдаются методами Bids, Trades и т.д.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore создаёт новое хранилище и инициализирует схему БД через миграции.
func NewStore(dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{pool: pool}

	if err := s.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close закрывает пул соединений с БД.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Bids возвращает репозиторий торговых заявок.
func (s *Store) Bids() *Bids { return &Bids{pool: s.pool} }

// Trades возвращает репозиторий сделок.
func (s *Store) Trades() *Trades { return &Trades{pool: s.pool} }

// CurvePoints возвращает репозиторий точек кривых.
func (s *Store) CurvePoints() *CurvePoints { return &CurvePoints{pool: s.pool} }

// Ratings возвращает репозиторий рейтингов.
func (s *Store) Ratings() *Ratings { return &Ratings{pool: s.pool} }

// RuleNames возвращает репозиторий бизнес-правил.
func (s *Store) RuleNames() *RuleNames { return &RuleNames{pool: s.pool} }

// Users возвращает репозиторий пользователей.
func (s *Store) Users() *Users { return &Users{pool: s.pool} }
