// Package model содержит доменные сущности бэк-офиса.
package model

import "time"

// Bid представляет торговую заявку (предложение).
type Bid struct {
	ID           int64
	Account      string
	BidType      string
	BidQuantity  *float64
	AskQuantity  *float64
	Bid          *float64
	Ask          *float64
	BidListDate  *time.Time
	BidStatus    string
	Trader       string
	CreationName string
	CreationDate *time.Time
	RevisionName string
	RevisionDate *time.Time
}

// GetID возвращает идентификатор заявки.
func (b *Bid) GetID() int64 { return b.ID }

// SetID устанавливает идентификатор заявки.
func (b *Bid) SetID(id int64) { b.ID = id }

// Trade представляет сделку покупки или продажи.
type Trade struct {
	ID           int64
	Account      string
	DealType     string
	BuyQuantity  *float64
	SellQuantity *float64
}

// GetID возвращает идентификатор сделки.
func (t *Trade) GetID() int64 { return t.ID }

// SetID устанавливает идентификатор сделки.
func (t *Trade) SetID(id int64) { t.ID = id }

// CurvePoint представляет точку кривой доходности.
type CurvePoint struct {
	ID              int64
	CurveID         int16
	Term            *float64
	CurvePointValue *float64
}

// GetID возвращает идентификатор точки кривой.
func (c *CurvePoint) GetID() int64 { return c.ID }

// SetID устанавливает идентификатор точки кривой.
func (c *CurvePoint) SetID(id int64) { c.ID = id }

// Rating представляет кредитный рейтинг инструмента по трём агентствам.
type Rating struct {
	ID           int64
	MoodysRating string
	SandPRating  string
	FitchRating  string
	OrderNumber  *int32
}

// GetID возвращает идентификатор рейтинга.
func (r *Rating) GetID() int64 { return r.ID }

// SetID устанавливает идентификатор рейтинга.
func (r *Rating) SetID(id int64) { r.ID = id }

// RuleName представляет бизнес-правило и его SQL-шаблоны.
type RuleName struct {
	ID          int64
	Name        string
	Description string
	Json        string
	Template    string
	SqlStr      string
	SqlPart     string
}

// GetID возвращает идентификатор правила.
func (r *RuleName) GetID() int64 { return r.ID }

// SetID устанавливает идентификатор правила.
func (r *RuleName) SetID(id int64) { r.ID = id }

// User представляет пользователя бэк-офиса.
type User struct {
	ID       int64
	UserName string
	Password string
	FullName string
	Role     string
}

// GetID возвращает идентификатор пользователя.
func (u *User) GetID() int64 { return u.ID }

// SetID устанавливает идентификатор пользователя.
func (u *User) SetID(id int64) { u.ID = id }
