// Package dto содержит внешние представления сущностей для HTTP API.
// Теги validate проверяются на границе HTTP до вызова сервисного слоя.
package dto

// Bid — внешнее представление торговой заявки.
type Bid struct {
	ID          int64    `json:"id"`
	Account     string   `json:"account" validate:"required"`
	BidType     string   `json:"bidType" validate:"required"`
	BidQuantity *float64 `json:"bidQuantity" validate:"omitempty,gte=0"`
}

// Trade — внешнее представление сделки.
type Trade struct {
	ID           int64    `json:"id"`
	Account      string   `json:"account" validate:"required"`
	DealType     string   `json:"dealType" validate:"required"`
	BuyQuantity  *float64 `json:"buyQuantity" validate:"omitempty,gte=0"`
	SellQuantity *float64 `json:"sellQuantity" validate:"omitempty,gte=0"`
}

// CurvePoint — внешнее представление точки кривой.
type CurvePoint struct {
	ID              int64    `json:"id"`
	CurveID         int16    `json:"curveId" validate:"required"`
	Term            *float64 `json:"term"`
	CurvePointValue *float64 `json:"curvePointValue"`
}

// Rating — внешнее представление кредитного рейтинга.
type Rating struct {
	ID           int64  `json:"id"`
	MoodysRating string `json:"moodysRating"`
	SandPRating  string `json:"sandPRating"`
	FitchRating  string `json:"fitchRating"`
	OrderNumber  *int32 `json:"orderNumber"`
}

// RuleName — внешнее представление бизнес-правила.
type RuleName struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Json        string `json:"json"`
	Template    string `json:"template"`
	SqlStr      string `json:"sqlStr"`
	SqlPart     string `json:"sqlPart"`
}

// User — внешнее представление пользователя.
type User struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullName"`
	Role     string `json:"role" validate:"required"`
}
