package service

import (
	"time"

	"github.com/mmeshcher/backoffice-system/internal/dto"
	"github.com/mmeshcher/backoffice-system/internal/model"
)

// BidService выполняет CRUD-операции над торговыми заявками.
type BidService = Crud[model.Bid, *model.Bid, dto.Bid]

// TradeService выполняет CRUD-операции над сделками.
type TradeService = Crud[model.Trade, *model.Trade, dto.Trade]

// CurvePointService выполняет CRUD-операции над точками кривых.
type CurvePointService = Crud[model.CurvePoint, *model.CurvePoint, dto.CurvePoint]

// RatingService выполняет CRUD-операции над рейтингами.
type RatingService = Crud[model.Rating, *model.Rating, dto.Rating]

// RuleNameService выполняет CRUD-операции над бизнес-правилами.
type RuleNameService = Crud[model.RuleName, *model.RuleName, dto.RuleName]

// UserService выполняет CRUD-операции над пользователями.
type UserService = Crud[model.User, *model.User, dto.User]

// NewBidService создаёт сервис заявок. Единственный вид записей с дополнительной
// проверкой количества при создании и аудитом создателя и редактора.
func NewBidService(repo Repository[model.Bid], actor string) *BidService {
	return newCrud[model.Bid, *model.Bid, dto.Bid](repo,
		Messages{
			CreateFailed: "La création de l'offre n'a pas abouti.",
			NotFound:     "L'offre spécifiée n'existe pas.",
		},
		Hooks[model.Bid, dto.Bid]{
			ValidateCreate: func(d dto.Bid) string {
				if d.BidQuantity != nil && *d.BidQuantity < 0 {
					return "La quantité ne peut pas être négative."
				}
				return ""
			},
			StampCreate: func(b *model.Bid, actor string) {
				b.CreationName = actor
			},
			StampUpdate: func(b *model.Bid, actor string, now time.Time) {
				b.RevisionName = actor
				b.RevisionDate = &now
			},
		},
		actor,
	)
}

// NewTradeService создаёт сервис сделок.
func NewTradeService(repo Repository[model.Trade], actor string) *TradeService {
	return newCrud[model.Trade, *model.Trade, dto.Trade](repo,
		Messages{
			CreateFailed: "La création du trade n'a pas abouti.",
			NotFound:     "Le trade spécifié n'existe pas.",
		},
		Hooks[model.Trade, dto.Trade]{},
		actor,
	)
}

// NewCurvePointService создаёт сервис точек кривых.
func NewCurvePointService(repo Repository[model.CurvePoint], actor string) *CurvePointService {
	return newCrud[model.CurvePoint, *model.CurvePoint, dto.CurvePoint](repo,
		Messages{
			CreateFailed: "La création du point n'a pas abouti.",
			NotFound:     "Le point spécifié n'existe pas.",
		},
		Hooks[model.CurvePoint, dto.CurvePoint]{},
		actor,
	)
}

// NewRatingService создаёт сервис рейтингов.
func NewRatingService(repo Repository[model.Rating], actor string) *RatingService {
	return newCrud[model.Rating, *model.Rating, dto.Rating](repo,
		Messages{
			CreateFailed: "La création de la note n'a pas abouti.",
			NotFound:     "La note spécifiée n'existe pas.",
		},
		Hooks[model.Rating, dto.Rating]{},
		actor,
	)
}

// NewRuleNameService создаёт сервис бизнес-правил.
func NewRuleNameService(repo Repository[model.RuleName], actor string) *RuleNameService {
	return newCrud[model.RuleName, *model.RuleName, dto.RuleName](repo,
		Messages{
			CreateFailed: "La création de la règle n'a pas abouti.",
			NotFound:     "La règle spécifiée n'existe pas.",
		},
		Hooks[model.RuleName, dto.RuleName]{},
		actor,
	)
}

// NewUserService создаёт сервис пользователей.
func NewUserService(repo Repository[model.User], actor string) *UserService {
	return newCrud[model.User, *model.User, dto.User](repo,
		Messages{
			CreateFailed: "La création de l'utilisateur n'a pas abouti.",
			NotFound:     "L'utilisateur spécifié n'existe pas.",
		},
		Hooks[model.User, dto.User]{},
		actor,
	)
}
