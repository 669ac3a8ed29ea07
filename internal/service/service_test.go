package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mmeshcher/backoffice-system/internal/dto"
	"github.com/mmeshcher/backoffice-system/internal/model"
)

type stubRepo[E any] struct {
	all    []E
	allErr error

	stored map[int64]*E
	getErr error

	created     *E
	createErr   error
	createCalls int
	lastCreated *E

	updateErr   error
	updateCalls int

	deleteErr   error
	deleteCalls int
}

func (s *stubRepo[E]) GetAll(ctx context.Context) ([]E, error) {
	return s.all, s.allErr
}

func (s *stubRepo[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored[id], nil
}

func (s *stubRepo[E]) Create(ctx context.Context, entity *E) (*E, error) {
	s.createCalls++
	s.lastCreated = entity
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubRepo[E]) Update(ctx context.Context, entity *E) error {
	s.updateCalls++
	return s.updateErr
}

func (s *stubRepo[E]) Delete(ctx context.Context, entity *E) (bool, error) {
	s.deleteCalls++
	if s.deleteErr != nil {
		return false, s.deleteErr
	}
	return true, nil
}

func float(v float64) *float64 { return &v }

func TestBidCreate_NegativeQuantityRejected(t *testing.T) {
	repo := &stubRepo[model.Bid]{}
	svc := NewBidService(repo, "")

	res, err := svc.Create(context.Background(), dto.Bid{
		Account:     "ACC",
		BidType:     "LIMIT",
		BidQuantity: float(-1),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if !res.IsFailure() {
		t.Fatalf("expected failure for negative quantity")
	}
	if res.Error() != "La quantité ne peut pas être négative." {
		t.Fatalf("Error = %q", res.Error())
	}
	if repo.createCalls != 0 {
		t.Fatalf("store create must not be called, got %d calls", repo.createCalls)
	}
}

// testCreateFailure проверяет текст отказа при создании, когда хранилище не вернуло запись.
func testCreateFailure[E any, PE identifiable[E], D any](t *testing.T, svc *Crud[E, PE, D], d D, want string) {
	t.Helper()

	res, err := svc.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !res.IsFailure() {
		t.Fatalf("expected failure when store returns no row")
	}
	if res.Error() != want {
		t.Fatalf("Error = %q, want %q", res.Error(), want)
	}
}

func TestCreate_StoreReturnsNoRow_FailureMessages(t *testing.T) {
	t.Run("bid", func(t *testing.T) {
		svc := NewBidService(&stubRepo[model.Bid]{}, "")
		testCreateFailure(t, svc, dto.Bid{Account: "A", BidType: "T"},
			"La création de l'offre n'a pas abouti.")
	})
	t.Run("trade", func(t *testing.T) {
		svc := NewTradeService(&stubRepo[model.Trade]{}, "")
		testCreateFailure(t, svc, dto.Trade{Account: "A", DealType: "BUY"},
			"La création du trade n'a pas abouti.")
	})
	t.Run("curve point", func(t *testing.T) {
		svc := NewCurvePointService(&stubRepo[model.CurvePoint]{}, "")
		testCreateFailure(t, svc, dto.CurvePoint{CurveID: 1, Term: float(5), CurvePointValue: float(0.5)},
			"La création du point n'a pas abouti.")
	})
	t.Run("rating", func(t *testing.T) {
		svc := NewRatingService(&stubRepo[model.Rating]{}, "")
		testCreateFailure(t, svc, dto.Rating{MoodysRating: "A"},
			"La création de la note n'a pas abouti.")
	})
	t.Run("rule name", func(t *testing.T) {
		svc := NewRuleNameService(&stubRepo[model.RuleName]{}, "")
		testCreateFailure(t, svc, dto.RuleName{Name: "rule"},
			"La création de la règle n'a pas abouti.")
	})
	t.Run("user", func(t *testing.T) {
		svc := NewUserService(&stubRepo[model.User]{}, "")
		testCreateFailure(t, svc, dto.User{UserName: "u", Password: "p", Role: "Admin"},
			"La création de l'utilisateur n'a pas abouti.")
	})
}

func TestCreate_StoreReturnsZeroID(t *testing.T) {
	repo := &stubRepo[model.Trade]{
		created: &model.Trade{ID: 0, Account: "A", DealType: "BUY"},
	}
	svc := NewTradeService(repo, "")

	res, err := svc.Create(context.Background(), dto.Trade{Account: "A", DealType: "BUY"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !res.IsFailure() {
		t.Fatalf("expected failure for entity with zero id")
	}
	if res.Error() != "La création du trade n'a pas abouti." {
		t.Fatalf("Error = %q", res.Error())
	}
}

func TestBidCreate_Success(t *testing.T) {
	repo := &stubRepo[model.Bid]{
		created: &model.Bid{ID: 7, Account: "ACC", BidType: "LIMIT", BidQuantity: float(10)},
	}
	svc := NewBidService(repo, "")

	res, err := svc.Create(context.Background(), dto.Bid{
		Account:     "ACC",
		BidType:     "LIMIT",
		BidQuantity: float(10),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got failure: %q", res.Error())
	}

	v := res.Value()
	if v.ID != 7 || v.Account != "ACC" || v.BidType != "LIMIT" {
		t.Fatalf("unexpected dto: %+v", v)
	}
	if v.BidQuantity == nil || *v.BidQuantity != 10 {
		t.Fatalf("BidQuantity = %v, want 10", v.BidQuantity)
	}
}

func TestBidCreate_StampsCreationActor(t *testing.T) {
	repo := &stubRepo[model.Bid]{
		created: &model.Bid{ID: 1},
	}
	svc := NewBidService(repo, "")

	if _, err := svc.Create(context.Background(), dto.Bid{Account: "A", BidType: "T"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if repo.lastCreated == nil {
		t.Fatalf("store create was not called")
	}
	if repo.lastCreated.CreationName != DefaultActor {
		t.Fatalf("CreationName = %q, want %q", repo.lastCreated.CreationName, DefaultActor)
	}
}

func TestBidCreate_CustomActor(t *testing.T) {
	repo := &stubRepo[model.Bid]{
		created: &model.Bid{ID: 1},
	}
	svc := NewBidService(repo, "back-office-bot")

	if _, err := svc.Create(context.Background(), dto.Bid{Account: "A", BidType: "T"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if repo.lastCreated.CreationName != "back-office-bot" {
		t.Fatalf("CreationName = %q, want back-office-bot", repo.lastCreated.CreationName)
	}
}

func TestBidUpdate_NotFound(t *testing.T) {
	repo := &stubRepo[model.Bid]{stored: map[int64]*model.Bid{}}
	svc := NewBidService(repo, "")

	res, err := svc.Update(context.Background(), 99, dto.Bid{Account: "A", BidType: "T"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if !res.IsFailure() {
		t.Fatalf("expected failure for unknown id")
	}
	if res.Error() != "L'offre spécifiée n'existe pas." {
		t.Fatalf("Error = %q", res.Error())
	}
	if repo.updateCalls != 0 {
		t.Fatalf("store update must not be called, got %d calls", repo.updateCalls)
	}
}

func TestBidUpdate_OverwritesFieldsAndKeepsID(t *testing.T) {
	existing := &model.Bid{
		ID:          1,
		Account:     "Old",
		BidType:     "Old",
		BidQuantity: float(10),
	}
	repo := &stubRepo[model.Bid]{stored: map[int64]*model.Bid{1: existing}}

	svc := NewBidService(repo, "")
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	res, err := svc.Update(context.Background(), 1, dto.Bid{
		ID:          555, // идентификатор из DTO игнорируется
		Account:     "Updated",
		BidType:     "New",
		BidQuantity: float(42),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got failure: %q", res.Error())
	}

	v := res.Value()
	if v.ID != 1 || v.Account != "Updated" || v.BidType != "New" {
		t.Fatalf("unexpected dto: %+v", v)
	}
	if v.BidQuantity == nil || *v.BidQuantity != 42 {
		t.Fatalf("BidQuantity = %v, want 42", v.BidQuantity)
	}

	if existing.ID != 1 {
		t.Fatalf("entity id changed to %d", existing.ID)
	}
	if existing.RevisionName != DefaultActor {
		t.Fatalf("RevisionName = %q, want %q", existing.RevisionName, DefaultActor)
	}
	if existing.RevisionDate == nil || !existing.RevisionDate.Equal(fixed) {
		t.Fatalf("RevisionDate = %v, want %v", existing.RevisionDate, fixed)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("updateCalls = %d, want 1", repo.updateCalls)
	}
}

func TestTradeUpdate_NoAuditStamping(t *testing.T) {
	existing := &model.Trade{ID: 3, Account: "Old", DealType: "BUY"}
	repo := &stubRepo[model.Trade]{stored: map[int64]*model.Trade{3: existing}}
	svc := NewTradeService(repo, "")

	res, err := svc.Update(context.Background(), 3, dto.Trade{Account: "New", DealType: "SELL"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got failure: %q", res.Error())
	}
	if existing.Account != "New" || existing.DealType != "SELL" {
		t.Fatalf("fields not overwritten: %+v", existing)
	}
}

func TestUserDelete(t *testing.T) {
	repo := &stubRepo[model.User]{
		stored: map[int64]*model.User{1: {ID: 1, UserName: "u"}},
	}
	svc := NewUserService(repo, "")

	ok, err := svc.Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !ok {
		t.Fatalf("Delete(1) = false, want true")
	}
	if repo.deleteCalls != 1 {
		t.Fatalf("deleteCalls = %d, want 1", repo.deleteCalls)
	}

	ok, err = svc.Delete(context.Background(), 999)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if ok {
		t.Fatalf("Delete(999) = true, want false")
	}
	if repo.deleteCalls != 1 {
		t.Fatalf("store delete called for absent id")
	}
}

func TestGetByID_AbsentReturnsNil(t *testing.T) {
	repo := &stubRepo[model.Rating]{stored: map[int64]*model.Rating{}}
	svc := NewRatingService(repo, "")

	d, err := svc.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if d != nil {
		t.Fatalf("GetByID = %+v, want nil", d)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo := &stubRepo[model.Rating]{
		stored: map[int64]*model.Rating{5: {ID: 5, MoodysRating: "Aaa", SandPRating: "AAA", FitchRating: "AAA"}},
	}
	svc := NewRatingService(repo, "")

	d, err := svc.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if d == nil {
		t.Fatalf("GetByID = nil, want dto")
	}
	if d.ID != 5 || d.MoodysRating != "Aaa" {
		t.Fatalf("unexpected dto: %+v", d)
	}
}

func TestGetAll_Idempotent(t *testing.T) {
	repo := &stubRepo[model.RuleName]{
		all: []model.RuleName{
			{ID: 1, Name: "rule-1"},
			{ID: 2, Name: "rule-2", SqlStr: "SELECT 1"},
		},
	}
	svc := NewRuleNameService(repo, "")

	first, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	second, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}

	if len(first) != 2 {
		t.Fatalf("len = %d, want 2", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("GetAll is not idempotent: %+v vs %+v", first, second)
	}
}

func TestGetAll_EmptyStore(t *testing.T) {
	svc := NewTradeService(&stubRepo[model.Trade]{}, "")

	dtos, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(dtos) != 0 {
		t.Fatalf("len = %d, want 0", len(dtos))
	}
}

func TestStoreFaultPropagatesAsError(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &stubRepo[model.Bid]{getErr: boom}
	svc := NewBidService(repo, "")

	if _, err := svc.Update(context.Background(), 1, dto.Bid{Account: "A", BidType: "T"}); !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want %v", err, boom)
	}
	if _, err := svc.GetByID(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("GetByID error = %v, want %v", err, boom)
	}
	if _, err := svc.Delete(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("Delete error = %v, want %v", err, boom)
	}
}
