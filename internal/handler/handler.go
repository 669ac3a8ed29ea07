// Package handler содержит HTTP-обработчики API бэк-офиса.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mmeshcher/backoffice-system/internal/dto"
	"github.com/mmeshcher/backoffice-system/internal/repository"
	"github.com/mmeshcher/backoffice-system/internal/result"
)

// CrudService описывает контракт сервисного слоя для одного вида записей.
type CrudService[D any] interface {
	GetAll(ctx context.Context) ([]D, error)
	GetByID(ctx context.Context, id int64) (*D, error)
	Create(ctx context.Context, d D) (result.Result[D], error)
	Update(ctx context.Context, id int64, d D) (result.Result[D], error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Services объединяет сервисы всех видов записей бэк-офиса.
type Services struct {
	Bids        CrudService[dto.Bid]
	Trades      CrudService[dto.Trade]
	CurvePoints CrudService[dto.CurvePoint]
	Ratings     CrudService[dto.Rating]
	RuleNames   CrudService[dto.RuleName]
	Users       CrudService[dto.User]
}

// Handler реализует HTTP-обработчики API бэк-офиса.
type Handler struct {
	services Services
	logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(services Services, logger *zap.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
	}
}

// Login — заглушка аутентификации: проверка учётных данных не реализована.
// TODO: реализовать проверку учётных данных и выдачу токена.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
}

// crudHandler связывает один вид записей с единым набором HTTP-обработчиков.
// Исходы сервисного слоя переводятся в статусы: отказ создания — 400,
// отсутствие записи — 404, ошибка хранилища — 500.
type crudHandler[D any] struct {
	name     string
	service  CrudService[D]
	logger   *zap.Logger
	validate *validator.Validate
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *crudHandler[D]) list(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("get all error", zap.String("resource", h.name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dtos)
}

func (h *crudHandler[D]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	d, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("get by id error", zap.String("resource", h.name), zap.Int64("id", id), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if d == nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, d)
}

func (h *crudHandler[D]) create(w http.ResponseWriter, r *http.Request) {
	var d D
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.Create(r.Context(), d)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUserName) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("create error", zap.String("resource", h.name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if res.IsFailure() {
		http.Error(w, res.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, res.Value())
}

func (h *crudHandler[D]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var d D
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.Update(r.Context(), id, d)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUserName) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("update error", zap.String("resource", h.name), zap.Int64("id", id), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if res.IsFailure() {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, res.Value())
}

func (h *crudHandler[D]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("delete error", zap.String("resource", h.name), zap.Int64("id", id), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
