// Package service реализует бизнес-логику CRUD-операций над записями бэк-офиса.
package service

import (
	"context"
	"time"

	"github.com/mmeshcher/backoffice-system/internal/mapping"
	"github.com/mmeshcher/backoffice-system/internal/result"
)

// DefaultActor — заглушка имени действующего пользователя.
// Аутентификация не реализована, поэтому в аудит записывается фиксированное имя.
const DefaultActor = "CurrentUser"

// Repository описывает контракт доступа к данным для одного вида записей.
// Отсутствие записи репозиторий сигнализирует nil-значением, а не ошибкой;
// ошибки зарезервированы за сбоями хранилища.
type Repository[E any] interface {
	GetAll(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, entity *E) (*E, error)
	Update(ctx context.Context, entity *E) error
	Delete(ctx context.Context, entity *E) (bool, error)
}

// identifiable ограничивает указатели на сущности, умеющие сообщать и принимать идентификатор.
type identifiable[E any] interface {
	*E
	GetID() int64
	SetID(int64)
}

// Messages содержит тексты отказов для одного вида записей.
type Messages struct {
	CreateFailed string
	NotFound     string
}

// Hooks задаёт необязательные расширения жизненного цикла записи.
type Hooks[E any, D any] struct {
	// ValidateCreate возвращает текст отказа либо пустую строку. Вызывается до обращения к хранилищу.
	ValidateCreate func(d D) string
	// StampCreate проставляет аудит создания перед сохранением.
	StampCreate func(e *E, actor string)
	// StampUpdate проставляет аудит изменения перед сохранением.
	StampUpdate func(e *E, actor string, now time.Time)
}

// Crud реализует единый сценарий оркестрации CRUD-операций поверх репозитория:
// проверка, копирование полей, аудит, сохранение. Ошибки хранилища проходят
// насквозь как error; ожидаемые бизнес-исходы возвращаются как result.Result.
type Crud[E any, PE identifiable[E], D any] struct {
	repo  Repository[E]
	msgs  Messages
	hooks Hooks[E, D]
	actor string
	now   func() time.Time
}

func newCrud[E any, PE identifiable[E], D any](repo Repository[E], msgs Messages, hooks Hooks[E, D], actor string) *Crud[E, PE, D] {
	if actor == "" {
		actor = DefaultActor
	}
	return &Crud[E, PE, D]{
		repo:  repo,
		msgs:  msgs,
		hooks: hooks,
		actor: actor,
		now:   time.Now,
	}
}

// GetAll возвращает все записи в виде DTO. На пустом хранилище — пустой срез.
func (s *Crud[E, PE, D]) GetAll(ctx context.Context) ([]D, error) {
	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]D, 0, len(entities))
	for i := range entities {
		d, err := mapping.Into[D](&entities[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}

	return dtos, nil
}

// GetByID возвращает запись по идентификатору либо nil, если записи нет.
// Отсутствие при чтении — обычный исход, а не отказ.
func (s *Crud[E, PE, D]) GetByID(ctx context.Context, id int64) (*D, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	d, err := mapping.Into[D](entity)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// Create сохраняет новую запись. Отказ возвращается, если дополнительная
// проверка не прошла либо хранилище не присвоило записи идентификатор.
func (s *Crud[E, PE, D]) Create(ctx context.Context, d D) (result.Result[D], error) {
	var fault result.Result[D]

	if s.hooks.ValidateCreate != nil {
		if msg := s.hooks.ValidateCreate(d); msg != "" {
			return result.Failure[D](msg), nil
		}
	}

	entity, err := mapping.Into[E](d)
	if err != nil {
		return fault, err
	}

	if s.hooks.StampCreate != nil {
		s.hooks.StampCreate(&entity, s.actor)
	}

	created, err := s.repo.Create(ctx, &entity)
	if err != nil {
		return fault, err
	}
	if created == nil || PE(created).GetID() <= 0 {
		return result.Failure[D](s.msgs.CreateFailed), nil
	}

	out, err := mapping.Into[D](created)
	if err != nil {
		return fault, err
	}

	return result.Success(out), nil
}

// Update перезаписывает поля существующей записи значениями из DTO.
// Если записи нет, возвращается отказ и хранилище больше не вызывается.
func (s *Crud[E, PE, D]) Update(ctx context.Context, id int64, d D) (result.Result[D], error) {
	var fault result.Result[D]

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fault, err
	}
	if existing == nil {
		return result.Failure[D](s.msgs.NotFound), nil
	}

	// Идентификатор записи никогда не перезаписывается значением из DTO.
	keep := PE(existing).GetID()
	if err := mapping.Assign(existing, d); err != nil {
		return fault, err
	}
	PE(existing).SetID(keep)

	if s.hooks.StampUpdate != nil {
		s.hooks.StampUpdate(existing, s.actor, s.now())
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return fault, err
	}

	out, err := mapping.Into[D](existing)
	if err != nil {
		return fault, err
	}

	return result.Success(out), nil
}

// Delete удаляет запись. Отсутствие записи сигнализируется значением false.
func (s *Crud[E, PE, D]) Delete(ctx context.Context, id int64) (bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	return s.repo.Delete(ctx, existing)
}
