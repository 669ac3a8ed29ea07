// Package result содержит обобщённый тип исхода бизнес-операции.
package result

// Result представляет исход операции: успех со значением либо отказ с текстом причины.
// Ошибки хранилища сюда не попадают — они передаются обычным error.
type Result[T any] struct {
	value   T
	message string
	success bool
}

// Success создаёт успешный исход с указанным значением.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Failure создаёт отказ с указанным текстом причины.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// IsSuccess сообщает, завершилась ли операция успешно.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// IsFailure сообщает, завершилась ли операция отказом.
func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Value возвращает значение успешного исхода.
// Вызов на отказе — ошибка программирования, приводит к панике.
func (r Result[T]) Value() T {
	if !r.success {
		panic("result: Value on failure result")
	}
	return r.value
}

// Error возвращает текст причины отказа.
// Вызов на успешном исходе — ошибка программирования, приводит к панике.
func (r Result[T]) Error() string {
	if r.success {
		panic("result: Error on success result")
	}
	return r.message
}
