// Package mapping выполняет копирование по одноимённым полям между сущностями и DTO.
// Никакой трансформации значений не производится.
package mapping

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Into создаёт новый экземпляр T и копирует в него одноимённые поля src.
func Into[T any](src any) (T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return dst, fmt.Errorf("map value: %w", err)
	}
	return dst, nil
}

// Assign перезаписывает одноимённые поля существующего dst значениями из src.
// dst должен быть указателем.
func Assign(dst, src any) error {
	if err := copier.Copy(dst, src); err != nil {
		return fmt.Errorf("assign value: %w", err)
	}
	return nil
}
