package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrItemRequired — пустой идентификатор товара.
	ErrItemRequired = errors.New("item is required")
	// ErrInvalidItem — идентификатор товара не является корректной UTF-8 строкой.
	ErrInvalidItem = errors.New("item must be valid utf-8")
	// ErrInvalidQuantity — количество не приводится к целому числу.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrQuantityOverflow — итог операции не помещается в int64; склад не меняется.
	ErrQuantityOverflow = fmt.Errorf("%w: total out of int64 range", ErrInvalidQuantity)
	// ErrItemNotFound возвращается, если товара нет на складе.
	ErrItemNotFound = errors.New("item not found")
	// ErrFileNotFound — файл с остатками отсутствует.
	ErrFileNotFound = errors.New("inventory file not found")
	// ErrMalformedJSON — файл с остатками не является плоским JSON-объектом item -> int.
	ErrMalformedJSON = errors.New("inventory file contains invalid json")
)

// QuantityError хранит исходное значение, которое не удалось разобрать.
type QuantityError struct {
	Value any
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%s: %#v", ErrInvalidQuantity, e.Value)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidQuantity).
func (e *QuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// IsRecoverableLoad проверяет, что ошибка загрузки обработана локально
// (склад сброшен в пустое состояние) и не должна останавливать программу.
func IsRecoverableLoad(err error) bool {
	return errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrMalformedJSON)
}
