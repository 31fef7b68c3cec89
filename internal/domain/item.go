package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ItemID — идентификатор товара. Числовые идентификаторы хранятся в
// десятичной строковой форме, так же как их сериализует JSON-ключ.
type ItemID string

// ItemIDFromInt возвращает идентификатор для числового артикула.
func ItemIDFromInt(v int64) ItemID {
	return ItemID(strconv.FormatInt(v, 10))
}

// IsZero сообщает, что идентификатор пустой.
func (id ItemID) IsZero() bool {
	return id == ""
}

func (id ItemID) String() string {
	return string(id)
}

// StockEntry — одна позиция склада.
type StockEntry struct {
	Item ItemID
	Qty  int64
}

// ParseQuantity приводит значение к целому количеству.
// Дробные числа отбрасывают дробную часть, строки должны содержать
// десятичное целое (допускаются пробелы по краям и знак).
func ParseQuantity(v any) (int64, error) {
	switch q := v.(type) {
	case int:
		return int64(q), nil
	case int8:
		return int64(q), nil
	case int16:
		return int64(q), nil
	case int32:
		return int64(q), nil
	case int64:
		return q, nil
	case uint:
		return fromUint(uint64(q), v)
	case uint8:
		return int64(q), nil
	case uint16:
		return int64(q), nil
	case uint32:
		return int64(q), nil
	case uint64:
		return fromUint(q, v)
	case float32:
		return fromFloat(float64(q), v)
	case float64:
		return fromFloat(q, v)
	case json.Number:
		return fromString(string(q), v)
	case string:
		return fromString(q, v)
	default:
		return 0, &QuantityError{Value: v}
	}
}

func fromUint(q uint64, orig any) (int64, error) {
	if q > math.MaxInt64 {
		return 0, &QuantityError{Value: orig}
	}
	return int64(q), nil
}

func fromFloat(q float64, orig any) (int64, error) {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, &QuantityError{Value: orig}
	}
	t := math.Trunc(q)
	// 2^63 не представимо в int64, поэтому граница строгая.
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, &QuantityError{Value: orig}
	}
	return int64(t), nil
}

func fromString(q string, orig any) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(q), 10, 64)
	if err != nil {
		return 0, &QuantityError{Value: orig}
	}
	return n, nil
}
