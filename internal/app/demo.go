package app

import (
	"fmt"
	"io"

	"github.com/vladislavdragonenkov/inventory/internal/domain"
)

// RunDemo прогоняет демонстрационный сценарий: несколько операций,
// сохранение, повторная загрузка и отчёт.
// Ошибки Add/Remove ожидаемы и только логируются; ошибка Save возвращается.
func RunDemo(deps *Dependencies, out io.Writer) error {
	store := deps.Store
	path := deps.Config.FilePath

	_ = store.Add("apple", 10, deps.OpLog)
	_ = store.Add("banana", -2, deps.OpLog)
	_ = store.Add(domain.ItemIDFromInt(123), "ten", deps.OpLog)
	_ = store.Remove("apple", 3)
	_ = store.Remove("orange", 1)

	if _, err := fmt.Fprintln(out, "Apple stock:", store.GetQuantity("apple")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, "Low items:", store.CheckLowItems(deps.Config.LowThreshold)); err != nil {
		return err
	}

	if err := store.Save(path); err != nil {
		return err
	}
	if err := store.Load(path); err != nil && !domain.IsRecoverableLoad(err) {
		return err
	}
	return store.PrintReport(out)
}
