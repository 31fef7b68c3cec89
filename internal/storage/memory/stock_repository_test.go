package memory_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vladislavdragonenkov/inventory/internal/domain"
	"github.com/vladislavdragonenkov/inventory/internal/storage/memory"
)

func mustAdjust(t *testing.T, repo domain.StockRepository, item domain.ItemID, delta int64) int64 {
	t.Helper()

	total, err := repo.Adjust(item, delta)
	if err != nil {
		t.Fatalf("adjust %s by %d: %v", item, delta, err)
	}
	return total
}

func TestStockRepository_AdjustAndGet(t *testing.T) {
	repo := memory.NewStockRepository()

	if total := mustAdjust(t, repo, "apple", 10); total != 10 {
		t.Fatalf("expected total 10, got %d", total)
	}
	if total := mustAdjust(t, repo, "apple", 5); total != 15 {
		t.Fatalf("expected total 15, got %d", total)
	}

	qty, ok := repo.Get("apple")
	if !ok || qty != 15 {
		t.Fatalf("expected apple=15, got %d (present=%v)", qty, ok)
	}
	if _, ok := repo.Get("pear"); ok {
		t.Fatal("expected pear to be absent")
	}
}

func TestStockRepository_AdjustToNonPositiveDeletes(t *testing.T) {
	repo := memory.NewStockRepository()

	if total := mustAdjust(t, repo, "banana", -2); total != -2 {
		t.Fatalf("expected total -2, got %d", total)
	}
	if _, ok := repo.Get("banana"); ok {
		t.Fatal("negative total must not be stored")
	}

	mustAdjust(t, repo, "apple", 3)
	mustAdjust(t, repo, "apple", -3)
	if repo.Len() != 0 {
		t.Fatalf("expected empty repository, got %d entries", repo.Len())
	}
}

func TestStockRepository_AdjustOverflowKeepsEntry(t *testing.T) {
	repo := memory.NewStockRepository()
	mustAdjust(t, repo, "apple", math.MaxInt64)
	mustAdjust(t, repo, "pear", 5)

	if _, err := repo.Adjust("apple", 1); !errors.Is(err, domain.ErrQuantityOverflow) {
		t.Fatalf("expected ErrQuantityOverflow, got %v", err)
	}
	if _, err := repo.Adjust("apple", math.MaxInt64); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("overflow must classify as invalid quantity, got %v", err)
	}
	if qty, ok := repo.Get("apple"); !ok || qty != math.MaxInt64 {
		t.Fatalf("overflow must leave apple untouched, got %d (present=%v)", qty, ok)
	}

	if total := mustAdjust(t, repo, "pear", math.MinInt64); total != math.MinInt64+5 {
		t.Fatalf("expected total %d, got %d", int64(math.MinInt64+5), total)
	}
	if _, ok := repo.Get("pear"); ok {
		t.Fatal("negative total must not be stored")
	}
}

func TestStockRepository_Subtract(t *testing.T) {
	repo := memory.NewStockRepository()
	mustAdjust(t, repo, "apple", 10)

	total, err := repo.Subtract("apple", 3)
	if err != nil {
		t.Fatalf("subtract failed: %v", err)
	}
	if total != 7 {
		t.Fatalf("expected total 7, got %d", total)
	}

	if _, err := repo.Subtract("orange", 1); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	if _, err := repo.Subtract("apple", 7); err != nil {
		t.Fatalf("subtract failed: %v", err)
	}
	if _, ok := repo.Get("apple"); ok {
		t.Fatal("expected apple to be deleted at zero")
	}
}

func TestStockRepository_SubtractOverflowKeepsEntry(t *testing.T) {
	tests := []struct {
		name    string
		initial int64
		qty     int64
	}{
		{name: "min int64", initial: 5, qty: math.MinInt64},
		{name: "negative past max", initial: math.MaxInt64 - 1, qty: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewStockRepository()
			mustAdjust(t, repo, "apple", tt.initial)

			if _, err := repo.Subtract("apple", tt.qty); !errors.Is(err, domain.ErrQuantityOverflow) {
				t.Fatalf("expected ErrQuantityOverflow, got %v", err)
			}
			if qty, ok := repo.Get("apple"); !ok || qty != tt.initial {
				t.Fatalf("overflow must leave apple=%d, got %d (present=%v)", tt.initial, qty, ok)
			}
		})
	}

	repo := memory.NewStockRepository()
	mustAdjust(t, repo, "apple", 5)
	if total, err := repo.Subtract("apple", -3); err != nil || total != 8 {
		t.Fatalf("negative subtract should raise stock to 8, got %d (%v)", total, err)
	}
}

func TestStockRepository_EntriesKeepInsertionOrder(t *testing.T) {
	repo := memory.NewStockRepository()
	mustAdjust(t, repo, "c", 1)
	mustAdjust(t, repo, "a", 2)
	mustAdjust(t, repo, "b", 3)
	mustAdjust(t, repo, "a", -2)
	mustAdjust(t, repo, "a", 4)

	want := []domain.StockEntry{
		{Item: "c", Qty: 1},
		{Item: "b", Qty: 3},
		{Item: "a", Qty: 4},
	}
	if diff := cmp.Diff(want, repo.Entries()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestStockRepository_Replace(t *testing.T) {
	repo := memory.NewStockRepository()
	mustAdjust(t, repo, "old", 1)

	repo.Replace([]domain.StockEntry{
		{Item: "x", Qty: 1},
		{Item: "y", Qty: 2},
		{Item: "x", Qty: 5},
		{Item: "z", Qty: 0},
	})

	want := []domain.StockEntry{
		{Item: "x", Qty: 5},
		{Item: "y", Qty: 2},
	}
	if diff := cmp.Diff(want, repo.Entries()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	if _, ok := repo.Get("old"); ok {
		t.Fatal("replace must not merge previous state")
	}
}

func TestStockRepository_EntriesIsCopy(t *testing.T) {
	repo := memory.NewStockRepository()
	mustAdjust(t, repo, "apple", 1)

	entries := repo.Entries()
	entries[0].Qty = 100

	if qty, _ := repo.Get("apple"); qty != 1 {
		t.Fatalf("mutating snapshot changed repository: %d", qty)
	}
}
