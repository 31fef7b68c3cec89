package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRecoverableLoad(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "file not found",
			err:  ErrFileNotFound,
			want: true,
		},
		{
			name: "wrapped malformed json",
			err:  fmt.Errorf("load inventory.json: %w", ErrMalformedJSON),
			want: true,
		},
		{
			name: "joined file not found",
			err:  errors.Join(ErrFileNotFound, errors.New("additional context")),
			want: true,
		},
		{
			name: "permission denied",
			err:  errors.New("permission denied"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRecoverableLoad(tt.err)
			if got != tt.want {
				t.Errorf("IsRecoverableLoad() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuantityError(t *testing.T) {
	err := error(&QuantityError{Value: "ten"})

	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	var qe *QuantityError
	if !errors.As(err, &qe) {
		t.Fatal("expected errors.As to find *QuantityError")
	}
	if qe.Value != "ten" {
		t.Fatalf("unexpected value: %#v", qe.Value)
	}
	if got, want := err.Error(), `invalid quantity: "ten"`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
