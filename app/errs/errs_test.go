package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsSurviveWrapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
	}{
		{"empty cart", ErrEmptyCart, ErrValidation},
		{"seller not approved", ErrSellerNotApproved, ErrValidation},
		{"insufficient stock", &InsufficientStockError{ProductID: 3, Requested: 3, Available: 2}, ErrConflict},
		{"unpublished", &ProductUnpublishedError{ProductID: 9}, ErrValidation},
		{"not found helper", NotFound("category %d", 4), ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("checkout: %w", tc.err)
			if !errors.Is(wrapped, tc.kind) {
				t.Fatalf("expected %v to be %v", wrapped, tc.kind)
			}
		})
	}
}

func TestSellerNotApprovedIsNotForbidden(t *testing.T) {
	if errors.Is(ErrSellerNotApproved, ErrForbidden) || errors.Is(ErrSellerNotApproved, ErrNotAuthenticated) {
		t.Fatal("seller-not-approved must stay distinguishable from 401/403")
	}
}

func TestInsufficientStockCarriesDetails(t *testing.T) {
	err := fmt.Errorf("wrap: %w", &InsufficientStockError{ProductID: 7, ProductName: "C", Requested: 3, Available: 2})

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatal("expected InsufficientStockError")
	}
	if stockErr.ProductID != 7 || stockErr.Requested != 3 || stockErr.Available != 2 {
		t.Fatalf("unexpected details: %+v", stockErr)
	}
}
