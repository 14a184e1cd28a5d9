// Package errs holds the error taxonomy shared by services and handlers.
// Every domain failure wraps exactly one of the kind sentinels so the HTTP
// layer can map it to a status code with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnavailable      = errors.New("service unavailable")
)

var (
	ErrEmptyCart         = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrSellerNotApproved = fmt.Errorf("%w: seller profile is not approved", ErrValidation)
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func Forbidden(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (%s): requested %d, available %d",
		e.ProductID, e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrConflict }

type ProductUnpublishedError struct {
	ProductID   uint
	ProductName string
}

func (e *ProductUnpublishedError) Error() string {
	return fmt.Sprintf("product %d (%s) is not available for sale", e.ProductID, e.ProductName)
}

func (e *ProductUnpublishedError) Unwrap() error { return ErrValidation }
