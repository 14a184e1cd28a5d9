package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/go-playground/validator/v10"
)

func TestPasswordMeetsPolicy(t *testing.T) {
	cases := map[string]bool{
		"Str0ng!Passw0rd": true,
		"short1!A":        false,
		"alllowercase1!x": false,
		"ALLUPPERCASE1!X": false,
		"NoDigitsHere!!x": false,
		"NoSymbols12345x": false,
	}
	for pw, want := range cases {
		if got := PasswordMeetsPolicy(pw); got != want {
			t.Errorf("PasswordMeetsPolicy(%q) = %v, want %v", pw, got, want)
		}
	}
}

func TestValidateCustomTags(t *testing.T) {
	type input struct {
		ShopName string `validate:"notblank"`
		Password string `validate:"password_policy"`
	}

	err := Validate.Struct(input{ShopName: "   ", Password: "weak"})
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation errors, got %v", err)
	}

	msgs := FormatValidationErrors(ve)
	if _, ok := msgs["shopName"]; !ok {
		t.Fatalf("missing shopName message: %v", msgs)
	}
	if _, ok := msgs["password"]; !ok {
		t.Fatalf("missing password message: %v", msgs)
	}

	if err := Validate.Struct(input{ShopName: "Keys", Password: "Str0ng!Passw0rd"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.ErrEmptyCart, http.StatusBadRequest},
		{errs.ErrSellerNotApproved, http.StatusBadRequest},
		{errs.ErrNotAuthenticated, http.StatusUnauthorized},
		{errs.Forbidden("not yours"), http.StatusForbidden},
		{fmt.Errorf("svc: %w", errs.NotFound("product 1")), http.StatusNotFound},
		{&errs.InsufficientStockError{ProductID: 1}, http.StatusConflict},
		{errs.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("db exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := ErrorStatus(tc.err); got != tc.want {
			t.Errorf("ErrorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("Str0ng!Passw0rd")
	if err != nil {
		t.Fatal(err)
	}
	if !PasswordCompare(hash, []byte("Str0ng!Passw0rd")) {
		t.Fatal("expected match")
	}
	if PasswordCompare(hash, []byte("wrong")) {
		t.Fatal("expected mismatch")
	}
}

func TestGenerateSlug(t *testing.T) {
	if got := GenerateSlug("Mechanical Keyboard Pro"); got != "mechanical-keyboard-pro" {
		t.Fatalf("unexpected slug %q", got)
	}
}
