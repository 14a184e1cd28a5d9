package auth

import (
	"testing"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newCodec(t *testing.T) *TokenCodec {
	t.Helper()
	c, err := NewTokenCodec(testSecret, "test-issuer", "test-aud", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}
	return c
}

func TestIssueAndVerify(t *testing.T) {
	c := newCodec(t)
	user := &models.User{ID: "u-1", Email: "ada@example.com", FullName: "Ada"}

	token, exp, err := c.Issue(user, NewRoleSet("Buyer", "Admin"))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if exp.Before(time.Now()) {
		t.Fatal("expiry in the past")
	}

	claims, err := c.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "u-1" || claims.Email != "ada@example.com" || claims.Name != "Ada" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "Admin" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
}

func TestVerifyRejectsTamperedAndExpired(t *testing.T) {
	c := newCodec(t)
	user := &models.User{ID: "u-1", Email: "ada@example.com"}

	other, err := NewTokenCodec("ffffffffffffffffffffffffffffffff", "test-issuer", "test-aud", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	forged, _, _ := other.Issue(user, NewRoleSet("Admin"))
	if _, err := c.Verify(forged); err == nil {
		t.Fatal("expected signature failure")
	}

	c.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, _ := c.Issue(user, NewRoleSet("Buyer"))
	c.now = time.Now
	if _, err := c.Verify(stale); err == nil {
		t.Fatal("expected expiry failure")
	}
}

func TestNewTokenCodecRejectsShortSecret(t *testing.T) {
	if _, err := NewTokenCodec("short", "i", "a", time.Hour); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer   abc  ", "abc", true},
		{"BEARER abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
		{"Bearerabc", "", false},
	}
	for _, tc := range cases {
		token, ok := BearerToken(tc.header)
		if token != tc.token || ok != tc.ok {
			t.Errorf("BearerToken(%q) = %q, %v; want %q, %v", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}
