package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
)

type fakeUsers struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUsers) FindByEmailWithRoles(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

type fakeSellers map[string]*models.SellerProfile

func (f fakeSellers) FindByUserID(ctx context.Context, userID string) (*models.SellerProfile, error) {
	return f[userID], nil
}

func userWithRoles(id, email string, roles ...string) *models.User {
	u := &models.User{ID: id, Email: email}
	for _, r := range roles {
		u.Roles = append(u.Roles, models.UserRole{UserID: id, Role: r})
	}
	return u
}

func TestResolve(t *testing.T) {
	c := newCodec(t)
	ada := userWithRoles("u-1", "ada@example.com", "Buyer", "Seller")
	store := &fakeUsers{users: map[string]*models.User{ada.Email: ada}}
	r := NewResolver(store, fakeSellers{})

	token, _, err := c.Issue(&models.User{ID: "u-1", Email: "ada@example.com"}, NewRoleSet("Buyer"))
	if err != nil {
		t.Fatal(err)
	}

	id := r.Resolve(context.Background(), "bearer "+token)
	if !id.IsAuthenticated() || id.UserID() != "u-1" {
		t.Fatalf("expected ada, got %+v", id)
	}
	if !id.HasRole(RoleSeller) {
		t.Fatal("roles must come from the store, not the token")
	}

	ghost, _, _ := c.Issue(&models.User{ID: "u-2", Email: "ghost@example.com"}, NewRoleSet("Admin"))
	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Token " + token,
		"garbage":      "Bearer not.a.jwt",
		"unknown user": "Bearer " + ghost,
	} {
		if got := r.Resolve(context.Background(), header); got.IsAuthenticated() {
			t.Errorf("%s: expected anonymous", name)
		}
	}

	store.err = errors.New("db down")
	if got := r.Resolve(context.Background(), "Bearer "+token); got.IsAuthenticated() {
		t.Fatal("store failure must resolve to anonymous")
	}
}

func TestResolveSeller(t *testing.T) {
	approved := userWithRoles("s-1", "a@example.com", "Buyer", "Seller")
	pending := userWithRoles("s-2", "p@example.com", "Buyer", "Seller")
	noProfile := userWithRoles("s-3", "n@example.com", "Seller")
	buyer := userWithRoles("b-1", "b@example.com", "Buyer")

	r := NewResolver(&fakeUsers{}, fakeSellers{
		"s-1": {ID: 1, UserID: "s-1", Status: models.SellerStatusApproved},
		"s-2": {ID: 2, UserID: "s-2", Status: models.SellerStatusPending},
	})
	ctx := context.Background()

	profile, err := r.ResolveSeller(ctx, Identity{User: approved, Roles: NewRoleSet(approved.RoleNames()...)})
	if err != nil || profile.ID != 1 {
		t.Fatalf("expected approved profile, got %v, %v", profile, err)
	}

	if _, err := r.ResolveSeller(ctx, Anonymous); !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Fatalf("anonymous: got %v", err)
	}
	if _, err := r.ResolveSeller(ctx, Identity{User: buyer, Roles: NewRoleSet("Buyer")}); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("buyer: got %v", err)
	}
	for _, u := range []*models.User{pending, noProfile} {
		_, err := r.ResolveSeller(ctx, Identity{User: u, Roles: NewRoleSet(u.RoleNames()...)})
		if !errors.Is(err, errs.ErrSellerNotApproved) {
			t.Fatalf("%s: expected ErrSellerNotApproved, got %v", u.ID, err)
		}
		if errors.Is(err, errs.ErrNotAuthenticated) {
			t.Fatalf("%s: must not look unauthenticated", u.ID)
		}
	}
}
