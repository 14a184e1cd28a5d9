package auth

import (
	"context"
	"log"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
)

type IdentityStore interface {
	FindByEmailWithRoles(ctx context.Context, email string) (*models.User, error)
}

type SellerProfileStore interface {
	FindByUserID(ctx context.Context, userID string) (*models.SellerProfile, error)
}

type Resolver struct {
	users   IdentityStore
	sellers SellerProfileStore
}

func NewResolver(users IdentityStore, sellers SellerProfileStore) *Resolver {
	return &Resolver{users: users, sellers: sellers}
}

// Resolve never fails. A missing header, an undecodable token, an unknown
// email or a store error all produce Anonymous. Roles come from the store, not
// the token, so grants made after issuance apply at once.
func (r *Resolver) Resolve(ctx context.Context, authorization string) Identity {
	token, ok := BearerToken(authorization)
	if !ok {
		return Anonymous
	}

	claims, err := DecodeUnverified(token)
	if err != nil {
		return Anonymous
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return Anonymous
	}

	user, err := r.users.FindByEmailWithRoles(ctx, email)
	if err != nil {
		log.Printf("Resolver.Resolve: failed to load user %s: %v", email, err)
		return Anonymous
	}
	if user == nil {
		return Anonymous
	}

	return Identity{User: user, Roles: NewRoleSet(user.RoleNames()...)}
}

// ResolveSeller returns the approved profile of the acting seller. The profile
// status is read on every call.
func (r *Resolver) ResolveSeller(ctx context.Context, id Identity) (*models.SellerProfile, error) {
	if !id.IsAuthenticated() {
		return nil, errs.ErrNotAuthenticated
	}
	if !id.HasRole(RoleSeller) {
		return nil, errs.Forbidden("role %s required", RoleSeller)
	}

	profile, err := r.sellers.FindByUserID(ctx, id.User.ID)
	if err != nil {
		return nil, err
	}
	if !profile.IsApproved() {
		return nil, errs.ErrSellerNotApproved
	}
	return profile, nil
}
