package auth

import (
	"context"

	"github.com/Rakhulsr/go-marketplace/app/models"
)

type Identity struct {
	User  *models.User
	Roles RoleSet
}

// Anonymous is the zero identity. Callers must treat it as unauthenticated.
var Anonymous = Identity{}

func (i Identity) IsAuthenticated() bool {
	return i.User != nil
}

func (i Identity) HasRole(r Role) bool {
	return i.User != nil && i.Roles.Has(r)
}

func (i Identity) UserID() string {
	if i.User == nil {
		return ""
	}
	return i.User.ID
}

type contextKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func IdentityFrom(ctx context.Context) Identity {
	if id, ok := ctx.Value(contextKey{}).(Identity); ok {
		return id
	}
	return Anonymous
}
