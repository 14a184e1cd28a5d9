package services

import (
	"errors"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/cache"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/messaging"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
)

func (e *testEnv) sellerService() *SellerService {
	return NewSellerService(e.DB, e.sellers, e.users, e.events, e.cache)
}

func TestSellerApplyAndApprove(t *testing.T) {
	e := newTestEnv(t)
	user := e.User("shop@example.com", "Buyer")
	svc := e.sellerService()

	profile, err := svc.Apply(e.ctx, user.ID, other.BecomeSellerRequest{ShopName: " Key Shop ", Description: "Boards"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if profile.Status != models.SellerStatusPending || profile.ShopName != "Key Shop" {
		t.Errorf("unexpected profile %+v", profile)
	}

	if _, err := svc.Apply(e.ctx, user.ID, other.BecomeSellerRequest{ShopName: "Again", Description: "x"}); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("second application: got %v", err)
	}

	pending, err := svc.ListPending(e.ctx)
	if err != nil || len(pending) != 1 || pending[0].UserEmail != "shop@example.com" {
		t.Fatalf("ListPending = %+v, %v", pending, err)
	}

	if err := e.cache.Set(e.ctx, cache.KeySellers, []other.NamedItem{}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Approve(e.ctx, profile.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	withRoles, err := e.users.FindByEmailWithRoles(e.ctx, user.Email)
	if err != nil {
		t.Fatal(err)
	}
	roles := withRoles.RoleNames()
	if len(roles) != 2 {
		t.Errorf("roles after approval = %v", roles)
	}

	var reloaded models.SellerProfile
	e.Reload(&reloaded, profile.ID)
	if reloaded.Status != models.SellerStatusApproved || !reloaded.IsVerified {
		t.Errorf("profile after approval %+v", reloaded)
	}
	if e.cache.Has(cache.KeySellers) {
		t.Error("approval must invalidate the seller directory")
	}
	if ev := e.events.Events(); len(ev) != 1 || ev[0].Topic != messaging.TopicSellerApproved {
		t.Errorf("events = %+v", ev)
	}

	if _, err := svc.Approve(e.ctx, profile.ID); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("approving twice: got %v", err)
	}
	if _, err := svc.Reject(e.ctx, profile.ID); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("rejecting an approved profile: got %v", err)
	}

	sellers, err := svc.ListApproved(e.ctx)
	if err != nil || len(sellers) != 1 || sellers[0].Name != "Key Shop" {
		t.Errorf("ListApproved = %+v, %v", sellers, err)
	}
}

func TestSellerReject(t *testing.T) {
	e := newTestEnv(t)
	user := e.User("shop@example.com", "Buyer")
	profile := e.Seller(user, models.SellerStatusPending)
	svc := e.sellerService()

	rejected, err := svc.Reject(e.ctx, profile.ID)
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.Status != models.SellerStatusRejected {
		t.Errorf("status = %s", rejected.Status)
	}
	if n := e.Count(&models.UserRole{}, "user_id = ? AND role = ?", user.ID, "Seller"); n != 0 {
		t.Error("a rejected seller must not get the Seller role")
	}
	if _, err := svc.Apply(e.ctx, user.ID, other.BecomeSellerRequest{ShopName: "Retry", Description: "x"}); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("reapplying after rejection: got %v", err)
	}
	if _, err := svc.Approve(e.ctx, 4242); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("unknown profile: got %v", err)
	}
}

func TestSellerApplyValidation(t *testing.T) {
	e := newTestEnv(t)
	user := e.User("shop@example.com", "Buyer")
	svc := e.sellerService()

	if _, err := svc.Apply(e.ctx, user.ID, other.BecomeSellerRequest{ShopName: "   ", Description: "x"}); err == nil {
		t.Error("blank shop name accepted")
	}
	if _, err := svc.Apply(e.ctx, "", other.BecomeSellerRequest{ShopName: "a", Description: "x"}); !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Errorf("anonymous: got %v", err)
	}
}
