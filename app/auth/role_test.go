package auth

import (
	"reflect"
	"testing"
)

func TestRoleSetHasIsExact(t *testing.T) {
	set := NewRoleSet("Admin", "buyer", "Sellers", "")

	if !set.Has(RoleAdmin) {
		t.Fatal("expected Admin")
	}
	if set.Has(RoleBuyer) {
		t.Fatal("lowercase buyer must not grant Buyer")
	}
	if set.Has(RoleSeller) {
		t.Fatal("Sellers must not grant Seller")
	}
	if len(set) != 1 {
		t.Fatalf("expected 1 role, got %d", len(set))
	}
}

func TestRoleSetNamesAndPrimary(t *testing.T) {
	set := NewRoleSet("Buyer", "Seller")

	if got := set.Names(); !reflect.DeepEqual(got, []string{"Seller", "Buyer"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if set.Primary() != RoleSeller {
		t.Fatalf("expected Seller, got %s", set.Primary())
	}
	if NewRoleSet().Primary() != RoleBuyer {
		t.Fatal("empty set should default to Buyer")
	}
}
