package auth

import "sort"

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleSeller Role = "Seller"
	RoleBuyer  Role = "Buyer"
)

var rank = map[Role]int{RoleAdmin: 3, RoleSeller: 2, RoleBuyer: 1}

// ParseRole only accepts the exact role names, so "admin" or "Administrator" are rejected.
func ParseRole(name string) (Role, bool) {
	r := Role(name)
	_, ok := rank[r]
	return r, ok
}

type RoleSet map[Role]struct{}

// NewRoleSet drops names that are not one of the known roles.
func NewRoleSet(names ...string) RoleSet {
	set := make(RoleSet, len(names))
	for _, n := range names {
		if r, ok := ParseRole(n); ok {
			set[r] = struct{}{}
		}
	}
	return set
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Names lists the roles from the most to the least privileged.
func (s RoleSet) Names() []string {
	roles := make([]Role, 0, len(s))
	for r := range s {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return rank[roles[i]] > rank[roles[j]] })

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}

// Primary is the highest privilege role, Buyer for an empty set.
func (s RoleSet) Primary() Role {
	best := RoleBuyer
	for r := range s {
		if rank[r] > rank[best] {
			best = r
		}
	}
	return best
}
