package domain

// Identity is the authenticated requester. A nil *Identity is Anonymous, and
// every method is safe to call on nil.
type Identity struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

// Anonymous is the requester for calls without a usable bearer token.
var Anonymous *Identity

func (i *Identity) IsAnonymous() bool { return i == nil }

func (i *Identity) IsAdmin() bool { return i != nil && i.Role == RoleAdmin }

// Owns reports whether the identity is the owner of p.
func (i *Identity) Owns(p Post) bool {
	return i != nil && i.ID != "" && i.ID == p.OwnerID
}
