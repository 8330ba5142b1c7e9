package domain

type Role uint8

const (
	ROLE_NONE Role = iota // only for init
	ROLE_STORE_OWNER
	ROLE_PLATFORM_ADMIN
)

var Roles = [...]string{"none", "store_owner", "platform_admin"}

func (r Role) ToString() string {
	return Roles[r]
}

func (r Role) IsNone() bool {
	return r == ROLE_NONE
}

func StrToRole(s string) Role {
	for i, roleName := range Roles {
		if s == roleName {
			return Role(i)
		}
	}
	return ROLE_NONE
}

// Actor is the already-authenticated caller. Token validation happens at the
// edge, the core only trusts the resolved identity.
type Actor struct {
	UserID  string
	StoreID string
	Role    Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == ROLE_PLATFORM_ADMIN
}

func (a Actor) OwnsStore(storeID string) bool {
	return a.Role == ROLE_STORE_OWNER && a.StoreID != "" && a.StoreID == storeID
}
