package types

// User roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// ValidRole reports whether role is a recognized role name.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// Identity is the authenticated session identity. Exactly one instance is
// live at a time, owned by the session manager and persisted verbatim to the
// cache store so it survives restarts.
//
// Credential holds the raw secret used to authenticate; the backend issues no
// session token, so it is re-sent with every mutation. IsDemo marks a session
// whose mutations never reach the remote gateway: either an explicitly
// requested demo session or a locally-authenticated offline fallback.
type Identity struct {
	StaffID    string `json:"staffId" validate:"required"`
	Name       string `json:"name"`
	Role       string `json:"role" validate:"required,oneof=admin staff"`
	StoreID    string `json:"storeId,omitempty"`
	Credential string `json:"credential" validate:"required"`
	IsDemo     bool   `json:"isDemo"`
}

// Validate checks that the identity carries the fields a restored session
// needs. A persisted identity failing this is discarded at startup.
func (i Identity) Validate() error { return validateEntity(i) }
