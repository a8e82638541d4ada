package user

// Auth methods accepted for the admin API.
const (
	MethodSharedSecret = "shared-secret"
	MethodBearer       = "bearer"
)

// Principal identifies who performed an admin action.
type Principal struct {
	UserID string
	Email  string
	Method string
}

// Subject is the identifier written to audit logs.
func (p Principal) Subject() string {
	if p.Email != "" {
		return p.Email
	}
	if p.UserID != "" {
		return p.UserID
	}
	return p.Method
}
