package domain

// Role is an application role as reported by the campus API.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// CanManage reports whether the role is shown management actions
// (delete buttons, status forms). This is a display convenience; the
// campus API enforces the real authorization rules.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleFaculty
}

// User is the authenticated campus user attached to a session.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	StudentID  string `json:"studentId,omitempty"`
	Year       string `json:"year,omitempty"`
}

// RegisterData is the payload for account registration, forwarded to the
// campus API as-is.
type RegisterData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
	StudentID  string `json:"studentId,omitempty"`
	Year       string `json:"year,omitempty"`
}
