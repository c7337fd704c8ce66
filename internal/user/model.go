package user

import "time"

// Role is the community role carried by every identity and token.
type Role string

const (
	RoleTeam       Role = "team"
	RoleCampusLead Role = "campus_lead"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTeam || r == RoleCampusLead
}

// User represents a registered community member. PasswordHash never leaves
// the auth service.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Phone        *string
	Location     *string
	College      *string
	Department   *string
	Bio          string
	Skills       []string
	Achievements []string
	JoinedDate   time.Time
}

// ProfileUpdate carries the caller-writable profile fields. Nil pointers
// leave the stored value unchanged. ID, email, role and credentials are
// deliberately absent.
type ProfileUpdate struct {
	Name         *string
	Phone        *string
	Location     *string
	College      *string
	Department   *string
	Bio          *string
	Skills       []string
	Achievements []string
}

// Apply copies the set fields of upd onto u.
func (upd ProfileUpdate) Apply(u *User) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Phone != nil {
		u.Phone = upd.Phone
	}
	if upd.Location != nil {
		u.Location = upd.Location
	}
	if upd.College != nil {
		u.College = upd.College
	}
	if upd.Department != nil {
		u.Department = upd.Department
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Skills != nil {
		u.Skills = upd.Skills
	}
	if upd.Achievements != nil {
		u.Achievements = upd.Achievements
	}
}
