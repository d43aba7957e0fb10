package domain

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor:
		return true
	default:
		return false
	}
}

type User struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	Specialty string
}

func (u User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// Registration is the payload sent to create a portal account.
type Registration struct {
	Name      string
	Email     string
	Password  string
	Role      Role
	Specialty string
}
