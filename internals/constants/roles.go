package constants

// Role global pada token.
const (
	RoleSuperAdmin = "super-admin" // pemilik platform, lintas tenant
	RoleAdmin      = "admin"       // pemilik satu sekolah (tenant)
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
)
