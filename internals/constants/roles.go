package constants

// Token roles. Center admins and the super admin carry separate claims;
// a center token can never reach super-admin routes and vice versa.
const (
	RoleCenter     = "center"
	RoleSuperAdmin = "superadmin"
)
