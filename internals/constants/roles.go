package constants

import "fmt"

// Role names carried in the JWT "role" claim.
const (
	RoleStudent     = "student"
	RoleSupervisor  = "trainee_supervisor"
	RoleEmployer    = "employer"
	RoleCoordinator = "ojt_coordinator"
	RoleOJTHead     = "ojt_head"
	RoleSuperadmin  = "superadmin"
)

// Role error message templates
const (
	ErrOnlyStudentsCanAccess    = "Only students can access %s."
	ErrOnlySupervisorsCanAccess = "Only trainee supervisors can access %s."
	ErrOnlyEmployersCanAccess   = "Only employers can access %s."
	ErrOnlyStaffCanAccess       = "Only coordinators or the OJT head can access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

func RoleErrorEmployer(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployersCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}
