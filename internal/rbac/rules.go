package rbac

import "errors"

// ErrForbidden signals a role or ownership mismatch for the attempted operation.
var ErrForbidden = errors.New("forbidden")

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Simple default policy. Ownership rules (teacher-self, student-self,
// exam creator) are enforced in the services, not here.
var RolePermissions = map[string][]string{
	RoleStudent: {
		"exam:view",
		"result:submit",
		"result:view-own",
	},
	RoleTeacher: {
		"exam:create",
		"exam:view",
		"exam:list-own",
		"result:view-all",
	},
}
