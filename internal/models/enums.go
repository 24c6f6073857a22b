package models

import "strings"

// The Parse functions accept the exact upper-case enum names only. Surrounding whitespace
// is ignored; anything else reports ok=false.

func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleAdmin, RoleEncadreur, RoleStagiaire:
		return r, true
	}
	return "", false
}

func ParseAccountStatus(s string) (AccountStatus, bool) {
	switch st := AccountStatus(strings.TrimSpace(s)); st {
	case AccountStatusActive, AccountStatusPending, AccountStatusSuspended:
		return st, true
	}
	return "", false
}

func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch st := ProjectStatus(strings.TrimSpace(s)); st {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted,
		ProjectStatusOnHold, ProjectStatusCancelled:
		return st, true
	}
	return "", false
}

func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch st := TaskStatus(strings.TrimSpace(s)); st {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return st, true
	}
	return "", false
}

func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch p := TaskPriority(strings.TrimSpace(s)); p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return p, true
	}
	return "", false
}

func ParseEntityType(s string) (EntityType, bool) {
	switch e := EntityType(strings.TrimSpace(s)); e {
	case EntityProject, EntityTask, EntityUser:
		return e, true
	}
	return "", false
}
