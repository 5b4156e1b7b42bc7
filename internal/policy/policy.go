package policy

import (
	"jobport/internal/common"
	"jobport/internal/domain/application"
	"jobport/internal/domain/user"
)

// Principal is the authenticated actor for the duration of one request.
type Principal struct {
	ID   common.UUID
	Role user.Role
}

type Decision struct {
	Allowed bool
	Reason  string
}

const (
	ReasonNotJobOwner   = "not job owner"
	ReasonInvalidStatus = "invalid status"
	ReasonTerminalState = "terminal state"
	ReasonForbidden     = "forbidden"
)

func Permit() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// ApplicationTarget carries the ownership attributes a decision depends on.
type ApplicationTarget struct {
	ApplicantID common.UUID
	JobOwnerID  common.UUID
}

func AuthorizeApplicationCreate(p Principal) Decision {
	if p.Role == user.RoleAdmin || p.Role == user.RoleJobSeeker {
		return Permit()
	}
	return Deny(ReasonForbidden)
}

func AuthorizeApplicationRead(p Principal, target ApplicationTarget) Decision {
	switch p.Role {
	case user.RoleAdmin:
		return Permit()
	case user.RoleRecruiter:
		if target.JobOwnerID == p.ID {
			return Permit()
		}
		return Deny(ReasonNotJobOwner)
	case user.RoleJobSeeker:
		if target.ApplicantID == p.ID {
			return Permit()
		}
		return Deny(ReasonForbidden)
	default:
		return Deny(ReasonForbidden)
	}
}

// AuthorizeStatusUpdate checks the state machine before the actor: pending
// is the only state with outgoing edges, and the requested value must be a
// known status. These checks bind every role, admin included.
func AuthorizeStatusUpdate(p Principal, target ApplicationTarget, current, next application.Status) Decision {
	if !next.Known() {
		return Deny(ReasonInvalidStatus)
	}
	if current.Terminal() {
		return Deny(ReasonTerminalState)
	}
	switch p.Role {
	case user.RoleAdmin:
		return Permit()
	case user.RoleRecruiter:
		if target.JobOwnerID == p.ID {
			return Permit()
		}
		return Deny(ReasonNotJobOwner)
	default:
		return Deny(ReasonForbidden)
	}
}

func AuthorizeJobMutation(p Principal, ownerID common.UUID) Decision {
	switch p.Role {
	case user.RoleAdmin:
		return Permit()
	case user.RoleRecruiter:
		if ownerID == p.ID {
			return Permit()
		}
		return Deny(ReasonNotJobOwner)
	default:
		return Deny(ReasonForbidden)
	}
}

func AuthorizeCompanyMutation(p Principal, ownerID common.UUID) Decision {
	switch p.Role {
	case user.RoleAdmin:
		return Permit()
	case user.RoleRecruiter:
		if ownerID == p.ID {
			return Permit()
		}
		return Deny(ReasonForbidden)
	default:
		return Deny(ReasonForbidden)
	}
}

// Scope restricts application listings to what the principal may see.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeAll
	ScopeOwnJobs
	ScopeOwnApplications
)

func ApplicationScope(p Principal) Scope {
	switch p.Role {
	case user.RoleAdmin:
		return ScopeAll
	case user.RoleRecruiter:
		return ScopeOwnJobs
	case user.RoleJobSeeker:
		return ScopeOwnApplications
	default:
		return ScopeNone
	}
}
