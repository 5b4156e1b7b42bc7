package policy

import (
	"testing"

	"jobport/internal/common"
	"jobport/internal/domain/application"
	"jobport/internal/domain/user"
)

func principal(role user.Role) Principal {
	return Principal{ID: common.NewUUID(), Role: role}
}

func TestAuthorizeApplicationCreate(t *testing.T) {
	if d := AuthorizeApplicationCreate(principal(user.RoleJobSeeker)); !d.Allowed {
		t.Fatalf("expected job seeker to create, got denied: %q", d.Reason)
	}
	if d := AuthorizeApplicationCreate(principal(user.RoleAdmin)); !d.Allowed {
		t.Fatalf("expected admin to create, got denied: %q", d.Reason)
	}
	if d := AuthorizeApplicationCreate(principal(user.RoleRecruiter)); d.Allowed {
		t.Fatal("expected recruiter to be denied creation")
	}
}

func TestAuthorizeApplicationRead(t *testing.T) {
	applicant := principal(user.RoleJobSeeker)
	owner := principal(user.RoleRecruiter)
	target := ApplicationTarget{ApplicantID: applicant.ID, JobOwnerID: owner.ID}

	if d := AuthorizeApplicationRead(applicant, target); !d.Allowed {
		t.Fatalf("expected applicant to read own application, got denied: %q", d.Reason)
	}
	if d := AuthorizeApplicationRead(owner, target); !d.Allowed {
		t.Fatalf("expected owning recruiter to read, got denied: %q", d.Reason)
	}
	if d := AuthorizeApplicationRead(principal(user.RoleAdmin), target); !d.Allowed {
		t.Fatalf("expected admin to read, got denied: %q", d.Reason)
	}

	otherRecruiter := principal(user.RoleRecruiter)
	d := AuthorizeApplicationRead(otherRecruiter, target)
	if d.Allowed {
		t.Fatal("expected non-owning recruiter to be denied")
	}
	if d.Reason != ReasonNotJobOwner {
		t.Fatalf("expected reason %q, got %q", ReasonNotJobOwner, d.Reason)
	}

	otherSeeker := principal(user.RoleJobSeeker)
	if d := AuthorizeApplicationRead(otherSeeker, target); d.Allowed {
		t.Fatal("expected other job seeker to be denied")
	}
}

func TestAuthorizeStatusUpdate_OwnerAccepts(t *testing.T) {
	owner := principal(user.RoleRecruiter)
	target := ApplicationTarget{ApplicantID: common.NewUUID(), JobOwnerID: owner.ID}

	d := AuthorizeStatusUpdate(owner, target, application.StatusPending, application.StatusAccepted)
	if !d.Allowed {
		t.Fatalf("expected owning recruiter to accept pending application, got denied: %q", d.Reason)
	}
}

func TestAuthorizeStatusUpdate_NonOwnerDenied(t *testing.T) {
	owner := principal(user.RoleRecruiter)
	intruder := principal(user.RoleRecruiter)
	target := ApplicationTarget{ApplicantID: common.NewUUID(), JobOwnerID: owner.ID}

	d := AuthorizeStatusUpdate(intruder, target, application.StatusPending, application.StatusAccepted)
	if d.Allowed {
		t.Fatal("expected non-owning recruiter to be denied")
	}
	if d.Reason != ReasonNotJobOwner {
		t.Fatalf("expected reason %q, got %q", ReasonNotJobOwner, d.Reason)
	}
}

func TestAuthorizeStatusUpdate_TerminalBindsAdmin(t *testing.T) {
	admin := principal(user.RoleAdmin)
	target := ApplicationTarget{ApplicantID: common.NewUUID(), JobOwnerID: common.NewUUID()}

	for _, current := range []application.Status{application.StatusAccepted, application.StatusRejected} {
		d := AuthorizeStatusUpdate(admin, target, current, application.StatusPending)
		if d.Allowed {
			t.Fatalf("expected transition out of %s to be denied even for admin", current)
		}
		if d.Reason != ReasonTerminalState {
			t.Fatalf("expected reason %q, got %q", ReasonTerminalState, d.Reason)
		}
	}
}

func TestAuthorizeStatusUpdate_AcceptedToRejectedDenied(t *testing.T) {
	owner := principal(user.RoleRecruiter)
	target := ApplicationTarget{ApplicantID: common.NewUUID(), JobOwnerID: owner.ID}

	d := AuthorizeStatusUpdate(owner, target, application.StatusAccepted, application.StatusRejected)
	if d.Allowed {
		t.Fatal("expected accepted -> rejected to be denied")
	}
	if d.Reason != ReasonTerminalState {
		t.Fatalf("expected reason %q, got %q", ReasonTerminalState, d.Reason)
	}
}

func TestAuthorizeStatusUpdate_UnknownStatusDeniedForAnyRole(t *testing.T) {
	target := ApplicationTarget{ApplicantID: common.NewUUID(), JobOwnerID: common.NewUUID()}
	for _, role := range []user.Role{user.RoleAdmin, user.RoleRecruiter, user.RoleJobSeeker} {
		d := AuthorizeStatusUpdate(principal(role), target, application.StatusPending, application.Status("archived"))
		if d.Allowed {
			t.Fatalf("expected unknown status to be denied for role %s", role)
		}
		if d.Reason != ReasonInvalidStatus {
			t.Fatalf("expected reason %q, got %q", ReasonInvalidStatus, d.Reason)
		}
	}
}

func TestAuthorizeStatusUpdate_JobSeekerDenied(t *testing.T) {
	seeker := principal(user.RoleJobSeeker)
	target := ApplicationTarget{ApplicantID: seeker.ID, JobOwnerID: common.NewUUID()}

	d := AuthorizeStatusUpdate(seeker, target, application.StatusPending, application.StatusAccepted)
	if d.Allowed {
		t.Fatal("expected job seeker to be denied status updates, even on own application")
	}
}

// Decisions are pure: the same inputs always produce the same output.
func TestDecisionsAreDeterministic(t *testing.T) {
	owner := principal(user.RoleRecruiter)
	target := ApplicationTarget{ApplicantID: common.NewUUID(), JobOwnerID: owner.ID}

	first := AuthorizeStatusUpdate(owner, target, application.StatusPending, application.StatusAccepted)
	for i := 0; i < 10; i++ {
		again := AuthorizeStatusUpdate(owner, target, application.StatusPending, application.StatusAccepted)
		if again != first {
			t.Fatalf("expected identical decision, got %+v then %+v", first, again)
		}
	}
}

func TestApplicationScope(t *testing.T) {
	if got := ApplicationScope(principal(user.RoleAdmin)); got != ScopeAll {
		t.Fatalf("expected admin scope all, got %d", got)
	}
	if got := ApplicationScope(principal(user.RoleRecruiter)); got != ScopeOwnJobs {
		t.Fatalf("expected recruiter scope own jobs, got %d", got)
	}
	if got := ApplicationScope(principal(user.RoleJobSeeker)); got != ScopeOwnApplications {
		t.Fatalf("expected job seeker scope own applications, got %d", got)
	}
	if got := ApplicationScope(Principal{ID: common.NewUUID()}); got != ScopeNone {
		t.Fatalf("expected empty role scope none, got %d", got)
	}
}

func TestAuthorizeJobMutation(t *testing.T) {
	owner := principal(user.RoleRecruiter)
	if d := AuthorizeJobMutation(owner, owner.ID); !d.Allowed {
		t.Fatalf("expected owner to mutate own job, got denied: %q", d.Reason)
	}
	if d := AuthorizeJobMutation(principal(user.RoleAdmin), owner.ID); !d.Allowed {
		t.Fatalf("expected admin to mutate any job, got denied: %q", d.Reason)
	}
	d := AuthorizeJobMutation(principal(user.RoleRecruiter), owner.ID)
	if d.Allowed {
		t.Fatal("expected non-owning recruiter to be denied")
	}
	if d.Reason != ReasonNotJobOwner {
		t.Fatalf("expected reason %q, got %q", ReasonNotJobOwner, d.Reason)
	}
	if d := AuthorizeJobMutation(principal(user.RoleJobSeeker), owner.ID); d.Allowed {
		t.Fatal("expected job seeker to be denied job mutation")
	}
}
