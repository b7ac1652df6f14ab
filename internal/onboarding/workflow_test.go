package onboarding

import (
	"errors"
	"testing"
	"time"

	"parceldash/internal/domain"
)

func pendingApp() domain.PendingRider {
	return domain.PendingRider{
		ID:         "app-1",
		Name:       "Henry",
		Email:      "henry@example.com",
		NationalID: "12345678",
		VehicleDetails: domain.VehicleDetails{
			Type: "motorcycle", LicensePlate: "KDA 123X",
		},
		Status:    domain.RiderStatusPending,
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// verifyAllDocuments marks every slot verified.
func verifyAllDocuments(t *testing.T, app *Application) {
	t.Helper()
	for _, slot := range DocumentSlots {
		if err := app.SetDocumentStatus(slot, DocumentVerified); err != nil {
			t.Fatalf("verify %s: %v", slot, err)
		}
	}
}

// completeRequiredTraining marks every required module completed.
func completeRequiredTraining(t *testing.T, app *Application) {
	t.Helper()
	for _, m := range app.Training {
		if m.Required {
			if err := app.SetModuleStatus(m.ID, ModuleCompleted); err != nil {
				t.Fatalf("complete %s: %v", m.ID, err)
			}
		}
	}
}

// advanceTo walks the application forward to the target step, satisfying each
// gate along the way.
func advanceTo(t *testing.T, app *Application, target Step) {
	t.Helper()
	for app.Step != target {
		switch app.Step {
		case StepDocumentReview:
			verifyAllDocuments(t, app)
		case StepTraining:
			completeRequiredTraining(t, app)
		}
		if err := app.Advance(); err != nil {
			t.Fatalf("advance from %s: %v", app.Step, err)
		}
	}
}

// ──────────────────────────────────────────────
// CONSTRUCTION
// ──────────────────────────────────────────────

func TestFromPendingRider(t *testing.T) {
	t.Parallel()

	t.Run("unverified starts at submitted", func(t *testing.T) {
		t.Parallel()
		app := FromPendingRider(pendingApp())

		if app.Step != StepSubmitted {
			t.Errorf("step = %s, want submitted", app.Step)
		}
		if got := app.Progress(); got != 25 {
			t.Errorf("progress = %d, want 25", got)
		}
		if len(app.Documents) != len(DocumentSlots) {
			t.Errorf("document slots = %d, want %d", len(app.Documents), len(DocumentSlots))
		}
		for _, d := range app.Documents {
			if d.Status != DocumentPending {
				t.Errorf("document %s = %s, want pending", d.Type, d.Status)
			}
		}
	})

	t.Run("verified starts in document review", func(t *testing.T) {
		t.Parallel()
		r := pendingApp()
		r.IsVerified = true
		app := FromPendingRider(r)

		if app.Step != StepDocumentReview {
			t.Errorf("step = %s, want document_review", app.Step)
		}
		verified := map[DocumentType]bool{}
		for _, d := range app.Documents {
			verified[d.Type] = d.Status == DocumentVerified
		}
		if !verified[DocNationalID] || !verified[DocDriversLicense] {
			t.Error("identity documents must start verified")
		}
		if verified[DocInsurance] {
			t.Error("non-identity documents must start pending")
		}
	})
}

// ──────────────────────────────────────────────
// STEP PROGRESSION
// ──────────────────────────────────────────────

func TestAdvance_GatesEachStep(t *testing.T) {
	t.Parallel()

	app := FromPendingRider(pendingApp())

	// submitted -> document_review is ungated.
	if err := app.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Step != StepDocumentReview {
		t.Fatalf("step = %s", app.Step)
	}

	// Document review holds while any required document is still pending.
	if err := app.Advance(); !errors.Is(err, ErrDocumentsPending) {
		t.Fatalf("err = %v, want ErrDocumentsPending", err)
	}
	verifyAllDocuments(t, app)
	if err := app.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Step != StepBackgroundCheck {
		t.Fatalf("step = %s", app.Step)
	}

	// background_check -> training is ungated.
	if err := app.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Training holds while a required module is incomplete.
	if err := app.Advance(); !errors.Is(err, ErrTrainingIncomplete) {
		t.Fatalf("err = %v, want ErrTrainingIncomplete", err)
	}
	completeRequiredTraining(t, app)
	if err := app.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Step != StepFinalReview {
		t.Fatalf("step = %s", app.Step)
	}

	// Final review is left through Approve or Reject only.
	if err := app.Advance(); !errors.Is(err, ErrNotEligible) {
		t.Fatalf("err = %v, want ErrNotEligible", err)
	}
}

func TestAdvance_RejectedDocumentDoesNotBlockReview(t *testing.T) {
	t.Parallel()

	app := FromPendingRider(pendingApp())
	advanceTo(t, app, StepDocumentReview)

	for _, slot := range DocumentSlots {
		status := DocumentVerified
		if slot == DocInsurance {
			status = DocumentRejected
		}
		if err := app.SetDocumentStatus(slot, status); err != nil {
			t.Fatalf("set %s: %v", slot, err)
		}
	}

	// Every document has been reviewed, so progression is allowed even though
	// one was rejected. Approval will still be blocked later.
	if err := app.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Step != StepBackgroundCheck {
		t.Errorf("step = %s", app.Step)
	}
	if app.DocumentsComplete() {
		t.Error("a rejected document must not count as complete")
	}
}

func TestAdvance_OptionalModuleDoesNotGateTraining(t *testing.T) {
	t.Parallel()

	app := FromPendingRider(pendingApp())
	advanceTo(t, app, StepTraining)

	completeRequiredTraining(t, app)
	// app_navigation stays not_started.
	if err := app.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Step != StepFinalReview {
		t.Errorf("step = %s", app.Step)
	}
}

// ──────────────────────────────────────────────
// APPROVAL AND REJECTION
// ──────────────────────────────────────────────

func TestApprove(t *testing.T) {
	t.Parallel()

	t.Run("eligible at final review", func(t *testing.T) {
		t.Parallel()
		app := FromPendingRider(pendingApp())
		advanceTo(t, app, StepFinalReview)

		if err := app.Approve(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Step != StepApproved {
			t.Errorf("step = %s", app.Step)
		}
		if got := app.Progress(); got != 100 {
			t.Errorf("progress = %d, want 100", got)
		}
	})

	t.Run("refused before final review", func(t *testing.T) {
		t.Parallel()
		app := FromPendingRider(pendingApp())
		verifyAllDocuments(t, app)
		completeRequiredTraining(t, app)

		if err := app.Approve(); !errors.Is(err, ErrNotEligible) {
			t.Errorf("err = %v, want ErrNotEligible", err)
		}
	})

	t.Run("refused with a rejected document", func(t *testing.T) {
		t.Parallel()
		app := FromPendingRider(pendingApp())
		advanceTo(t, app, StepFinalReview)
		if err := app.SetDocumentStatus(DocInsurance, DocumentRejected); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := app.Approve(); !errors.Is(err, ErrNotEligible) {
			t.Errorf("err = %v, want ErrNotEligible", err)
		}
	})

	t.Run("refused twice", func(t *testing.T) {
		t.Parallel()
		app := FromPendingRider(pendingApp())
		advanceTo(t, app, StepFinalReview)
		if err := app.Approve(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := app.Approve(); !errors.Is(err, ErrTerminal) {
			t.Errorf("err = %v, want ErrTerminal", err)
		}
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	t.Run("freezes progress", func(t *testing.T) {
		t.Parallel()
		app := FromPendingRider(pendingApp())
		advanceTo(t, app, StepBackgroundCheck)

		before := app.Progress()
		if err := app.Reject("failed background check"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Step != StepRejected {
			t.Errorf("step = %s", app.Step)
		}
		if app.RejectReason != "failed background check" {
			t.Errorf("reason = %q", app.RejectReason)
		}
		if got := app.Progress(); got != before {
			t.Errorf("progress = %d, want frozen at %d", got, before)
		}
	})

	t.Run("terminal applications are immutable", func(t *testing.T) {
		t.Parallel()
		app := FromPendingRider(pendingApp())
		if err := app.Reject("duplicate application"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := app.Reject("again"); !errors.Is(err, ErrTerminal) {
			t.Errorf("Reject err = %v, want ErrTerminal", err)
		}
		if err := app.Advance(); !errors.Is(err, ErrTerminal) {
			t.Errorf("Advance err = %v, want ErrTerminal", err)
		}
		if err := app.SetDocumentStatus(DocNationalID, DocumentVerified); !errors.Is(err, ErrTerminal) {
			t.Errorf("SetDocumentStatus err = %v, want ErrTerminal", err)
		}
		if err := app.SetModuleStatus("road_safety", ModuleCompleted); !errors.Is(err, ErrTerminal) {
			t.Errorf("SetModuleStatus err = %v, want ErrTerminal", err)
		}
	})
}

// ──────────────────────────────────────────────
// PROGRESS
// ──────────────────────────────────────────────

func TestProgress_ScalesWithinSteps(t *testing.T) {
	t.Parallel()

	app := FromPendingRider(pendingApp())
	advanceTo(t, app, StepDocumentReview)

	if got := app.Progress(); got != 25 {
		t.Errorf("no documents verified: progress = %d, want 25", got)
	}
	for i, slot := range DocumentSlots[:4] {
		if err := app.SetDocumentStatus(slot, DocumentVerified); err != nil {
			t.Fatalf("verify %s: %v", slot, err)
		}
		want := 25 + (25*(i+1))/len(DocumentSlots)
		if got := app.Progress(); got != want {
			t.Errorf("%d verified: progress = %d, want %d", i+1, got, want)
		}
	}

	advanceTo(t, app, StepTraining)
	if got := app.Progress(); got != 60 {
		t.Errorf("no modules completed: progress = %d, want 60", got)
	}
	if err := app.SetModuleStatus("road_safety", ModuleCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := app.Progress(); got != 70 {
		t.Errorf("1/3 required completed: progress = %d, want 70", got)
	}

	advanceTo(t, app, StepFinalReview)
	if got := app.Progress(); got != 95 {
		t.Errorf("final review: progress = %d, want 95", got)
	}
}

func TestSetStatus_UnknownTargets(t *testing.T) {
	t.Parallel()

	app := FromPendingRider(pendingApp())
	if err := app.SetDocumentStatus("passport", DocumentVerified); !errors.Is(err, ErrUnknownDocument) {
		t.Errorf("err = %v, want ErrUnknownDocument", err)
	}
	if err := app.SetModuleStatus("defensive_driving", ModuleCompleted); !errors.Is(err, ErrUnknownModule) {
		t.Errorf("err = %v, want ErrUnknownModule", err)
	}
}
