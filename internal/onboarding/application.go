// Package onboarding models the rider application review workflow: a linear
// step progression gated by document verification and training completion.
package onboarding

import (
	"time"

	"parceldash/internal/domain"
)

// Step is a stage of the onboarding workflow, ordered and forward-only.
// Rejection is reachable from any non-terminal step.
type Step string

const (
	StepSubmitted       Step = "submitted"
	StepDocumentReview  Step = "document_review"
	StepBackgroundCheck Step = "background_check"
	StepTraining        Step = "training"
	StepFinalReview     Step = "final_review"
	StepApproved        Step = "approved"
	StepRejected        Step = "rejected"
)

// stepOrder is the forward chain; terminal steps are handled separately.
var stepOrder = []Step{
	StepSubmitted,
	StepDocumentReview,
	StepBackgroundCheck,
	StepTraining,
	StepFinalReview,
}

// stepLabels are the display names for each step.
var stepLabels = map[Step]string{
	StepSubmitted:       "Application Submitted",
	StepDocumentReview:  "Document Review",
	StepBackgroundCheck: "Background Check",
	StepTraining:        "Training",
	StepFinalReview:     "Final Review",
	StepApproved:        "Approved",
	StepRejected:        "Rejected",
}

// DocumentStatus is the verification state of one document slot.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentVerified DocumentStatus = "verified"
	DocumentRejected DocumentStatus = "rejected"
	DocumentExpired  DocumentStatus = "expired"
)

// DocumentType identifies one of the fixed document slots.
type DocumentType string

const (
	DocNationalID          DocumentType = "national_id"
	DocDriversLicense      DocumentType = "drivers_license"
	DocVehicleRegistration DocumentType = "vehicle_registration"
	DocInsurance           DocumentType = "insurance_certificate"
	DocProofOfAddress      DocumentType = "proof_of_address"
	DocBackgroundConsent   DocumentType = "background_consent"
	DocProfilePhoto        DocumentType = "profile_photo"
	DocVehiclePhoto        DocumentType = "vehicle_photo"
)

// DocumentSlots is the fixed ordered set of slots every application carries.
var DocumentSlots = []DocumentType{
	DocNationalID,
	DocDriversLicense,
	DocVehicleRegistration,
	DocInsurance,
	DocProofOfAddress,
	DocBackgroundConsent,
	DocProfilePhoto,
	DocVehiclePhoto,
}

// Document is one slot of the application's document checklist.
type Document struct {
	Type     DocumentType   `json:"type"`
	Status   DocumentStatus `json:"status"`
	Required bool           `json:"required"`
}

// ModuleStatus is the completion state of one training module.
type ModuleStatus string

const (
	ModuleNotStarted ModuleStatus = "not_started"
	ModuleInProgress ModuleStatus = "in_progress"
	ModuleCompleted  ModuleStatus = "completed"
	ModuleFailed     ModuleStatus = "failed"
)

// TrainingModule is one unit of the rider training curriculum.
type TrainingModule struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Required bool         `json:"required"`
	Status   ModuleStatus `json:"status"`
}

// DefaultTrainingModules returns the standard curriculum for new applications.
func DefaultTrainingModules() []TrainingModule {
	return []TrainingModule{
		{ID: "road_safety", Name: "Road Safety", Required: true, Status: ModuleNotStarted},
		{ID: "parcel_handling", Name: "Parcel Handling", Required: true, Status: ModuleNotStarted},
		{ID: "customer_service", Name: "Customer Service", Required: true, Status: ModuleNotStarted},
		{ID: "app_navigation", Name: "App Navigation", Required: false, Status: ModuleNotStarted},
	}
}

// Application is the onboarding view of a pending rider: the remote record
// plus the derived workflow state the review screens operate on.
type Application struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	NationalID string                `json:"national_id"`
	Vehicle    domain.VehicleDetails `json:"vehicle_details"`

	Step         Step             `json:"current_step"`
	Documents    []Document       `json:"documents"`
	Training     []TrainingModule `json:"training_modules"`
	RejectReason string           `json:"reject_reason,omitempty"`
	SubmittedAt  time.Time        `json:"submitted_at"`

	// frozenProgress preserves the progress value at the moment of rejection.
	frozenProgress int
}

// FromPendingRider builds the onboarding view model for a pending application.
// A verified application starts in document review with its identity documents
// already accepted; everything else starts at submitted.
func FromPendingRider(r domain.PendingRider) *Application {
	app := &Application{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		NationalID:  r.NationalID,
		Vehicle:     r.VehicleDetails,
		Step:        StepSubmitted,
		Training:    DefaultTrainingModules(),
		SubmittedAt: r.CreatedAt,
	}

	app.Documents = make([]Document, 0, len(DocumentSlots))
	for _, slot := range DocumentSlots {
		app.Documents = append(app.Documents, Document{
			Type:     slot,
			Status:   DocumentPending,
			Required: true,
		})
	}

	if r.IsVerified {
		app.Step = StepDocumentReview
		app.setDocument(DocNationalID, DocumentVerified)
		app.setDocument(DocDriversLicense, DocumentVerified)
	}
	return app
}

// Label returns the display name of the application's current step.
func (a *Application) Label() string {
	return stepLabels[a.Step]
}

func (a *Application) setDocument(t DocumentType, status DocumentStatus) {
	for i := range a.Documents {
		if a.Documents[i].Type == t {
			a.Documents[i].Status = status
			return
		}
	}
}
