package onboarding

import "errors"

var (
	// ErrTerminal is returned when mutating an approved or rejected application.
	ErrTerminal = errors.New("application is in a terminal step")

	// ErrDocumentsPending is returned when leaving document review with a
	// required document still pending.
	ErrDocumentsPending = errors.New("required documents still pending")

	// ErrTrainingIncomplete is returned when leaving training with a required
	// module not completed.
	ErrTrainingIncomplete = errors.New("required training modules not completed")

	// ErrNotEligible is returned when approval is requested before the
	// application reaches final review with all gates satisfied.
	ErrNotEligible = errors.New("application not eligible for approval")

	// ErrUnknownDocument is returned for a document type outside the fixed slots.
	ErrUnknownDocument = errors.New("unknown document type")

	// ErrUnknownModule is returned for a training module id not in the curriculum.
	ErrUnknownModule = errors.New("unknown training module")
)
