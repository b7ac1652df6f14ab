package onboarding

// IsTerminal reports whether the application has been approved or rejected.
func (a *Application) IsTerminal() bool {
	return a.Step == StepApproved || a.Step == StepRejected
}

// DocumentsComplete reports whether no required document is still pending.
// Rejected or expired documents do not satisfy this gate either.
func (a *Application) DocumentsComplete() bool {
	for _, d := range a.Documents {
		if d.Required && d.Status != DocumentVerified {
			return false
		}
	}
	return true
}

// documentsReviewed reports whether every required document has left the
// pending state. This is the gate for leaving document review: a rejected or
// expired document blocks approval, not progression to background check.
func (a *Application) documentsReviewed() bool {
	for _, d := range a.Documents {
		if d.Required && d.Status == DocumentPending {
			return false
		}
	}
	return true
}

// TrainingComplete reports whether every required module is completed.
func (a *Application) TrainingComplete() bool {
	for _, m := range a.Training {
		if m.Required && m.Status != ModuleCompleted {
			return false
		}
	}
	return true
}

// Advance moves the application one step forward, validating the gate of the
// step being left. Terminal steps cannot advance; final review is left through
// Approve or Reject, not Advance.
func (a *Application) Advance() error {
	if a.IsTerminal() {
		return ErrTerminal
	}

	switch a.Step {
	case StepDocumentReview:
		if !a.documentsReviewed() {
			return ErrDocumentsPending
		}
	case StepTraining:
		if !a.TrainingComplete() {
			return ErrTrainingIncomplete
		}
	case StepFinalReview:
		return ErrNotEligible
	}

	for i, step := range stepOrder {
		if step == a.Step && i+1 < len(stepOrder) {
			a.Step = stepOrder[i+1]
			return nil
		}
	}
	return ErrNotEligible
}

// Approve marks the application approved. It requires final review with every
// document verified and every required training module completed.
func (a *Application) Approve() error {
	if a.IsTerminal() {
		return ErrTerminal
	}
	if a.Step != StepFinalReview || !a.DocumentsComplete() || !a.TrainingComplete() {
		return ErrNotEligible
	}
	a.Step = StepApproved
	return nil
}

// Reject terminates the application from any non-terminal step. The progress
// value is frozen at its current reading.
func (a *Application) Reject(reason string) error {
	if a.IsTerminal() {
		return ErrTerminal
	}
	a.frozenProgress = a.Progress()
	a.Step = StepRejected
	a.RejectReason = reason
	return nil
}

// SetDocumentStatus updates one document slot.
func (a *Application) SetDocumentStatus(t DocumentType, status DocumentStatus) error {
	if a.IsTerminal() {
		return ErrTerminal
	}
	for i := range a.Documents {
		if a.Documents[i].Type == t {
			a.Documents[i].Status = status
			return nil
		}
	}
	return ErrUnknownDocument
}

// SetModuleStatus updates one training module.
func (a *Application) SetModuleStatus(id string, status ModuleStatus) error {
	if a.IsTerminal() {
		return ErrTerminal
	}
	for i := range a.Training {
		if a.Training[i].ID == id {
			a.Training[i].Status = status
			return nil
		}
	}
	return ErrUnknownModule
}

// Progress returns the application's completion percentage. Document review
// scales from 25 to 50 with verified documents; training scales from 60 to 90
// with completed required modules. A rejected application keeps the progress
// it had when rejected.
func (a *Application) Progress() int {
	switch a.Step {
	case StepSubmitted:
		return 25
	case StepDocumentReview:
		verified := 0
		for _, d := range a.Documents {
			if d.Status == DocumentVerified {
				verified++
			}
		}
		if len(a.Documents) == 0 {
			return 25
		}
		return 25 + (25*verified)/len(a.Documents)
	case StepBackgroundCheck:
		return 60
	case StepTraining:
		required, completed := 0, 0
		for _, m := range a.Training {
			if !m.Required {
				continue
			}
			required++
			if m.Status == ModuleCompleted {
				completed++
			}
		}
		if required == 0 {
			return 60
		}
		return 60 + (30*completed)/required
	case StepFinalReview:
		return 95
	case StepApproved:
		return 100
	case StepRejected:
		return a.frozenProgress
	default:
		return 0
	}
}
