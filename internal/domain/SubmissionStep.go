package domain

// SubmissionStep é a etapa do assistente de lançamento de métricas.
// O estado pertence ao chamador; o motor de reconciliação não o consulta.
type SubmissionStep int

const (
	StepSelect SubmissionStep = iota
	StepConfirm
	StepPickDate
	StepFillOrEdit
	StepReview
)

func (s SubmissionStep) Next() SubmissionStep {
	if s >= StepReview {
		return StepReview
	}
	return s + 1
}

func (s SubmissionStep) Prev() SubmissionStep {
	if s <= StepSelect {
		return StepSelect
	}
	return s - 1
}

func (s SubmissionStep) String() string {
	switch s {
	case StepSelect:
		return "select"
	case StepConfirm:
		return "confirm"
	case StepPickDate:
		return "pick-date"
	case StepFillOrEdit:
		return "fill-or-edit"
	case StepReview:
		return "review"
	}
	return "unknown"
}
