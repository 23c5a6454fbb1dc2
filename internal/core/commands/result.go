package commands

import "github.com/AntonioJCosta/stocker/internal/core/domain/drug"

/*
Result is the envelope every command returns: a feedback message and, when the
command produced one, an ordered list of the drugs it concerns. A nil Drugs
slice means there is no list to show.
*/
type Result struct {
	Feedback string
	Drugs    []drug.Drug
}

// NewResult builds a Result without a drug list.
func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

// NewResultWithDrugs builds a Result carrying a copy of drugs. An empty list
// is treated as no list.
func NewResultWithDrugs(feedback string, drugs []drug.Drug) Result {
	if len(drugs) == 0 {
		return Result{Feedback: feedback}
	}
	return Result{Feedback: feedback, Drugs: append([]drug.Drug(nil), drugs...)}
}

// HasDrugs reports whether the Result carries a drug list.
func (r Result) HasDrugs() bool {
	return r.Drugs != nil
}
