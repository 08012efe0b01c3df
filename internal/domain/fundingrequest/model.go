// Package fundingrequest provides the FundingRequest aggregate and its review
// lifecycle.
//
// A request starts Open and is decided by Approve or Reject. A decided
// request is locked: it cannot be decided again and its submitter and
// journal cannot change until it is reopened with Open.
package fundingrequest

import (
	"context"
	"encoding/json"

	"oafund/internal/core/apperror"
	"oafund/internal/core/entity"
	"oafund/internal/domain/money"
	"oafund/internal/domain/publication"
)

const entityName = "FundingRequest"

// FundingRequest asks for a publication's charges to be paid.
//
// Submitter, publication and review state are only reachable through
// methods so that a decided request cannot be changed behind its back.
type FundingRequest struct {
	entity.BaseEntity

	Amount  money.Money `db:"amount" json:"amount"`
	Comment string      `db:"comment" json:"comment,omitempty"`

	submitter   *publication.Author
	publication *publication.Publication
	review      Review
}

// New creates an open funding request.
func New(submitter *publication.Author, pub *publication.Publication, amount money.Money) (*FundingRequest, error) {
	r := &FundingRequest{
		BaseEntity:  entity.NewBaseEntity(),
		Amount:      amount,
		submitter:   submitter,
		publication: pub,
		review:      ReviewOpen,
	}
	if err := r.Validate(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

// Submitter returns the author who submitted the request.
func (r *FundingRequest) Submitter() *publication.Author { return r.submitter }

// Publication returns a copy of the requested publication. Changes to the
// copy do not reach the request; use SetJournal.
func (r *FundingRequest) Publication() publication.Publication { return *r.publication }

// Review returns the current review state.
func (r *FundingRequest) Review() Review { return r.review }

// Restore sets the review state of a request loaded from storage.
// The reserved Withdrawn state is rejected.
func (r *FundingRequest) Restore(review Review) error {
	switch review {
	case ReviewOpen, ReviewApproved, ReviewRejected:
		r.review = review
		return nil
	default:
		return apperror.NewValidation("review state cannot be restored").
			WithDetail("field", "review").
			WithDetail("value", review.String())
	}
}

// IsLocked reports whether the request has been decided.
func (r *FundingRequest) IsLocked() bool {
	return r.review != ReviewOpen
}

// CanModify checks if the request can be modified.
// Decided requests have to be reopened first.
func (r *FundingRequest) CanModify() error {
	if r.IsLocked() {
		return apperror.NewLocked(entityName, r.ID.String()).
			WithDetail("review", r.review.String())
	}
	return nil
}

// Approve moves an open request to Approved.
func (r *FundingRequest) Approve() error {
	return r.decide(ReviewApproved)
}

// Reject moves an open request to Rejected.
func (r *FundingRequest) Reject() error {
	return r.decide(ReviewRejected)
}

func (r *FundingRequest) decide(to Review) error {
	if err := r.CanModify(); err != nil {
		return err
	}
	r.review = to
	r.Touch()
	return nil
}

// Open returns the request to Open from any state.
func (r *FundingRequest) Open() {
	if r.review == ReviewOpen {
		return
	}
	r.review = ReviewOpen
	r.Touch()
}

// SetSubmitter replaces the submitter of an open request.
func (r *FundingRequest) SetSubmitter(a *publication.Author) error {
	if err := r.CanModify(); err != nil {
		return err
	}
	if a == nil {
		return apperror.NewValidation("submitter is required").
			WithDetail("field", "submitter")
	}
	r.submitter = a
	r.Touch()
	return nil
}

// SetJournal changes the journal of the requested publication.
func (r *FundingRequest) SetJournal(j *publication.Journal) error {
	if err := r.CanModify(); err != nil {
		return err
	}
	r.publication.SetJournal(j)
	r.Touch()
	return nil
}

// Validate implements entity.Validatable.
func (r *FundingRequest) Validate(ctx context.Context) error {
	if r.submitter == nil {
		return apperror.NewValidation("submitter is required").
			WithDetail("field", "submitter")
	}
	if r.publication == nil {
		return apperror.NewValidation("publication is required").
			WithDetail("field", "publication")
	}
	if r.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").
			WithDetail("field", "amount")
	}
	return nil
}

// MarshalJSON includes the unexported lifecycle fields.
func (r *FundingRequest) MarshalJSON() ([]byte, error) {
	type plain FundingRequest
	return json.Marshal(struct {
		*plain
		Submitter   *publication.Author      `json:"submitter"`
		Publication *publication.Publication `json:"publication"`
		Review      Review                   `json:"review"`
	}{(*plain)(r), r.submitter, r.publication, r.review})
}

var _ entity.Validatable = (*FundingRequest)(nil)
