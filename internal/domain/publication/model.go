// Package publication models the bibliographic records a funding request
// refers to: authors, publishers, journals and publications.
package publication

import (
	"context"
	"time"

	"oafund/internal/core/apperror"
	"oafund/internal/core/entity"
	"oafund/internal/core/id"
	"oafund/internal/core/identifier"
	"oafund/internal/core/types"
	"oafund/internal/domain/authorlist"
)

// Author is a person who can submit funding requests.
type Author struct {
	entity.BaseEntity

	Name  types.NonEmptyStr `db:"name" json:"name"`
	Orcid *identifier.Orcid `db:"orcid" json:"orcid,omitempty"`
	Email string            `db:"email" json:"email,omitempty"`
}

// NewAuthor creates an author. orcid may be empty.
func NewAuthor(name, orcid string) (*Author, error) {
	n, err := types.NewNonEmptyStr(name)
	if err != nil {
		return nil, apperror.NewValidation("author name is required").
			WithDetail("field", "name")
	}

	a := &Author{BaseEntity: entity.NewBaseEntity(), Name: n}
	if orcid != "" {
		o, err := identifier.ParseOrcid(orcid)
		if err != nil {
			return nil, err
		}
		a.Orcid = &o
	}
	return a, nil
}

// Publisher issues journals and signs contracts.
type Publisher struct {
	entity.BaseEntity

	Name types.NonEmptyStr `db:"name" json:"name"`
}

// NewPublisher creates a publisher.
func NewPublisher(name string) (*Publisher, error) {
	n, err := types.NewNonEmptyStr(name)
	if err != nil {
		return nil, apperror.NewValidation("publisher name is required").
			WithDetail("field", "name")
	}
	return &Publisher{BaseEntity: entity.NewBaseEntity(), Name: n}, nil
}

// Journal is a serial publication of a publisher.
type Journal struct {
	entity.BaseEntity

	Title       types.NonEmptyStr `db:"title" json:"title"`
	Issn        *identifier.Issn  `db:"issn" json:"issn,omitempty"`
	PublisherID id.ID             `db:"publisher_id" json:"publisherId"`
}

// NewJournal creates a journal. issn may be empty.
func NewJournal(title, issn string, publisherID id.ID) (*Journal, error) {
	t, err := types.NewNonEmptyStr(title)
	if err != nil {
		return nil, apperror.NewValidation("journal title is required").
			WithDetail("field", "title")
	}
	if id.IsNil(publisherID) {
		return nil, apperror.NewValidation("publisher is required").
			WithDetail("field", "publisherId")
	}

	j := &Journal{BaseEntity: entity.NewBaseEntity(), Title: t, PublisherID: publisherID}
	if issn != "" {
		v, err := identifier.ParseIssn(issn)
		if err != nil {
			return nil, err
		}
		j.Issn = &v
	}
	return j, nil
}

// Publication is an article for which funding is requested.
type Publication struct {
	entity.BaseEntity

	Title      types.NonEmptyStr     `db:"title" json:"title"`
	Doi        *identifier.Doi       `db:"doi" json:"doi,omitempty"`
	Authors    authorlist.AuthorList `db:"authors" json:"authors"`
	Journal    *Journal              `db:"-" json:"journal,omitempty"`
	AcceptedOn *time.Time            `db:"accepted_on" json:"acceptedOn,omitempty"`
}

// NewPublication creates a publication from a title and a free-text
// author string.
func NewPublication(title, authors string) (*Publication, error) {
	t, err := types.NewNonEmptyStr(title)
	if err != nil {
		return nil, apperror.NewValidation("publication title is required").
			WithDetail("field", "title")
	}
	return &Publication{
		BaseEntity: entity.NewBaseEntity(),
		Title:      t,
		Authors:    authorlist.Parse(authors),
	}, nil
}

// SetDoi validates and assigns the DOI. An empty string clears it.
func (p *Publication) SetDoi(doi string) error {
	if doi == "" {
		p.Doi = nil
		p.Touch()
		return nil
	}
	d, err := identifier.ParseDoi(doi)
	if err != nil {
		return err
	}
	p.Doi = &d
	p.Touch()
	return nil
}

// SetJournal assigns the journal the publication appears in.
func (p *Publication) SetJournal(j *Journal) {
	p.Journal = j
	p.Touch()
}

// Accept records the acceptance date.
func (p *Publication) Accept(on time.Time) {
	d := on.UTC()
	p.AcceptedOn = &d
	p.Touch()
}

// Validate implements entity.Validatable.
func (p *Publication) Validate(ctx context.Context) error {
	if p.Title.IsZero() {
		return apperror.NewValidation("publication title is required").
			WithDetail("field", "title")
	}
	if p.Authors.Len() == 0 {
		return apperror.NewValidation("at least one author is required").
			WithDetail("field", "authors")
	}
	return nil
}

var _ entity.Validatable = (*Publication)(nil)
