package repository

import (
	"context"
	"time"

	"property-info-api/internal/domain"
)

// MaterialOptionRow is one flat row of the group/option/image outer join.
// Rows arrive ordered by (group id, option id); repeated group and option
// columns fan out over the image rows.
type MaterialOptionRow struct {
	GroupID          string
	GroupRoomTypeID  string
	GroupName        string
	GroupActionName  string
	GroupType        string
	OptionID         string
	Caption          string
	ShortDescription string
	Description      string
	CoverImage       string
	Image            string
}

// ChoiceTreeRow is one flat row of the group/option/choice join used to
// rebuild submitted choices per room type.
type ChoiceTreeRow struct {
	GroupID          string
	GroupRoomTypeID  string
	GroupName        string
	GroupActionName  string
	GroupType        string
	OptionID         string
	Caption          string
	ShortDescription string
	Description      string
	CoverImage       string
	ChoiceID         string
	ApartmentID      string
	Status           string
	DateOfSubmission time.Time
}

// MaterialsRepository is the materials store's query surface.
type MaterialsRepository interface {
	// GetOptionRowsByRoomType returns the option/image join for one room
	// type, ordered by group id then option id.
	GetOptionRowsByRoomType(ctx context.Context, roomTypeID string) ([]MaterialOptionRow, error)

	// GetOptionRowsByOptionID returns the same join restricted to one option.
	GetOptionRowsByOptionID(ctx context.Context, optionID string) ([]MaterialOptionRow, error)

	// GetApartmentChoices returns the flat submitted choices of one apartment.
	GetApartmentChoices(ctx context.Context, apartmentID string) ([]domain.ApartmentMaterialChoice, error)

	// GetChoiceTreeRows returns the group/option/choice join of one
	// apartment's submitted choices, ordered by group, option, choice.
	GetChoiceTreeRows(ctx context.Context, apartmentID string) ([]ChoiceTreeRow, error)

	// InsertChoices inserts one Submitted row per choice and returns the
	// generated choice ids.
	InsertChoices(ctx context.Context, apartmentID string, choices []domain.MaterialChoice, submittedAt time.Time) ([]string, error)

	// GetActiveChoiceIDs returns the ids of all non-cancelled choices of
	// one apartment, across all room types.
	GetActiveChoiceIDs(ctx context.Context, apartmentID string) ([]string, error)

	// CancelChoices marks the given choices Cancelled with the given
	// cancellation timestamp.
	CancelChoices(ctx context.Context, choiceIDs []string, cancelledAt time.Time) error

	// GetApartmentChoiceStatuses returns submitted-choice counts for every
	// apartment eligible for material choice, zero-choice apartments
	// included, ordered by count descending then apartment id ascending.
	GetApartmentChoiceStatuses(ctx context.Context) ([]domain.ApartmentChoiceStatus, error)
}
