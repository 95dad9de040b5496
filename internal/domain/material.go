package domain

import "time"

// Material choice lifecycle statuses.
const (
	ChoiceStatusDraft     = "Draft"
	ChoiceStatusSubmitted = "Submitted"
	ChoiceStatusCancelled = "Cancelled"
)

// Material option group kinds.
const (
	GroupTypeConcept      = "Concept"
	GroupTypeAddOn        = "AddOn"
	GroupTypeSingleChoice = "SingleChoice"
)

// RoomType is a named room category within an apartment (kitchen, bathroom...)
// used to scope material option groups. Room types come from a fixed catalog,
// they are not persisted.
type RoomType struct {
	RoomTypeID           string                 `json:"roomTypeId"`
	Name                 string                 `json:"name"`
	MaterialOptionGroups []*MaterialOptionGroup `json:"materialOptionGroups,omitempty"`
}

// MaterialOptionGroup is a named choice-set for a room type.
type MaterialOptionGroup struct {
	MaterialOptionGroupID string            `json:"materialOptionGroupId"`
	RoomTypeID            string            `json:"roomTypeId"`
	Name                  string            `json:"name,omitempty"`
	ActionName            string            `json:"actionName,omitempty"`
	Type                  string            `json:"type"`
	MaterialOptions       []*MaterialOption `json:"materialOptions,omitempty"`
	MaterialChoices       []*MaterialChoice `json:"materialChoices,omitempty"`
}

// MaterialOption is one selectable option within a group. Images keep the
// row order of the backing query.
type MaterialOption struct {
	MaterialOptionID        string   `json:"materialOptionId"`
	Caption                 string   `json:"caption"`
	ShortDescription        string   `json:"shortDescription,omitempty"`
	Description             string   `json:"description,omitempty"`
	CoverImage              string   `json:"coverImage,omitempty"`
	MaterialOptionGroupName string   `json:"materialOptionGroupName,omitempty"`
	Images                  []string `json:"images"`
}

// MaterialChoice is a tenant's concrete selection of one option for one
// group. Created as Submitted; a later submission for the same apartment
// cancels every prior choice not present in the new submission.
type MaterialChoice struct {
	MaterialChoiceID      string     `json:"materialChoiceId"`
	MaterialOptionID      string     `json:"materialOptionId"`
	MaterialOptionGroupID string     `json:"materialOptionGroupId"`
	ApartmentID           string     `json:"apartmentId"`
	RoomTypeID            string     `json:"roomTypeId"`
	Status                string     `json:"status"`
	DateOfSubmission      time.Time  `json:"dateOfSubmission"`
	DateOfCancellation    *time.Time `json:"dateOfCancellation,omitempty"`
}

// ApartmentMaterialChoice is the flat per-choice projection returned for a
// single apartment (choice id joined with its option caption).
type ApartmentMaterialChoice struct {
	MaterialChoiceID string `json:"materialChoiceId"`
	RoomType         string `json:"roomType"`
	Caption          string `json:"caption"`
	ShortDescription string `json:"shortDescription,omitempty"`
	ApartmentID      string `json:"apartmentId"`
}

// ApartmentChoiceStatus is the submitted-choice count for one apartment
// eligible for material choice. Apartments with zero choices are included.
type ApartmentChoiceStatus struct {
	ApartmentID string `json:"apartmentId"`
	NumChoices  int    `json:"numChoices"`
}
