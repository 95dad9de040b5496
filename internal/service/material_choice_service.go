package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"property-info-api/internal/domain"
	"property-info-api/internal/repository"
	"property-info-api/internal/rowtree"
)

// roomTypeCatalog is the fixed set of room categories material options are
// scoped to. Room types are not persisted anywhere.
var roomTypeCatalog = []domain.RoomType{
	{RoomTypeID: "KOKHALL", Name: "Kök & Hall"},
	{RoomTypeID: "BADRUM", Name: "Badrum"},
	{RoomTypeID: "VARDAGSRUM", Name: "Vardagsrum"},
	{RoomTypeID: "SOVRUM1", Name: "Sovrum 1"},
}

// MaterialChoiceService rebuilds material option trees out of the flat
// join rows and owns the choice submission lifecycle.
type MaterialChoiceService struct {
	repo   repository.MaterialsRepository
	logger *zap.Logger

	now func() time.Time
}

func NewMaterialChoiceService(repo repository.MaterialsRepository, logger *zap.Logger) *MaterialChoiceService {
	return &MaterialChoiceService{repo: repo, logger: logger, now: time.Now}
}

// RoomTypes returns the room type catalog for one apartment.
func (s *MaterialChoiceService) RoomTypes(apartmentID string) []domain.RoomType {
	out := make([]domain.RoomType, len(roomTypeCatalog))
	copy(out, roomTypeCatalog)
	return out
}

// GetRoomTypesWithMaterialOptions loads the option groups of every room
// type in the catalog.
func (s *MaterialChoiceService) GetRoomTypesWithMaterialOptions(ctx context.Context, apartmentID string) ([]domain.RoomType, error) {
	roomTypes := s.RoomTypes(apartmentID)
	for i := range roomTypes {
		groups, err := s.GetMaterialOptionGroupsByRoomType(ctx, roomTypes[i].RoomTypeID)
		if err != nil {
			return nil, err
		}
		roomTypes[i].MaterialOptionGroups = groups
	}
	return roomTypes, nil
}

// GetMaterialOptionGroupsByRoomType rebuilds the group/option/image tree
// of one room type. Options within a group are sorted by caption.
func (s *MaterialChoiceService) GetMaterialOptionGroupsByRoomType(ctx context.Context, roomTypeID string) ([]*domain.MaterialOptionGroup, error) {
	rows, err := s.repo.GetOptionRowsByRoomType(ctx, roomTypeID)
	if err != nil {
		s.logger.Error("Failed to fetch material option rows",
			zap.String("room_type_id", roomTypeID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get material option groups: %w", err)
	}
	return buildOptionGroups(rows), nil
}

// GetMaterialOptionGroup returns one group of a room type, or nil when
// the group id is not present.
func (s *MaterialChoiceService) GetMaterialOptionGroup(ctx context.Context, roomTypeID, groupID string) (*domain.MaterialOptionGroup, error) {
	groups, err := s.GetMaterialOptionGroupsByRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if group.MaterialOptionGroupID == groupID {
			return group, nil
		}
	}
	return nil, nil
}

// GetMaterialOption collapses the option/image join to a single option.
// Returns nil when the id matches nothing.
func (s *MaterialChoiceService) GetMaterialOption(ctx context.Context, optionID string) (*domain.MaterialOption, error) {
	rows, err := s.repo.GetOptionRowsByOptionID(ctx, optionID)
	if err != nil {
		s.logger.Error("Failed to fetch material option",
			zap.String("material_option_id", optionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get material option: %w", err)
	}

	groups := buildOptionGroups(rows)
	if len(groups) == 0 || len(groups[0].MaterialOptions) == 0 {
		return nil, nil
	}
	return groups[0].MaterialOptions[0], nil
}

// GetApartmentChoices returns the flat submitted choices of one apartment.
func (s *MaterialChoiceService) GetApartmentChoices(ctx context.Context, apartmentID string) ([]domain.ApartmentMaterialChoice, error) {
	choices, err := s.repo.GetApartmentChoices(ctx, apartmentID)
	if err != nil {
		s.logger.Error("Failed to fetch apartment choices",
			zap.String("apartment_id", apartmentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get apartment choices: %w", err)
	}
	return choices, nil
}

// GetRoomsWithMaterialChoices rebuilds the submitted choice tree of one
// apartment and distributes the groups over the room type catalog. Room
// types without any group are dropped; the rest sort by name ascending.
func (s *MaterialChoiceService) GetRoomsWithMaterialChoices(ctx context.Context, apartmentID string) ([]domain.RoomType, error) {
	rows, err := s.repo.GetChoiceTreeRows(ctx, apartmentID)
	if err != nil {
		s.logger.Error("Failed to fetch choice tree rows",
			zap.String("apartment_id", apartmentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get material choices: %w", err)
	}
	groups := buildChoiceGroups(rows)

	roomTypes := s.RoomTypes(apartmentID)
	kept := make([]domain.RoomType, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		for _, group := range groups {
			if group.RoomTypeID == roomType.RoomTypeID {
				roomType.MaterialOptionGroups = append(roomType.MaterialOptionGroups, group)
			}
		}
		if len(roomType.MaterialOptionGroups) > 0 {
			kept = append(kept, roomType)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Name < kept[j].Name
	})
	return kept, nil
}

// SaveMaterialChoices inserts the submitted choices and then triggers the
// cancellation pass for the same apartment, detached from the caller:
// insert failures are returned, cancellation failures are only logged.
func (s *MaterialChoiceService) SaveMaterialChoices(ctx context.Context, apartmentID string, choices []domain.MaterialChoice) ([]string, error) {
	ids, err := s.repo.InsertChoices(ctx, apartmentID, choices, s.now())
	if err != nil {
		s.logger.Error("Failed to save material choices",
			zap.String("apartment_id", apartmentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save material choices: %w", err)
	}

	go func() {
		// Detached from the request context on purpose.
		if err := s.CancelPreviousChoices(context.Background(), apartmentID, ids); err != nil {
			s.logger.Error("Cancellation pass failed",
				zap.String("apartment_id", apartmentID),
				zap.Error(err),
			)
		}
	}()

	return ids, nil
}

// CancelPreviousChoices cancels every non-cancelled choice of the
// apartment whose id is not in keepIDs. Concurrent submissions for the
// same apartment can race here; the last pass wins.
func (s *MaterialChoiceService) CancelPreviousChoices(ctx context.Context, apartmentID string, keepIDs []string) error {
	active, err := s.repo.GetActiveChoiceIDs(ctx, apartmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch active choices: %w", err)
	}

	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = struct{}{}
	}

	var toCancel []string
	for _, id := range active {
		if _, ok := keep[id]; !ok {
			toCancel = append(toCancel, id)
		}
	}
	if len(toCancel) == 0 {
		return nil
	}

	if err := s.repo.CancelChoices(ctx, toCancel, s.now()); err != nil {
		return fmt.Errorf("failed to cancel previous choices: %w", err)
	}
	return nil
}

// GetApartmentChoiceStatuses returns the submitted-choice counts of all
// apartments eligible for material choice.
func (s *MaterialChoiceService) GetApartmentChoiceStatuses(ctx context.Context) ([]domain.ApartmentChoiceStatus, error) {
	statuses, err := s.repo.GetApartmentChoiceStatuses(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch apartment choice statuses", zap.Error(err))
		return nil, fmt.Errorf("failed to get apartment choice statuses: %w", err)
	}
	return statuses, nil
}

// buildOptionGroups folds option/image rows into group -> option -> image
// trees and sorts options by caption within each group.
func buildOptionGroups(rows []repository.MaterialOptionRow) []*domain.MaterialOptionGroup {
	builder := rowtree.Builder[repository.MaterialOptionRow]{
		Levels: []rowtree.Level[repository.MaterialOptionRow]{
			{
				Key: func(r repository.MaterialOptionRow) string { return r.GroupID },
				Start: func(r repository.MaterialOptionRow) any {
					return &domain.MaterialOptionGroup{
						MaterialOptionGroupID: r.GroupID,
						RoomTypeID:            r.GroupRoomTypeID,
						Name:                  r.GroupName,
						ActionName:            r.GroupActionName,
						Type:                  r.GroupType,
					}
				},
			},
			{
				Key: func(r repository.MaterialOptionRow) string { return r.OptionID },
				Start: func(r repository.MaterialOptionRow) any {
					return &domain.MaterialOption{
						MaterialOptionID:        r.OptionID,
						Caption:                 r.Caption,
						ShortDescription:        r.ShortDescription,
						Description:             r.Description,
						CoverImage:              r.CoverImage,
						MaterialOptionGroupName: r.GroupName,
						Images:                  []string{},
					}
				},
				Attach: func(parent, node any) {
					group := parent.(*domain.MaterialOptionGroup)
					group.MaterialOptions = append(group.MaterialOptions, node.(*domain.MaterialOption))
				},
			},
		},
		Leaf: func(node any, r repository.MaterialOptionRow) {
			if r.Image != "" {
				option := node.(*domain.MaterialOption)
				option.Images = append(option.Images, r.Image)
			}
		},
	}

	roots := builder.Build(rows)
	groups := make([]*domain.MaterialOptionGroup, 0, len(roots))
	for _, root := range roots {
		group := root.(*domain.MaterialOptionGroup)
		sort.SliceStable(group.MaterialOptions, func(i, j int) bool {
			return group.MaterialOptions[i].Caption < group.MaterialOptions[j].Caption
		})
		groups = append(groups, group)
	}
	return groups
}

// choiceOption carries the owning group alongside an option so choices
// can be hoisted onto the group while grouping three levels deep.
type choiceOption struct {
	option *domain.MaterialOption
	group  *domain.MaterialOptionGroup
}

// buildChoiceGroups folds group/option/choice rows into groups owning
// both their options and the choices selected within them.
func buildChoiceGroups(rows []repository.ChoiceTreeRow) []*domain.MaterialOptionGroup {
	builder := rowtree.Builder[repository.ChoiceTreeRow]{
		Levels: []rowtree.Level[repository.ChoiceTreeRow]{
			{
				Key: func(r repository.ChoiceTreeRow) string { return r.GroupID },
				Start: func(r repository.ChoiceTreeRow) any {
					return &domain.MaterialOptionGroup{
						MaterialOptionGroupID: r.GroupID,
						RoomTypeID:            r.GroupRoomTypeID,
						Name:                  r.GroupName,
						ActionName:            r.GroupActionName,
						Type:                  r.GroupType,
					}
				},
			},
			{
				Key: func(r repository.ChoiceTreeRow) string { return r.OptionID },
				Start: func(r repository.ChoiceTreeRow) any {
					return &choiceOption{
						option: &domain.MaterialOption{
							MaterialOptionID:        r.OptionID,
							Caption:                 r.Caption,
							ShortDescription:        r.ShortDescription,
							Description:             r.Description,
							CoverImage:              r.CoverImage,
							MaterialOptionGroupName: r.GroupName,
							Images:                  []string{},
						},
					}
				},
				Attach: func(parent, node any) {
					group := parent.(*domain.MaterialOptionGroup)
					wrapped := node.(*choiceOption)
					wrapped.group = group
					group.MaterialOptions = append(group.MaterialOptions, wrapped.option)
				},
			},
			{
				Key: func(r repository.ChoiceTreeRow) string { return r.ChoiceID },
				Start: func(r repository.ChoiceTreeRow) any {
					return &domain.MaterialChoice{
						MaterialChoiceID:      r.ChoiceID,
						MaterialOptionID:      r.OptionID,
						MaterialOptionGroupID: r.GroupID,
						ApartmentID:           r.ApartmentID,
						RoomTypeID:            r.GroupRoomTypeID,
						Status:                r.Status,
						DateOfSubmission:      r.DateOfSubmission,
					}
				},
				Attach: func(parent, node any) {
					wrapped := parent.(*choiceOption)
					wrapped.group.MaterialChoices = append(wrapped.group.MaterialChoices, node.(*domain.MaterialChoice))
				},
			},
		},
	}

	roots := builder.Build(rows)
	groups := make([]*domain.MaterialOptionGroup, 0, len(roots))
	for _, root := range roots {
		groups = append(groups, root.(*domain.MaterialOptionGroup))
	}
	return groups
}
