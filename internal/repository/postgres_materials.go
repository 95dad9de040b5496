package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"property-info-api/internal/domain"
)

// PostgresMaterialsRepository queries the material choice tables.
type PostgresMaterialsRepository struct {
	db *sql.DB
}

func NewPostgresMaterialsRepository(db *sql.DB) *PostgresMaterialsRepository {
	return &PostgresMaterialsRepository{db: db}
}

var _ MaterialsRepository = (*PostgresMaterialsRepository)(nil)

// Ordering must match the grouping levels (group id, option id): the row
// grouper relies on contiguous keys.
const optionRowsQuery = `
	SELECT
		mog."MaterialOptionGroupId",
		mog."RoomType",
		mog."Name",
		mog."ActionName",
		mog."Type",
		mo."MaterialOptionId",
		mo."Caption",
		mo."ShortDescription",
		mo."Description",
		mo."CoverImage",
		moi."Image"
	FROM "MaterialOptionGroup" mog
	INNER JOIN "MaterialOption" mo
		ON mo."MaterialOptionGroupId" = mog."MaterialOptionGroupId"
	LEFT JOIN "MaterialOptionImage" moi
		ON moi."MaterialOptionId" = mo."MaterialOptionId"
`

func (r *PostgresMaterialsRepository) GetOptionRowsByRoomType(ctx context.Context, roomTypeID string) ([]MaterialOptionRow, error) {
	query := optionRowsQuery + `
	WHERE mog."RoomType" = $1
	ORDER BY mo."MaterialOptionGroupId", mo."MaterialOptionId"
	`
	return r.queryOptionRows(ctx, query, roomTypeID)
}

func (r *PostgresMaterialsRepository) GetOptionRowsByOptionID(ctx context.Context, optionID string) ([]MaterialOptionRow, error) {
	query := optionRowsQuery + `
	WHERE mo."MaterialOptionId" = $1
	ORDER BY mo."MaterialOptionGroupId", mo."MaterialOptionId"
	`
	return r.queryOptionRows(ctx, query, optionID)
}

func (r *PostgresMaterialsRepository) queryOptionRows(ctx context.Context, query string, arg any) ([]MaterialOptionRow, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query material option rows: %w", err)
	}
	defer rows.Close()

	var out []MaterialOptionRow
	for rows.Next() {
		var row MaterialOptionRow
		var name, actionName, shortDesc, desc, coverImage, image sql.NullString

		err := rows.Scan(
			&row.GroupID,
			&row.GroupRoomTypeID,
			&name,
			&actionName,
			&row.GroupType,
			&row.OptionID,
			&row.Caption,
			&shortDesc,
			&desc,
			&coverImage,
			&image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material option row: %w", err)
		}

		row.GroupName = name.String
		row.GroupActionName = actionName.String
		row.ShortDescription = shortDesc.String
		row.Description = desc.String
		row.CoverImage = coverImage.String
		row.Image = image.String
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *PostgresMaterialsRepository) GetApartmentChoices(ctx context.Context, apartmentID string) ([]domain.ApartmentMaterialChoice, error) {
	query := `
	SELECT
		mc."MaterialChoiceId",
		mc."RoomType",
		mo."Caption",
		mo."ShortDescription",
		mc."ApartmentId"
	FROM "MaterialChoice" mc
	INNER JOIN "MaterialOption" mo
		ON mo."MaterialOptionId" = mc."MaterialOptionId"
	WHERE mc."ApartmentId" = $1 AND mc."Status" = $2
	ORDER BY mc."MaterialChoiceId"
	`

	rows, err := r.db.QueryContext(ctx, query, apartmentID, domain.ChoiceStatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("failed to query apartment choices: %w", err)
	}
	defer rows.Close()

	var out []domain.ApartmentMaterialChoice
	for rows.Next() {
		var c domain.ApartmentMaterialChoice
		var shortDesc sql.NullString

		if err := rows.Scan(&c.MaterialChoiceID, &c.RoomType, &c.Caption, &shortDesc, &c.ApartmentID); err != nil {
			return nil, fmt.Errorf("failed to scan apartment choice: %w", err)
		}
		c.ShortDescription = shortDesc.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresMaterialsRepository) GetChoiceTreeRows(ctx context.Context, apartmentID string) ([]ChoiceTreeRow, error) {
	query := `
	SELECT
		mog."MaterialOptionGroupId",
		mog."RoomType",
		mog."Name",
		mog."ActionName",
		mog."Type",
		mo."MaterialOptionId",
		mo."Caption",
		mo."ShortDescription",
		mo."Description",
		mo."CoverImage",
		mc."MaterialChoiceId",
		mc."ApartmentId",
		mc."Status",
		mc."DateOfSubmission"
	FROM "MaterialOptionGroup" mog
	INNER JOIN "MaterialOption" mo
		ON mo."MaterialOptionGroupId" = mog."MaterialOptionGroupId"
	INNER JOIN "MaterialChoice" mc
		ON mc."MaterialOptionId" = mo."MaterialOptionId"
	WHERE mc."ApartmentId" = $1 AND mc."Status" = $2
	ORDER BY mo."MaterialOptionGroupId", mo."MaterialOptionId", mc."MaterialChoiceId"
	`

	rows, err := r.db.QueryContext(ctx, query, apartmentID, domain.ChoiceStatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("failed to query choice tree rows: %w", err)
	}
	defer rows.Close()

	var out []ChoiceTreeRow
	for rows.Next() {
		var row ChoiceTreeRow
		var name, actionName, shortDesc, desc, coverImage sql.NullString
		var submitted sql.NullTime

		err := rows.Scan(
			&row.GroupID,
			&row.GroupRoomTypeID,
			&name,
			&actionName,
			&row.GroupType,
			&row.OptionID,
			&row.Caption,
			&shortDesc,
			&desc,
			&coverImage,
			&row.ChoiceID,
			&row.ApartmentID,
			&row.Status,
			&submitted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan choice tree row: %w", err)
		}

		row.GroupName = name.String
		row.GroupActionName = actionName.String
		row.ShortDescription = shortDesc.String
		row.Description = desc.String
		row.CoverImage = coverImage.String
		row.DateOfSubmission = submitted.Time
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *PostgresMaterialsRepository) InsertChoices(ctx context.Context, apartmentID string, choices []domain.MaterialChoice, submittedAt time.Time) ([]string, error) {
	query := `
	INSERT INTO "MaterialChoice"
		("MaterialChoiceId", "MaterialOptionId", "ApartmentId", "RoomType", "Status", "DateOfSubmission")
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	ids := make([]string, 0, len(choices))
	for _, choice := range choices {
		id := uuid.NewString()
		_, err := r.db.ExecContext(ctx, query,
			id,
			choice.MaterialOptionID,
			apartmentID,
			choice.RoomTypeID,
			domain.ChoiceStatusSubmitted,
			submittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert material choice: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *PostgresMaterialsRepository) GetActiveChoiceIDs(ctx context.Context, apartmentID string) ([]string, error) {
	query := `
	SELECT "MaterialChoiceId"
	FROM "MaterialChoice"
	WHERE "ApartmentId" = $1 AND "DateOfCancellation" IS NULL
	`

	rows, err := r.db.QueryContext(ctx, query, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active choices: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan choice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresMaterialsRepository) CancelChoices(ctx context.Context, choiceIDs []string, cancelledAt time.Time) error {
	if len(choiceIDs) == 0 {
		return nil
	}

	query := `
	UPDATE "MaterialChoice"
	SET "Status" = $1, "DateOfCancellation" = $2
	WHERE "MaterialChoiceId" = ANY($3)
	`

	_, err := r.db.ExecContext(ctx, query, domain.ChoiceStatusCancelled, cancelledAt, pq.Array(choiceIDs))
	if err != nil {
		return fmt.Errorf("failed to cancel material choices: %w", err)
	}
	return nil
}

func (r *PostgresMaterialsRepository) GetApartmentChoiceStatuses(ctx context.Context) ([]domain.ApartmentChoiceStatus, error) {
	// Right outer join against the project apartment registry so that
	// apartments without any submitted choice show up with count 0.
	// Project scoping was planned here but never wired through the route.
	query := `
	SELECT
		pa."ApartmentId",
		COUNT(mc."MaterialChoiceId") AS num_choices
	FROM "MaterialChoice" mc
	RIGHT JOIN "ProjectApartment" pa
		ON pa."ApartmentId" = mc."ApartmentId" AND mc."Status" = $1
	GROUP BY pa."ApartmentId"
	ORDER BY num_choices DESC, pa."ApartmentId" ASC
	`

	rows, err := r.db.QueryContext(ctx, query, domain.ChoiceStatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("failed to query apartment choice statuses: %w", err)
	}
	defer rows.Close()

	var out []domain.ApartmentChoiceStatus
	for rows.Next() {
		var s domain.ApartmentChoiceStatus
		if err := rows.Scan(&s.ApartmentID, &s.NumChoices); err != nil {
			return nil, fmt.Errorf("failed to scan apartment choice status: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
