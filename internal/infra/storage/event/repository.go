package event

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения событий и их опций
// События управляются админским инструментарием, сервис доступности их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlug получает событие по URL slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"title",
		"description",
		"user_id",
		"organization_id",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("events").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanEvent(executor.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"title",
		"description",
		"user_id",
		"organization_id",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanEvent(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// scanEvent сканирует строку события и собирает владельца из nullable колонок
func (r *Repository) scanEvent(row *sql.Row, method string) (*domain.Event, error) {
	var event domain.Event
	var userID, organizationID *int64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Slug,
		&event.Title,
		&event.Description,
		&userID,
		&organizationID,
		&event.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan event: %v", ErrScanRow, method, err)
	}

	// Ровно один из user_id/organization_id должен быть заполнен (CHECK в схеме)
	owner, err := domain.NewOwnerRef(userID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - owner columns: %v", ErrScanRow, method, err)
	}
	event.Owner = owner

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}

// GetOption получает опцию события по ID вместе с длительностью из durations
func (r *Repository) GetOption(ctx context.Context, optionID int64) (*domain.EventOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"o.id",
		"o.event_id",
		"o.duration_id",
		"d.duration_minutes",
		"o.capacity",
		"o.created_at",
		"o.updated_at",
	).
		From("event_options o").
		Join("durations d ON d.id = o.duration_id").
		Where(squirrel.Eq{"o.id": optionID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOption - build select query: %v", ErrBuildQuery, err)
	}

	var option domain.EventOption
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&option.ID,
		&option.EventID,
		&option.DurationID,
		&option.DurationMinutes,
		&option.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOption - scan option: %v", ErrScanRow, err)
	}

	option.CreatedAt = createdAt.Time
	option.UpdatedAt = updatedAt.Time

	return &option, nil
}

// ListOptionsByEvent получает все опции события, отсортированные по длительности
func (r *Repository) ListOptionsByEvent(ctx context.Context, eventID int64) ([]*domain.EventOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"o.id",
		"o.event_id",
		"o.duration_id",
		"d.duration_minutes",
		"o.capacity",
		"o.created_at",
		"o.updated_at",
	).
		From("event_options o").
		Join("durations d ON d.id = o.duration_id").
		Where(squirrel.Eq{"o.event_id": eventID}).
		OrderBy("d.duration_minutes ASC, o.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOptionsByEvent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOptionsByEvent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	options := make([]*domain.EventOption, 0)

	for rows.Next() {
		var option domain.EventOption
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&option.ID,
			&option.EventID,
			&option.DurationID,
			&option.DurationMinutes,
			&option.Capacity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOptionsByEvent - scan row: %v", ErrScanRow, err)
		}

		option.CreatedAt = createdAt.Time
		option.UpdatedAt = updatedAt.Time

		options = append(options, &option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOptionsByEvent - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}
