package rule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения правил доступности
// Правила создаются и редактируются админским инструментарием,
// движок доступности их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ruleColumns колонки таблицы availability_rules для SELECT запросов
var ruleColumns = []string{
	"id",
	"user_id",
	"organization_id",
	"event_id",
	"weekday",
	"start_time",
	"end_time",
	"valid_from",
	"valid_until",
	"is_active",
	"created_at",
	"updated_at",
}

// ownerCondition возвращает условие фильтрации по владельцу
func ownerCondition(owner domain.OwnerRef) squirrel.Eq {
	if owner.IsUser() {
		return squirrel.Eq{"user_id": owner.ID}
	}
	return squirrel.Eq{"organization_id": owner.ID}
}

// GetActiveForDate получает активные правила владельца на день недели,
// чьё окно действия [valid_from, valid_until] покрывает дату
// (NULL границы трактуются как неограниченные)
// Возвращает и глобальные, и event-scoped правила - разделение по
// приоритету выполняет резолвер
func (r *Repository) GetActiveForDate(ctx context.Context, owner domain.OwnerRef, weekday time.Weekday, date time.Time) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := date.Format(domain.DateFormat)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(ownerCondition(owner)).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		Where(squirrel.Or{
			squirrel.Eq{"valid_from": nil},
			squirrel.LtOrEq{"valid_from": day},
		}).
		Where(squirrel.Or{
			squirrel.Eq{"valid_until": nil},
			squirrel.GtOrEq{"valid_until": day},
		}).
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows, "GetActiveForDate")
}

// GetAllByOwner получает все правила владельца (включая неактивные)
// Используется для отображения недельного расписания события
func (r *Repository) GetAllByOwner(ctx context.Context, owner domain.OwnerRef) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(ownerCondition(owner)).
		OrderBy("weekday ASC, start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows, "GetAllByOwner")
}

// scanRules сканирует результаты запроса в слайс правил
func (r *Repository) scanRules(rows *sql.Rows, method string) ([]*domain.AvailabilityRule, error) {
	rules := make([]*domain.AvailabilityRule, 0)

	for rows.Next() {
		var rule domain.AvailabilityRule
		var userID, organizationID *int64
		var weekday int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&userID,
			&organizationID,
			&rule.EventID,
			&weekday,
			&rule.StartTime,
			&rule.EndTime,
			&rule.ValidFrom,
			&rule.ValidUntil,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		owner, err := domain.NewOwnerRef(userID, organizationID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - owner columns: %v", ErrScanRow, method, err)
		}
		rule.Owner = owner
		rule.Weekday = time.Weekday(weekday)

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return rules, nil
}
