package schedule

import (
	"context"
	"errors"
	"fmt"

	eventRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/event"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// Service сервис расписания события
//
// Отдаёт сырое расписание владельца: опции события и правила
// доступности, разделённые на глобальные и event-scoped. Слоты
// здесь не генерируются - это задача движка доступности
type Service struct {
	eventRepo EventRepository
	ruleRepo  RuleRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(eventRepo EventRepository, ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		ruleRepo:  ruleRepo,
		logger:    logger,
	}
}

// GetEventSchedule получает расписание события по slug
func (s *Service) GetEventSchedule(ctx context.Context, eventSlug string) (*models.EventScheduleResponse, error) {
	s.logger.Info("GetEventSchedule: fetching schedule for event=%s", eventSlug)

	if eventSlug == "" {
		return nil, fmt.Errorf("%w: eventSlug is required", ErrInvalidInput)
	}

	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetEventSchedule: event slug=%s not found", eventSlug)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetEventSchedule: repository error for event=%s: %v", eventSlug, err)
		return nil, fmt.Errorf("%w: GetEventSchedule - repository error: %v", ErrInternal, err)
	}

	options, err := s.eventRepo.ListOptionsByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("GetEventSchedule: failed to list options for event id=%d: %v", event.ID, err)
		return nil, fmt.Errorf("%w: GetEventSchedule - failed to list options: %v", ErrInternal, err)
	}

	rules, err := s.ruleRepo.GetAllByOwner(ctx, event.Owner)
	if err != nil {
		s.logger.Error("GetEventSchedule: failed to get rules for owner=%s: %v", event.Owner, err)
		return nil, fmt.Errorf("%w: GetEventSchedule - failed to get rules: %v", ErrInternal, err)
	}

	resp := &models.EventScheduleResponse{
		EventSlug:   event.Slug,
		Title:       event.Title,
		Description: event.Description,
		Timezone:    event.Timezone,
		Options:     make([]models.OptionResponse, 0, len(options)),
		GlobalRules: []models.RuleResponse{},
		EventRules:  []models.RuleResponse{},
	}

	for _, o := range options {
		resp.Options = append(resp.Options, models.FromDomainOption(o))
	}

	// Правила других событий владельца в расписание не входят
	for _, r := range rules {
		switch {
		case r.IsGlobal():
			resp.GlobalRules = append(resp.GlobalRules, models.FromDomainRule(r))
		case r.IsScopedTo(event.ID):
			resp.EventRules = append(resp.EventRules, models.FromDomainRule(r))
		}
	}

	s.logger.Info("GetEventSchedule: event=%s has %d options, %d global rules, %d event rules",
		event.Slug, len(resp.Options), len(resp.GlobalRules), len(resp.EventRules))

	return resp, nil
}
