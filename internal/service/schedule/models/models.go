package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Response модели

// EventScheduleResponse расписание события: опции и правила доступности
type EventScheduleResponse struct {
	EventSlug   string           `json:"eventSlug"`
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Timezone    string           `json:"timezone"`
	Options     []OptionResponse `json:"options"`
	GlobalRules []RuleResponse   `json:"globalRules"`
	EventRules  []RuleResponse   `json:"eventRules"`
}

// OptionResponse бронируемая опция события
type OptionResponse struct {
	ID              int64 `json:"id"`
	DurationMinutes int   `json:"durationMinutes"`
	Capacity        int   `json:"capacity"`
}

// RuleResponse правило доступности
type RuleResponse struct {
	ID         int64   `json:"id"`
	Weekday    int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	ValidFrom  *string `json:"validFrom,omitempty"`
	ValidUntil *string `json:"validUntil,omitempty"`
	IsActive   bool    `json:"isActive"`
}

// FromDomainOption конвертирует domain.EventOption в OptionResponse
func FromDomainOption(o *domain.EventOption) OptionResponse {
	return OptionResponse{
		ID:              o.ID,
		DurationMinutes: o.DurationMinutes,
		Capacity:        o.Capacity,
	}
}

// FromDomainRule конвертирует domain.AvailabilityRule в RuleResponse
func FromDomainRule(r *domain.AvailabilityRule) RuleResponse {
	resp := RuleResponse{
		ID:        r.ID,
		Weekday:   int(r.Weekday),
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		IsActive:  r.IsActive,
	}
	if r.ValidFrom != nil {
		s := r.ValidFrom.Format(domain.DateFormat)
		resp.ValidFrom = &s
	}
	if r.ValidUntil != nil {
		s := r.ValidUntil.Format(domain.DateFormat)
		resp.ValidUntil = &s
	}
	return resp
}
