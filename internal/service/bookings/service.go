package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	eventRepo   EventRepository
	cache       CacheInvalidator // nil, если кэш отключен
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	eventRepo EventRepository,
	cache CacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// UpdateStatus переводит бронирование в новый статус
// Отменённое бронирование терминально, его статус менять нельзя.
// Переходы completed и no_show меняют учёт занятости слота, поэтому
// закэшированные слоты события на дату бронирования инвалидируются
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Warn("UpdateStatus: booking id=%d is cancelled, status cannot be updated", bookingID)
		return ErrCannotUpdateStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.invalidateSlots(ctx, booking)

	s.logger.Info("UpdateStatus: booking id=%d moved to status=%s", bookingID, status)
	return nil
}

// Cancel отменяет бронирование
// Отменить можно только бронирование в статусе pending или confirmed.
// Отмена освобождает место в слоте, поэтому закэшированные слоты
// события на дату бронирования инвалидируются
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.invalidateSlots(ctx, booking)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// invalidateSlots инвалидирует закэшированные слоты события на дату бронирования
// Отмена освобождает место, устаревший кэш показал бы слот занятым.
// Ошибка поиска опции не отменяет уже выполненную отмену - записи
// кэша в любом случае истекут по max_age
func (s *Service) invalidateSlots(ctx context.Context, booking *domain.Booking) {
	if s.cache == nil {
		return
	}

	option, err := s.eventRepo.GetOption(ctx, booking.EventOptionID)
	if err != nil {
		s.logger.Warn("invalidateSlots: failed to get option id=%d: %v", booking.EventOptionID, err)
		return
	}

	s.cache.InvalidateEventDate(option.EventID, booking.Date)
}
