package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе бронирования
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrCannotUpdateStatus возвращается при попытке сменить статус отменённого бронирования
	ErrCannotUpdateStatus = errors.New("booking status cannot be updated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
