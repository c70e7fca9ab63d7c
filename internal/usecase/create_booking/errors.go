package create_booking

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("create_booking: event not found")

	// ErrOptionNotFound возвращается, когда опция события не найдена
	// или принадлежит другому событию
	ErrOptionNotFound = errors.New("create_booking: event option not found")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не является
	// началом бронируемого слота на эту дату (вне окон доступности,
	// не кратно длительности или уже прошло)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotCapacityExceeded возвращается, когда все места слота заняты
	// Это ошибка проигравшего в гонке за последнее место
	ErrSlotCapacityExceeded = errors.New("create_booking: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
