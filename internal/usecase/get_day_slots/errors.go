package get_day_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (ошибка хранилища - транзиентная, вызывающая сторона может повторить запрос)
	ErrInternal = errors.New("get_day_slots: internal error")
)
