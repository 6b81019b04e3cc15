package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирования для
	// (слот, дата, пользователь) не существует. Повторная отмена
	// возвращает эту же ошибку, а не молчаливый успех.
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
