package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в Identity Provider
	ErrUserNotFound = errors.New("book_slot: user not found")

	// ErrInvalidDate возвращается, когда дата не попадает в окно бронирования
	// (поддерживаются только сегодня и завтра)
	ErrInvalidDate = errors.New("book_slot: date must be today or tomorrow")

	// ErrConflict возвращается, когда слот уже забронирован на эту дату
	// или физически занят. Ожидаемый исход гонки: вызывающему стоит
	// обновить список слотов, а не повторять тот же запрос.
	ErrConflict = errors.New("book_slot: slot is already taken for this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
