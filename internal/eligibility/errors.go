package eligibility

import "errors"

// Причины отказа в доступе к слоту. Ожидаемые, пользовательские исходы:
// обработчики транслируют их в сообщения без повторных попыток.
var (
	// ErrReservedForDisabled слот зарезервирован для пользователей с инвалидностью
	ErrReservedForDisabled = errors.New("eligibility: slot is reserved for disabled users")

	// ErrReservedForElderly слот зарезервирован для пожилых пользователей
	ErrReservedForElderly = errors.New("eligibility: slot is reserved for elderly users")

	// ErrNotOnlineBookable общий слот не входит в список доступных для онлайн-бронирования
	ErrNotOnlineBookable = errors.New("eligibility: slot is not online-bookable")

	// ErrSlotOccupied слот физически занят
	ErrSlotOccupied = errors.New("eligibility: slot is occupied")
)
