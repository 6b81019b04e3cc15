package navigate

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в Identity Provider
	ErrUserNotFound = errors.New("navigate: user not found")

	// ErrSlotNotFound возвращается, когда запрошенный слот не существует
	// на указанном уровне
	ErrSlotNotFound = errors.New("navigate: slot not found on this level")

	// ErrNoRoute возвращается, когда маршрут к цели построить нельзя
	// (несвязный граф или цель не разрешается). Пользовательский исход
	// "маршрут не найден", а не сбой системы.
	ErrNoRoute = errors.New("navigate: no route to target")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("navigate: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("navigate: internal error")
)
