package domain

// Date format constants
const (
	// DateFormat канонический формат даты бронирования: DDMMYYYY
	// (например, 05 марта 2025 -> "05032025")
	DateFormat = "02012006"
)

// Slot id layout constants
const (
	// MaxSlotNumber верхняя граница номера слота в пределах уровня
	MaxSlotNumber = 999
)
