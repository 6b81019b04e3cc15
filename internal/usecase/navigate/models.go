package navigate

import (
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/pathfind"
)

// Outcome исход выбора цели навигации.
// Отсутствие свободных мест считается нормальным исходом, а не ошибкой.
type Outcome string

const (
	// OutcomeRouted маршрут построен
	OutcomeRouted Outcome = "routed"

	// OutcomeOtherLevel на этом уровне мест нет, но есть на другом.
	// Маршрут между уровнями не строится, возвращается только подсказка уровня.
	OutcomeOtherLevel Outcome = "other_level"

	// OutcomeNoAvailability свободных подходящих мест нет во всем молле
	OutcomeNoAvailability Outcome = "none"
)

// Request модель запроса навигации
type Request struct {
	UserID  string
	MallID  string
	LevelID int
	Date    time.Time
	SlotID  *string // Явная цель (свое бронирование или выбранный слот); nil = выбрать ближайший
}

// TargetSlot выбранный целевой слот
type TargetSlot struct {
	ID         string
	SlotNumber int
	LevelID    int
}

// Response модель ответа навигации
type Response struct {
	Outcome Outcome

	// Заполнены при Outcome == OutcomeRouted
	Slot      *TargetSlot
	Points    []pathfind.PathPoint
	TotalCost float64

	// Заполнено при Outcome == OutcomeOtherLevel
	AvailableLevelID int
}
