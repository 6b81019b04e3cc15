package floorplan

import (
	"fmt"
	"math"
)

// Point координата узла в локальной системе координат схемы уровня
type Point struct {
	X float64
	Y float64
}

// DistanceTo возвращает евклидово расстояние до другой точки
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Node навигационная точка схемы уровня.
// Ребра неориентированные: сосед всегда указывает обратно.
type Node struct {
	ID        string
	Point     Point
	Neighbors []string
}

// Layout неизменяемый граф проходов одного уровня одного молла
type Layout struct {
	MallID      string
	LevelID     int
	EntryNodeID string

	nodes map[string]*Node
}

// Node возвращает узел по id
func (l *Layout) Node(id string) (*Node, error) {
	node, ok := l.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q in layout %s-L%d", ErrNodeNotFound, id, l.MallID, l.LevelID)
	}
	return node, nil
}

// Neighbors возвращает идентификаторы соседних узлов
func (l *Layout) Neighbors(id string) ([]string, error) {
	node, err := l.Node(id)
	if err != nil {
		return nil, err
	}
	return node.Neighbors, nil
}

// HasEdge проверяет наличие ребра между двумя узлами
func (l *Layout) HasEdge(from, to string) bool {
	node, ok := l.nodes[from]
	if !ok {
		return false
	}
	for _, n := range node.Neighbors {
		if n == to {
			return true
		}
	}
	return false
}

type layoutKey struct {
	mallID  string
	levelID int
}

// Store неизменяемое хранилище схем уровней, загружается один раз при старте
type Store struct {
	layouts map[layoutKey]*Layout
}

// Layout возвращает схему уровня по паре (mall, level)
func (s *Store) Layout(mallID string, levelID int) (*Layout, error) {
	layout, ok := s.layouts[layoutKey{mallID: mallID, levelID: levelID}]
	if !ok {
		return nil, fmt.Errorf("%w: %s-L%d", ErrLayoutNotFound, mallID, levelID)
	}
	return layout, nil
}

// MallLevels возвращает отсортированный список уровней молла
func (s *Store) MallLevels(mallID string) []int {
	levels := make([]int, 0)
	for key := range s.layouts {
		if key.mallID == mallID {
			levels = append(levels, key.levelID)
		}
	}
	// Сортировка вставками: уровней единицы
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && levels[j] < levels[j-1]; j-- {
			levels[j], levels[j-1] = levels[j-1], levels[j]
		}
	}
	return levels
}
