package pathfind

import (
	"container/heap"
	"fmt"

	"github.com/KeshavDaBoss/smartparkv5/internal/floorplan"
)

// PathPoint одна точка построенного маршрута
type PathPoint struct {
	NodeID string
	X      float64
	Y      float64
}

// Route строит кратчайший маршрут между двумя узлами схемы уровня.
//
// Поиск A*: g(n) это накопленная стоимость пути, h(n) евклидово расстояние
// до цели. Эвристика допустима, потому что стоимость каждого ребра равна
// евклидову расстоянию между его концами, поэтому результат оптимален.
// При равной оценке f приоритет у узла, открытого раньше, поэтому результат
// детерминирован для одинаковых входов.
//
// Возвращает упорядоченный список точек от старта до цели включительно
// и суммарную стоимость маршрута. Функция чистая: граф не изменяется.
func Route(layout *floorplan.Layout, startID, goalID string) ([]PathPoint, float64, error) {
	start, err := layout.Node(startID)
	if err != nil {
		return nil, 0, err
	}

	goal, err := layout.Node(goalID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: goal %q does not resolve", ErrTargetUnreachable, goalID)
	}

	open := &openSet{}
	heap.Init(open)

	gScore := map[string]float64{startID: 0}
	cameFrom := map[string]string{}
	closed := map[string]bool{}

	seq := 0
	heap.Push(open, frontierNode{
		id:  startID,
		f:   start.Point.DistanceTo(goal.Point),
		seq: seq,
	})

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierNode)
		if closed[current.id] {
			continue
		}
		closed[current.id] = true

		if current.id == goalID {
			return reconstruct(layout, cameFrom, goalID), gScore[goalID], nil
		}

		currentNode, err := layout.Node(current.id)
		if err != nil {
			return nil, 0, err
		}

		for _, neighborID := range currentNode.Neighbors {
			if closed[neighborID] {
				continue
			}

			neighbor, err := layout.Node(neighborID)
			if err != nil {
				return nil, 0, err
			}

			tentative := gScore[current.id] + currentNode.Point.DistanceTo(neighbor.Point)
			if known, ok := gScore[neighborID]; ok && tentative >= known {
				continue
			}

			gScore[neighborID] = tentative
			cameFrom[neighborID] = current.id

			seq++
			heap.Push(open, frontierNode{
				id:  neighborID,
				f:   tentative + neighbor.Point.DistanceTo(goal.Point),
				seq: seq,
			})
		}
	}

	return nil, 0, fmt.Errorf("%w: %q -> %q", ErrNoPath, startID, goalID)
}

// Cost возвращает только стоимость кратчайшего маршрута
func Cost(layout *floorplan.Layout, startID, goalID string) (float64, error) {
	_, cost, err := Route(layout, startID, goalID)
	return cost, err
}

// reconstruct восстанавливает маршрут от цели к старту по ссылкам cameFrom
func reconstruct(layout *floorplan.Layout, cameFrom map[string]string, goalID string) []PathPoint {
	ids := []string{goalID}
	current := goalID
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		ids = append(ids, prev)
		current = prev
	}

	points := make([]PathPoint, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		node, _ := layout.Node(ids[i])
		points = append(points, PathPoint{NodeID: node.ID, X: node.Point.X, Y: node.Point.Y})
	}
	return points
}

// frontierNode элемент очереди с приоритетом открытого множества
type frontierNode struct {
	id  string
	f   float64
	seq int
}

type openSet []frontierNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	// При равной оценке приоритет у узла, открытого раньше
	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x interface{}) {
	*s = append(*s, x.(frontierNode))
}

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]
	return item
}
