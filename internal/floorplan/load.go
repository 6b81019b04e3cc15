package floorplan

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

// fileSchema структура файла floorplan.toml
type fileSchema struct {
	Layouts []layoutSchema `toml:"layout"`
}

type layoutSchema struct {
	MallID    string       `toml:"mall_id"`
	LevelID   int          `toml:"level_id"`
	EntryNode string       `toml:"entry_node"`
	Nodes     []nodeSchema `toml:"node"`
}

type nodeSchema struct {
	ID        string   `toml:"id"`
	X         float64  `toml:"x"`
	Y         float64  `toml:"y"`
	Neighbors []string `toml:"neighbors"`
}

// Load загружает и валидирует схемы уровней из TOML файла.
// Результат неизменяем и живет весь срок работы процесса.
func Load(path string) (*Store, error) {
	var schema fileSchema
	if _, err := toml.DecodeFile(path, &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidLayout, path, err)
	}

	if len(schema.Layouts) == 0 {
		return nil, fmt.Errorf("%w: no layouts defined in %s", ErrInvalidLayout, path)
	}

	store := &Store{layouts: make(map[layoutKey]*Layout, len(schema.Layouts))}

	for _, ls := range schema.Layouts {
		layout, err := buildLayout(ls)
		if err != nil {
			return nil, err
		}

		key := layoutKey{mallID: layout.MallID, levelID: layout.LevelID}
		if _, exists := store.layouts[key]; exists {
			return nil, fmt.Errorf("%w: duplicate layout %s-L%d", ErrInvalidLayout, layout.MallID, layout.LevelID)
		}
		store.layouts[key] = layout
	}

	return store, nil
}

// buildLayout собирает и валидирует одну схему уровня
func buildLayout(ls layoutSchema) (*Layout, error) {
	if ls.MallID == "" || ls.LevelID <= 0 {
		return nil, fmt.Errorf("%w: layout requires mall_id and positive level_id", ErrInvalidLayout)
	}

	layout := &Layout{
		MallID:      ls.MallID,
		LevelID:     ls.LevelID,
		EntryNodeID: ls.EntryNode,
		nodes:       make(map[string]*Node, len(ls.Nodes)),
	}

	for _, ns := range ls.Nodes {
		if ns.ID == "" {
			return nil, fmt.Errorf("%w: node without id in layout %s-L%d", ErrInvalidLayout, ls.MallID, ls.LevelID)
		}
		if _, exists := layout.nodes[ns.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate node %q in layout %s-L%d", ErrInvalidLayout, ns.ID, ls.MallID, ls.LevelID)
		}
		layout.nodes[ns.ID] = &Node{
			ID:        ns.ID,
			Point:     Point{X: ns.X, Y: ns.Y},
			Neighbors: ns.Neighbors,
		}
	}

	if err := validateLayout(layout); err != nil {
		return nil, err
	}

	return layout, nil
}

// validateLayout проверяет инварианты графа:
// - точка входа существует
// - все соседи разрешаются в узлы
// - ребра симметричны (граф неориентированный)
// - каждый узел достижим из точки входа
func validateLayout(l *Layout) error {
	if _, ok := l.nodes[l.EntryNodeID]; !ok {
		return fmt.Errorf("%w: entry node %q missing in layout %s-L%d", ErrInvalidLayout, l.EntryNodeID, l.MallID, l.LevelID)
	}

	for id, node := range l.nodes {
		for _, neighborID := range node.Neighbors {
			neighbor, ok := l.nodes[neighborID]
			if !ok {
				return fmt.Errorf("%w: node %q references missing neighbor %q in layout %s-L%d",
					ErrInvalidLayout, id, neighborID, l.MallID, l.LevelID)
			}
			if !containsString(neighbor.Neighbors, id) {
				return fmt.Errorf("%w: edge %q->%q is not symmetric in layout %s-L%d",
					ErrInvalidLayout, id, neighborID, l.MallID, l.LevelID)
			}
		}
	}

	// BFS от точки входа
	visited := map[string]bool{l.EntryNodeID: true}
	queue := []string{l.EntryNodeID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighborID := range l.nodes[current].Neighbors {
			if !visited[neighborID] {
				visited[neighborID] = true
				queue = append(queue, neighborID)
			}
		}
	}

	for id := range l.nodes {
		if !visited[id] {
			return fmt.Errorf("%w: node %q unreachable from entry in layout %s-L%d",
				ErrInvalidLayout, id, l.MallID, l.LevelID)
		}
	}

	return nil
}

// ValidateSlots проверяет, что каждый слот разрешается в узлы своего уровня
// и что anchor-узел соседствует с узлом слота. Вызывается при старте, после
// загрузки слотов из реестра.
func (s *Store) ValidateSlots(slots []domain.Slot) error {
	for _, slot := range slots {
		layout, err := s.Layout(slot.MallID, slot.LevelID)
		if err != nil {
			return fmt.Errorf("%w: slot %s: %v", ErrSlotNotMapped, slot.ID, err)
		}

		if _, err := layout.Node(slot.GraphNodeID); err != nil {
			return fmt.Errorf("%w: slot %s: graph node %q: %v", ErrSlotNotMapped, slot.ID, slot.GraphNodeID, err)
		}
		if _, err := layout.Node(slot.AnchorNodeID); err != nil {
			return fmt.Errorf("%w: slot %s: anchor node %q: %v", ErrSlotNotMapped, slot.ID, slot.AnchorNodeID, err)
		}

		if !layout.HasEdge(slot.AnchorNodeID, slot.GraphNodeID) {
			return fmt.Errorf("%w: slot %s: anchor %q is not adjacent to node %q",
				ErrSlotNotMapped, slot.ID, slot.AnchorNodeID, slot.GraphNodeID)
		}
	}
	return nil
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
