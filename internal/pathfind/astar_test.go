package pathfind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavDaBoss/smartparkv5/internal/floorplan"
)

func loadLayout(t *testing.T, plan string) *floorplan.Layout {
	t.Helper()
	path := filepath.Join(t.TempDir(), "floorplan.toml")
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	store, err := floorplan.Load(path)
	require.NoError(t, err)

	layout, err := store.Layout("mall1", 1)
	require.NoError(t, err)
	return layout
}

// Две дороги к цели: через A (3 + 5) и через C (2 + 2).
// Оптимальный маршрут идет через C.
const forkedPlan = `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "ENTRY"

[[layout.node]]
id = "ENTRY"
x = 0.0
y = 0.0
neighbors = ["A", "C"]

[[layout.node]]
id = "A"
x = 3.0
y = 0.0
neighbors = ["ENTRY", "B"]

[[layout.node]]
id = "C"
x = 0.0
y = 2.0
neighbors = ["ENTRY", "B"]

[[layout.node]]
id = "B"
x = 0.0
y = 4.0
neighbors = ["A", "C"]
`

func TestRoute_PicksCheapestPath(t *testing.T) {
	layout := loadLayout(t, forkedPlan)

	points, cost, err := Route(layout, "ENTRY", "B")
	require.NoError(t, err)

	require.Len(t, points, 3)
	assert.Equal(t, "ENTRY", points[0].NodeID)
	assert.Equal(t, "C", points[1].NodeID)
	assert.Equal(t, "B", points[2].NodeID)
	assert.InDelta(t, 4.0, cost, 1e-9)
}

func TestRoute_PointsCarryCoordinates(t *testing.T) {
	layout := loadLayout(t, forkedPlan)

	points, _, err := Route(layout, "ENTRY", "B")
	require.NoError(t, err)

	assert.Equal(t, 0.0, points[1].X)
	assert.Equal(t, 2.0, points[1].Y)
}

func TestRoute_StartEqualsGoal(t *testing.T) {
	layout := loadLayout(t, forkedPlan)

	points, cost, err := Route(layout, "ENTRY", "ENTRY")
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.Equal(t, "ENTRY", points[0].NodeID)
	assert.Zero(t, cost)
}

func TestRoute_GoalMissing(t *testing.T) {
	layout := loadLayout(t, forkedPlan)

	_, _, err := Route(layout, "ENTRY", "GHOST")
	assert.ErrorIs(t, err, ErrTargetUnreachable)
}

func TestRoute_StartMissing(t *testing.T) {
	layout := loadLayout(t, forkedPlan)

	_, _, err := Route(layout, "GHOST", "B")
	assert.ErrorIs(t, err, floorplan.ErrNodeNotFound)
}

// Квадрат с двумя маршрутами одинаковой стоимости: выбор должен быть
// стабильным от запуска к запуску.
const diamondPlan = `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "ENTRY"

[[layout.node]]
id = "ENTRY"
x = 0.0
y = 0.0
neighbors = ["P", "Q"]

[[layout.node]]
id = "P"
x = 0.0
y = 2.0
neighbors = ["ENTRY", "GOAL"]

[[layout.node]]
id = "Q"
x = 2.0
y = 0.0
neighbors = ["ENTRY", "GOAL"]

[[layout.node]]
id = "GOAL"
x = 2.0
y = 2.0
neighbors = ["P", "Q"]
`

func TestRoute_DeterministicOnTies(t *testing.T) {
	layout := loadLayout(t, diamondPlan)

	first, firstCost, err := Route(layout, "ENTRY", "GOAL")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, firstCost, 1e-9)

	for i := 0; i < 20; i++ {
		points, cost, err := Route(layout, "ENTRY", "GOAL")
		require.NoError(t, err)
		assert.Equal(t, first, points)
		assert.Equal(t, firstCost, cost)
	}
}

// Маршрут на типовой схеме уровня: въезд, основной проезд,
// подъездной узел, слот.
const mallPlan = `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "ENTRY"

[[layout.node]]
id = "ENTRY"
x = 950.0
y = 200.0
neighbors = ["PATH_MAIN"]

[[layout.node]]
id = "PATH_MAIN"
x = 500.0
y = 200.0
neighbors = ["ENTRY", "S1_NODE"]

[[layout.node]]
id = "S1_NODE"
x = 200.0
y = 200.0
neighbors = ["PATH_MAIN", "S1"]

[[layout.node]]
id = "S1"
x = 200.0
y = 100.0
neighbors = ["S1_NODE"]
`

func TestRoute_MallLayout(t *testing.T) {
	layout := loadLayout(t, mallPlan)

	points, cost, err := Route(layout, "ENTRY", "S1")
	require.NoError(t, err)

	ids := make([]string, 0, len(points))
	for _, p := range points {
		ids = append(ids, p.NodeID)
	}
	assert.Equal(t, []string{"ENTRY", "PATH_MAIN", "S1_NODE", "S1"}, ids)
	assert.InDelta(t, 850.0, cost, 1e-9)
}

func TestCost(t *testing.T) {
	layout := loadLayout(t, forkedPlan)

	cost, err := Cost(layout, "ENTRY", "B")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cost, 1e-9)
}
