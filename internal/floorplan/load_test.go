package floorplan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "floorplan.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validPlan = `
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

func TestLoad(t *testing.T) {
	store, err := Load(writePlan(t, validPlan))
	require.NoError(t, err)

	layout, err := store.Layout("mall1", 1)
	require.NoError(t, err)
	assert.Equal(t, "ENTRY", layout.EntryNodeID)

	node, err := layout.Node("PATH_MAIN")
	require.NoError(t, err)
	assert.Equal(t, 500.0, node.Point.X)

	assert.True(t, layout.HasEdge("S1_NODE", "S1"))
	assert.True(t, layout.HasEdge("S1", "S1_NODE"))
	assert.False(t, layout.HasEdge("ENTRY", "S1"))
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writePlan(t, ""))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLoad_EntryNodeMissing(t *testing.T) {
	plan := `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "GATE"

[[layout.node]]
id = "ENTRY"
x = 0.0
y = 0.0
neighbors = []
`
	_, err := Load(writePlan(t, plan))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLoad_DanglingNeighbor(t *testing.T) {
	plan := `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "ENTRY"

[[layout.node]]
id = "ENTRY"
x = 0.0
y = 0.0
neighbors = ["GHOST"]
`
	_, err := Load(writePlan(t, plan))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLoad_AsymmetricEdge(t *testing.T) {
	plan := `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "ENTRY"

[[layout.node]]
id = "ENTRY"
x = 0.0
y = 0.0
neighbors = ["A"]

[[layout.node]]
id = "A"
x = 10.0
y = 0.0
neighbors = []
`
	_, err := Load(writePlan(t, plan))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLoad_UnreachableNode(t *testing.T) {
	plan := `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "ENTRY"

[[layout.node]]
id = "ENTRY"
x = 0.0
y = 0.0
neighbors = ["A"]

[[layout.node]]
id = "A"
x = 10.0
y = 0.0
neighbors = ["ENTRY"]

[[layout.node]]
id = "ISLAND_1"
x = 100.0
y = 100.0
neighbors = ["ISLAND_2"]

[[layout.node]]
id = "ISLAND_2"
x = 110.0
y = 100.0
neighbors = ["ISLAND_1"]
`
	_, err := Load(writePlan(t, plan))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLoad_DuplicateLayout(t *testing.T) {
	plan := validPlan + validPlan
	_, err := Load(writePlan(t, plan))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestStore_LayoutNotFound(t *testing.T) {
	store, err := Load(writePlan(t, validPlan))
	require.NoError(t, err)

	_, err = store.Layout("mall9", 1)
	assert.ErrorIs(t, err, ErrLayoutNotFound)

	_, err = store.Layout("mall1", 3)
	assert.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestStore_MallLevels(t *testing.T) {
	plan := validPlan + `
[[layout]]
mall_id = "mall1"
level_id = 2
entry_node = "ENTRY"

[[layout.node]]
id = "ENTRY"
x = 0.0
y = 0.0
neighbors = []
`
	store, err := Load(writePlan(t, plan))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, store.MallLevels("mall1"))
	assert.Empty(t, store.MallLevels("mall2"))
}

func TestStore_ValidateSlots(t *testing.T) {
	store, err := Load(writePlan(t, validPlan))
	require.NoError(t, err)

	slots := []domain.Slot{
		{ID: "M1-L1-S1", MallID: "mall1", LevelID: 1, GraphNodeID: "S1", AnchorNodeID: "S1_NODE"},
	}
	assert.NoError(t, store.ValidateSlots(slots))
}

func TestStore_ValidateSlots_UnknownLayout(t *testing.T) {
	store, err := Load(writePlan(t, validPlan))
	require.NoError(t, err)

	slots := []domain.Slot{
		{ID: "M2-L1-S1", MallID: "mall2", LevelID: 1, GraphNodeID: "S1", AnchorNodeID: "S1_NODE"},
	}
	assert.ErrorIs(t, store.ValidateSlots(slots), ErrSlotNotMapped)
}

func TestStore_ValidateSlots_UnknownGraphNode(t *testing.T) {
	store, err := Load(writePlan(t, validPlan))
	require.NoError(t, err)

	slots := []domain.Slot{
		{ID: "M1-L1-S9", MallID: "mall1", LevelID: 1, GraphNodeID: "S9", AnchorNodeID: "S1_NODE"},
	}
	assert.ErrorIs(t, store.ValidateSlots(slots), ErrSlotNotMapped)
}

func TestStore_ValidateSlots_AnchorNotAdjacent(t *testing.T) {
	store, err := Load(writePlan(t, validPlan))
	require.NoError(t, err)

	slots := []domain.Slot{
		{ID: "M1-L1-S1", MallID: "mall1", LevelID: 1, GraphNodeID: "S1", AnchorNodeID: "ENTRY"},
	}
	assert.ErrorIs(t, store.ValidateSlots(slots), ErrSlotNotMapped)
}
