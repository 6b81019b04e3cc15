package navigate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	"github.com/KeshavDaBoss/smartparkv5/internal/eligibility"
	"github.com/KeshavDaBoss/smartparkv5/internal/floorplan"
	identityClient "github.com/KeshavDaBoss/smartparkv5/internal/integrations/identity"
	"github.com/KeshavDaBoss/smartparkv5/pkg/ptr"
)

var testNow = time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

func today() time.Time {
	return time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return testNow }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	slots []domain.Slot
}

func (f *fakeSlotRepo) List(_ context.Context, mallID *string) ([]domain.Slot, error) {
	if mallID == nil {
		return f.slots, nil
	}
	filtered := make([]domain.Slot, 0)
	for _, s := range f.slots {
		if s.MallID == *mallID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if domain.SameDay(b.BookingDate, date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeIdentity struct {
	profiles map[string]*identityClient.Profile
}

func (f *fakeIdentity) GetProfile(_ context.Context, userID string) (*identityClient.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, identityClient.ErrUserNotFound
	}
	return p, nil
}

// Типовая схема уровня: въезд справа, основной проезд, четыре подъездных
// узла. Стоимость от въезда: S2/S3 узлы по 650, S1/S4 по 850.
const levelNodes = `
[[layout.node]]
id = "ENTRY"
x = 950.0
y = 200.0
neighbors = ["PATH_MAIN"]

[[layout.node]]
id = "PATH_MAIN"
x = 500.0
y = 200.0
neighbors = ["ENTRY", "S1_NODE", "S2_NODE", "S3_NODE", "S4_NODE"]

[[layout.node]]
id = "S1_NODE"
x = 200.0
y = 200.0
neighbors = ["PATH_MAIN", "SLOT1"]

[[layout.node]]
id = "S2_NODE"
x = 400.0
y = 200.0
neighbors = ["PATH_MAIN", "SLOT2"]

[[layout.node]]
id = "S3_NODE"
x = 600.0
y = 200.0
neighbors = ["PATH_MAIN", "SLOT3"]

[[layout.node]]
id = "S4_NODE"
x = 800.0
y = 200.0
neighbors = ["PATH_MAIN", "SLOT4"]

[[layout.node]]
id = "SLOT1"
x = 200.0
y = 100.0
neighbors = ["S1_NODE"]

[[layout.node]]
id = "SLOT2"
x = 400.0
y = 100.0
neighbors = ["S2_NODE"]

[[layout.node]]
id = "SLOT3"
x = 600.0
y = 100.0
neighbors = ["S3_NODE"]

[[layout.node]]
id = "SLOT4"
x = 800.0
y = 100.0
neighbors = ["S4_NODE"]
`

func testStore(t *testing.T) *floorplan.Store {
	t.Helper()
	plan := `
[[layout]]
mall_id = "mall1"
level_id = 1
entry_node = "ENTRY"
` + levelNodes + `
[[layout]]
mall_id = "mall1"
level_id = 2
entry_node = "ENTRY"
` + levelNodes

	path := filepath.Join(t.TempDir(), "floorplan.toml")
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	store, err := floorplan.Load(path)
	require.NoError(t, err)
	return store
}

func testSlots() []domain.Slot {
	return []domain.Slot{
		{ID: "M1-L1-S1", MallID: "mall1", LevelID: 1, SlotNumber: 1, Category: domain.CategoryGeneral, OnlineBookable: true, GraphNodeID: "SLOT1", AnchorNodeID: "S1_NODE"},
		{ID: "M1-L1-S2", MallID: "mall1", LevelID: 1, SlotNumber: 2, Category: domain.CategoryGeneral, OnlineBookable: true, GraphNodeID: "SLOT2", AnchorNodeID: "S2_NODE"},
		{ID: "M1-L1-S3", MallID: "mall1", LevelID: 1, SlotNumber: 3, Category: domain.CategoryDisabledReserved, GraphNodeID: "SLOT3", AnchorNodeID: "S3_NODE"},
		{ID: "M1-L1-S4", MallID: "mall1", LevelID: 1, SlotNumber: 4, Category: domain.CategoryElderlyReserved, GraphNodeID: "SLOT4", AnchorNodeID: "S4_NODE"},
		{ID: "M1-L2-S5", MallID: "mall1", LevelID: 2, SlotNumber: 5, Category: domain.CategoryGeneral, OnlineBookable: true, GraphNodeID: "SLOT1", AnchorNodeID: "S1_NODE"},
		{ID: "M1-L2-S6", MallID: "mall1", LevelID: 2, SlotNumber: 6, Category: domain.CategoryGeneral, OnlineBookable: true, GraphNodeID: "SLOT2", AnchorNodeID: "S2_NODE"},
	}
}

type fixture struct {
	uc       *UseCase
	slots    *fakeSlotRepo
	bookings *fakeBookingRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	slots := &fakeSlotRepo{slots: testSlots()}
	bookings := &fakeBookingRepo{}
	identity := &fakeIdentity{profiles: map[string]*identityClient.Profile{
		"user1": {ID: "user1", Username: "user1"},
		"user2": {ID: "user2", Username: "user2", IsDisabled: true},
		"user3": {ID: "user3", Username: "user3", IsElderly: true},
	}}

	uc := NewUseCase(slots, bookings, identity, testStore(t), nopLogger{})
	uc.timeProvider = fixedTime{}
	return &fixture{uc: uc, slots: slots, bookings: bookings}
}

func (f *fixture) occupy(ids ...string) {
	for i := range f.slots.slots {
		for _, id := range ids {
			if f.slots.slots[i].ID == id {
				f.slots.slots[i].Occupied = true
			}
		}
	}
}

func baseRequest() *Request {
	return &Request{UserID: "user1", MallID: "mall1", LevelID: 1, Date: today()}
}

func TestExecute_NearestByCost(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRouted, resp.Outcome)
	require.NotNil(t, resp.Slot)
	// S2 ближе S1 по стоимости маршрута (650 против 850)
	assert.Equal(t, "M1-L1-S2", resp.Slot.ID)
	assert.InDelta(t, 650.0, resp.TotalCost, 1e-9)

	ids := make([]string, 0, len(resp.Points))
	for _, p := range resp.Points {
		ids = append(ids, p.NodeID)
	}
	assert.Equal(t, []string{"ENTRY", "PATH_MAIN", "S2_NODE", "SLOT2"}, ids)
}

// Для пользователя с признаком инвалидности и S2, и S3 стоят 650:
// при равной стоимости выбирается меньший номер слота.
func TestExecute_TieBreakBySlotNumber(t *testing.T) {
	f := newFixture(t)

	req := baseRequest()
	req.UserID = "user2"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, OutcomeRouted, resp.Outcome)
	assert.Equal(t, "M1-L1-S2", resp.Slot.ID)
}

// Свое бронирование побеждает даже более близкие свободные слоты.
func TestExecute_OwnBookingPriority(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings = []*domain.Booking{
		{ID: 1, SlotID: "M1-L1-S1", UserID: "user1", BookingDate: today()},
	}

	resp, err := f.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRouted, resp.Outcome)
	assert.Equal(t, "M1-L1-S1", resp.Slot.ID)
	assert.InDelta(t, 850.0, resp.TotalCost, 1e-9)
}

// К своему месту можно проложить маршрут, даже если датчик уже
// показывает его занятым: водитель ищет слот, на котором стоит.
func TestExecute_OwnBookingWhileOccupied(t *testing.T) {
	f := newFixture(t)
	f.occupy("M1-L1-S1")
	f.bookings.bookings = []*domain.Booking{
		{ID: 1, SlotID: "M1-L1-S1", UserID: "user1", BookingDate: today()},
	}

	resp, err := f.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRouted, resp.Outcome)
	assert.Equal(t, "M1-L1-S1", resp.Slot.ID)
}

// Чужие бронирования исключают слот из выбора.
func TestExecute_BookedSlotsExcluded(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings = []*domain.Booking{
		{ID: 1, SlotID: "M1-L1-S2", UserID: "user3", BookingDate: today()},
	}

	resp, err := f.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRouted, resp.Outcome)
	assert.Equal(t, "M1-L1-S1", resp.Slot.ID)
}

func TestExecute_OtherLevel(t *testing.T) {
	f := newFixture(t)
	// На первом уровне обычному пользователю ничего не доступно
	f.occupy("M1-L1-S1", "M1-L1-S2")

	resp, err := f.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeOtherLevel, resp.Outcome)
	assert.Equal(t, 2, resp.AvailableLevelID)
	assert.Nil(t, resp.Slot)
	assert.Empty(t, resp.Points)
}

func TestExecute_NoAvailability(t *testing.T) {
	f := newFixture(t)
	f.occupy("M1-L1-S1", "M1-L1-S2", "M1-L2-S5", "M1-L2-S6")

	resp, err := f.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoAvailability, resp.Outcome)
}

func TestExecute_ExplicitSlot(t *testing.T) {
	f := newFixture(t)

	req := baseRequest()
	req.SlotID = ptr.Ptr("M1-L1-S1")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, OutcomeRouted, resp.Outcome)
	assert.Equal(t, "M1-L1-S1", resp.Slot.ID)
	assert.InDelta(t, 850.0, resp.TotalCost, 1e-9)
}

func TestExecute_ExplicitSlotDenied(t *testing.T) {
	f := newFixture(t)

	req := baseRequest()
	req.SlotID = ptr.Ptr("M1-L1-S3")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, eligibility.ErrReservedForDisabled)
}

func TestExecute_ExplicitSlotNotOnLevel(t *testing.T) {
	f := newFixture(t)

	req := baseRequest()
	req.SlotID = ptr.Ptr("M1-L2-S5")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

// Слот с ошибкой конфигурации (узел не в графе) исключается из выбора,
// запрос продолжает работать на остальных слотах.
func TestExecute_MisconfiguredSlotExcluded(t *testing.T) {
	f := newFixture(t)
	for i := range f.slots.slots {
		if f.slots.slots[i].ID == "M1-L1-S2" {
			f.slots.slots[i].GraphNodeID = "GHOST"
		}
	}

	resp, err := f.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRouted, resp.Outcome)
	assert.Equal(t, "M1-L1-S1", resp.Slot.ID)
}

func TestExecute_UserNotFound(t *testing.T) {
	f := newFixture(t)

	req := baseRequest()
	req.UserID = "ghost"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_UnknownLevel(t *testing.T) {
	f := newFixture(t)

	req := baseRequest()
	req.LevelID = 9

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	cases := []*Request{
		{MallID: "mall1", LevelID: 1, Date: today()},
		{UserID: "user1", LevelID: 1, Date: today()},
		{UserID: "user1", MallID: "mall1", Date: today()},
		{UserID: "user1", MallID: "mall1", LevelID: 1},
		{UserID: "user1", MallID: "mall1", LevelID: 1, Date: today(), SlotID: ptr.Ptr("")},
	}
	for _, req := range cases {
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
