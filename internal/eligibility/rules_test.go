package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

func freeView(category domain.SlotCategory, onlineBookable bool) domain.SlotView {
	return domain.SlotView{
		Slot: domain.Slot{
			ID:             "M1-L1-S1",
			Category:       category,
			OnlineBookable: onlineBookable,
		},
		Status: domain.StatusFree,
	}
}

func TestCanAccess(t *testing.T) {
	normal := domain.User{ID: "user1"}
	disabled := domain.User{ID: "user2", IsDisabled: true}
	elderly := domain.User{ID: "user3", IsElderly: true}
	both := domain.User{ID: "user4", IsDisabled: true, IsElderly: true}

	tests := []struct {
		name    string
		view    domain.SlotView
		user    domain.User
		intent  Intent
		wantErr error
	}{
		{
			name:   "general bookable slot, normal user, book",
			view:   freeView(domain.CategoryGeneral, true),
			user:   normal,
			intent: IntentBook,
		},
		{
			name:    "general non-bookable slot, normal user, book",
			view:    freeView(domain.CategoryGeneral, false),
			user:    normal,
			intent:  IntentBook,
			wantErr: ErrNotOnlineBookable,
		},
		{
			name:   "general non-bookable slot, normal user, navigate",
			view:   freeView(domain.CategoryGeneral, false),
			user:   normal,
			intent: IntentNavigate,
		},
		{
			name:    "disabled slot, normal user",
			view:    freeView(domain.CategoryDisabledReserved, false),
			user:    normal,
			intent:  IntentBook,
			wantErr: ErrReservedForDisabled,
		},
		{
			name:   "disabled slot, disabled user",
			view:   freeView(domain.CategoryDisabledReserved, false),
			user:   disabled,
			intent: IntentBook,
		},
		{
			name:    "disabled slot, elderly user",
			view:    freeView(domain.CategoryDisabledReserved, false),
			user:    elderly,
			intent:  IntentNavigate,
			wantErr: ErrReservedForDisabled,
		},
		{
			name:    "elderly slot, normal user",
			view:    freeView(domain.CategoryElderlyReserved, false),
			user:    normal,
			intent:  IntentNavigate,
			wantErr: ErrReservedForElderly,
		},
		{
			name:   "elderly slot, elderly user",
			view:   freeView(domain.CategoryElderlyReserved, false),
			user:   elderly,
			intent: IntentBook,
		},
		{
			name:   "elderly slot, user with both traits",
			view:   freeView(domain.CategoryElderlyReserved, false),
			user:   both,
			intent: IntentBook,
		},
		{
			name:   "disabled slot, user with both traits",
			view:   freeView(domain.CategoryDisabledReserved, false),
			user:   both,
			intent: IntentNavigate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAccess(tt.view, tt.user, tt.intent)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanAccess_Occupied(t *testing.T) {
	user := domain.User{ID: "user1"}

	occupied := freeView(domain.CategoryGeneral, true)
	occupied.Status = domain.StatusOccupied

	assert.ErrorIs(t, CanBook(occupied, user), ErrSlotOccupied)
	assert.ErrorIs(t, CanNavigate(occupied, user), ErrSlotOccupied)

	// К своему бронированию можно идти, даже если датчик показал занятость:
	// водителю нужно найти свое место.
	mine := occupied
	mine.IsMyBooking = true
	assert.NoError(t, CanNavigate(mine, user))
	assert.ErrorIs(t, CanBook(mine, user), ErrSlotOccupied)
}

func TestFilterBookable(t *testing.T) {
	user := domain.User{ID: "user1"}

	booked := freeView(domain.CategoryGeneral, true)
	booked.Status = domain.StatusBooked

	views := []domain.SlotView{
		freeView(domain.CategoryGeneral, true),
		freeView(domain.CategoryGeneral, false),
		freeView(domain.CategoryDisabledReserved, false),
		booked,
	}

	bookable := FilterBookable(views, user)
	assert.Len(t, bookable, 1)
	assert.True(t, bookable[0].OnlineBookable)
}

// Навигация доступна к большему числу слотов, чем бронирование:
// список онлайн-бронируемых на нее не влияет.
func TestFilterNavigable_SupersetOfBookable(t *testing.T) {
	user := domain.User{ID: "user1"}

	views := []domain.SlotView{
		freeView(domain.CategoryGeneral, true),
		freeView(domain.CategoryGeneral, false),
		freeView(domain.CategoryDisabledReserved, false),
		freeView(domain.CategoryElderlyReserved, false),
	}

	bookable := FilterBookable(views, user)
	navigable := FilterNavigable(views, user)

	assert.Len(t, bookable, 1)
	assert.Len(t, navigable, 2)
	assert.GreaterOrEqual(t, len(navigable), len(bookable))
}
