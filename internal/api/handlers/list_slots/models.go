package list_slots

import (
	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	listSlots "github.com/KeshavDaBoss/smartparkv5/internal/usecase/list_slots"
)

// SlotViewResponse HTTP model статуса одного слота
type SlotViewResponse struct {
	ID             string `json:"id"`
	MallID         string `json:"mall_id"`
	LevelID        int    `json:"level_id"`
	SlotNumber     int    `json:"slot_number"`
	Category       string `json:"category"`
	OnlineBookable bool   `json:"online_bookable"`
	Status         string `json:"status"`
	IsMyBooking    bool   `json:"is_my_booking"`
}

// ListSlotsResponse HTTP response model
type ListSlotsResponse struct {
	Date  string             `json:"date"`
	Slots []SlotViewResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listSlots.Response) *ListSlotsResponse {
	slots := make([]SlotViewResponse, 0, len(resp.Slots))
	for _, v := range resp.Slots {
		slots = append(slots, SlotViewResponse{
			ID:             v.ID,
			MallID:         v.MallID,
			LevelID:        v.LevelID,
			SlotNumber:     v.SlotNumber,
			Category:       string(v.Category),
			OnlineBookable: v.OnlineBookable,
			Status:         string(v.Status),
			IsMyBooking:    v.IsMyBooking,
		})
	}

	return &ListSlotsResponse{
		Date:  domain.FormatDate(resp.Date),
		Slots: slots,
	}
}
