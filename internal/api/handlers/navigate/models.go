package navigate

import (
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	navigateUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/navigate"
)

// NavigateRequest HTTP request model
type NavigateRequest struct {
	MallID  string  `json:"mall_id"`
	LevelID int     `json:"level_id"`
	Date    string  `json:"date"`              // DDMMYYYY, "today" или "tomorrow"
	SlotID  *string `json:"slot_id,omitempty"` // Явная цель; отсутствует = выбрать ближайший
}

// PointResponse одна точка маршрута
type PointResponse struct {
	NodeID string  `json:"node_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// TargetSlotResponse выбранный целевой слот
type TargetSlotResponse struct {
	ID         string `json:"id"`
	SlotNumber int    `json:"slot_number"`
	LevelID    int    `json:"level_id"`
}

// NavigateResponse HTTP response model
type NavigateResponse struct {
	Outcome          string              `json:"outcome"`
	Slot             *TargetSlotResponse `json:"slot,omitempty"`
	Points           []PointResponse     `json:"points,omitempty"`
	TotalCost        float64             `json:"total_cost,omitempty"`
	AvailableLevelID int                 `json:"available_level_id,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *NavigateRequest) ToUseCaseRequest(userID string, now time.Time) (*navigateUC.Request, error) {
	date, err := handlers.ParseRequestDate(r.Date, now)
	if err != nil {
		return nil, err
	}

	return &navigateUC.Request{
		UserID:  userID,
		MallID:  r.MallID,
		LevelID: r.LevelID,
		Date:    date,
		SlotID:  r.SlotID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *navigateUC.Response) *NavigateResponse {
	out := &NavigateResponse{
		Outcome:          string(resp.Outcome),
		TotalCost:        resp.TotalCost,
		AvailableLevelID: resp.AvailableLevelID,
	}

	if resp.Slot != nil {
		out.Slot = &TargetSlotResponse{
			ID:         resp.Slot.ID,
			SlotNumber: resp.Slot.SlotNumber,
			LevelID:    resp.Slot.LevelID,
		}
	}

	if len(resp.Points) > 0 {
		out.Points = make([]PointResponse, 0, len(resp.Points))
		for _, p := range resp.Points {
			out.Points = append(out.Points, PointResponse{NodeID: p.NodeID, X: p.X, Y: p.Y})
		}
	}

	return out
}
