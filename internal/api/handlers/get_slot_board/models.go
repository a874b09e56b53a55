package get_slot_board

import (
	"time"

	getSlotBoard "github.com/m04kA/IRP-BookingService/internal/usecase/get_slot_board"
)

// SlotResponse слот сетки в HTTP ответе
type SlotResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Available   bool    `json:"available"`
	BookedBy    *string `json:"bookedBy,omitempty"`
	ProjectName *string `json:"projectName,omitempty"`
}

// BoardResponse HTTP response model сетки слотов
type BoardResponse struct {
	Version      uint64          `json:"version"`
	SystemActive bool            `json:"systemActive"`
	Dates        []string        `json:"dates"`
	OpenDates    map[string]bool `json:"openDates"`
	Slots        []SlotResponse  `json:"slots"`
	GeneratedAt  string          `json:"generatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(version uint64, board *getSlotBoard.Response) *BoardResponse {
	slots := make([]SlotResponse, 0, len(board.Slots))
	for _, s := range board.Slots {
		slots = append(slots, SlotResponse{
			ID:          s.ID,
			Date:        s.Date,
			Time:        s.Label,
			Available:   s.Available,
			BookedBy:    s.BookedBy,
			ProjectName: s.ProjectName,
		})
	}

	return &BoardResponse{
		Version:      version,
		SystemActive: board.SystemActive,
		Dates:        board.Dates,
		OpenDates:    board.OpenDates,
		Slots:        slots,
		GeneratedAt:  board.GeneratedAt.Format(time.RFC3339),
	}
}
