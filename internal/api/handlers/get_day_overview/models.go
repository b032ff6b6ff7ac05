package get_day_overview

import (
	"github.com/m04kA/DMR-ReservationService/internal/domain"
	getDayOverview "github.com/m04kA/DMR-ReservationService/internal/usecase/get_day_overview"
)

// MenuOverviewResponse позиция меню с подсказками действий
type MenuOverviewResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Reserved     bool    `json:"reserved"`
	ReservedByMe bool    `json:"reservedByMe"`
	OwnerName    *string `json:"ownerName,omitempty"`
	CanReserve   bool    `json:"canReserve"`
	CanCancel    bool    `json:"canCancel"`
}

// CallerReservationResponse бронь вызывающего на дату
type CallerReservationResponse struct {
	ID              int64  `json:"id"`
	MenuID          *int64 `json:"menuId,omitempty"`
	Time            string `json:"arrivalTime"`
	MenuReservation bool   `json:"menuReservation"`
}

// DayOverviewResponse HTTP response model
type DayOverviewResponse struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Holiday bool   `json:"holiday"`

	OpenTime  string   `json:"openTime,omitempty"`
	CloseTime string   `json:"closeTime,omitempty"`
	Slots     []string `json:"slots,omitempty"`

	Menus []MenuOverviewResponse `json:"menus,omitempty"`

	CallerReservation *CallerReservationResponse `json:"callerReservation,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayOverview.Response) *DayOverviewResponse {
	out := &DayOverviewResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Status:  string(resp.Status),
		Holiday: resp.Holiday,
	}

	if resp.Holiday {
		return out
	}

	out.OpenTime = resp.OpenTime.String()
	out.CloseTime = resp.CloseTime.String()

	out.Slots = make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, slot.String())
	}

	out.Menus = make([]MenuOverviewResponse, 0, len(resp.Menus))
	for _, m := range resp.Menus {
		out.Menus = append(out.Menus, MenuOverviewResponse{
			ID:           m.ID,
			Name:         m.Name,
			Reserved:     m.Reserved,
			ReservedByMe: m.ReservedByMe,
			OwnerName:    m.OwnerName,
			CanReserve:   m.CanReserve,
			CanCancel:    m.CanCancel,
		})
	}

	if r := resp.CallerReservation; r != nil {
		out.CallerReservation = &CallerReservationResponse{
			ID:              r.ID,
			MenuID:          r.MenuID,
			Time:            r.Time.String(),
			MenuReservation: r.MenuReservation,
		}
	}

	return out
}
