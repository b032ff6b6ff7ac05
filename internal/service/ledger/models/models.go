package models

import (
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// ReservationDetails бронь, обогащенная данными меню
type ReservationDetails struct {
	ID              int64   `json:"id"`
	MenuID          *int64  `json:"menuId,omitempty"`
	MenuName        *string `json:"menuName,omitempty"`
	UserID          int64   `json:"userId"`
	Date            string  `json:"date"`         // "2025-10-15"
	Time            string  `json:"arrivalTime"`  // "18:30"
	MenuReservation bool    `json:"menuReservation"`

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationDetails `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO.
// menus используется для подстановки названия меню, может быть nil.
func FromDomainReservation(r *domain.Reservation, menus map[int64]*domain.MenuItem) ReservationDetails {
	details := ReservationDetails{
		ID:              r.ID,
		MenuID:          r.MenuID,
		UserID:          r.UserID,
		Date:            r.Date.Format(domain.DateFormat),
		Time:            r.Time.String(),
		MenuReservation: r.MenuReservation,
		CreatedAt:       r.CreatedAt,
	}

	if r.MenuID != nil && menus != nil {
		if item, ok := menus[*r.MenuID]; ok {
			details.MenuName = &item.Name
		}
	}

	return details
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, menus map[int64]*domain.MenuItem) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationDetails, 0, len(reservations)),
	}

	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r, menus))
	}

	return resp
}
