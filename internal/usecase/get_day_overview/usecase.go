package get_day_overview

import (
	"context"
	"fmt"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// UseCase use case обзора дня: расписание, слоты, позиции меню
// с подсказками действий для вызывающего
type UseCase struct {
	calendarService CalendarService
	catalogService  CatalogService
	ledgerService   LedgerService
	userRepo        UserRepository
	slotStepMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarService CalendarService,
	catalogService CatalogService,
	ledgerService LedgerService,
	userRepo UserRepository,
	slotStepMinutes int,
	logger Logger,
) *UseCase {
	if slotStepMinutes <= 0 {
		slotStepMinutes = domain.SlotStepMinutes
	}
	return &UseCase{
		calendarService: calendarService,
		catalogService:  catalogService,
		ledgerService:   ledgerService,
		userRepo:        userRepo,
		slotStepMinutes: slotStepMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case обзора дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayOverview: user=%d, date=%s", req.Identity.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayOverview: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем расписание дня (сервис сам деградирует к дефолтному окну)
	day, err := uc.calendarService.ResolveDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDayOverview: failed to resolve day %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to resolve day: %v", ErrInternal, err)
	}

	// 3. Выходной — больше ничего не считаем
	if day.Holiday {
		uc.logger.Info("GetDayOverview: %s is a holiday", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:    req.Date,
			Status:  domain.DayStatusHoliday,
			Holiday: true,
		}, nil
	}

	// 4. Позиции меню на дату
	menus, err := uc.catalogService.ListForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDayOverview: failed to list menus for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list menus: %v", ErrInternal, err)
	}

	// 5. Брони на дату
	reservations, err := uc.ledgerService.GetDateReservations(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDayOverview: failed to get reservations for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	byMenu, callerReservation := indexReservations(reservations, req.Identity.UserID)

	// 6. Имена владельцев броней (обогащение, деградирует молча)
	owners := uc.ownerNames(ctx, reservations)

	// 7. Собираем обзор позиций и статус дня
	dayHasReservedMenu := false
	for _, m := range menus {
		if m.Reserved {
			dayHasReservedMenu = true
			break
		}
	}

	menuOverviews := make([]MenuOverview, 0, len(menus))
	for _, m := range menus {
		overview := MenuOverview{
			ID:       m.ID,
			Name:     m.Name,
			Reserved: m.Reserved,
		}

		if res, ok := byMenu[m.ID]; ok {
			overview.ReservedByMe = res.UserID == req.Identity.UserID
			if owner, ok := owners[res.UserID]; ok {
				overview.OwnerName = &owner.DisplayName
			}
		}

		overview.CanReserve = !dayHasReservedMenu && !m.Reserved
		overview.CanCancel = overview.ReservedByMe || (m.Reserved && req.Identity.IsAdmin())

		menuOverviews = append(menuOverviews, overview)
	}

	status := domain.DayStatusOpen
	if dayHasReservedMenu {
		status = domain.DayStatusConflict
	}

	// 8. Слоты прибытия для окна дня
	slots := domain.SlotList(day.OpenTime, day.CloseTime, uc.slotStepMinutes)

	uc.logger.Info("GetDayOverview: date=%s status=%s menus=%d slots=%d",
		req.Date.Format(domain.DateFormat), status, len(menuOverviews), len(slots))

	return &Response{
		Date:              req.Date,
		Status:            status,
		Holiday:           false,
		OpenTime:          day.OpenTime,
		CloseTime:         day.CloseTime,
		Slots:             slots,
		Menus:             menuOverviews,
		CallerReservation: callerReservation,
	}, nil
}

// indexReservations строит индекс menuID -> бронь и находит бронь вызывающего.
// Бронь с меню имеет приоритет над time-only бронью того же пользователя.
func indexReservations(reservations []*domain.Reservation, callerID int64) (map[int64]*domain.Reservation, *domain.Reservation) {
	byMenu := make(map[int64]*domain.Reservation, len(reservations))
	var caller *domain.Reservation

	for _, r := range reservations {
		if r.MenuID != nil {
			byMenu[*r.MenuID] = r
		}
		if r.UserID == callerID {
			if caller == nil || !caller.MenuReservation {
				caller = r
			}
		}
	}

	return byMenu, caller
}

// ownerNames загружает пользователей, держащих брони на дату
func (uc *UseCase) ownerNames(ctx context.Context, reservations []*domain.Reservation) map[int64]*domain.User {
	ids := make([]int64, 0, len(reservations))
	seen := make(map[int64]bool, len(reservations))

	for _, r := range reservations {
		if r.MenuID == nil || seen[r.UserID] {
			continue
		}
		seen[r.UserID] = true
		ids = append(ids, r.UserID)
	}

	if len(ids) == 0 {
		return nil
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warn("GetDayOverview: failed to load reservation owners: %v", err)
		return nil
	}

	return users
}
