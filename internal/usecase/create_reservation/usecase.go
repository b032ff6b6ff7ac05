package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case создания брони (подтверждение выбора).
// Правила выбора проверяются повторно внутри сериализуемой транзакции:
// между обзором дня и подтверждением состояние могло измениться.
type UseCase struct {
	calendarService CalendarService
	menuRepo        MenuRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	slotStepMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarService CalendarService,
	menuRepo MenuRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	slotStepMinutes int,
	logger Logger,
) *UseCase {
	if slotStepMinutes <= 0 {
		slotStepMinutes = domain.SlotStepMinutes
	}
	return &UseCase{
		calendarService: calendarService,
		menuRepo:        menuRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		slotStepMinutes: slotStepMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Использует сериализуемую транзакцию: проверка занятости дня и обе
// зависимые записи (флаг меню + строка реестра) атомарны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, date=%s, menu=%v, time=%s",
		req.Identity.UserID, req.Date.Format(domain.DateFormat), menuIDForLog(req.MenuID), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем расписание дня
	day, err := uc.calendarService.ResolveDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to resolve day %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to resolve day: %v", ErrInternal, err)
	}

	// 3. В выходной брони не принимаются
	if day.Holiday {
		uc.logger.Warn("CreateReservation: %s is a holiday", req.Date.Format(domain.DateFormat))
		return nil, ErrHoliday
	}

	// 4. Время прибытия должно попадать в сетку слотов окна дня
	if !domain.IsValidSlot(req.Time, day.OpenTime, day.CloseTime, uc.slotStepMinutes) {
		uc.logger.Warn("CreateReservation: time=%s is not a valid slot for window %s-%s",
			req.Time, day.OpenTime, day.CloseTime)
		return nil, fmt.Errorf("%w: %s is outside window %s-%s", ErrInvalidSlot, req.Time, day.OpenTime, day.CloseTime)
	}

	var result *domain.Reservation

	// 5. Проверка занятости и обе записи — в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.MenuID == nil {
			return uc.createTimeOnly(txCtx, req, &result)
		}
		return uc.createMenuReservation(txCtx, req, &result)
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d for user=%d", result.ID, result.UserID)
	return toResponse(result), nil
}

// createMenuReservation бронирует позицию меню: перечитывает позиции дня
// с блокировкой, проверяет эксклюзивность, ставит флаг и пишет строку реестра
func (uc *UseCase) createMenuReservation(ctx context.Context, req *Request, result **domain.Reservation) error {
	// 5.1. Перечитываем позиции дня с блокировкой (FOR UPDATE)
	menus, err := uc.menuRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get menus for %s: %v", req.Date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to get menus: %v", ErrInternal, err)
	}

	var chosen *domain.MenuItem
	var reservedMenu *domain.MenuItem
	for _, m := range menus {
		if m.ID == *req.MenuID {
			chosen = m
		}
		if m.Reserved {
			reservedMenu = m
		}
	}

	// 5.2. Выбранная позиция должна существовать на эту дату
	if chosen == nil {
		uc.logger.Warn("CreateReservation: menu id=%d not found on %s", *req.MenuID, req.Date.Format(domain.DateFormat))
		return ErrMenuNotFound
	}

	// 5.3. Позиция уже занята
	if chosen.Reserved {
		holder, err := uc.reservationRepo.GetByMenuID(ctx, chosen.ID)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: failed to get holder of menu id=%d: %v", chosen.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if holder != nil && holder.UserID == req.Identity.UserID {
			uc.logger.Warn("CreateReservation: menu id=%d already reserved by caller user=%d", chosen.ID, req.Identity.UserID)
			return ErrAlreadyReservedByCaller
		}

		uc.logger.Warn("CreateReservation: menu id=%d already reserved on %s", chosen.ID, req.Date.Format(domain.DateFormat))
		return ErrDayConflict
	}

	// 5.4. На дату уже занята другая позиция — день в конфликте
	if reservedMenu != nil {
		uc.logger.Warn("CreateReservation: day %s already has reserved menu id=%d",
			req.Date.Format(domain.DateFormat), reservedMenu.ID)
		return ErrDayConflict
	}

	// 5.5. Ставим флаг на позицию
	if err := uc.menuRepo.SetReserved(ctx, chosen.ID, true); err != nil {
		uc.logger.Error("CreateReservation: failed to set reserved flag on menu id=%d: %v", chosen.ID, err)
		return fmt.Errorf("%w: failed to reserve menu: %v", ErrInternal, err)
	}

	// 5.6. Пишем строку реестра (заменяет прежнюю бронь той же пары меню/пользователь)
	created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		MenuID:          &chosen.ID,
		UserID:          req.Identity.UserID,
		Date:            req.Date,
		Time:            req.Time,
		MenuReservation: true,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	*result = created
	return nil
}

// createTimeOnly пишет time-only бронь: позиция меню не занимается,
// конфликт дня не мешает
func (uc *UseCase) createTimeOnly(ctx context.Context, req *Request, result **domain.Reservation) error {
	created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		UserID:          req.Identity.UserID,
		Date:            req.Date,
		Time:            req.Time,
		MenuReservation: false,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create time-only reservation: %v", err)
		return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	*result = created
	return nil
}

func menuIDForLog(id *int64) interface{} {
	if id == nil {
		return "none"
	}
	return *id
}
