package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case отмены брони.
// Бронь перечитывается внутри транзакции: проверка владельца по
// состоянию на момент обзора дня была бы гонкой.
type UseCase struct {
	menuRepo        MenuRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	menuRepo MenuRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		menuRepo:        menuRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены брони.
// Удаление строки реестра и сброс флага меню атомарны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelReservation: user=%d, menu=%v", req.Identity.UserID, menuIDForLog(req.MenuID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		return err
	}

	// 2. Обе записи — в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.MenuID == nil {
			return uc.cancelTimeOnly(txCtx, req)
		}
		return uc.cancelMenuReservation(txCtx, req)
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelReservation: cancelled for user=%d", req.Identity.UserID)
	return nil
}

// cancelMenuReservation снимает бронь позиции меню: перечитывает бронь,
// проверяет владельца, удаляет строку реестра и сбрасывает флаг
func (uc *UseCase) cancelMenuReservation(ctx context.Context, req *Request) error {
	// 2.1. Перечитываем бронь внутри транзакции
	res, err := uc.reservationRepo.GetByMenuID(ctx, *req.MenuID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: no reservation for menu id=%d", *req.MenuID)
			return ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: failed to get reservation for menu id=%d: %v", *req.MenuID, err)
		return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 2.2. Отменить может владелец или администратор; состояние не меняется при отказе
	if !res.IsOwnedBy(req.Identity.UserID) && !req.Identity.IsAdmin() {
		uc.logger.Warn("CancelReservation: user=%d is not the owner of reservation id=%d", req.Identity.UserID, res.ID)
		return ErrAccessDenied
	}

	// 2.3. Удаляем строку реестра
	deleted, err := uc.reservationRepo.DeleteByMenuAndUser(ctx, *req.MenuID, res.UserID)
	if err != nil {
		uc.logger.Error("CancelReservation: failed to delete reservation for menu id=%d: %v", *req.MenuID, err)
		return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
	}
	if !deleted {
		uc.logger.Warn("CancelReservation: reservation for menu id=%d disappeared", *req.MenuID)
		return ErrReservationNotFound
	}

	// 2.4. Сбрасываем флаг позиции. Отсутствие строки меню не откатывает
	// отмену: позицию могли удалить, бронь при этом снимается
	if err := uc.menuRepo.SetReserved(ctx, *req.MenuID, false); err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			uc.logger.Warn("CancelReservation: menu id=%d no longer exists, flag reset skipped", *req.MenuID)
			return nil
		}
		uc.logger.Error("CancelReservation: failed to clear reserved flag on menu id=%d: %v", *req.MenuID, err)
		return fmt.Errorf("%w: failed to clear reserved flag: %v", ErrInternal, err)
	}

	return nil
}

// cancelTimeOnly удаляет time-only бронь вызывающего на дату
func (uc *UseCase) cancelTimeOnly(ctx context.Context, req *Request) error {
	deleted, err := uc.reservationRepo.DeleteTimeOnlyByUserAndDate(ctx, req.Identity.UserID, req.Date)
	if err != nil {
		uc.logger.Error("CancelReservation: failed to delete time-only reservation for user=%d date=%s: %v",
			req.Identity.UserID, req.Date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
	}

	if !deleted {
		uc.logger.Warn("CancelReservation: no time-only reservation for user=%d on %s",
			req.Identity.UserID, req.Date.Format(domain.DateFormat))
		return ErrReservationNotFound
	}

	return nil
}

func menuIDForLog(id *int64) interface{} {
	if id == nil {
		return "none"
	}
	return *id
}
