package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DMR-ReservationService/internal/service/ledger/models"
)

// Service read-сторона реестра броней.
// Запись в реестр идет только через протоколы бронирования/отмены
// (usecases), сервис отвечает за запросы на чтение и проверку прав.
type Service struct {
	reservationRepo ReservationRepository
	menuRepo        MenuRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса реестра броней
func NewService(reservationRepo ReservationRepository, menuRepo MenuRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		menuRepo:        menuRepo,
		logger:          logger,
	}
}

// GetReservationForMenu возвращает бронь, удерживающую позицию меню,
// либо nil, если позиция свободна
func (s *Service) GetReservationForMenu(ctx context.Context, menuID int64) (*domain.Reservation, error) {
	if menuID <= 0 {
		return nil, fmt.Errorf("%w: menuID must be positive", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByMenuID(ctx, menuID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, nil
		}
		s.logger.Error("GetReservationForMenu: repository error for menu=%d: %v", menuID, err)
		return nil, fmt.Errorf("%w: GetReservationForMenu - repository error: %v", ErrInternal, err)
	}

	return res, nil
}

// GetUserReservations возвращает брони пользователя, обогащенные
// данными меню. Пользователь видит только свои брони,
// администратор — любые.
func (s *Service) GetUserReservations(ctx context.Context, ident domain.Identity, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: user=%d requesting reservations of user=%d", ident.UserID, userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if ident.UserID != userID && !ident.IsAdmin() {
		s.logger.Warn("GetUserReservations: access denied for user=%d to reservations of user=%d", ident.UserID, userID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	menus, err := s.menusFor(ctx, reservations)
	if err != nil {
		// Названия меню — обогащение, не повод отдавать ошибку
		s.logger.Warn("GetUserReservations: failed to load menu details for user=%d: %v", userID, err)
		menus = nil
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%d", len(reservations), userID)
	return models.FromDomainReservationList(reservations, menus), nil
}

// GetDateReservations возвращает все брони на дату
func (s *Service) GetDateReservations(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDateReservations: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDateReservations - repository error: %v", ErrInternal, err)
	}

	return reservations, nil
}

// menusFor загружает позиции меню, на которые ссылаются брони
func (s *Service) menusFor(ctx context.Context, reservations []*domain.Reservation) (map[int64]*domain.MenuItem, error) {
	ids := make([]int64, 0, len(reservations))
	seen := make(map[int64]bool, len(reservations))

	for _, r := range reservations {
		if r.MenuID == nil || seen[*r.MenuID] {
			continue
		}
		seen[*r.MenuID] = true
		ids = append(ids, *r.MenuID)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return s.menuRepo.GetByIDs(ctx, ids)
}
