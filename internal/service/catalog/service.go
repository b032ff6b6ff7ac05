package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/menu"
)

// Service сервис каталога меню.
// Отвечает за состав предложений на дату; флаг reserved меняет только
// движок бронирования, каталог его не трогает.
type Service struct {
	menuRepo MenuRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(menuRepo MenuRepository, logger Logger) *Service {
	return &Service{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// ListForDate возвращает все позиции меню на дату, упорядоченные по ID
func (s *Service) ListForDate(ctx context.Context, date time.Time) ([]*domain.MenuItem, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	items, err := s.menuRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	return items, nil
}

// Add добавляет позицию меню на дату. Только для администратора.
// Название валидируется и экранируется перед сохранением,
// флаг reserved инициализируется как false.
func (s *Service) Add(ctx context.Context, ident domain.Identity, date time.Time, name string) (*domain.MenuItem, error) {
	s.logger.Info("Add: user=%d adding menu for date=%s", ident.UserID, date.Format(domain.DateFormat))

	if !ident.IsAdmin() {
		s.logger.Warn("Add: access denied for user=%d", ident.UserID)
		return nil, ErrAccessDenied
	}

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if err := validateMenuName(name); err != nil {
		s.logger.Warn("Add: invalid menu name from user=%d: %v", ident.UserID, err)
		return nil, err
	}

	item := &domain.MenuItem{
		Name:     sanitizeMenuName(name),
		Date:     date,
		Reserved: false,
	}

	created, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Add: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: menu id=%d created for date=%s", created.ID, date.Format(domain.DateFormat))
	return created, nil
}

// Remove удаляет позицию меню. Только для администратора.
// Забронированная позиция не удаляется: сначала бронь должна быть
// отменена, иначе у брони остался бы висячий menu_id.
func (s *Service) Remove(ctx context.Context, ident domain.Identity, menuID int64) error {
	s.logger.Info("Remove: user=%d removing menu id=%d", ident.UserID, menuID)

	if !ident.IsAdmin() {
		s.logger.Warn("Remove: access denied for user=%d", ident.UserID)
		return ErrAccessDenied
	}

	item, err := s.menuRepo.GetByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			s.logger.Warn("Remove: menu id=%d not found", menuID)
			return ErrMenuNotFound
		}
		s.logger.Error("Remove: repository error for menu id=%d: %v", menuID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	if item.Reserved {
		s.logger.Warn("Remove: menu id=%d is reserved, refusing to delete", menuID)
		return ErrMenuReserved
	}

	if err := s.menuRepo.Delete(ctx, menuID); err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			return ErrMenuNotFound
		}
		s.logger.Error("Remove: repository error for menu id=%d: %v", menuID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: menu id=%d deleted", menuID)
	return nil
}
