package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	calendarRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/calendar"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// Service сервис календаря: определяет часы работы и выходные дни.
// Чтение деградирует к дефолтному окну при любой ошибке хранилища —
// доступность дня не должна блокироваться из-за проблем с календарем.
type Service struct {
	repo         CalendarRepository
	defaultOpen  types.TimeString
	defaultClose types.TimeString
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря.
// defaultOpen/defaultClose — окно работы для дат без записи в календаре.
func NewService(repo CalendarRepository, defaultOpen, defaultClose types.TimeString, logger Logger) *Service {
	return &Service{
		repo:         repo,
		defaultOpen:  defaultOpen,
		defaultClose: defaultClose,
		logger:       logger,
	}
}

// ResolveDay возвращает статус и действующее окно работы на дату.
// Отсутствие записи — не ошибка: применяются дефолтные часы и день
// считается рабочим. Ошибка хранилища логируется, наружу уходит
// дефолтное окно (graceful degradation на пути чтения).
func (s *Service) ResolveDay(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	schedule := &domain.DaySchedule{
		Date:      date,
		Holiday:   false,
		OpenTime:  s.defaultOpen,
		CloseTime: s.defaultClose,
	}

	day, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDayNotFound) {
			return schedule, nil
		}
		s.logger.Error("ResolveDay: repository error for date=%s, using default window: %v",
			date.Format(domain.DateFormat), err)
		return schedule, nil
	}

	schedule.Holiday = day.Holiday
	if day.OpenTime != nil {
		schedule.OpenTime = *day.OpenTime
	}
	if day.CloseTime != nil {
		schedule.CloseTime = *day.CloseTime
	}

	return schedule, nil
}

// SetHours устанавливает часы работы на дату. Только для администратора.
// Upsert идемпотентен и не затрагивает флаг выходного.
func (s *Service) SetHours(ctx context.Context, ident domain.Identity, date time.Time, open, close types.TimeString) error {
	s.logger.Info("SetHours: user=%d setting hours %s-%s for date=%s",
		ident.UserID, open, close, date.Format(domain.DateFormat))

	if !ident.IsAdmin() {
		s.logger.Warn("SetHours: access denied for user=%d", ident.UserID)
		return ErrAccessDenied
	}

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if err := open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidTime, err)
	}
	if err := close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidTime, err)
	}
	if !open.IsBefore(close) {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, open, close)
	}

	if err := s.repo.UpsertHours(ctx, date, open, close); err != nil {
		s.logger.Error("SetHours: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: SetHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetHours: hours updated for date=%s", date.Format(domain.DateFormat))
	return nil
}

// SetHoliday устанавливает флаг выходного на дату. Только для администратора.
// Существующие брони на эту дату не отменяются: административная запись
// авторитетна, расхождение всплывет при следующем чтении дня.
func (s *Service) SetHoliday(ctx context.Context, ident domain.Identity, date time.Time, holiday bool) error {
	s.logger.Info("SetHoliday: user=%d setting holiday=%t for date=%s",
		ident.UserID, holiday, date.Format(domain.DateFormat))

	if !ident.IsAdmin() {
		s.logger.Warn("SetHoliday: access denied for user=%d", ident.UserID)
		return ErrAccessDenied
	}

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if err := s.repo.UpsertHoliday(ctx, date, holiday); err != nil {
		s.logger.Error("SetHoliday: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: SetHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetHoliday: holiday=%t set for date=%s", holiday, date.Format(domain.DateFormat))
	return nil
}
