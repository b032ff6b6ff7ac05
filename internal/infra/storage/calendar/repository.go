package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DMR-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
)

// Repository репозиторий для работы с календарем рабочих дней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает запись календаря на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.BusinessDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"calendar_date",
		"open_time",
		"close_time",
		"holiday",
		"updated_at",
	).
		From("business_calendar").
		Where(squirrel.Eq{"calendar_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.BusinessDay
	var openTime, closeTime sql.NullString
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.Date,
		&openTime,
		&closeTime,
		&day.Holiday,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan business day: %v", ErrScanRow, err)
	}

	if openTime.Valid {
		t := types.TimeString(openTime.String)
		day.OpenTime = &t
	}
	if closeTime.Valid {
		t := types.TimeString(closeTime.String)
		day.CloseTime = &t
	}
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}

// UpsertHours идемпотентно устанавливает часы работы на дату.
// Затрагивает только колонки open_time/close_time: флаг holiday
// существующей записи сохраняется как есть.
func (r *Repository) UpsertHours(ctx context.Context, date time.Time, open, close types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_calendar").
		Columns("calendar_date", "open_time", "close_time").
		Values(date, open, close).
		Suffix(`ON CONFLICT (calendar_date) DO UPDATE
			SET open_time = EXCLUDED.open_time,
			    close_time = EXCLUDED.close_time,
			    updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertHours - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertHours - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpsertHoliday идемпотентно устанавливает флаг выходного на дату.
// Затрагивает только колонку holiday: часы работы существующей записи
// сохраняются как есть.
func (r *Repository) UpsertHoliday(ctx context.Context, date time.Time, holiday bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_calendar").
		Columns("calendar_date", "holiday").
		Values(date, holiday).
		Suffix(`ON CONFLICT (calendar_date) DO UPDATE
			SET holiday = EXCLUDED.holiday,
			    updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertHoliday - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertHoliday - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
