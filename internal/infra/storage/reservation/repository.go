package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
	"github.com/m04kA/DMR-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DMR-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронь с семантикой замены: существующая бронь того же
// пользователя по тому же ключу (menu_id для меню-брони, либо дата для
// time-only брони) предварительно удаляется. Повторный вызов с теми же
// параметрами не плодит дубликатов.
//
// Протокол бронирования вызывает Create внутри сериализуемой транзакции,
// так что удаление и вставка видны снаружи как одна операция.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.deleteExisting(ctx, executor, res); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"menu_id",
			"user_id",
			"reservation_date",
			"reserved_time",
			"menu_reservation",
		).
		Values(
			res.MenuID,
			res.UserID,
			res.Date,
			res.Time,
			res.MenuReservation,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// deleteExisting удаляет существующую бронь по ключу замены
func (r *Repository) deleteExisting(ctx context.Context, executor DBExecutor, res *domain.Reservation) error {
	deleteBuilder := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"user_id": res.UserID})

	if res.MenuID != nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"menu_id": *res.MenuID})
	} else {
		deleteBuilder = deleteBuilder.
			Where(squirrel.Eq{"reservation_date": res.Date}).
			Where("menu_id IS NULL")
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build replacement delete: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute replacement delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByMenuID получает бронь, удерживающую указанную позицию меню
func (r *Repository) GetByMenuID(ctx context.Context, menuID int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"menu_id",
		"user_id",
		"reservation_date",
		"reserved_time",
		"menu_reservation",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"menu_id": menuID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMenuID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.MenuID,
		&res.UserID,
		&res.Date,
		&res.Time,
		&res.MenuReservation,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMenuID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// GetByUserID получает все брони пользователя, свежие первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"menu_id",
		"user_id",
		"reservation_date",
		"reserved_time",
		"menu_reservation",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, reserved_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByDate получает все брони на дату: и меню-брони, и time-only.
// Дата хранится на самой брони (для меню-брони она совпадает с датой меню),
// поэтому соединение по таблице меню не требуется.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"menu_id",
		"user_id",
		"reservation_date",
		"reserved_time",
		"menu_reservation",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"reservation_date": date}).
		OrderBy("reserved_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// DeleteByMenuAndUser удаляет бронь по паре (меню, пользователь).
// Возвращает false без ошибки, если брони не было.
func (r *Repository) DeleteByMenuAndUser(ctx context.Context, menuID, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"menu_id": menuID}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: DeleteByMenuAndUser - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByMenuAndUser - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByMenuAndUser - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// DeleteTimeOnlyByUserAndDate удаляет time-only бронь пользователя на дату.
// Возвращает false без ошибки, если брони не было.
func (r *Repository) DeleteTimeOnlyByUserAndDate(ctx context.Context, userID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"reservation_date": date}).
		Where("menu_id IS NULL").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: DeleteTimeOnlyByUserAndDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteTimeOnlyByUserAndDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteTimeOnlyByUserAndDate - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.MenuID,
			&res.UserID,
			&res.Date,
			&res.Time,
			&res.MenuReservation,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
