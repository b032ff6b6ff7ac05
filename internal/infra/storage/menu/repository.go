package menu

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

// Repository репозиторий для работы с позициями меню
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую позицию меню на указанную дату
func (r *Repository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("menu_items").
		Columns("name", "menu_date", "reserved").
		Values(item.Name, item.Date, item.Reserved).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetByID получает позицию меню по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"menu_date",
		"reserved",
		"created_at",
		"updated_at",
	).
		From("menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var item domain.MenuItem
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Date,
		&item.Reserved,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan menu item: %v", ErrScanRow, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}

// GetByDate получает все позиции меню на дату, упорядоченные по ID.
// Внутри транзакции добавляет FOR UPDATE для блокировки строк дня —
// используется в протоколе бронирования для защиты инварианта
// "не более одного зарезервированного меню на дату".
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"menu_date",
		"reserved",
		"created_at",
		"updated_at",
	).
		From("menu_items").
		Where(squirrel.Eq{"menu_date": date}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanMenuItems(rows)
}

// GetByIDs получает позиции меню по списку ID
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result := make(map[int64]*domain.MenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"menu_date",
		"reserved",
		"created_at",
		"updated_at",
	).
		From("menu_items").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items, err := r.scanMenuItems(rows)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		result[item.ID] = item
	}

	return result, nil
}

// SetReserved устанавливает флаг бронирования позиции меню.
// Единственная точка изменения флага — вызывается только движком бронирования
// внутри его транзакций.
func (r *Repository) SetReserved(ctx context.Context, id int64, reserved bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("menu_items").
		Set("reserved", reserved).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetReserved - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetReserved - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetReserved - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMenuNotFound
	}

	return nil
}

// Delete удаляет позицию меню
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMenuNotFound
	}

	return nil
}

// scanMenuItems сканирует результаты запроса в слайс позиций меню
func (r *Repository) scanMenuItems(rows *sql.Rows) ([]*domain.MenuItem, error) {
	items := make([]*domain.MenuItem, 0)

	for rows.Next() {
		var item domain.MenuItem
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Date,
			&item.Reserved,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanMenuItems - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMenuItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
