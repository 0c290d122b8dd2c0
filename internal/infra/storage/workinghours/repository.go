package workinghours

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

const tableName = "working_hours"

// Repository репозиторий расписания работы по дням недели
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает сохраненное расписание, отсортированное по дню недели
// Дни без записи в таблице в результат не попадают
func (r *Repository) GetAll(ctx context.Context) ([]domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "is_open", "open_time", "close_time").
		From(tableName).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.WorkingHours, 0, 7)
	for rows.Next() {
		var wh domain.WorkingHours
		if err := rows.Scan(&wh.DayOfWeek, &wh.IsOpen, &wh.OpenTime, &wh.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		hours = append(hours, wh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - iterate rows: %w", ErrScanRow, err)
	}

	return hours, nil
}

// Upsert сохраняет расписание переданных дней, перезаписывая существующие строки
// Для атомарной замены нескольких дней вызывать внутри транзакции
func (r *Repository) Upsert(ctx context.Context, hours []domain.WorkingHours) error {
	if len(hours) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert(tableName).
		Columns("day_of_week", "is_open", "open_time", "close_time")
	for _, wh := range hours {
		insert = insert.Values(wh.DayOfWeek, wh.IsOpen, wh.OpenTime, wh.CloseTime)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (day_of_week) DO UPDATE SET " +
			"is_open = EXCLUDED.is_open, open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// DeleteExcept удаляет расписание всех дней, не входящих в keep
// Удаленный день недели считается закрытым
func (r *Repository) DeleteExcept(ctx context.Context, keep []int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete(tableName)
	if len(keep) > 0 {
		deleteBuilder = deleteBuilder.Where(squirrel.NotEq{"day_of_week": keep})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteExcept - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteExcept - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}

// ReplaceAll заменяет расписание целиком: переданные дни сохраняются, остальные удаляются
// Вызывать внутри транзакции
func (r *Repository) ReplaceAll(ctx context.Context, hours []domain.WorkingHours) error {
	keep := make([]int, 0, len(hours))
	for _, wh := range hours {
		keep = append(keep, wh.DayOfWeek)
	}

	if err := r.DeleteExcept(ctx, keep); err != nil {
		return fmt.Errorf("ReplaceAll: %w", err)
	}
	if err := r.Upsert(ctx, hours); err != nil {
		return fmt.Errorf("ReplaceAll: %w", err)
	}
	return nil
}
