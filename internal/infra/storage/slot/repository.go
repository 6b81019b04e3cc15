package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	"github.com/KeshavDaBoss/smartparkv5/pkg/dbmetrics"
	"github.com/KeshavDaBoss/smartparkv5/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами парковки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по идентификатору.
// Если в контексте активная транзакция, строка блокируется (FOR UPDATE),
// это используется в usecase бронирования для проверки занятости без гонок.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"mall_id",
		"level_id",
		"slot_number",
		"category",
		"online_bookable",
		"graph_node_id",
		"anchor_node_id",
		"occupied",
	).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.MallID,
		&slot.LevelID,
		&slot.SlotNumber,
		&slot.Category,
		&slot.OnlineBookable,
		&slot.GraphNodeID,
		&slot.AnchorNodeID,
		&slot.Occupied,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// List получает список слотов.
// Если mallID указан, фильтрует по моллу.
func (r *Repository) List(ctx context.Context, mallID *string) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"mall_id",
		"level_id",
		"slot_number",
		"category",
		"online_bookable",
		"graph_node_id",
		"anchor_node_id",
		"occupied",
	).
		From("slots").
		OrderBy("mall_id ASC, level_id ASC, slot_number ASC")

	if mallID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"mall_id": *mallID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.MallID,
			&slot.LevelID,
			&slot.SlotNumber,
			&slot.Category,
			&slot.OnlineBookable,
			&slot.GraphNodeID,
			&slot.AnchorNodeID,
			&slot.Occupied,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// SetOccupied обновляет физическую занятость слота.
// Сигнал приходит извне (датчики), ядро этим состоянием не управляет.
func (r *Repository) SetOccupied(ctx context.Context, id string, occupied bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("occupied", occupied).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOccupied - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
