package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/dbmetrics"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/psqlbuilder"
)

// uniqueViolationCode is the postgres error code for unique constraint hits.
const uniqueViolationCode = "23505"

var roomColumns = []string{
	"id",
	"name",
	"type",
	"capacity",
	"building",
	"floor",
	"equipment",
	"active",
	"created_at",
	"updated_at",
}

// Repository is the rooms repository.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a rooms repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new room.
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"name",
			"type",
			"capacity",
			"building",
			"floor",
			"equipment",
			"active",
		).
		Values(
			room.Name,
			room.Type,
			room.Capacity,
			room.Building,
			room.Floor,
			pq.StringArray(room.Equipment),
			room.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time
	return room, nil
}

// GetByID fetches a room by its identifier.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := r.scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}
	return room, nil
}

// List returns rooms ordered by name. When activeOnly is true,
// deactivated rooms are filtered out.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
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

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := r.scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return rooms, nil
}

// GetByIDs fetches several rooms at once, keyed by id.
// Used by read projections to join room summaries onto bookings.
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Room, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*domain.Room{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
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

	rooms := make(map[uuid.UUID]*domain.Room, len(ids))
	for rows.Next() {
		room, err := r.scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		rooms[room.ID] = room
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}
	return rooms, nil
}

// Update applies the non-nil fields of upd to a room.
// Activation state changes only affect future bookability; existing
// bookings are untouched.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, upd domain.RoomUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rooms").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Type != nil {
		updateBuilder = updateBuilder.Set("type", *upd.Type)
	}
	if upd.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *upd.Capacity)
	}
	if upd.Building != nil {
		updateBuilder = updateBuilder.Set("building", *upd.Building)
	}
	if upd.Floor != nil {
		updateBuilder = updateBuilder.Set("floor", *upd.Floor)
	}
	if upd.Equipment != nil {
		updateBuilder = updateBuilder.Set("equipment", pq.StringArray(*upd.Equipment))
	}
	if upd.Active != nil {
		updateBuilder = updateBuilder.Set("active", *upd.Active)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var equipment pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Type,
		&room.Capacity,
		&room.Building,
		&room.Floor,
		&equipment,
		&room.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.Equipment = []string(equipment)
	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time
	return &room, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
