package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warroom-board-api/internal/domain"
)

// ErrStaleBoard is returned by Save when another writer committed first.
// Callers map it to a CONFLICT error and may retry with a fresh load.
var ErrStaleBoard = errors.New("board was modified concurrently")

// BoardRepository defines the interface for board aggregate data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	Save(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create persists a new board aggregate
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return err
	}
	return nil
}

// FindByID loads the full aggregate
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindForUser returns boards the user owns or is listed as a member of,
// newest first. Soft-delete filtering happens in the service against the
// loaded aggregates.
func (r *boardRepositoryImpl) FindForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	memberDoc := fmt.Sprintf(`[{"user_id":%q}]`, userID.String())
	if err := r.db.WithContext(ctx).
		Where("created_by = ? OR members @> ?::jsonb", userID, memberDoc).
		Order("updated_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Save writes the whole aggregate back with an optimistic version check:
// the update only applies if nobody bumped the version since this aggregate
// was loaded. RowsAffected == 0 means a concurrent writer won.
func (r *boardRepositoryImpl) Save(ctx context.Context, board *domain.Board) error {
	prev := board.Version
	board.Version = prev + 1

	res := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("id = ? AND version = ?", board.ID, prev).
		Select("title", "status", "version", "members", "deleted_for", "columns", "updated_at").
		Updates(board)
	if res.Error != nil {
		board.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		board.Version = prev
		return ErrStaleBoard
	}
	return nil
}

// Delete permanently removes the board row
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Board{}, "id = ?", id).Error
}
