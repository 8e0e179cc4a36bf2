package repository

import (
	"github.com/taskboard/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// Create creates a new board
func (r *GormBoardRepository) Create(board *models.Board) error {
	return r.db.Create(board).Error
}

// FindByID finds a board by ID with optional preloading
func (r *GormBoardRepository) FindByID(id uint64, preload ...string) (*models.Board, error) {
	var board models.Board
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// ListAll retrieves every board, newest first
func (r *GormBoardRepository) ListAll() ([]models.Board, error) {
	var boards []models.Board
	if err := r.db.Preload("Members").Order("created_at DESC").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// ListByMember retrieves the boards a user is a member of, newest first
func (r *GormBoardRepository) ListByMember(userID uint64) ([]models.Board, error) {
	var boards []models.Board
	memberSubQuery := r.db.Model(&models.BoardMember{}).
		Select("1").
		Where("board_members.board_id = boards.id").
		Where("board_members.user_id = ?", userID)

	err := r.db.Preload("Members").
		Where("EXISTS (?)", memberSubQuery).
		Order("created_at DESC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// Update updates a board
func (r *GormBoardRepository) Update(board *models.Board) error {
	return r.db.Save(board).Error
}

// Delete soft deletes a board and removes its memberships
func (r *GormBoardRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&models.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, id).Error
	})
}

// ReplaceMembers replaces the board's member set with the given user IDs.
// The composite primary key plus the upsert clause keep the operation
// idempotent: replacing with the same set leaves the membership unchanged.
func (r *GormBoardRepository) ReplaceMembers(boardID uint64, userIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("board_id = ?", boardID)
		if len(userIDs) > 0 {
			query = query.Where("user_id NOT IN ?", userIDs)
		}
		if err := query.Delete(&models.BoardMember{}).Error; err != nil {
			return err
		}

		if len(userIDs) == 0 {
			return nil
		}

		members := make([]models.BoardMember, len(userIDs))
		for i, userID := range userIDs {
			members[i] = models.BoardMember{
				BoardID: boardID,
				UserID:  userID,
			}
		}

		return tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "board_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).
			Create(&members).Error
	})
}
