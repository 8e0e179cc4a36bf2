package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/policy"
	"github.com/taskboard/taskboard-api/internal/repository"
)

var ErrBoardNameRequired = errors.New("board name is required")

// BoardService handles board management.
type BoardService struct {
	boardRepo repository.BoardRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(boardRepo repository.BoardRepository) *BoardService {
	return &BoardService{boardRepo: boardRepo}
}

// ListBoards returns the boards visible to the actor: administrators see
// every board, team members only the boards they belong to.
func (s *BoardService) ListBoards(actor *models.User) ([]models.Board, error) {
	var (
		boards []models.Board
		err    error
	)

	if actor.IsAdmin() {
		boards, err = s.boardRepo.ListAll()
	} else {
		boards, err = s.boardRepo.ListByMember(actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	return boards, nil
}

// CreateBoard creates a board with an empty member set.
func (s *BoardService) CreateBoard(actor *models.User, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBoardNameRequired
	}

	board := &models.Board{
		Name:        name,
		CreatedByID: actor.ID,
	}

	if err := s.boardRepo.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// RenameBoard updates a board's name.
func (s *BoardService) RenameBoard(boardID uint64, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBoardNameRequired
	}

	board, err := s.findBoard(boardID)
	if err != nil {
		return nil, err
	}

	board.Name = name
	if err := s.boardRepo.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// DeleteBoard removes a board and its memberships.
func (s *BoardService) DeleteBoard(boardID uint64) error {
	if _, err := s.findBoard(boardID); err != nil {
		return err
	}

	if err := s.boardRepo.Delete(boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}

// ReplaceMembers replaces the board's member set. Duplicate ids in the input
// collapse to one membership, so repeating the same set is idempotent.
func (s *BoardService) ReplaceMembers(boardID uint64, memberIDs []uint64) (*models.Board, error) {
	if _, err := s.findBoard(boardID); err != nil {
		return nil, err
	}

	if err := s.boardRepo.ReplaceMembers(boardID, uniqueUint64(memberIDs)); err != nil {
		return nil, fmt.Errorf("failed to replace members: %w", err)
	}

	return s.findBoard(boardID)
}

func (s *BoardService) findBoard(boardID uint64) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID, "Members")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	return board, nil
}

// uniqueUint64 removes duplicate values while preserving first-seen order.
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
