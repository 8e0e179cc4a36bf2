// Package policy centralizes the access rules applied by the API: the role
// gate, the board-scope gate, and the administrator self-protection rule.
package policy

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

var (
	ErrAdminRequired  = errors.New("administrator role required")
	ErrBoardNotFound  = errors.New("board not found")
	ErrNotBoardMember = errors.New("user is not a member of the board")
	ErrSelfDelete     = errors.New("users cannot delete themselves")
)

// Policy answers allow/deny questions for a resolved identity against a
// target resource.
type Policy struct {
	boards repository.BoardRepository
}

// New creates a Policy backed by the given board repository.
func New(boards repository.BoardRepository) *Policy {
	return &Policy{boards: boards}
}

// RequireAdmin enforces the role gate.
func (p *Policy) RequireAdmin(actor *models.User) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// AuthorizeBoard enforces the board-scope gate: access is granted to
// administrators and to board members, and to no one else. Existence is
// checked before membership so a missing board is reported as not found,
// never as forbidden.
func (p *Policy) AuthorizeBoard(boardID uint64, actor *models.User) (*models.Board, error) {
	board, err := p.boards.FindByID(boardID, "Members")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	if actor.IsAdmin() || board.HasMember(actor.ID) {
		return board, nil
	}

	return nil, ErrNotBoardMember
}

// CanDeleteUser enforces the role gate plus the self-protection rule: an
// administrator may never delete their own identity.
func (p *Policy) CanDeleteUser(actor *models.User, targetID uint64) error {
	if err := p.RequireAdmin(actor); err != nil {
		return err
	}
	if actor.ID == targetID {
		return ErrSelfDelete
	}
	return nil
}
