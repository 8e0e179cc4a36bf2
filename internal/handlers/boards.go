package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/dto"
	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/middleware"
	"github.com/taskboard/taskboard-api/internal/policy"
	"github.com/taskboard/taskboard-api/internal/services"
)

// BoardHandler coordinates board management handlers.
type BoardHandler struct {
	boardService *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// ListBoards returns the boards visible to the caller.
func (h *BoardHandler) ListBoards(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	boards, err := h.boardService.ListBoards(actor)
	if err != nil {
		apierrors.InternalError(c, "Failed to load boards")
		return
	}

	c.JSON(http.StatusOK, gin.H{"boards": dto.ToBoardDTOs(boards)})
}

// CreateBoard creates a board.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateBoardRequest struct {
		Name string `json:"name"`
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(actor, req.Name)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoardDTO(*board))
}

// RenameBoard updates a board's name.
func (h *BoardHandler) RenameBoard(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid board ID")
		return
	}

	type RenameBoardRequest struct {
		Name string `json:"name"`
	}

	var req RenameBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boardService.RenameBoard(boardID, req.Name)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(*board))
}

// DeleteBoard deletes a board.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid board ID")
		return
	}

	if err := h.boardService.DeleteBoard(boardID); err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted"})
}

// ReplaceMembers replaces a board's member set.
func (h *BoardHandler) ReplaceMembers(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid board ID")
		return
	}

	type ReplaceMembersRequest struct {
		MemberIDs *[]uint64 `json:"member_ids"`
	}

	var req ReplaceMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberIDs == nil {
		apierrors.BadRequest(c, "member_ids must be an array")
		return
	}

	board, err := h.boardService.ReplaceMembers(boardID, *req.MemberIDs)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(*board))
}

func respondBoardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBoardNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, policy.ErrBoardNotFound):
		apierrors.NotFound(c, "Board not found")
	default:
		apierrors.InternalError(c, "")
	}
}
