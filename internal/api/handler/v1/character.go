package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/request"
	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/response"
	"github.com/yohan-cho/item-simulator/internal/api/middleware"
	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/service"
)

var errMissingIdentity = errors.New("missing account identity")

type CharacterService interface {
	CreateCharacter(ctx context.Context, accountID uint, name string) (domain.Character, error)
	GetCharacter(ctx context.Context, id uint) (domain.Character, error)
	DeleteCharacter(ctx context.Context, accountID, characterID uint) (domain.Character, error)
}

type CharacterHandler struct {
	svc CharacterService
}

func NewCharacterHandler(svc CharacterService) *CharacterHandler {
	return &CharacterHandler{
		svc: svc,
	}
}

// HandleCreateCharacter godoc
// @Summary      Create a character for the signed-in account
// @Tags         characters
// @Produce      json
// @Param        request   body      request.CreateCharacterRequest true "request body"
// @Success      201      {object}   response.CreateCharacterResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /characters [post]
// @Security BearerAuth
func (h *CharacterHandler) HandleCreateCharacter(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingIdentity))
		return
	}

	var req request.CreateCharacterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	character, err := h.svc.CreateCharacter(ctx.Request.Context(), accountID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCharacterNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCharacterNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCharacter -> h.svc.CreateCharacter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.CreateCharacterResponse{
		Message: fmt.Sprintf("character %v has been created", character.Name),
		Data: response.CreateCharacterData{
			CharacterID: character.ID,
		},
	})
}

// HandleGetCharacter godoc
// @Summary      Get character details
// @Description  Money is only included when the caller owns the character.
// @Tags         characters
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Success      200      {object}   response.CharacterDetailResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /characters/{charID} [get]
func (h *CharacterHandler) HandleGetCharacter(ctx *gin.Context) {
	characterID, ok := parseCharacterID(ctx)
	if !ok {
		return
	}

	character, err := h.svc.GetCharacter(ctx.Request.Context(), characterID)
	if err != nil {
		if errors.Is(err, service.ErrCharacterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("character", "id", characterID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCharacter -> h.svc.GetCharacter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	detail := response.CharacterDetailResponse{
		Name:   character.Name,
		Health: character.Health,
		Power:  character.Power,
	}

	if accountID, authenticated := middleware.GetAccountID(ctx); authenticated && character.IsOwnedBy(accountID) {
		money := character.Money
		detail.Money = &money
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleDeleteCharacter godoc
// @Summary      Delete an owned character
// @Tags         characters
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Success      200      {object}   response.DeleteCharacterResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /characters/{charID} [delete]
// @Security BearerAuth
func (h *CharacterHandler) HandleDeleteCharacter(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingIdentity))
		return
	}

	characterID, ok := parseCharacterID(ctx)
	if !ok {
		return
	}

	character, err := h.svc.DeleteCharacter(ctx.Request.Context(), accountID, characterID)
	if err != nil {
		if errors.Is(err, service.ErrCharacterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("character", "id", characterID))
			return
		}
		if errors.Is(err, service.ErrNotCharacterOwner) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrNotCharacterOwner))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCharacter -> h.svc.DeleteCharacter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeleteCharacterResponse{
		Message: fmt.Sprintf("character %v has been deleted", character.Name),
	})
}

func parseCharacterID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("charID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid character id %q", raw)))
		return 0, false
	}

	return uint(id), true
}
