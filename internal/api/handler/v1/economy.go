package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/request"
	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/response"
	"github.com/yohan-cho/item-simulator/internal/api/middleware"
	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/service"
)

type EconomyService interface {
	Buy(ctx context.Context, accountID, characterID uint, lines []domain.TradeLine) ([]domain.TradeReceipt, error)
	Sell(ctx context.Context, accountID, characterID uint, lines []domain.TradeLine) ([]domain.TradeReceipt, error)
	Equip(ctx context.Context, accountID, characterID uint, codes []int) ([]domain.EquipResult, domain.Character, error)
	Unequip(ctx context.Context, accountID, characterID uint, codes []int) ([]domain.EquipResult, domain.Character, error)
	PickupMoney(ctx context.Context, accountID, characterID uint) (int, domain.Character, error)
	GetInventory(ctx context.Context, accountID, characterID uint) ([]domain.InventoryEntry, error)
	GetEquipment(ctx context.Context, characterID uint) ([]domain.EquipmentEntry, error)
}

type EconomyHandler struct {
	svc EconomyService
}

func NewEconomyHandler(svc EconomyService) *EconomyHandler {
	return &EconomyHandler{
		svc: svc,
	}
}

// HandleBuyItems godoc
// @Summary      Buy items from the catalog
// @Description  Accepts a single {item_code, count} object or an ordered array. The whole order commits or nothing does.
// @Tags         economy
// @Accept       json
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Param        request  body      request.TradeLineRequest true "one line or an array of lines"
// @Success      200      {array}    response.TradeEntry
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items-buy/{charID} [patch]
// @Security BearerAuth
func (h *EconomyHandler) HandleBuyItems(ctx *gin.Context) {
	accountID, characterID, lines, ok := h.bindTrade(ctx)
	if !ok {
		return
	}

	receipts, err := h.svc.Buy(ctx.Request.Context(), accountID, characterID, lines)
	if err != nil {
		h.renderEconomyErr(ctx, fmt.Errorf("v1.HandleBuyItems -> h.svc.Buy -> %w", err), characterID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewTradeEntries(receipts))
}

// HandleSellItems godoc
// @Summary      Sell items back at 60% of the catalog price
// @Tags         economy
// @Accept       json
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Param        request  body      request.TradeLineRequest true "one line or an array of lines"
// @Success      200      {array}    response.TradeEntry
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items-sell/{charID} [patch]
// @Security BearerAuth
func (h *EconomyHandler) HandleSellItems(ctx *gin.Context) {
	accountID, characterID, lines, ok := h.bindTrade(ctx)
	if !ok {
		return
	}

	receipts, err := h.svc.Sell(ctx.Request.Context(), accountID, characterID, lines)
	if err != nil {
		h.renderEconomyErr(ctx, fmt.Errorf("v1.HandleSellItems -> h.svc.Sell -> %w", err), characterID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewTradeEntries(receipts))
}

// HandleEquipItems godoc
// @Summary      Equip items from the inventory
// @Description  The final entry carries the character's post-operation stats.
// @Tags         economy
// @Accept       json
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Param        request  body      request.EquipLineRequest true "one line or an array of lines"
// @Success      200      {array}    response.EquipEntry
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items-equip/{charID} [patch]
// @Security BearerAuth
func (h *EconomyHandler) HandleEquipItems(ctx *gin.Context) {
	accountID, characterID, codes, ok := h.bindEquip(ctx)
	if !ok {
		return
	}

	results, character, err := h.svc.Equip(ctx.Request.Context(), accountID, characterID, codes)
	if err != nil {
		h.renderEconomyErr(ctx, fmt.Errorf("v1.HandleEquipItems -> h.svc.Equip -> %w", err), characterID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEquipEntries(results, character))
}

// HandleUnequipItems godoc
// @Summary      Take off equipped items
// @Tags         economy
// @Accept       json
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Param        request  body      request.EquipLineRequest true "one line or an array of lines"
// @Success      200      {array}    response.EquipEntry
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items-takeOff/{charID} [patch]
// @Security BearerAuth
func (h *EconomyHandler) HandleUnequipItems(ctx *gin.Context) {
	accountID, characterID, codes, ok := h.bindEquip(ctx)
	if !ok {
		return
	}

	results, character, err := h.svc.Unequip(ctx.Request.Context(), accountID, characterID, codes)
	if err != nil {
		h.renderEconomyErr(ctx, fmt.Errorf("v1.HandleUnequipItems -> h.svc.Unequip -> %w", err), characterID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEquipEntries(results, character))
}

// HandlePickupMoney godoc
// @Summary      Pick up a random amount of money
// @Tags         economy
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Success      200      {array}    response.MoneyPickupResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /money/{charID} [get]
// @Security BearerAuth
func (h *EconomyHandler) HandlePickupMoney(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingIdentity))
		return
	}

	characterID, ok := parseCharacterID(ctx)
	if !ok {
		return
	}

	amount, character, err := h.svc.PickupMoney(ctx.Request.Context(), accountID, characterID)
	if err != nil {
		h.renderEconomyErr(ctx, fmt.Errorf("v1.HandlePickupMoney -> h.svc.PickupMoney -> %w", err), characterID)
		return
	}

	ctx.JSON(http.StatusOK, []response.MoneyPickupResponse{{
		Message: "picked up some money",
		Amount:  amount,
		Balance: character.Money,
	}})
}

// HandleGetInventory godoc
// @Summary      List an owned character's inventory stacks
// @Tags         economy
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Success      200      {array}    domain.InventoryEntry
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items-inventory/{charID} [get]
// @Security BearerAuth
func (h *EconomyHandler) HandleGetInventory(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingIdentity))
		return
	}

	characterID, ok := parseCharacterID(ctx)
	if !ok {
		return
	}

	entries, err := h.svc.GetInventory(ctx.Request.Context(), accountID, characterID)
	if err != nil {
		h.renderEconomyErr(ctx, fmt.Errorf("v1.HandleGetInventory -> h.svc.GetInventory -> %w", err), characterID)
		return
	}

	if entries == nil {
		entries = []domain.InventoryEntry{}
	}
	ctx.JSON(http.StatusOK, entries)
}

// HandleGetEquipment godoc
// @Summary      List a character's equipped items
// @Tags         economy
// @Produce      json
// @Param        charID   path      int  true  "character id"
// @Success      200      {array}    domain.EquipmentEntry
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items-equip/{charID} [get]
func (h *EconomyHandler) HandleGetEquipment(ctx *gin.Context) {
	characterID, ok := parseCharacterID(ctx)
	if !ok {
		return
	}

	entries, err := h.svc.GetEquipment(ctx.Request.Context(), characterID)
	if err != nil {
		h.renderEconomyErr(ctx, fmt.Errorf("v1.HandleGetEquipment -> h.svc.GetEquipment -> %w", err), characterID)
		return
	}

	if entries == nil {
		entries = []domain.EquipmentEntry{}
	}
	ctx.JSON(http.StatusOK, entries)
}

func (h *EconomyHandler) bindTrade(ctx *gin.Context) (uint, uint, []domain.TradeLine, bool) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingIdentity))
		return 0, 0, nil, false
	}

	characterID, ok := parseCharacterID(ctx)
	if !ok {
		return 0, 0, nil, false
	}

	data, err := ctx.GetRawData()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, 0, nil, false
	}

	reqLines, err := request.ParseTradeLines(data)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, 0, nil, false
	}

	lines := make([]domain.TradeLine, len(reqLines))
	for i, line := range reqLines {
		lines[i] = domain.TradeLine{
			ItemCode: line.ItemCode,
			Count:    line.Count,
		}
	}

	return accountID, characterID, lines, true
}

func (h *EconomyHandler) bindEquip(ctx *gin.Context) (uint, uint, []int, bool) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingIdentity))
		return 0, 0, nil, false
	}

	characterID, ok := parseCharacterID(ctx)
	if !ok {
		return 0, 0, nil, false
	}

	data, err := ctx.GetRawData()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, 0, nil, false
	}

	reqLines, err := request.ParseEquipLines(data)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, 0, nil, false
	}

	codes := make([]int, len(reqLines))
	for i, line := range reqLines {
		codes[i] = line.ItemCode
	}

	return accountID, characterID, codes, true
}

func (h *EconomyHandler) renderEconomyErr(ctx *gin.Context, err error, characterID uint) {
	switch {
	case errors.Is(err, service.ErrCharacterNotFound):
		response.RenderErr(ctx, response.ErrNotFound("character", "id", characterID))
	case errors.Is(err, service.ErrItemNotFound):
		response.RenderErr(ctx, response.ErrNotFoundErr(service.ErrItemNotFound))
	case errors.Is(err, service.ErrStackNotFound):
		response.RenderErr(ctx, response.ErrNotFoundErr(service.ErrStackNotFound))
	case errors.Is(err, service.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientStock))
	case errors.Is(err, service.ErrInsufficientMoney):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientMoney))
	case errors.Is(err, service.ErrInvalidQuantity):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
	case errors.Is(err, service.ErrAlreadyEquipped):
		response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyEquipped))
	case errors.Is(err, service.ErrNotEquipped):
		response.RenderErr(ctx, response.ErrConflict(service.ErrNotEquipped))
	case errors.Is(err, service.ErrNotCharacterOwner):
		response.RenderErr(ctx, response.ErrUnauthorized(service.ErrNotCharacterOwner))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
