package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/request"
	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/response"
	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/service"
)

type ItemService interface {
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleCreateItem godoc
// @Summary      Add an item definition to the catalog
// @Tags         items
// @Produce      json
// @Param        request   body      request.CreateItemRequest true "request body"
// @Success      201      {object}   response.CreateItemResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items-add [post]
// @Security BearerAuth
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), domain.Item{
		Code:   req.ItemCode,
		Name:   req.ItemName,
		Price:  *req.ItemPrice,
		Health: req.ItemStat.Health,
		Power:  req.ItemStat.Power,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrItemNameExists))
			return
		}
		if errors.Is(err, service.ErrItemCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrItemCodeExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.CreateItemResponse{
		Message: fmt.Sprintf("item %v has been created", item.Name),
		Data: response.CreateItemData{
			ItemCode: item.Code,
			ItemStat: response.ItemStat{
				Health: item.Health,
				Power:  item.Power,
			},
			ItemPrice: item.Price,
		},
	})
}

// HandleListItems godoc
// @Summary      List the item catalog
// @Tags         items
// @Produce      json
// @Success      200      {array}    response.ItemListEntry
// @Failure      500      {object}   response.Err
// @Router       /items [get]
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	entries := make([]response.ItemListEntry, len(items))
	for i, item := range items {
		entries[i] = response.ItemListEntry{
			ItemCode:  item.Code,
			ItemName:  item.Name,
			ItemPrice: item.Price,
		}
	}

	ctx.JSON(http.StatusOK, entries)
}
