package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohan-cho/item-simulator/internal/api/middleware"
	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/service"
)

type stubEconomyService struct {
	err      error
	receipts []domain.TradeReceipt
	results  []domain.EquipResult
}

func (s *stubEconomyService) Buy(context.Context, uint, uint, []domain.TradeLine) ([]domain.TradeReceipt, error) {
	return s.receipts, s.err
}

func (s *stubEconomyService) Sell(context.Context, uint, uint, []domain.TradeLine) ([]domain.TradeReceipt, error) {
	return s.receipts, s.err
}

func (s *stubEconomyService) Equip(context.Context, uint, uint, []int) ([]domain.EquipResult, domain.Character, error) {
	return s.results, domain.Character{}, s.err
}

func (s *stubEconomyService) Unequip(context.Context, uint, uint, []int) ([]domain.EquipResult, domain.Character, error) {
	return s.results, domain.Character{}, s.err
}

func (s *stubEconomyService) PickupMoney(context.Context, uint, uint) (int, domain.Character, error) {
	return 500, domain.Character{Money: 10500}, s.err
}

func (s *stubEconomyService) GetInventory(context.Context, uint, uint) ([]domain.InventoryEntry, error) {
	return nil, s.err
}

func (s *stubEconomyService) GetEquipment(context.Context, uint) ([]domain.EquipmentEntry, error) {
	return nil, s.err
}

// newEconomyTestRouter mounts the handler behind a middleware that fakes
// an authenticated account, so the tests exercise the handler alone.
func newEconomyTestRouter(svc *stubEconomyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewEconomyHandler(svc)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.AccountIDKey, uint(10))
	})
	router.PATCH("/items-buy/:charID", handler.HandleBuyItems)
	router.PATCH("/items-sell/:charID", handler.HandleSellItems)
	router.PATCH("/items-equip/:charID", handler.HandleEquipItems)
	router.PATCH("/items-takeOff/:charID", handler.HandleUnequipItems)
	router.GET("/items-inventory/:charID", handler.HandleGetInventory)
	router.GET("/items-equip/:charID", handler.HandleGetEquipment)
	router.GET("/money/:charID", handler.HandlePickupMoney)

	return router
}

func patchJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestEconomyHandler_HandleBuyItems(t *testing.T) {
	t.Run("returns the receipts", func(t *testing.T) {
		svc := &stubEconomyService{
			receipts: []domain.TradeReceipt{{ItemName: "Potion", Amount: 150, Balance: 9850}},
		}
		router := newEconomyTestRouter(svc)

		recorder := patchJSON(t, router, "/items-buy/1", `{"item_code": 303, "count": 2}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[{"item_name": "Potion", "amount": 150, "balance": 9850}]`, recorder.Body.String())
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		router := newEconomyTestRouter(&stubEconomyService{})

		recorder := patchJSON(t, router, "/items-buy/1", `"nope"`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects a bad character id", func(t *testing.T) {
		router := newEconomyTestRouter(&stubEconomyService{})

		recorder := patchJSON(t, router, "/items-buy/zero", `{"item_code": 303, "count": 2}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestEconomyHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown character", service.ErrCharacterNotFound, http.StatusNotFound},
		{"unknown item", service.ErrItemNotFound, http.StatusNotFound},
		{"item not held", service.ErrStackNotFound, http.StatusNotFound},
		{"not enough stock", service.ErrInsufficientStock, http.StatusBadRequest},
		{"not enough money", service.ErrInsufficientMoney, http.StatusBadRequest},
		{"bad quantity", service.ErrInvalidQuantity, http.StatusBadRequest},
		{"already equipped", service.ErrAlreadyEquipped, http.StatusConflict},
		{"not equipped", service.ErrNotEquipped, http.StatusConflict},
		{"not the owner", service.ErrNotCharacterOwner, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEconomyTestRouter(&stubEconomyService{err: tt.err})

			recorder := patchJSON(t, router, "/items-buy/1", `{"item_code": 303, "count": 2}`)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestEconomyHandler_HandleEquipItems(t *testing.T) {
	svc := &stubEconomyService{
		results: []domain.EquipResult{{ItemName: "Short Sword", PowerDelta: 5}},
	}
	router := newEconomyTestRouter(svc)

	recorder := patchJSON(t, router, "/items-equip/1", `{"item_code": 101}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"power":"+5"`)
	assert.Contains(t, recorder.Body.String(), `"health":"+0"`)
}

func TestEconomyHandler_HandlePickupMoney(t *testing.T) {
	router := newEconomyTestRouter(&stubEconomyService{})

	req, err := http.NewRequest(http.MethodGet, "/money/1", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"amount":500`)
	assert.Contains(t, recorder.Body.String(), `"balance":10500`)
}

func TestEconomyHandler_HandleGetInventory_Empty(t *testing.T) {
	router := newEconomyTestRouter(&stubEconomyService{})

	req, err := http.NewRequest(http.MethodGet, "/items-inventory/1", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}
