package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/request"
	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/response"
	"github.com/yohan-cho/item-simulator/internal/config"
	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/pkg/jwthelper"
	"github.com/yohan-cho/item-simulator/internal/service"
)

type AuthService interface {
	SignUp(ctx context.Context, loginID, password string) (domain.Account, error)
	SignIn(ctx context.Context, loginID, password string) (domain.Account, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignUp godoc
// @Summary      Create a new account
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignUpRequest true "request body"
// @Success      201      {object}   response.SignUpResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sign-up [post]
func (h *AuthHandler) HandleSignUp(ctx *gin.Context) {
	var req request.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	account, err := h.svc.SignUp(ctx.Request.Context(), req.ID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountIDExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAccountIDExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignUp -> h.svc.SignUp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.SignUpResponse{
		Message: fmt.Sprintf("account %v has been created", account.LoginID),
		ID:      account.LoginID,
	})
}

// HandleSignIn godoc
// @Summary      Sign in and receive a bearer token
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignInRequest true "request body"
// @Success      200      {object}   response.SignInResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sign-in [post]
func (h *AuthHandler) HandleSignIn(ctx *gin.Context) {
	var req request.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	account, err := h.svc.SignIn(ctx.Request.Context(), req.ID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("account", "id", req.ID))
			return
		}
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrWrongPassword))
			return
		}

		err = fmt.Errorf("v1.HandleSignIn -> h.svc.SignIn -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), account.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleSignIn -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Authorization", "Bearer "+token)
	ctx.JSON(http.StatusOK, response.SignInResponse{
		Message: "signed in successfully",
		Token:   token,
	})
}
