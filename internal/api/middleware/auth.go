package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yohan-cho/item-simulator/internal/api/handler/v1/response"
	"github.com/yohan-cho/item-simulator/internal/pkg/jwthelper"
)

// AccountIDKey is the gin context key holding the authenticated account id.
const AccountIDKey = "accountID"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// account id in the context for handlers.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := a.parseBearer(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			ctx.Abort()

			return
		}

		ctx.Set(AccountIDKey, claims.AccountID)
		ctx.Next()
	}
}

// DecodeJWT stores the account id when a valid token is present but lets
// anonymous requests through. Views that only reveal extra detail to the
// owner use this.
func (a *Authenticator) DecodeJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := a.parseBearer(ctx)
		if err == nil {
			ctx.Set(AccountIDKey, claims.AccountID)
		}

		ctx.Next()
	}
}

func (a *Authenticator) parseBearer(ctx *gin.Context) (*jwthelper.Claims, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return nil, errors.New("authorization header is missing")
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil, errors.New("authorization header is not a bearer token")
	}

	return jwthelper.ParseToken([]byte(a.signingKey), token)
}

// GetAccountID reads the authenticated account id set by VerifyJWT or
// DecodeJWT. The bool reports whether the request carried a valid token.
func GetAccountID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(AccountIDKey)
	if !exists {
		return 0, false
	}

	accountID, ok := value.(uint)
	if !ok {
		ctx.AbortWithStatus(http.StatusInternalServerError)

		return 0, false
	}

	return accountID, true
}
