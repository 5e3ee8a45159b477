package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	strictgin "github.com/oapi-codegen/runtime/strictmiddleware/gin"
	"github.com/samber/lo"

	"r66slot/api/openapi"
	"r66slot/auction"
)

const (
	CustomerTokenCookie = "customer_token"
	contextKeyBidderID  = "bidder_id"
)

var ErrMissingToken = errors.New("missing token")

// CustomerClaims 是商店前台簽發的顧客 token 內容
type CustomerClaims struct {
	CustomerID string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// ParseCustomerToken 解析並驗證 HS256 簽章的顧客 token
func ParseCustomerToken(tokenString string, secret []byte) (*CustomerClaims, error) {
	const op = "ParseCustomerToken"
	token, err := jwt.ParseWithClaims(
		tokenString,
		&CustomerClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomerClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: token claims are invalid", op)
	}
	if claims.CustomerID == "" || claims.Email == "" {
		return nil, fmt.Errorf("%s: token is missing customer identity", op)
	}
	return claims, nil
}

// bearerToken 取出 Authorization 標頭中的 Bearer token
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// customerToken 優先使用 cookie，其次使用 Bearer token
func customerToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(CustomerTokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	if token := bearerToken(c); token != "" {
		return token, nil
	}
	return "", ErrMissingToken
}

var (
	bidderOperations = []string{
		"PostAuctionBid", "PostAuctionWatch", "DeleteAuctionWatch",
		"GetMyBids", "GetMyNotifications", "PutMyNotificationRead", "GetMyWatchlist",
	}
	adminOperations = []string{
		"PostAdminAuction", "GetAdminStats", "DeleteAdminAuction", "PostAdminAuctionCancel",
		"PostAdminAuctionImage", "PostAdminAuctionPayment", "PutAdminBidderBan",
	}
	cronOperations = []string{"PostAuctionCron", "GetAuctionCron"}
)

// AuthMiddleware 依 operationID 套用競標者、後台管理或排程觸發的驗證
func (impl *ServerImpl) AuthMiddleware(f strictgin.StrictGinHandlerFunc, operationID string) strictgin.StrictGinHandlerFunc {
	switch {
	case lo.Contains(bidderOperations, operationID):
		return func(c *gin.Context, request interface{}) (interface{}, error) {
			if !impl.authenticateBidder(c) {
				return nil, nil
			}
			return f(c, request)
		}
	case lo.Contains(adminOperations, operationID):
		return impl.requireToken(f, impl.config.Auth.AdminToken)
	case lo.Contains(cronOperations, operationID):
		return impl.requireToken(f, impl.config.Auth.CronSecret)
	}
	return f
}

// authenticateBidder 驗證顧客 token 並取得對應的競標者，失敗時已寫入回應
// 顧客編號與競標者編號的對應關係不會改變，所以快取在本機
func (impl *ServerImpl) authenticateBidder(c *gin.Context) bool {
	const op = "authenticateBidder"
	tokenString, err := customerToken(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, openapi.ErrorResponse{Error: "Please log in to continue"})
		return false
	}
	claims, err := ParseCustomerToken(tokenString, []byte(impl.config.Auth.CustomerJWTSecret))
	if err != nil {
		impl.logger.Debug("Reject customer token", slog.String("op", op), slog.Any("error", err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, openapi.ErrorResponse{Error: "Please log in to continue"})
		return false
	}

	if cached, ok := impl.bidderCache.Get(claims.CustomerID); ok {
		c.Set(contextKeyBidderID, cached.(uuid.UUID))
		return true
	}
	bidder, err := impl.engine.ResolveBidder(c.Request.Context(), auction.Customer{
		ID:       claims.CustomerID,
		Email:    claims.Email,
		Username: claims.Username,
	})
	if err != nil {
		impl.abortWithError(c, op, err)
		return false
	}
	impl.bidderCache.Add(claims.CustomerID, bidder.ID)
	c.Set(contextKeyBidderID, bidder.ID)
	return true
}

// bidderID 取得驗證後寫入的競標者編號，ctx 是 strict handler 收到的 *gin.Context
func bidderID(ctx context.Context) uuid.UUID {
	return ctx.Value(contextKeyBidderID).(uuid.UUID)
}

func tokenEqual(given, expected string) bool {
	return expected != "" && subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}

// requireToken 要求 Bearer token 與 expected 相同
func (impl *ServerImpl) requireToken(f strictgin.StrictGinHandlerFunc, expected string) strictgin.StrictGinHandlerFunc {
	return func(c *gin.Context, request interface{}) (interface{}, error) {
		if !tokenEqual(bearerToken(c), expected) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, openapi.ErrorResponse{Error: "Unauthorized"})
			return nil, nil
		}
		return f(c, request)
	}
}
