package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	strictgin "github.com/oapi-codegen/runtime/strictmiddleware/gin"

	"r66slot/api/openapi"
	"r66slot/auction"
)

// statusOf 將拍賣錯誤對應到 HTTP 狀態碼，無法對應時返回 500
func statusOf(err error) int {
	switch {
	case errors.Is(err, auction.ErrNotFound),
		errors.Is(err, auction.ErrBidderNotFound),
		errors.Is(err, auction.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, auction.ErrNotActive),
		errors.Is(err, auction.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, auction.ErrAuctionEnded):
		return http.StatusGone
	case errors.Is(err, auction.ErrBidTooLow),
		errors.Is(err, auction.ErrInvalidAmount),
		errors.Is(err, auction.ErrInvalidAuction):
		return http.StatusBadRequest
	case errors.Is(err, auction.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, auction.ErrBusy):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// abortWithError 依錯誤種類回應，只有非預期的錯誤會記錄為 error
func (impl *ServerImpl) abortWithError(c *gin.Context, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		impl.logger.Error("Request failed", slog.String("op", op), slog.Any("error", err))
		c.AbortWithStatusJSON(status, openapi.ErrorResponse{Error: "Internal server error"})
		return
	}

	body := openapi.ErrorResponse{Error: err.Error()}
	var tooLow *auction.BidTooLowError
	if errors.As(err, &tooLow) {
		body.Minimum = &tooLow.Minimum
	}
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", "1")
	}
	c.AbortWithStatusJSON(status, body)
}

// ErrorMiddleware 將處理函式回傳的拍賣錯誤轉為對應的錯誤回應
func (impl *ServerImpl) ErrorMiddleware(f strictgin.StrictGinHandlerFunc, operationID string) strictgin.StrictGinHandlerFunc {
	return func(c *gin.Context, request interface{}) (interface{}, error) {
		response, err := f(c, request)
		if err != nil {
			impl.abortWithError(c, operationID, err)
			return nil, nil
		}
		return response, nil
	}
}

// requestErrorMiddleware 為只設定了狀態碼的錯誤回應補上內容
// 產生的程式碼在請求內容無法解析時只會回應 400
func requestErrorMiddleware(c *gin.Context) {
	c.Next()
	status := c.Writer.Status()
	if c.Writer.Written() || status < http.StatusBadRequest {
		return
	}
	message := http.StatusText(status)
	if status == http.StatusBadRequest {
		message = "Invalid request body"
	}
	c.JSON(status, openapi.ErrorResponse{Error: message})
}

// paramErrorHandler 處理路徑與查詢參數格式錯誤
func paramErrorHandler(c *gin.Context, err error, statusCode int) {
	c.JSON(statusCode, openapi.ErrorResponse{Error: err.Error()})
}
