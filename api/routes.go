package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	strictgin "github.com/oapi-codegen/runtime/strictmiddleware/gin"

	"r66slot/api/openapi"
)

var _ openapi.StrictServerInterface = (*ServerImpl)(nil)

// RegisterHandlers 註冊 openapi.yaml 描述的所有路由
// 驗證在錯誤轉換之外執行，驗證失敗的請求不會進入處理函式
func (impl *ServerImpl) RegisterHandlers(router gin.IRouter) {
	group := router.Group("", requestErrorMiddleware)
	handler := openapi.NewStrictHandler(impl, []strictgin.StrictGinMiddlewareFunc{
		impl.ErrorMiddleware,
		impl.AuthMiddleware,
	})
	openapi.RegisterHandlersWithOptions(group, handler, openapi.GinServerOptions{
		ErrorHandler: paramErrorHandler,
	})
	group.GET("/openapi.json", impl.GetOpenAPIDocument)
}

// GetOpenAPIDocument 回傳內嵌的 API 文件
func (impl *ServerImpl) GetOpenAPIDocument(c *gin.Context) {
	swagger, err := openapi.GetSwagger()
	if err != nil {
		impl.abortWithError(c, "GetOpenAPIDocument", err)
		return
	}
	c.JSON(http.StatusOK, swagger)
}
