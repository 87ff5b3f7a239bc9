package middleware

import (
	"github.com/quillnote/quill-note-service/pkg/app"
	"github.com/quillnote/quill-note-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 处理未匹配到路由的请求
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.NewResponse(c).ToResponse(code.ErrorNotFoundAPI.WithDetails(c.Request.URL.Path))
		c.Abort()
	}
}
