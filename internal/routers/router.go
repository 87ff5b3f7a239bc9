// Package routers 组装 HTTP 路由与中间件链
package routers

import (
	"time"

	"github.com/quillnote/quill-note-service/internal/app"
	"github.com/quillnote/quill-note-service/internal/middleware"
	"github.com/quillnote/quill-note-service/internal/routers/api_router"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// NewRouter 创建主路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	r.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
	r.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
	r.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
	r.Use(middleware.CorsWithConfig(cfg.Cors.AllowOrigins))
	r.Use(middleware.LangWithTranslator(uni))
	r.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

	// 创建 Handlers（注入 App Container）
	noteHandler := api_router.NewNoteHandler(appContainer)
	userHandler := api_router.NewUserHandler(appContainer)
	healthHandler := api_router.NewHealthHandler(appContainer)

	notes := r.Group("/notes")
	{
		notes.POST("/", noteHandler.Create)
		notes.GET("/user/:user", noteHandler.ListByUser)
		notes.DELETE("/user/:user", noteHandler.DeleteByUser)
		notes.GET("/:note_id", noteHandler.Get)
		notes.PUT("/:note_id", noteHandler.Update)
		notes.DELETE("/:note_id", noteHandler.Delete)
	}

	r.POST("/signup", userHandler.Signup)
	r.POST("/login", userHandler.Login)

	r.GET("/test-db", healthHandler.TestDB)
	r.GET("/health", healthHandler.Check)

	r.NoRoute(middleware.NoFound())

	return r
}
