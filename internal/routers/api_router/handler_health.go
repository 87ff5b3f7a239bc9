package api_router

import (
	"time"

	"github.com/quillnote/quill-note-service/internal/app"
	pkgapp "github.com/quillnote/quill-note-service/pkg/app"
	"github.com/quillnote/quill-note-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string  `json:"status"`   // "healthy" 或 "unhealthy"
	Version  string  `json:"version"`  // 服务版本号
	Uptime   float64 `json:"uptime"`   // 运行时间（秒）
	Database string  `json:"database"` // "connected" 或 "error"
}

// TestDBResponse 数据库连通性探测响应
type TestDBResponse struct {
	Message    string                 `json:"message"`
	SampleUser map[string]interface{} `json:"sample_user,omitempty"`
}

// Check 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，包括数据库连接
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  h.App.Version().Version,
		Uptime:   time.Since(h.App.StartTime).Seconds(),
		Database: "connected",
	}

	// 检查数据库连接
	if err := h.App.Dao.Ping(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.Failed.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}

// TestDB 数据库连通性探测接口
// @Summary 数据库连通性探测
// @Description 探测数据库连接并返回一条脱敏的用户样本
// @Tags 系统
// @Produce json
// @Success 200 {object} pkgapp.Res{data=TestDBResponse}
// @Failure 500 {object} pkgapp.Res "Database Error"
// @Router /test-db [get]
func (h *HealthHandler) TestDB(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	if err := h.App.Dao.Ping(ctx); err != nil {
		h.logError(ctx, "HealthHandler.TestDB", err)
		response.ToResponse(code.ErrorDBQuery.WithDetails(err.Error()))
		return
	}

	sample, err := h.App.UserService.SampleUser(ctx)
	if err != nil {
		h.logError(ctx, "HealthHandler.TestDB", err)
		response.ToResponse(code.ErrorDBQuery.WithDetails(err.Error()))
		return
	}

	response.ToResponse(code.Success.WithData(TestDBResponse{
		Message:    "Connected successfully!",
		SampleUser: sample,
	}))
}
