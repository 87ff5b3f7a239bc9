package api_router

import (
	"github.com/quillnote/quill-note-service/internal/app"
	"github.com/quillnote/quill-note-service/internal/dto"
	pkgapp "github.com/quillnote/quill-note-service/pkg/app"
	"github.com/quillnote/quill-note-service/pkg/code"
	apperrors "github.com/quillnote/quill-note-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler user API router handler
// UserHandler 用户 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Signup user registration
// @Summary User signup
// @Description Handle user signup HTTP request. An existing username is reported through the exists/sameEmail flags instead of an error.
// @Description 处理用户注册 HTTP 请求。用户名已存在时通过 exists/sameEmail 标志返回，不作为错误处理。
// @Tags User
// @Accept json
// @Produce json
// @Param params body dto.SignupRequest true "Signup Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.SignupResultDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters"
// @Router /signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SignupRequest{}

	// Parameter binding and validation
	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Signup.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	result, err := h.App.UserService.Signup(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Signup", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	if result.Exists {
		response.ToResponse(code.SuccessUserExists.WithData(result))
		return
	}
	response.ToResponse(code.SuccessSignup.WithData(result))
}

// Login user login
// @Summary User login
// @Description Handle user login HTTP request, validate credentials and echo the username. No session token is issued.
// @Description 处理用户登录 HTTP 请求，校验凭证并回显用户名，不签发会话凭证。
// @Tags User
// @Accept json
// @Produce json
// @Param params body dto.LoginRequest true "Login Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.LoginResultDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Username / Invalid Password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LoginRequest{}

	// Parameter binding and validation
	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	result, err := h.App.UserService.Login(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessLogin.WithData(result))
}
