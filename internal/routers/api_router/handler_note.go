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

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建笔记
// @Summary 创建笔记
// @Description 处理笔记创建请求，验证参数并返回带生成 ID 的完整记录
// @Tags 笔记
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "创建参数"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Failure 400 {object} pkgapp.Res "参数错误"
// @Router /notes/ [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// ListByUser 获取用户全部笔记
// @Summary 获取用户笔记列表
// @Description 返回指定用户名拥有的全部笔记，无记录时返回空列表
// @Tags 笔记
// @Produce json
// @Param user path string true "用户名"
// @Success 200 {object} pkgapp.Res{data=[]dto.NoteDTO} "成功"
// @Router /notes/user/{user} [get]
func (h *NoteHandler) ListByUser(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	user := c.Param("user")

	ctx := c.Request.Context()

	list, err := h.App.NoteService.ListByUser(ctx, user)
	if err != nil {
		h.logError(ctx, "NoteHandler.ListByUser", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(list))
}

// Get 获取单条笔记详情
// @Summary 获取笔记详情
// @Description 返回指定十六进制对象 ID 的笔记
// @Tags 笔记
// @Produce json
// @Param note_id path string true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Failure 404 {object} pkgapp.Res "笔记不存在或 ID 非法"
// @Router /notes/{note_id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	noteID := c.Param("note_id")

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Get(ctx, noteID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Update 部分更新笔记
// @Summary 更新笔记
// @Description 将提交的字段应用到笔记并返回更新后的记录，归属不可变更
// @Tags 笔记
// @Accept json
// @Produce json
// @Param note_id path string true "笔记 ID"
// @Param params body dto.NoteUpdateRequest true "更新参数"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Failure 404 {object} pkgapp.Res "笔记不存在或 ID 非法"
// @Router /notes/{note_id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	noteID := c.Param("note_id")
	params := &dto.NoteUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Update(ctx, noteID, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Delete 删除单条笔记
// @Summary 删除笔记
// @Description 删除指定十六进制对象 ID 的笔记
// @Tags 笔记
// @Produce json
// @Param note_id path string true "笔记 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Failure 404 {object} pkgapp.Res "笔记不存在或 ID 非法"
// @Router /notes/{note_id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	noteID := c.Param("note_id")

	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, noteID); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoteDelete)
}

// DeleteByUser 删除用户全部笔记
// @Summary 删除用户全部笔记
// @Description 删除指定用户名拥有的全部笔记并返回删除数量
// @Tags 笔记
// @Produce json
// @Param user path string true "用户名"
// @Success 200 {object} pkgapp.Res "成功"
// @Failure 404 {object} pkgapp.Res "用户没有笔记"
// @Router /notes/user/{user} [delete]
func (h *NoteHandler) DeleteByUser(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	user := c.Param("user")

	ctx := c.Request.Context()

	count, err := h.App.NoteService.DeleteByUser(ctx, user)
	if err != nil {
		h.logError(ctx, "NoteHandler.DeleteByUser", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoteDeleteByUser.WithMsgArgs(count, user))
}
