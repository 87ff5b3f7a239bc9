// Package service 实现业务逻辑层
package service

import (
	"context"
	"errors"

	"github.com/quillnote/quill-note-service/internal/domain"
	"github.com/quillnote/quill-note-service/internal/dto"
	"github.com/quillnote/quill-note-service/pkg/code"
	"github.com/quillnote/quill-note-service/pkg/convert"
	"github.com/quillnote/quill-note-service/pkg/logger"
	"github.com/quillnote/quill-note-service/pkg/timex"

	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// Create 创建笔记，返回带生成 ID 与时间戳的完整记录
	Create(ctx context.Context, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// ListByUser 获取指定用户的全部笔记，无记录时返回空列表而非错误
	ListByUser(ctx context.Context, user string) ([]*dto.NoteDTO, error)

	// Get 按 ID 获取单条笔记
	Get(ctx context.Context, id string) (*dto.NoteDTO, error)

	// Update 部分更新，归属不可变，updated_at 强制刷新
	Update(ctx context.Context, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 按 ID 删除
	Delete(ctx context.Context, id string) error

	// DeleteByUser 删除用户全部笔记并返回删除数量；数量为零视为用户不存在
	DeleteByUser(ctx context.Context, user string) (int64, error)
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *noteService) domainToDTO(note *domain.Note) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		User:       note.User,
		Tags:       note.Tags,
		IsArchived: note.IsArchived,
		CreatedAt:  timex.Time(note.CreatedAt),
		UpdatedAt:  timex.Time(note.UpdatedAt),
	}
}

// mapNoteError 将仓储层哨兵错误映射为对外错误码
func (s *noteService) mapNoteError(err error, notFound *code.Code) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return code.ErrorNoteIDNotValid
	case errors.Is(err, domain.ErrNotFound):
		return notFound
	default:
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	note := &domain.Note{
		Title:      params.Title,
		Content:    params.Content,
		User:       params.User,
		Tags:       params.Tags,
		IsArchived: params.IsArchived,
	}

	created, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(created), nil
}

// ListByUser 获取用户全部笔记
func (s *noteService) ListByUser(ctx context.Context, user string) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.ListByUser(ctx, user)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	list := make([]*dto.NoteDTO, 0, len(notes))
	for _, note := range notes {
		list = append(list, s.domainToDTO(note))
	}
	return list, nil
}

// Get 按 ID 获取单条笔记
func (s *noteService) Get(ctx context.Context, id string) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNoteError(err, code.ErrorNoteNotFound)
	}
	return s.domainToDTO(note), nil
}

// Update 部分更新笔记
func (s *noteService) Update(ctx context.Context, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	// 请求字段拷贝到类型化白名单；归属字段不在白名单内
	update := &domain.NoteUpdate{}
	if err := convert.StructAssign(update, params); err != nil {
		return nil, code.ErrorInvalidParams.WithDetails(err.Error())
	}

	note, err := s.noteRepo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, s.mapNoteError(err, code.ErrorNoteNotFound)
	}
	return s.domainToDTO(note), nil
}

// Delete 按 ID 删除笔记
func (s *noteService) Delete(ctx context.Context, id string) error {
	if err := s.noteRepo.DeleteByID(ctx, id); err != nil {
		return s.mapNoteError(err, code.ErrorNoteDeleteNotFound)
	}
	return nil
}

// DeleteByUser 删除用户全部笔记
// 删除数量为零时按"用户不存在"处理，这与"用户没有笔记"无法区分，
// 属于沿袭原有行为的有意简化
func (s *noteService) DeleteByUser(ctx context.Context, user string) (int64, error) {
	count, err := s.noteRepo.DeleteByUser(ctx, user)
	if err != nil {
		return 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if count == 0 {
		return 0, code.ErrorUserNoNotes
	}

	s.logger.Info("notes deleted by user",
		zap.String(logger.FieldUser, user),
		zap.Int64(logger.FieldCount, count),
	)
	return count, nil
}
