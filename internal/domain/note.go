package domain

import (
	"context"
	"time"
)

// Note 笔记领域模型
// User 字段是归属用户名，创建后不可变；它只是一个弱引用字符串，
// 不存在外键约束（删除用户不会级联删除笔记）
type Note struct {
	ID         string
	Title      string
	Content    string
	User       string
	Tags       []string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NoteUpdate 部分更新的类型化字段白名单
// nil 表示调用方未提供该字段；User 被刻意排除在外以保证归属不可变
type NoteUpdate struct {
	Title      *string
	Content    *string
	Tags       *[]string
	IsArchived *bool
}

// IsEmpty 是否没有任何待更新字段
func (u *NoteUpdate) IsEmpty() bool {
	return u == nil || (u.Title == nil && u.Content == nil && u.Tags == nil && u.IsArchived == nil)
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// Create 持久化笔记，写入时间戳并返回带新 ID 的完整记录
	Create(ctx context.Context, note *Note) (*Note, error)

	// ListByUser 返回指定用户的全部笔记，按存储顺序；无记录时返回空切片
	ListByUser(ctx context.Context, user string) ([]*Note, error)

	// GetByID 按 ID 获取笔记；不存在返回 ErrNotFound，格式错误返回 ErrInvalidID
	GetByID(ctx context.Context, id string) (*Note, error)

	// UpdateByID 应用部分更新并强制刷新 updated_at，返回更新后的完整记录
	UpdateByID(ctx context.Context, id string, update *NoteUpdate) (*Note, error)

	// DeleteByID 按 ID 删除；不存在返回 ErrNotFound
	DeleteByID(ctx context.Context, id string) error

	// DeleteByUser 删除指定用户的全部笔记，返回删除数量
	DeleteByUser(ctx context.Context, user string) (int64, error)
}
