package dao

import (
	"context"
	"errors"
	"time"

	"github.com/quillnote/quill-note-service/internal/domain"
	"github.com/quillnote/quill-note-service/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:         m.ID.Hex(),
		Title:      m.Title,
		Content:    m.Content,
		User:       m.User,
		Tags:       m.Tags,
		IsArchived: m.IsArchived,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Create 持久化笔记
// created_at 与 updated_at 一律由存储层写入当前时间，两者在创建时相等
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	m := &model.Note{
		ID:         bson.NewObjectID(),
		Title:      note.Title,
		Content:    note.Content,
		User:       note.User,
		Tags:       note.Tags,
		IsArchived: note.IsArchived,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}

	if _, err := r.dao.Notes().InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// ListByUser 按归属用户列出笔记，保持存储顺序，不排序
func (r *noteRepository) ListByUser(ctx context.Context, user string) ([]*domain.Note, error) {
	cursor, err := r.dao.Notes().Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ms []*model.Note
	if err := cursor.All(ctx, &ms); err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// GetByID 按 ID 获取单条笔记
func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	var m model.Note
	if err := r.dao.Notes().FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// UpdateByID 应用调用方提供的字段并强制刷新 updated_at
// NoteUpdate 中没有归属字段，归属在这里永远不会被改写
func (r *noteRepository) UpdateByID(ctx context.Context, id string, update *domain.NoteUpdate) (*domain.Note, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	// 没有任何待更新字段时依旧刷新 updated_at
	set := bson.M{"updated_at": time.Now().UTC().Truncate(time.Millisecond)}
	if !update.IsEmpty() {
		if update.Title != nil {
			set["title"] = *update.Title
		}
		if update.Content != nil {
			set["content"] = *update.Content
		}
		if update.Tags != nil {
			set["tags"] = *update.Tags
		}
		if update.IsArchived != nil {
			set["is_archived"] = *update.IsArchived
		}
	}

	result, err := r.dao.Notes().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}

	// 回读更新后的完整记录
	var m model.Note
	if err := r.dao.Notes().FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// DeleteByID 按 ID 删除单条笔记
func (r *noteRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.dao.Notes().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByUser 删除用户的全部笔记，返回删除数量
func (r *noteRepository) DeleteByUser(ctx context.Context, user string) (int64, error) {
	result, err := r.dao.Notes().DeleteMany(ctx, bson.M{"user": user})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
