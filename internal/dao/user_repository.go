package dao

import (
	"context"
	"errors"

	"github.com/quillnote/quill-note-service/internal/domain"
	"github.com/quillnote/quill-note-service/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:       m.ID.Hex(),
		Username: m.Username,
		Email:    m.Email,
		Password: m.Password,
	}
}

// GetByUsername 按用户名精确查找用户
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m model.User
	if err := r.dao.Users().FindOne(ctx, bson.M{"username": username}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 插入用户
// 用户名唯一性由 service 层的先查后写保证，这里不做二次检查
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := &model.User{
		ID:       bson.NewObjectID(),
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
	}
	if _, err := r.dao.Users().InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetAny 返回任意一个用户样本，用于连通性探测
func (r *userRepository) GetAny(ctx context.Context) (*domain.User, error) {
	var m model.User
	if err := r.dao.Users().FindOne(ctx, bson.M{}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}
