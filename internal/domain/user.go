package domain

import "context"

// User 用户领域模型
// Password 永远只保存单向哈希，绝不保存明文
type User struct {
	ID       string
	Username string
	Email    string
	Password string
}

// UserRepository 用户仓储接口
// 用户名唯一性由写入前的存在性检查保证，而非存储层约束
type UserRepository interface {
	// GetByUsername 按用户名精确查找；不存在返回 ErrNotFound
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create 插入用户并返回带新 ID 的记录
	Create(ctx context.Context, user *User) (*User, error)

	// GetAny 返回任意一个用户样本，用于连通性探测；集合为空返回 ErrNotFound
	GetAny(ctx context.Context) (*User, error)
}
