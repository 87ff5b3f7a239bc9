// Package dao 实现数据访问层
package dao

import (
	"context"
	"time"

	"github.com/quillnote/quill-note-service/internal/model"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// DatabaseConfig 数据库连接配置
type DatabaseConfig struct {
	// URI MongoDB 连接串
	URI string
	// Name 数据库名
	Name string
	// Timeout 连接与探活超时
	Timeout time.Duration
	// MaxPoolSize 连接池上限
	MaxPoolSize uint64
	// MinPoolSize 连接池下限
	MinPoolSize uint64
}

// Dao 封装 Mongo 客户端与数据库句柄
// 客户端由启动流程创建并注入，进程内不存在包级共享连接；
// 关闭动作由 App 容器在优雅关闭时触发
type Dao struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// Option Dao 可选依赖注入
type Option func(*Dao)

// WithLogger 注入日志器
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = logger
	}
}

// New 创建 Dao 实例
func New(client *mongo.Client, name string, opts ...Option) *Dao {
	d := &Dao{
		client: client,
		db:     client.Database(name),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDBEngine 创建 Mongo 客户端并通过 ping 验证连通性
func NewDBEngine(c DatabaseConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(c.URI).
		SetMaxPoolSize(c.MaxPoolSize).
		SetMinPoolSize(c.MinPoolSize)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// DB 返回数据库句柄
func (d *Dao) DB() *mongo.Database {
	return d.db
}

// Notes 笔记集合
func (d *Dao) Notes() *mongo.Collection {
	return d.db.Collection(model.NoteCollection)
}

// Users 用户集合
func (d *Dao) Users() *mongo.Collection {
	return d.db.Collection(model.UserCollection)
}

// Ping 探活
func (d *Dao) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close 断开客户端连接
func (d *Dao) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
