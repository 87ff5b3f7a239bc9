// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/quillnote/quill-note-service/internal/dao"
	"github.com/quillnote/quill-note-service/internal/domain"
	"github.com/quillnote/quill-note-service/internal/service"
	pkgapp "github.com/quillnote/quill-note-service/pkg/app"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	Client *mongo.Client
	Dao    *dao.Dao

	// Repository 层
	NoteRepo domain.NoteRepository
	UserRepo domain.UserRepository

	// Service 层
	NoteService service.NoteService
	UserService service.UserService

	// StartTime 容器创建时间，用于健康检查的运行时长
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// client: Mongo 客户端（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, client *mongo.Client) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if client == nil {
		return nil, fmt.Errorf("database client is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		Client:    client,
		StartTime: time.Now(),
	}

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(client, cfg.Database.Name, dao.WithLogger(logger))

	// 初始化 Repository 层
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.UserRepo = dao.NewUserRepository(a.Dao)

	// 初始化 Service 层（依赖注入）
	a.NoteService = service.NewNoteService(a.NoteRepo, logger)
	a.UserService = service.NewUserService(a.UserRepo, logger)

	logger.Info("App container initialized successfully",
		zap.String("database", cfg.Database.Name))

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close(ctx context.Context) error {
	if a.Dao != nil {
		if err := a.Dao.Close(ctx); err != nil {
			return fmt.Errorf("failed to close database client: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
// 容器未注入日志器时返回 nop 日志器，便于测试中直接构造 App
func (a *App) Logger() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}
