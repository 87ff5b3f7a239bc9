package service

import (
	"context"
	"errors"

	"github.com/quillnote/quill-note-service/internal/domain"
	"github.com/quillnote/quill-note-service/internal/dto"
	"github.com/quillnote/quill-note-service/pkg/code"
	"github.com/quillnote/quill-note-service/pkg/convert"
	"github.com/quillnote/quill-note-service/pkg/logger"
	"github.com/quillnote/quill-note-service/pkg/util"

	"go.uber.org/zap"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Signup 用户注册，返回 exists/sameEmail 三态结果
	Signup(ctx context.Context, params *dto.SignupRequest) (*dto.SignupResultDTO, error)

	// Login 校验凭证并回显用户名，不签发任何会话凭证
	Login(ctx context.Context, params *dto.LoginRequest) (*dto.LoginResultDTO, error)

	// SampleUser 返回任意用户样本（密码字段已剔除），用于连通性探测
	SampleUser(ctx context.Context) (map[string]interface{}, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo domain.UserRepository
	logger   *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup 用户注册
// 先查后写：已存在时按邮箱是否一致返回三态结果，不写入也不报错；
// 不存在时哈希密码并插入。读写之间没有原子性，并发注册同名用户
// 存在竞态，username 唯一索引是后续的修复路径
func (s *userService) Signup(ctx context.Context, params *dto.SignupRequest) (*dto.SignupResultDTO, error) {
	existing, err := s.userRepo.GetByUsername(ctx, params.Username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, code.ErrorUserSignup.WithDetails(err.Error())
	}

	if existing != nil {
		return &dto.SignupResultDTO{
			Exists:    true,
			SameEmail: existing.Email == params.Email,
		}, nil
	}

	hashed, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorPasswordNotValid.WithDetails(err.Error())
	}

	newUser := &domain.User{
		Username: params.Username,
		Email:    params.Email,
		Password: hashed,
	}
	if _, err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, code.ErrorUserSignup.WithDetails(err.Error())
	}

	s.logger.Info("user signed up", zap.String(logger.FieldUsername, params.Username))

	return &dto.SignupResultDTO{Exists: false, SameEmail: false}, nil
}

// Login 用户登录
// 错误消息区分用户名错误与密码错误，与原有对外约定一致
func (s *userService) Login(ctx context.Context, params *dto.LoginRequest) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, code.ErrorUserLoginUsernameFailed
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if !util.VerifyPasswordHash(params.Password, user.Password) {
		return nil, code.ErrorUserLoginPasswordFailed
	}

	return &dto.LoginResultDTO{Username: user.Username}, nil
}

// SampleUser 连通性探测用的用户样本
// 集合为空不算错误，返回 nil 样本
func (s *userService) SampleUser(ctx context.Context) (map[string]interface{}, error) {
	user, err := s.userRepo.GetAny(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sample, err := convert.StructToMap(user)
	if err != nil {
		return nil, err
	}
	// 样本中绝不回传密码哈希
	delete(sample, "Password")
	return sample, nil
}
