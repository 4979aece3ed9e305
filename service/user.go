package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"gorm.io/gorm"
)

type UserService interface {
	// GetRoleByID 获取用户角色, 仅正常状态的用户
	GetRoleByID(ctx context.Context, userID uint64) (entity.UserRole, error)
	// GetUserByID 获取用户
	GetUserByID(ctx context.Context, userID uint64) (*entity.User, error)
}

type UserServiceImpl struct {
	db  *gorm.DB
	log loggerv2.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

func NewUserService(db *gorm.DB, log loggerv2.Logger) UserService {
	return &UserServiceImpl{
		db:  db,
		log: log,
	}
}

// GetRoleByID 获取用户角色
func (s *UserServiceImpl) GetRoleByID(ctx context.Context, userID uint64) (entity.UserRole, error) {
	var user entity.User
	err := s.db.WithContext(ctx).
		Where("id = ?", userID).
		Where("status = ?", entity.UserStatusNormal).
		Select("role").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.UserRoleNormal, ErrUserNotFound
		}
		s.log.ErrorContext(ctx, "GetRoleByID failed", logger.Error(err))
		return entity.UserRoleNormal, err
	}
	if user.Role == nil {
		return entity.UserRoleNormal, nil
	}
	return *user.Role, nil
}

// GetUserByID 获取用户
func (s *UserServiceImpl) GetUserByID(ctx context.Context, userID uint64) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("GetUserByID failed: %w", err)
	}
	return &user, nil
}
