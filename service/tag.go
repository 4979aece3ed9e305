package service

import (
	"context"
	"errors"
	"fmt"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagService interface {
	// GetTags 获取标签列表
	GetTags(ctx context.Context, param *model.GetTagListParam) ([]entity.Tag, error)
	// GetTagsByTaskID 获取题目的标签, 按 priority 排序
	GetTagsByTaskID(ctx context.Context, taskID string) ([]entity.Tag, error)
	// CreateTag 创建标签
	CreateTag(ctx context.Context, param *model.CreateTagParam) (*entity.Tag, error)
	// UpdateTag 更新标签
	UpdateTag(ctx context.Context, param *model.UpdateTagParam) error
	// AddTaskTag 给题目打标签, 已存在时更新 priority
	AddTaskTag(ctx context.Context, param *model.TaskTagParam) error
	// RemoveTaskTag 移除题目标签
	RemoveTaskTag(ctx context.Context, taskID string, tagID uint64) error
}

type TagServiceImpl struct {
	db  *gorm.DB
	log loggerv2.Logger
}

var _ TagService = (*TagServiceImpl)(nil)

func NewTagService(db *gorm.DB, log loggerv2.Logger) TagService {
	return &TagServiceImpl{
		db:  db,
		log: log,
	}
}

func (s *TagServiceImpl) GetTags(ctx context.Context, param *model.GetTagListParam) ([]entity.Tag, error) {
	query := s.db.WithContext(ctx).Model(&entity.Tag{})
	if param.IsPublished != nil {
		query = query.Where("is_published = ?", *param.IsPublished)
	}
	if param.IsOfficial != nil {
		query = query.Where("is_official = ?", *param.IsOfficial)
	}

	var tags []entity.Tag
	if err := query.Order("id ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("GetTags failed: %w", err)
	}
	return tags, nil
}

func (s *TagServiceImpl) GetTagsByTaskID(ctx context.Context, taskID string) ([]entity.Tag, error) {
	var tags []entity.Tag
	err := s.db.WithContext(ctx).Model(&entity.Tag{}).
		Joins("JOIN task_tag ON task_tag.tag_id = tag.id").
		Where("task_tag.task_id = ?", taskID).
		Order("task_tag.priority ASC").
		Order("tag.id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("GetTagsByTaskID failed: %w", err)
	}
	return tags, nil
}

func (s *TagServiceImpl) CreateTag(ctx context.Context, param *model.CreateTagParam) (*entity.Tag, error) {
	tag := entity.Tag{
		Name:        param.Name,
		IsOfficial:  param.IsOfficial,
		IsPublished: param.IsPublished,
	}
	err := s.db.WithContext(ctx).Create(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTagAlreadyExists
		}
		return nil, fmt.Errorf("CreateTag failed: %w", err)
	}
	return &tag, nil
}

func (s *TagServiceImpl) UpdateTag(ctx context.Context, param *model.UpdateTagParam) error {
	updates := map[string]any{}
	if param.Name != nil {
		updates["name"] = *param.Name
	}
	if param.IsOfficial != nil {
		updates["is_official"] = *param.IsOfficial
	}
	if param.IsPublished != nil {
		updates["is_published"] = *param.IsPublished
	}

	if err := s.checkTagExists(ctx, param.ID); err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Model(&entity.Tag{}).
		Where("id = ?", param.ID).
		Updates(updates).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTagAlreadyExists
		}
		return fmt.Errorf("UpdateTag failed: %w", err)
	}
	return nil
}

func (s *TagServiceImpl) AddTaskTag(ctx context.Context, param *model.TaskTagParam) error {
	if err := s.checkTagExists(ctx, param.TagID); err != nil {
		return err
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Task{}).
		Where("task_id = ?", param.TaskID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("AddTaskTag failed at count task: %w", err)
	}
	if count == 0 {
		return ErrTaskNotFound
	}

	taskTag := entity.TaskTag{
		TaskID:   param.TaskID,
		TagID:    param.TagID,
		Priority: param.Priority,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_id"}, {Name: "tag_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"priority", "updated_at"}),
	}).Create(&taskTag).Error
	if err != nil {
		return fmt.Errorf("AddTaskTag failed at upsert task tag: %w", err)
	}
	return nil
}

func (s *TagServiceImpl) RemoveTaskTag(ctx context.Context, taskID string, tagID uint64) error {
	err := s.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Where("tag_id = ?", tagID).
		Delete(&entity.TaskTag{}).Error
	if err != nil {
		return fmt.Errorf("RemoveTaskTag failed: %w", err)
	}
	return nil
}

func (s *TagServiceImpl) checkTagExists(ctx context.Context, tagID uint64) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Tag{}).
		Where("id = ?", tagID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("checkTagExists failed: %w", err)
	}
	if count == 0 {
		return ErrTagNotFound
	}
	return nil
}
