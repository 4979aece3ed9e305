package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/model"
	"gorm.io/gorm"
)

type WorkBookService interface {
	// CreateWorkBook 创建题单
	CreateWorkBook(ctx context.Context, param *model.CreateWorkBookParam) (*entity.WorkBook, error)
	// GetWorkBook 获取题单及其题目, 未公开的题单仅作者与管理员可见
	GetWorkBook(ctx context.Context, workBookID, operator uint64) (*entity.WorkBook, error)
	// GetWorkBookList 分页获取公开的题单以及操作人自己的题单
	GetWorkBookList(ctx context.Context, param *model.GetWorkBookListParam) ([]entity.WorkBook, int, error)
	// UpdateWorkBook 更新题单, 传入题目时整体替换
	UpdateWorkBook(ctx context.Context, param *model.UpdateWorkBookParam) error
	// DeleteWorkBook 删除题单
	DeleteWorkBook(ctx context.Context, workBookID, operator uint64) error
	// BuildWorkBookTasks 校验题目并生成题单项, priority 从 1 开始
	BuildWorkBookTasks(ctx context.Context, tasks []model.WorkBookTaskParam) ([]entity.WorkBookTask, error)
}

type WorkBookServiceImpl struct {
	db      *gorm.DB
	userSvc UserService
	log     loggerv2.Logger
}

var _ WorkBookService = (*WorkBookServiceImpl)(nil)

func NewWorkBookService(db *gorm.DB, userSvc UserService, log loggerv2.Logger) WorkBookService {
	return &WorkBookServiceImpl{
		db:      db,
		userSvc: userSvc,
		log:     log,
	}
}

func (s *WorkBookServiceImpl) CreateWorkBook(ctx context.Context, param *model.CreateWorkBookParam) (*entity.WorkBook, error) {
	ctx = loggerv2.ContextWithFields(ctx, logger.Uint64("author_id", param.Operator))

	// 官方题单只能由管理员创建
	if param.IsOfficial {
		isAdmin, err := s.isAdmin(ctx, param.Operator)
		if err != nil {
			return nil, fmt.Errorf("CreateWorkBook failed at check role: %w", err)
		}
		if !isAdmin {
			return nil, ErrForbidden
		}
	}

	tasks, err := s.BuildWorkBookTasks(ctx, param.Tasks)
	if err != nil {
		return nil, err
	}

	workBook := entity.WorkBook{
		AuthorID:     param.Operator,
		Title:        param.Title,
		Description:  param.Description,
		EditorialURL: param.EditorialURL,
		IsPublished:  param.IsPublished,
		IsOfficial:   param.IsOfficial,
		WorkBookType: entity.WorkBookType(param.WorkBookType),
		Tasks:        tasks,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&workBook).Error
	})
	if err != nil {
		return nil, fmt.Errorf("CreateWorkBook failed at create workbook: %w", err)
	}

	s.log.InfoContext(ctx, "CreateWorkBook success",
		logger.Uint64("workbook_id", workBook.ID),
		logger.Int("task_count", len(tasks)))
	return &workBook, nil
}

func (s *WorkBookServiceImpl) GetWorkBook(ctx context.Context, workBookID, operator uint64) (*entity.WorkBook, error) {
	workBook, err := s.getWorkBookWithTasks(ctx, workBookID)
	if err != nil {
		return nil, err
	}
	if workBook.IsPublished || workBook.AuthorID == operator {
		return workBook, nil
	}

	isAdmin, err := s.isAdmin(ctx, operator)
	if err != nil {
		return nil, fmt.Errorf("GetWorkBook failed at check role: %w", err)
	}
	if !isAdmin {
		return nil, ErrWorkBookNotFound
	}
	return workBook, nil
}

func (s *WorkBookServiceImpl) GetWorkBookList(ctx context.Context, param *model.GetWorkBookListParam) ([]entity.WorkBook, int, error) {
	query := s.db.WithContext(ctx).Model(&entity.WorkBook{}).
		Where("is_published = ? OR author_id = ?", true, param.Operator)
	if param.AuthorID != nil {
		query = query.Where("author_id = ?", *param.AuthorID)
	}
	if param.WorkBookType != "" {
		query = query.Where("workbook_type = ?", param.WorkBookType)
	}
	if param.IsOfficial != nil {
		query = query.Where("is_official = ?", *param.IsOfficial)
	}

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetWorkBookList failed at count: %w", err)
	}

	var workBooks []entity.WorkBook
	err = query.Order("id DESC").
		Limit(param.PageSize).
		Offset(param.Offset()).
		Find(&workBooks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetWorkBookList failed at find workbooks: %w", err)
	}
	return workBooks, int(count), nil
}

func (s *WorkBookServiceImpl) UpdateWorkBook(ctx context.Context, param *model.UpdateWorkBookParam) error {
	ctx = loggerv2.ContextWithFields(ctx, logger.Uint64("workbook_id", param.ID))

	if err := s.checkEditable(ctx, param.ID, param.Operator); err != nil {
		return err
	}

	updates := map[string]any{}
	if param.Title != nil {
		updates["title"] = *param.Title
	}
	if param.Description != nil {
		updates["description"] = *param.Description
	}
	if param.EditorialURL != nil {
		updates["editorial_url"] = *param.EditorialURL
	}
	if param.IsPublished != nil {
		updates["is_published"] = *param.IsPublished
	}
	if param.WorkBookType != nil {
		updates["workbook_type"] = *param.WorkBookType
	}

	var tasks []entity.WorkBookTask
	if param.Tasks != nil {
		var err error
		tasks, err = s.BuildWorkBookTasks(ctx, param.Tasks)
		if err != nil {
			return err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			err := tx.Model(&entity.WorkBook{}).
				Where("id = ?", param.ID).
				Updates(updates).Error
			if err != nil {
				return err
			}
		}
		if tasks == nil {
			return nil
		}

		err := tx.Where("workbook_id = ?", param.ID).Delete(&entity.WorkBookTask{}).Error
		if err != nil {
			return err
		}
		for i := range tasks {
			tasks[i].WorkBookID = param.ID
		}
		return tx.Create(&tasks).Error
	})
	if err != nil {
		return fmt.Errorf("UpdateWorkBook failed: %w", err)
	}
	return nil
}

func (s *WorkBookServiceImpl) DeleteWorkBook(ctx context.Context, workBookID, operator uint64) error {
	if err := s.checkEditable(ctx, workBookID, operator); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("workbook_id = ?", workBookID).Delete(&entity.WorkBookTask{}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", workBookID).Delete(&entity.WorkBook{}).Error
	})
	if err != nil {
		return fmt.Errorf("DeleteWorkBook failed: %w", err)
	}
	return nil
}

func (s *WorkBookServiceImpl) BuildWorkBookTasks(ctx context.Context, params []model.WorkBookTaskParam) ([]entity.WorkBookTask, error) {
	taskIDs := lo.Map(params, func(p model.WorkBookTaskParam, _ int) string {
		return p.TaskID
	})
	if err := validateWorkBookTaskIDs(taskIDs); err != nil {
		return nil, err
	}

	var existing []string
	err := s.db.WithContext(ctx).Model(&entity.Task{}).
		Where("task_id IN ?", taskIDs).
		Pluck("task_id", &existing).Error
	if err != nil {
		return nil, fmt.Errorf("BuildWorkBookTasks failed at pluck tasks: %w", err)
	}
	if missing, _ := lo.Difference(taskIDs, existing); len(missing) > 0 {
		return nil, fmt.Errorf("%w: tasks not found: %v", ErrInvalidWorkBookTasks, missing)
	}

	return lo.Map(params, func(p model.WorkBookTaskParam, i int) entity.WorkBookTask {
		return entity.WorkBookTask{
			TaskID:   p.TaskID,
			Priority: i + 1,
			Comment:  p.Comment,
		}
	}), nil
}

// validateWorkBookTaskIDs 题单至少包含一道题, 且题目不能重复
func validateWorkBookTaskIDs(taskIDs []string) error {
	if len(taskIDs) == 0 {
		return fmt.Errorf("%w: at least one task is required", ErrInvalidWorkBookTasks)
	}
	if dup := lo.FindDuplicates(taskIDs); len(dup) > 0 {
		return fmt.Errorf("%w: duplicated tasks: %v", ErrInvalidWorkBookTasks, dup)
	}
	return nil
}

func (s *WorkBookServiceImpl) getWorkBookWithTasks(ctx context.Context, workBookID uint64) (*entity.WorkBook, error) {
	var workBook entity.WorkBook
	err := s.db.WithContext(ctx).Model(&entity.WorkBook{}).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("priority ASC")
		}).
		Where("id = ?", workBookID).
		First(&workBook).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkBookNotFound
		}
		return nil, fmt.Errorf("getWorkBookWithTasks failed: %w", err)
	}
	return &workBook, nil
}

// checkEditable 仅作者和管理员可以修改或删除题单
func (s *WorkBookServiceImpl) checkEditable(ctx context.Context, workBookID, operator uint64) error {
	var workBook entity.WorkBook
	err := s.db.WithContext(ctx).Model(&entity.WorkBook{}).
		Select("id", "author_id").
		Where("id = ?", workBookID).
		First(&workBook).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkBookNotFound
		}
		return fmt.Errorf("checkEditable failed at find workbook: %w", err)
	}
	if workBook.AuthorID == operator {
		return nil
	}

	isAdmin, err := s.isAdmin(ctx, operator)
	if err != nil {
		return fmt.Errorf("checkEditable failed at check role: %w", err)
	}
	if !isAdmin {
		return ErrForbidden
	}
	return nil
}

func (s *WorkBookServiceImpl) isAdmin(ctx context.Context, userID uint64) (bool, error) {
	role, err := s.userSvc.GetRoleByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return role == entity.UserRoleAdmin, nil
}
