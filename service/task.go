package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"github.com/to404hanga/pkg404/gotools/retry"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/pkg/contest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskService interface {
	// GetTasks 获取全部题目, 优先读缓存
	GetTasks(ctx context.Context) ([]entity.Task, error)
	// GetTask 获取题目
	GetTask(ctx context.Context, taskID string) (*entity.Task, error)
	// GetTasksByTaskIDs 批量获取题目, 不存在的 id 被忽略
	GetTasksByTaskIDs(ctx context.Context, taskIDs []string) ([]entity.Task, error)
	// CreateTask 创建题目
	CreateTask(ctx context.Context, param *model.CreateTaskParam) error
	// UpdateTask 更新题目
	UpdateTask(ctx context.Context, param *model.UpdateTaskParam) error
	// UpsertImportedTasks 插入导入的题目, 已存在的跳过, 返回新增数量
	UpsertImportedTasks(ctx context.Context, tasks []model.ImportedTask) (int64, error)
	// GetTaskList 分页获取题目列表
	GetTaskList(ctx context.Context, param *model.GetTaskListParam) ([]entity.Task, int, error)
}

const (
	tasksCacheKey       = "tasks:all"
	tasksCacheTTL       = 30 * time.Minute
	importTaskBatchSize = 500
)

type TaskServiceImpl struct {
	db  *gorm.DB
	rdb redis.Cmdable
	log loggerv2.Logger
}

var _ TaskService = (*TaskServiceImpl)(nil)

func NewTaskService(db *gorm.DB, rdb redis.Cmdable, log loggerv2.Logger) TaskService {
	return &TaskServiceImpl{
		db:  db,
		rdb: rdb,
		log: log,
	}
}

// GetTasks 获取全部题目, 优先读缓存
func (s *TaskServiceImpl) GetTasks(ctx context.Context) ([]entity.Task, error) {
	val, err := s.rdb.Get(ctx, tasksCacheKey).Bytes()
	if err == nil {
		var tasks []entity.Task
		if err = json.Unmarshal(val, &tasks); err == nil {
			return tasks, nil
		}
		s.log.WarnContext(ctx, "GetTasks unmarshal cache failed", logger.Error(err))
	} else if !errors.Is(err, redis.Nil) {
		s.log.WarnContext(ctx, "GetTasks read cache failed", logger.Error(err))
	}

	var tasks []entity.Task
	err = s.db.WithContext(ctx).Model(&entity.Task{}).
		Order("contest_id ASC").
		Order("task_id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("GetTasks failed at find tasks: %w", err)
	}

	val, err = json.Marshal(tasks)
	if err != nil {
		s.log.WarnContext(ctx, "GetTasks marshal cache failed", logger.Error(err))
		return tasks, nil
	}
	if err = s.rdb.Set(ctx, tasksCacheKey, val, tasksCacheTTL).Err(); err != nil {
		s.log.WarnContext(ctx, "GetTasks write cache failed", logger.Error(err))
	}
	return tasks, nil
}

// GetTask 获取题目
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID string) (*entity.Task, error) {
	var task entity.Task
	err := s.db.WithContext(ctx).Model(&entity.Task{}).
		Where("task_id = ?", taskID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("GetTask failed: %w", err)
	}
	return &task, nil
}

// GetTasksByTaskIDs 批量获取题目, 不存在的 id 被忽略
func (s *TaskServiceImpl) GetTasksByTaskIDs(ctx context.Context, taskIDs []string) ([]entity.Task, error) {
	if len(taskIDs) == 0 {
		return []entity.Task{}, nil
	}
	var tasks []entity.Task
	err := s.db.WithContext(ctx).Model(&entity.Task{}).
		Where("task_id IN ?", lo.Uniq(taskIDs)).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("GetTasksByTaskIDs failed: %w", err)
	}
	return tasks, nil
}

// CreateTask 创建题目
func (s *TaskServiceImpl) CreateTask(ctx context.Context, param *model.CreateTaskParam) error {
	grade := entity.TaskGradePending
	if param.Grade != "" {
		g, ok := entity.ParseTaskGrade(param.Grade)
		if !ok {
			return fmt.Errorf("CreateTask failed: %w: %s", ErrInvalidTaskGrade, param.Grade)
		}
		grade = g
	}

	task := entity.Task{
		TaskID:         param.TaskID,
		ContestID:      param.ContestID,
		TaskTableIndex: param.TaskTableIndex,
		Title:          param.Title,
		Grade:          grade,
	}
	err := s.db.WithContext(ctx).Create(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTaskAlreadyExists
		}
		return fmt.Errorf("CreateTask failed at create task: %w", err)
	}

	if err = s.invalidateTasksCache(ctx); err != nil {
		return fmt.Errorf("CreateTask failed at invalidate cache: %w", err)
	}
	return nil
}

// UpdateTask 更新题目
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, param *model.UpdateTaskParam) error {
	if _, err := s.GetTask(ctx, param.TaskID); err != nil {
		return err
	}

	updates := map[string]any{}
	if param.Title != nil {
		updates["title"] = *param.Title
	}
	if param.TaskTableIndex != nil {
		updates["task_table_index"] = *param.TaskTableIndex
	}
	if param.Grade != nil {
		g, ok := entity.ParseTaskGrade(*param.Grade)
		if !ok {
			return fmt.Errorf("UpdateTask failed: %w: %s", ErrInvalidTaskGrade, *param.Grade)
		}
		updates["grade"] = g
	}

	// 没有需要修改的字段时直接返回
	if len(updates) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Model(&entity.Task{}).
		Where("task_id = ?", param.TaskID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("UpdateTask failed at update task: %w", err)
	}

	if err = s.invalidateTasksCache(ctx); err != nil {
		return fmt.Errorf("UpdateTask failed at invalidate cache: %w", err)
	}
	return nil
}

// UpsertImportedTasks 插入导入的题目, 已存在的跳过, 返回新增数量
func (s *TaskServiceImpl) UpsertImportedTasks(ctx context.Context, imported []model.ImportedTask) (int64, error) {
	if len(imported) == 0 {
		return 0, nil
	}

	tasks := lo.Map(lo.UniqBy(imported, func(t model.ImportedTask) string {
		return t.TaskID
	}), func(t model.ImportedTask, _ int) entity.Task {
		return entity.Task{
			TaskID:         t.TaskID,
			ContestID:      t.ContestID,
			TaskTableIndex: t.TaskTableIndex,
			Title:          t.Title,
			Grade:          entity.TaskGradePending,
		}
	})

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(tasks, importTaskBatchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("UpsertImportedTasks failed at insert tasks: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		if err := s.invalidateTasksCache(ctx); err != nil {
			return result.RowsAffected, fmt.Errorf("UpsertImportedTasks failed at invalidate cache: %w", err)
		}
	}
	return result.RowsAffected, nil
}

// GetTaskList 分页获取题目列表
func (s *TaskServiceImpl) GetTaskList(ctx context.Context, param *model.GetTaskListParam) ([]entity.Task, int, error) {
	query := s.db.WithContext(ctx).Model(&entity.Task{})
	if param.ContestID != "" {
		query = query.Where("contest_id = ?", param.ContestID)
	}
	if param.Grade != "" {
		g, ok := entity.ParseTaskGrade(param.Grade)
		if !ok {
			return nil, 0, fmt.Errorf("GetTaskList failed: %w: %s", ErrInvalidTaskGrade, param.Grade)
		}
		query = query.Where("grade = ?", g)
	}
	if param.Title != "" {
		query = query.Where("title LIKE ?", "%"+param.Title+"%")
	}
	if param.ContestType != "" {
		contestType := contest.ContestType(param.ContestType)
		if !contestType.Valid() {
			return nil, 0, fmt.Errorf("GetTaskList failed: %w: %s", ErrInvalidContestType, param.ContestType)
		}

		// 比赛分类由 contest_id 推导, 先取出所有比赛再按分类筛选
		var contestIDs []string
		err := s.db.WithContext(ctx).Model(&entity.Task{}).
			Distinct("contest_id").
			Pluck("contest_id", &contestIDs).Error
		if err != nil {
			return nil, 0, fmt.Errorf("GetTaskList failed at pluck contest ids: %w", err)
		}
		contestIDs = lo.Filter(contestIDs, func(id string, _ int) bool {
			return contest.Classify(id) == contestType
		})
		if len(contestIDs) == 0 {
			return []entity.Task{}, 0, nil
		}
		query = query.Where("contest_id IN ?", contestIDs)
	}

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetTaskList failed at count: %w", err)
	}

	var tasks []entity.Task
	err = query.Order("contest_id ASC").
		Order("task_table_index ASC").
		Limit(param.PageSize).
		Offset(param.Offset()).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetTaskList failed at find tasks: %w", err)
	}

	return tasks, int(count), nil
}

// invalidateTasksCache 删除题目缓存, 带重试
func (s *TaskServiceImpl) invalidateTasksCache(ctx context.Context) error {
	return retry.Do(ctx, func() error {
		return s.rdb.Del(ctx, tasksCacheKey).Err()
	})
}
