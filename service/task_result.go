package service

import (
	"context"
	"fmt"
	"sort"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/pkg/contest"
	"github.com/to404hanga/task_tracker/pkg/contesttable"
)

type TaskResultService interface {
	// GetTaskResults 获取用户在全部题目上的结果
	GetTaskResults(ctx context.Context, userID uint64) ([]entity.TaskResult, error)
	// GetTaskResultsByTaskIDs 获取用户在给定题目上的结果
	GetTaskResultsByTaskIDs(ctx context.Context, userID uint64, taskIDs []string) ([]entity.TaskResult, error)
	// GetTaskResult 获取用户在某题上的结果
	GetTaskResult(ctx context.Context, userID uint64, contestID, taskID string) (*entity.TaskResult, error)
	// UpdateTaskResult 更新用户在某题上的提交状态
	UpdateTaskResult(ctx context.Context, userID uint64, taskID, statusName string) (*entity.TaskResult, error)
}

type TaskResultServiceImpl struct {
	taskSvc   TaskService
	answerSvc AnswerService
	log       loggerv2.Logger
}

var _ TaskResultService = (*TaskResultServiceImpl)(nil)

func NewTaskResultService(taskSvc TaskService, answerSvc AnswerService, log loggerv2.Logger) TaskResultService {
	return &TaskResultServiceImpl{
		taskSvc:   taskSvc,
		answerSvc: answerSvc,
		log:       log,
	}
}

func (s *TaskResultServiceImpl) GetTaskResults(ctx context.Context, userID uint64) ([]entity.TaskResult, error) {
	tasks, err := s.taskSvc.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetTaskResults failed at get tasks: %w", err)
	}
	answers, err := s.answerSvc.GetAnswers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("GetTaskResults failed at get answers: %w", err)
	}
	return MergeTaskResults(tasks, answers, userID), nil
}

func (s *TaskResultServiceImpl) GetTaskResultsByTaskIDs(ctx context.Context, userID uint64, taskIDs []string) ([]entity.TaskResult, error) {
	tasks, err := s.taskSvc.GetTasksByTaskIDs(ctx, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("GetTaskResultsByTaskIDs failed at get tasks: %w", err)
	}
	answers, err := s.answerSvc.GetAnswers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("GetTaskResultsByTaskIDs failed at get answers: %w", err)
	}
	return MergeTaskResults(tasks, answers, userID), nil
}

func (s *TaskResultServiceImpl) GetTaskResult(ctx context.Context, userID uint64, contestID, taskID string) (*entity.TaskResult, error) {
	task, err := s.taskSvc.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.ContestID != contestID {
		return nil, ErrTaskNotFound
	}

	answer, err := s.answerSvc.GetAnswer(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("GetTaskResult failed at get answer: %w", err)
	}
	result := newTaskResult(*task, answer, userID)
	return &result, nil
}

func (s *TaskResultServiceImpl) UpdateTaskResult(ctx context.Context, userID uint64, taskID, statusName string) (*entity.TaskResult, error) {
	status, ok := entity.SubmissionStatusByName(statusName)
	if !ok {
		return nil, fmt.Errorf("UpdateTaskResult failed: %w: %s", ErrInvalidSubmissionStatus, statusName)
	}

	task, err := s.taskSvc.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err = s.answerSvc.UpsertAnswer(ctx, userID, task, status); err != nil {
		return nil, fmt.Errorf("UpdateTaskResult failed at upsert answer: %w", err)
	}

	answer, err := s.answerSvc.GetAnswer(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("UpdateTaskResult failed at get answer: %w", err)
	}
	result := newTaskResult(*task, answer, userID)
	return &result, nil
}

// MergeTaskResults 每道题生成一条结果, 没有回答的题目视为未挑战
func MergeTaskResults(tasks []entity.Task, answers map[string]entity.TaskAnswer, userID uint64) []entity.TaskResult {
	results := make([]entity.TaskResult, 0, len(tasks))
	for _, task := range tasks {
		var answer *entity.TaskAnswer
		if a, ok := answers[task.TaskID]; ok {
			answer = &a
		}
		results = append(results, newTaskResult(task, answer, userID))
	}
	SortTaskResults(results)
	return results
}

// SortTaskResults 按比赛优先级, 比赛 ID, 比赛内题号排序
func SortTaskResults(results []entity.TaskResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		pa, pb := contest.ContestPriority(a.ContestID), contest.ContestPriority(b.ContestID)
		if pa != pb {
			return pa < pb
		}
		if a.ContestID != b.ContestID {
			return a.ContestID < b.ContestID
		}
		return contesttable.LessTaskTableIndex(a.TaskTableIndex, b.TaskTableIndex)
	})
}

func newTaskResult(task entity.Task, answer *entity.TaskAnswer, userID uint64) entity.TaskResult {
	status := entity.SubmissionStatusNS
	var updatedAt = task.UpdatedAt
	if answer != nil {
		if s, ok := entity.SubmissionStatusByID(answer.StatusID); ok {
			status = s
		}
		updatedAt = answer.UpdatedAt
	}
	return entity.TaskResult{
		ContestID:                 task.ContestID,
		TaskID:                    task.TaskID,
		TaskTableIndex:            task.TaskTableIndex,
		Title:                     task.Title,
		Grade:                     task.Grade,
		UserID:                    userID,
		StatusID:                  status.ID,
		StatusName:                status.Name,
		SubmissionStatusLabelName: status.LabelName,
		SubmissionStatusImagePath: status.ImagePath,
		IsAC:                      status.IsAC,
		UpdatedAt:                 updatedAt,
	}
}
