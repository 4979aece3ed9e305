package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/pkg/contesttable"
)

type ContestTableService interface {
	// GetContestTable 渲染用户在某个分组下的全部表格
	GetContestTable(ctx context.Context, userID uint64, groupName string) (*model.GetContestTableResponse, error)
	// GetGroups 获取全部预置分组
	GetGroups() []model.ContestTableGroup
}

type ContestTableServiceImpl struct {
	taskResultSvc TaskResultService
	log           loggerv2.Logger
}

var _ ContestTableService = (*ContestTableServiceImpl)(nil)

func NewContestTableService(taskResultSvc TaskResultService, log loggerv2.Logger) ContestTableService {
	return &ContestTableServiceImpl{
		taskResultSvc: taskResultSvc,
		log:           log,
	}
}

func (s *ContestTableServiceImpl) GetContestTable(ctx context.Context, userID uint64, groupName string) (*model.GetContestTableResponse, error) {
	group, ok := contesttable.GroupByName(groupName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContestTableGroupNotFound, groupName)
	}

	results, err := s.taskResultSvc.GetTaskResults(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("GetContestTable failed at get task results: %w", err)
	}

	tables := lo.Map(group.Providers(), func(p contesttable.Provider, _ int) contesttable.View {
		return contesttable.Render(p, results)
	})
	return &model.GetContestTableResponse{
		Group:       group.Name,
		ButtonLabel: group.ButtonLabel,
		Tables:      tables,
	}, nil
}

func (s *ContestTableServiceImpl) GetGroups() []model.ContestTableGroup {
	return lo.Map(contesttable.Groups(), func(g *contesttable.Group, _ int) model.ContestTableGroup {
		return model.ContestTableGroup{
			Name:        g.Name,
			ButtonLabel: g.ButtonLabel,
			AriaLabel:   g.AriaLabel,
		}
	})
}
