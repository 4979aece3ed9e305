package common

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/pkg/contest"
)

// TaskResultSource 导出的数据来源
type TaskResultSource interface {
	GetTaskResults(ctx context.Context, userID uint64) ([]entity.TaskResult, error)
}

// Headers 导出文件的表头
var Headers = []string{
	"比赛",
	"题号",
	"题目",
	"难度",
	"状态",
	"是否通过",
	"更新时间",
	"链接",
}

// FetchTaskResults 获取用户的题目结果, contestType 非空时按比赛分类过滤
func FetchTaskResults(ctx context.Context, source TaskResultSource, userID uint64, contestType string) ([]entity.TaskResult, error) {
	results, err := source.GetTaskResults(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch task results failed: %w", err)
	}
	if contestType == "" {
		return results, nil
	}
	return lo.Filter(results, func(r entity.TaskResult, _ int) bool {
		return contest.Classify(r.ContestID) == contest.ContestType(contestType)
	}), nil
}

// Row 一条结果对应的一行
func Row(r entity.TaskResult) []string {
	isAC := "否"
	if r.IsAC {
		isAC = "是"
	}
	updatedAt := ""
	if !r.UpdatedAt.IsZero() {
		updatedAt = r.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return []string{
		contest.NameLabel(r.ContestID),         // 比赛
		r.TaskTableIndex,                       // 题号
		r.Title,                                // 题目
		r.Grade.Label(),                        // 难度
		r.SubmissionStatusLabelName,            // 状态
		isAC,                                   // 是否通过
		updatedAt,                              // 更新时间
		contest.TaskURL(r.ContestID, r.TaskID), // 链接
	}
}
