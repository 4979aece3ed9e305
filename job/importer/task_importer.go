package importer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/samber/lo"
	"github.com/to404hanga/pkg404/gotools/retry"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/pkg/contest"
	"github.com/to404hanga/task_tracker/service"
)

const maxResponseBytes = 64 << 20

// problem AtCoder Problems problems.json 中的一项
type problem struct {
	ID           string `json:"id"`
	ContestID    string `json:"contest_id"`
	ProblemIndex string `json:"problem_index"`
	Name         string `json:"name"`
	Title        string `json:"title"`
}

// TaskImporter 从 AtCoder Problems 同步题目, 已存在的题目不覆盖
type TaskImporter struct {
	client       *http.Client
	url          string
	contestTypes map[contest.ContestType]struct{}
	taskSvc      service.TaskService
	log          loggerv2.Logger
}

// NewTaskImporter contestTypes 为空时导入所有 AtCoder 比赛
func NewTaskImporter(client *http.Client, url string, contestTypes []string, taskSvc service.TaskService, log loggerv2.Logger) *TaskImporter {
	types := make(map[contest.ContestType]struct{}, len(contestTypes))
	for _, t := range contestTypes {
		types[contest.ContestType(t)] = struct{}{}
	}
	return &TaskImporter{
		client:       client,
		url:          url,
		contestTypes: types,
		taskSvc:      taskSvc,
		log:          log,
	}
}

// RunImport 运行题目导入任务
func (i *TaskImporter) RunImport(ctx context.Context) error {
	i.log.InfoContext(ctx, "Starting task import job", logger.String("url", i.url))
	start := time.Now()

	var problems []problem
	err := retry.Do(ctx, func() error {
		var fetchErr error
		problems, fetchErr = i.fetch(ctx)
		return fetchErr
	})
	if err != nil {
		return fmt.Errorf("RunImport failed at fetch problems: %w", err)
	}

	tasks := i.convert(problems)
	inserted, err := i.taskSvc.UpsertImportedTasks(ctx, tasks)
	if err != nil {
		return fmt.Errorf("RunImport failed at upsert tasks: %w", err)
	}

	i.log.InfoContext(ctx, "Task import completed",
		logger.Int("fetched", len(problems)),
		logger.Int("candidates", len(tasks)),
		logger.Int64("inserted", inserted),
		logger.Any("duration", time.Since(start)),
	)
	return nil
}

func (i *TaskImporter) fetch(ctx context.Context) ([]problem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.url, nil)
	if err != nil {
		return nil, err
	}
	// AtCoder Problems 要求客户端开启压缩
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	var problems []problem
	if err = json.Unmarshal(body, &problems); err != nil {
		return nil, fmt.Errorf("decode problems failed: %w", err)
	}
	return problems, nil
}

func (i *TaskImporter) convert(problems []problem) []model.ImportedTask {
	return lo.FilterMap(problems, func(p problem, _ int) (model.ImportedTask, bool) {
		if p.ID == "" || p.ContestID == "" || !contest.IsAtCoder(p.ContestID) {
			return model.ImportedTask{}, false
		}
		if len(i.contestTypes) > 0 {
			if _, ok := i.contestTypes[contest.Classify(p.ContestID)]; !ok {
				return model.ImportedTask{}, false
			}
		}
		return model.ImportedTask{
			ContestID:      p.ContestID,
			TaskID:         p.ID,
			TaskTableIndex: p.ProblemIndex,
			Title:          taskTitle(p),
		}, true
	})
}

// taskTitle 优先使用不带题号的 name, 旧数据只有 "A. xxx" 形式的 title
func taskTitle(p problem) string {
	if p.Name != "" {
		return p.Name
	}
	if p.ProblemIndex != "" {
		return strings.TrimPrefix(p.Title, p.ProblemIndex+". ")
	}
	return p.Title
}
