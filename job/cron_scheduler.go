package job

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
)

const defaultJobTimeout = 10 * time.Minute

// JobFunc 定义任务执行函数类型
type JobFunc func(ctx context.Context) error

// JobConfig 任务配置
type JobConfig struct {
	Name        string        // 任务名称
	CronExpr    string        // cron表达式, 带秒
	JobFunc     JobFunc       // 任务执行函数
	Description string        // 任务描述
	Enabled     bool          // 是否启用
	Timeout     time.Duration // 任务超时时间
}

// JobStatus 任务状态
type JobStatus struct {
	Name         string        `json:"name"`
	CronExpr     string        `json:"cron_expr"`
	Description  string        `json:"description"`
	Enabled      bool          `json:"enabled"`
	LastRun      *time.Time    `json:"last_run,omitempty"`
	NextRun      *time.Time    `json:"next_run,omitempty"`
	LastDuration time.Duration `json:"last_duration"`
	LastError    string        `json:"last_error,omitempty"`
	RunCount     int64         `json:"run_count"`
	ErrorCount   int64         `json:"error_count"`
}

var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// CronScheduler cron定时任务调度器
type CronScheduler struct {
	cron        *cron.Cron
	jobs        map[string]*JobConfig
	jobStatuses map[string]*JobStatus
	entries     map[string]cron.EntryID
	log         loggerv2.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex
}

// NewCronScheduler 创建新的cron调度器
func NewCronScheduler(log loggerv2.Logger) *CronScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &CronScheduler{
		cron:        newCron(),
		jobs:        make(map[string]*JobConfig),
		jobStatuses: make(map[string]*JobStatus),
		entries:     make(map[string]cron.EntryID),
		log:         log,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// newCron 支持秒级精度, 上一次未结束时跳过本次
func newCron() *cron.Cron {
	return cron.New(
		cron.WithParser(cronParser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}

// AddJob 添加任务
func (s *CronScheduler) AddJob(config *JobConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if config.Name == "" {
		return fmt.Errorf("job name cannot be empty")
	}

	if config.CronExpr == "" {
		return fmt.Errorf("cron expression cannot be empty")
	}

	if config.JobFunc == nil {
		return fmt.Errorf("job function cannot be nil")
	}

	if config.Timeout == 0 {
		config.Timeout = defaultJobTimeout
	}

	if _, err := cronParser.Parse(config.CronExpr); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	s.jobs[config.Name] = config
	s.jobStatuses[config.Name] = &JobStatus{
		Name:        config.Name,
		CronExpr:    config.CronExpr,
		Description: config.Description,
		Enabled:     config.Enabled,
	}

	s.log.InfoContext(s.ctx, "Job added",
		logger.String("name", config.Name),
		logger.String("cronExpr", config.CronExpr),
		logger.Bool("enabled", config.Enabled),
	)

	return nil
}

// RemoveJob 移除任务
func (s *CronScheduler) RemoveJob(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; !exists {
		return fmt.Errorf("job %s not found", name)
	}

	if id, ok := s.entries[name]; ok {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
	delete(s.jobs, name)
	delete(s.jobStatuses, name)

	s.log.InfoContext(s.ctx, "Job removed", logger.String("name", name))
	return nil
}

// EnableJob 启用任务, 下次 Start 时生效
func (s *CronScheduler) EnableJob(name string) error {
	return s.setEnabled(name, true)
}

// DisableJob 禁用任务, 已调度的任务立即移除
func (s *CronScheduler) DisableJob(name string) error {
	return s.setEnabled(name, false)
}

func (s *CronScheduler) setEnabled(name string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[name]
	if !exists {
		return fmt.Errorf("job %s not found", name)
	}

	job.Enabled = enabled
	if status, ok := s.jobStatuses[name]; ok {
		status.Enabled = enabled
		if !enabled {
			status.NextRun = nil
		}
	}
	if id, ok := s.entries[name]; ok && !enabled {
		s.cron.Remove(id)
		delete(s.entries, name)
	}

	s.log.InfoContext(s.ctx, "Job enabled changed", logger.String("name", name), logger.Bool("enabled", enabled))
	return nil
}

// Start 启动调度器
func (s *CronScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 清空现有任务
	s.cron.Stop()
	s.cron = newCron()
	s.entries = make(map[string]cron.EntryID)

	// 添加所有启用的任务
	for name, job := range s.jobs {
		if !job.Enabled {
			continue
		}
		id, err := s.cron.AddFunc(job.CronExpr, s.wrapJobFunc(name, job))
		if err != nil {
			s.log.ErrorContext(s.ctx, "Failed to add job to cron",
				logger.String("name", name),
				logger.Error(err),
			)
			continue
		}
		s.entries[name] = id
	}

	s.cron.Start()
	s.refreshNextRun()
	s.log.InfoContext(s.ctx, "Cron scheduler started", logger.Int("jobs", len(s.entries)))
	return nil
}

// Stop 停止调度器, 等待运行中的任务结束
func (s *CronScheduler) Stop() {
	s.mu.Lock()
	stopCtx := s.cron.Stop()
	s.cancel()
	s.mu.Unlock()

	<-stopCtx.Done()
	s.log.InfoContext(context.Background(), "Cron scheduler stopped")
}

// refreshNextRun 调用方需持有写锁
func (s *CronScheduler) refreshNextRun() {
	for name, id := range s.entries {
		entry := s.cron.Entry(id)
		if status, ok := s.jobStatuses[name]; ok && !entry.Next.IsZero() {
			next := entry.Next
			status.NextRun = &next
		}
	}
}

// wrapJobFunc 包装任务函数，添加日志、超时、统计等功能
func (s *CronScheduler) wrapJobFunc(name string, job *JobConfig) func() {
	return func() {
		_ = s.runJob(name, job)
	}
}

func (s *CronScheduler) runJob(name string, job *JobConfig) error {
	startTime := time.Now()

	s.mu.Lock()
	status := s.jobStatuses[name]
	if status != nil {
		status.LastRun = &startTime
		status.RunCount++
	}
	s.mu.Unlock()

	ctx := loggerv2.ContextWithFields(s.ctx, logger.String("job", name))
	s.log.InfoContext(ctx, "Job started")

	// 创建带超时的上下文
	ctx, cancel := context.WithTimeout(ctx, job.Timeout)
	defer cancel()

	err := job.JobFunc(ctx)
	duration := time.Since(startTime)

	s.mu.Lock()
	if status != nil {
		status.LastDuration = duration
		if err != nil {
			status.ErrorCount++
			status.LastError = err.Error()
		} else {
			status.LastError = ""
		}
	}
	s.refreshNextRun()
	s.mu.Unlock()

	if err != nil {
		s.log.ErrorContext(ctx, "Job failed", logger.Any("duration", duration), logger.Error(err))
		return err
	}
	s.log.InfoContext(ctx, "Job completed", logger.Any("duration", duration))
	return nil
}

// GetJobStatuses 获取所有任务状态
func (s *CronScheduler) GetJobStatuses() map[string]*JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*JobStatus, len(s.jobStatuses))
	for name, status := range s.jobStatuses {
		statusCopy := *status
		result[name] = &statusCopy
	}

	return result
}

// GetJobStatus 获取指定任务状态
func (s *CronScheduler) GetJobStatus(name string) (*JobStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, exists := s.jobStatuses[name]
	if !exists {
		return nil, fmt.Errorf("job %s not found", name)
	}

	statusCopy := *status
	return &statusCopy, nil
}

// RunJobOnce 手动执行一次任务, 计入任务状态
func (s *CronScheduler) RunJobOnce(name string) error {
	s.mu.RLock()
	job, exists := s.jobs[name]
	s.mu.RUnlock()

	if !exists {
		return fmt.Errorf("job %s not found", name)
	}

	s.log.InfoContext(s.ctx, "Running job manually", logger.String("name", name))
	return s.runJob(name, job)
}
