package model

import "github.com/to404hanga/task_tracker/entity"

type GetTaskListParam struct {
	CommonParam `json:"-"`
	PageParam

	ContestID   string `form:"contest_id" json:"contest_id"`
	ContestType string `form:"contest_type" json:"contest_type"` // 按比赛分类过滤, 如 ABC, EDPC
	Grade       string `form:"grade" json:"grade"`
	Title       string `form:"title" json:"title"` // 标题模糊匹配
}

type GetTaskListResponse struct {
	List     []Task `json:"list"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// Task 带展示信息的题目
type Task struct {
	entity.Task
	ContestLabel string `json:"contest_label"`
	TaskLabel    string `json:"task_label"`
	GradeLabel   string `json:"grade_label"`
	ContestURL   string `json:"contest_url"`
	TaskURL      string `json:"task_url"`
}

type GetTaskParam struct {
	CommonParam `json:"-"`

	TaskID string `form:"task_id" json:"task_id" binding:"required"`
}

type CreateTaskParam struct {
	CommonParam `json:"-"`

	ContestID      string `json:"contest_id" binding:"required,max=64"`
	TaskID         string `json:"task_id" binding:"required,max=64"`
	TaskTableIndex string `json:"task_table_index" binding:"required,max=16"` // 比赛内题号
	Title          string `json:"title" binding:"required,max=255"`
	Grade          string `json:"grade"` // 为空时为 PENDING
}

type UpdateTaskParam struct {
	CommonParam `json:"-"`

	TaskID         string  `json:"task_id" binding:"required"`
	Title          *string `json:"title" binding:"omitempty,max=255"`
	TaskTableIndex *string `json:"task_table_index" binding:"omitempty,max=16"`
	Grade          *string `json:"grade"`
}

// ImportedTask 从外部题库导入的题目
type ImportedTask struct {
	ContestID      string
	TaskID         string
	TaskTableIndex string
	Title          string
}
