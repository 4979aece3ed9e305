package model

import "github.com/to404hanga/task_tracker/entity"

type GetTaskResultListParam struct {
	CommonParam `json:"-"`

	ContestType string `form:"contest_type" json:"contest_type"`
}

type GetTaskResultListResponse struct {
	List  []entity.TaskResult `json:"list"`
	Total int                 `json:"total"`
}

type GetTaskResultParam struct {
	CommonParam `json:"-"`

	ContestID string `form:"contest_id" json:"contest_id" binding:"required"`
	TaskID    string `form:"task_id" json:"task_id" binding:"required"`
}

type UpdateTaskResultParam struct {
	CommonParam `json:"-"`

	TaskID           string `json:"task_id" binding:"required"`
	SubmissionStatus string `json:"submission_status" binding:"required,oneof=ac ac_with_editorial wa ns"`
}

type ExportTaskResultParam struct {
	CommonParam `json:"-"`

	Format      string `form:"format" json:"format" binding:"required,oneof=csv xlsx"`
	ContestType string `form:"contest_type" json:"contest_type"`
}
