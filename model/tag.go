package model

import "github.com/to404hanga/task_tracker/entity"

type GetTagListParam struct {
	CommonParam `json:"-"`

	IsPublished *bool `form:"is_published" json:"is_published"`
	IsOfficial  *bool `form:"is_official" json:"is_official"`
}

type GetTagListResponse struct {
	List []entity.Tag `json:"list"`
}

type GetTaskTagListParam struct {
	CommonParam `json:"-"`

	TaskID string `form:"task_id" json:"task_id" binding:"required"`
}

type GetTaskTagListResponse struct {
	List []entity.Tag `json:"list"`
}

type CreateTagParam struct {
	CommonParam `json:"-"`

	Name        string `json:"name" binding:"required,max=64"`
	IsOfficial  bool   `json:"is_official"`
	IsPublished bool   `json:"is_published"`
}

type UpdateTagParam struct {
	CommonParam `json:"-"`

	ID          uint64  `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"omitempty,max=64"`
	IsOfficial  *bool   `json:"is_official"`
	IsPublished *bool   `json:"is_published"`
}

type TaskTagParam struct {
	CommonParam `json:"-"`

	TaskID   string `json:"task_id" binding:"required"`
	TagID    uint64 `json:"tag_id" binding:"required"`
	Priority int    `json:"priority" binding:"min=0"`
}
