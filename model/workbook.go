package model

import "github.com/to404hanga/task_tracker/entity"

// WorkBookTaskParam 题单中的一道题, 顺序即展示顺序
type WorkBookTaskParam struct {
	TaskID  string `json:"task_id" binding:"required"`
	Comment string `json:"comment" binding:"max=255"`
}

type CreateWorkBookParam struct {
	CommonParam `json:"-"`

	Title        string              `json:"title" binding:"required,max=255"`
	Description  string              `json:"description"`
	EditorialURL string              `json:"editorial_url" binding:"omitempty,url"`
	IsPublished  bool                `json:"is_published"`
	IsOfficial   bool                `json:"is_official"`
	WorkBookType string              `json:"workbook_type" binding:"required,oneof=CREATED_BY_USER TEXTBOOK SOLUTION GENRE THEME OTHERS"`
	Tasks        []WorkBookTaskParam `json:"tasks" binding:"required,dive"`
}

type UpdateWorkBookParam struct {
	CommonParam `json:"-"`

	ID           uint64              `json:"id" binding:"required"`
	Title        *string             `json:"title" binding:"omitempty,max=255"`
	Description  *string             `json:"description"`
	EditorialURL *string             `json:"editorial_url" binding:"omitempty,url"`
	IsPublished  *bool               `json:"is_published"`
	WorkBookType *string             `json:"workbook_type" binding:"omitempty,oneof=CREATED_BY_USER TEXTBOOK SOLUTION GENRE THEME OTHERS"`
	Tasks        []WorkBookTaskParam `json:"tasks" binding:"omitempty,dive"` // 非空时整体替换
}

type GetWorkBookParam struct {
	CommonParam `json:"-"`

	ID uint64 `form:"id" json:"id" binding:"required"`
}

type DeleteWorkBookParam struct {
	CommonParam `json:"-"`

	ID uint64 `json:"id" binding:"required"`
}

type GetWorkBookListParam struct {
	CommonParam `json:"-"`
	PageParam

	AuthorID     *uint64 `form:"author_id" json:"author_id"`
	WorkBookType string  `form:"workbook_type" json:"workbook_type"`
	IsOfficial   *bool   `form:"is_official" json:"is_official"`
}

type GetWorkBookListResponse struct {
	List     []entity.WorkBook `json:"list"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
