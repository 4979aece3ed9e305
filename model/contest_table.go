package model

import "github.com/to404hanga/task_tracker/pkg/contesttable"

type GetContestTableParam struct {
	CommonParam `json:"-"`

	Group string `form:"group" json:"group" binding:"required"`
}

type GetContestTableResponse struct {
	Group       string              `json:"group"`
	ButtonLabel string              `json:"button_label"`
	Tables      []contesttable.View `json:"tables"`
}

type GetContestTableGroupListParam struct {
	CommonParam `json:"-"`
}

type ContestTableGroup struct {
	Name        string `json:"name"`
	ButtonLabel string `json:"button_label"`
	AriaLabel   string `json:"aria_label"`
}

type GetContestTableGroupListResponse struct {
	List []ContestTableGroup `json:"list"`
}
