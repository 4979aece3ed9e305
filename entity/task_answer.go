package entity

import "time"

// TaskAnswer 用户对题目的当前回答状态, (user_id, task_id) 唯一
type TaskAnswer struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_task,priority:1" json:"user_id"`
	TaskID    string    `gorm:"column:task_id;type:varchar(64);not null;uniqueIndex:uk_user_task,priority:2" json:"task_id"`
	StatusID  uint8     `gorm:"column:status_id;not null" json:"status_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (TaskAnswer) TableName() string {
	return "task_answer"
}

// TaskResult 题目与用户当前提交状态的组合视图, 不落库
type TaskResult struct {
	ContestID                 string    `json:"contest_id"`
	TaskID                    string    `json:"task_id"`
	TaskTableIndex            string    `json:"task_table_index"`
	Title                     string    `json:"title"`
	Grade                     TaskGrade `json:"grade"`
	UserID                    uint64    `json:"user_id"`
	StatusID                  uint8     `json:"status_id"`
	StatusName                string    `json:"status_name"`
	SubmissionStatusLabelName string    `json:"submission_status_label_name"`
	SubmissionStatusImagePath string    `json:"submission_status_image_path"`
	IsAC                      bool      `json:"is_ac"`
	UpdatedAt                 time.Time `json:"updated_at"`
}
