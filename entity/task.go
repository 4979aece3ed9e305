package entity

import "time"

// Task 题目, 由 (contest_id, task_id) 唯一确定, task_id 在 AtCoder / AOJ 中本身全局唯一
type Task struct {
	TaskID         string    `gorm:"column:task_id;type:varchar(64);primaryKey" json:"task_id"`
	ContestID      string    `gorm:"column:contest_id;type:varchar(64);not null;index:idx_contest_task,priority:1" json:"contest_id"`
	TaskTableIndex string    `gorm:"column:task_table_index;type:varchar(16);not null;default:''" json:"task_table_index"` // 比赛内题号, 如 A, B, Ex, A01
	Title          string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Grade          TaskGrade `gorm:"column:grade;type:varchar(16);not null;default:'PENDING'" json:"grade"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Task) TableName() string {
	return "task"
}
