package entity

import "time"

type Tag struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	IsOfficial  bool      `gorm:"column:is_official;not null;default:false" json:"is_official"`
	IsPublished bool      `gorm:"column:is_published;not null;default:false" json:"is_published"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Tag) TableName() string {
	return "tag"
}

// TaskTag 题目与标签的多对多关联, priority 为标签内排序
type TaskTag struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TaskID    string    `gorm:"column:task_id;type:varchar(64);not null;uniqueIndex:uk_task_tag,priority:1" json:"task_id"`
	TagID     uint64    `gorm:"column:tag_id;not null;uniqueIndex:uk_task_tag,priority:2" json:"tag_id"`
	Priority  int       `gorm:"column:priority;not null;default:0" json:"priority"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (TaskTag) TableName() string {
	return "task_tag"
}
