package entity

import "time"

type WorkBookType string

const (
	WorkBookTypeCreatedByUser WorkBookType = "CREATED_BY_USER"
	WorkBookTypeTextbook      WorkBookType = "TEXTBOOK"
	WorkBookTypeSolution      WorkBookType = "SOLUTION"
	WorkBookTypeGenre         WorkBookType = "GENRE"
	WorkBookTypeTheme         WorkBookType = "THEME"
	WorkBookTypeOthers        WorkBookType = "OTHERS"
)

// WorkBook 题单
type WorkBook struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID     uint64         `gorm:"column:author_id;not null;index" json:"author_id"`
	Title        string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	EditorialURL string         `gorm:"column:editorial_url;type:varchar(512);not null;default:''" json:"editorial_url"`
	IsPublished  bool           `gorm:"column:is_published;not null;default:false" json:"is_published"`
	IsOfficial   bool           `gorm:"column:is_official;not null;default:false" json:"is_official"`
	WorkBookType WorkBookType   `gorm:"column:workbook_type;type:varchar(32);not null;default:'CREATED_BY_USER'" json:"workbook_type"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at" json:"updated_at"`
	Tasks        []WorkBookTask `gorm:"foreignKey:WorkBookID" json:"tasks,omitempty"`
}

func (WorkBook) TableName() string {
	return "workbook"
}

// WorkBookTask 题单中的一项, priority 从 1 开始
type WorkBookTask struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkBookID uint64    `gorm:"column:workbook_id;not null;uniqueIndex:uk_workbook_task,priority:1" json:"workbook_id"`
	TaskID     string    `gorm:"column:task_id;type:varchar(64);not null;uniqueIndex:uk_workbook_task,priority:2" json:"task_id"`
	Priority   int       `gorm:"column:priority;not null" json:"priority"`
	Comment    string    `gorm:"column:comment;type:varchar(255);not null;default:''" json:"comment"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (WorkBookTask) TableName() string {
	return "workbook_task"
}
