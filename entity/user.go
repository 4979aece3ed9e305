package entity

import "time"

type UserRole int8

const (
	UserRoleNormal UserRole = 0 // 普通用户
	UserRoleAdmin  UserRole = 1 // 管理员
)

type UserStatus int8

const (
	UserStatusNormal   UserStatus = 0 // 正常
	UserStatusDisabled UserStatus = 1 // 禁用
)

// User 用户, 账号与登录由认证服务维护, 这里只读取展示与权限信息
type User struct {
	ID        uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string      `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Role      *UserRole   `gorm:"column:role;not null;default:0" json:"role"`
	Status    *UserStatus `gorm:"column:status;not null;default:0" json:"status"`
	AtCoderID string      `gorm:"column:atcoder_id;type:varchar(64);not null;default:''" json:"atcoder_id"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time   `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
