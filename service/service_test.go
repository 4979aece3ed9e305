package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库每个连接相互独立, 固定为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.Task{},
		&entity.TaskAnswer{},
		&entity.Tag{},
		&entity.TaskTag{},
		&entity.WorkBook{},
		&entity.WorkBookTask{},
		&entity.User{},
	))
	return db
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, redis.Cmdable) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func seedTasks(t *testing.T, db *gorm.DB, tasks ...entity.Task) {
	t.Helper()
	for i := range tasks {
		if tasks[i].Grade == "" {
			tasks[i].Grade = entity.TaskGradePending
		}
	}
	require.NoError(t, db.Create(&tasks).Error)
}

func seedUser(t *testing.T, db *gorm.DB, id uint64, role entity.UserRole) {
	t.Helper()
	require.NoError(t, db.Create(&entity.User{
		ID:       id,
		Username: "user" + string(rune('a'+id)),
		Role:     lo.ToPtr(role),
		Status:   lo.ToPtr(entity.UserStatusNormal),
	}).Error)
}

func task(contestID, taskID, index string) entity.Task {
	return entity.Task{
		ContestID:      contestID,
		TaskID:         taskID,
		TaskTableIndex: index,
		Title:          index + ". " + taskID,
	}
}

var (
	testCtx = context.Background()
	testLog = loggerv2.NewZapContextLogger(zap.NewNop())
)
