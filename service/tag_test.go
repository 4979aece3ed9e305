package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/to404hanga/task_tracker/model"
)

func TestTagService(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db, testLog)
	seedTasks(t, db, task("abc330", "abc330_a", "A"))

	dp, err := svc.CreateTag(testCtx, &model.CreateTagParam{Name: "DP", IsOfficial: true, IsPublished: true})
	require.NoError(t, err)
	greedy, err := svc.CreateTag(testCtx, &model.CreateTagParam{Name: "Greedy"})
	require.NoError(t, err)

	_, err = svc.CreateTag(testCtx, &model.CreateTagParam{Name: "DP"})
	assert.ErrorIs(t, err, ErrTagAlreadyExists)

	tags, err := svc.GetTags(testCtx, &model.GetTagListParam{IsPublished: lo.ToPtr(true)})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "DP", tags[0].Name)

	require.NoError(t, svc.UpdateTag(testCtx, &model.UpdateTagParam{ID: greedy.ID, IsPublished: lo.ToPtr(true)}))
	tags, err = svc.GetTags(testCtx, &model.GetTagListParam{IsPublished: lo.ToPtr(true)})
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	assert.ErrorIs(t, svc.UpdateTag(testCtx, &model.UpdateTagParam{ID: 999, Name: lo.ToPtr("x")}), ErrTagNotFound)
	assert.ErrorIs(t, svc.UpdateTag(testCtx, &model.UpdateTagParam{ID: greedy.ID, Name: lo.ToPtr("DP")}), ErrTagAlreadyExists)

	require.NoError(t, svc.AddTaskTag(testCtx, &model.TaskTagParam{TaskID: "abc330_a", TagID: dp.ID, Priority: 2}))
	require.NoError(t, svc.AddTaskTag(testCtx, &model.TaskTagParam{TaskID: "abc330_a", TagID: greedy.ID, Priority: 1}))

	taskTags, err := svc.GetTagsByTaskID(testCtx, "abc330_a")
	require.NoError(t, err)
	require.Len(t, taskTags, 2)
	assert.Equal(t, "Greedy", taskTags[0].Name)

	// 再次添加只更新 priority
	require.NoError(t, svc.AddTaskTag(testCtx, &model.TaskTagParam{TaskID: "abc330_a", TagID: dp.ID, Priority: 0}))
	taskTags, err = svc.GetTagsByTaskID(testCtx, "abc330_a")
	require.NoError(t, err)
	require.Len(t, taskTags, 2)
	assert.Equal(t, "DP", taskTags[0].Name)

	assert.ErrorIs(t, svc.AddTaskTag(testCtx, &model.TaskTagParam{TaskID: "missing", TagID: dp.ID}), ErrTaskNotFound)
	assert.ErrorIs(t, svc.AddTaskTag(testCtx, &model.TaskTagParam{TaskID: "abc330_a", TagID: 999}), ErrTagNotFound)

	require.NoError(t, svc.RemoveTaskTag(testCtx, "abc330_a", dp.ID))
	taskTags, err = svc.GetTagsByTaskID(testCtx, "abc330_a")
	require.NoError(t, err)
	require.Len(t, taskTags, 1)
	assert.Equal(t, greedy.ID, taskTags[0].ID)
}
