package service

import (
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/event"
)

func TestMergeTaskResults(t *testing.T) {
	updated := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tasks := []entity.Task{
		task("dp", "dp_a", "A"),
		task("abc212", "abc212_h", "Ex"),
		task("abc212", "abc212_g", "G"),
		task("abs", "abc086_a", "A"),
		task("ITP1", "ITP1_1_A", "1_A"),
		task("abc211", "abc211_a", "A"),
	}
	answers := map[string]entity.TaskAnswer{
		"abc212_g": {UserID: 7, TaskID: "abc212_g", StatusID: entity.SubmissionStatusAC.ID, UpdatedAt: updated},
		"dp_a":     {UserID: 7, TaskID: "dp_a", StatusID: entity.SubmissionStatusWA.ID, UpdatedAt: updated},
		"ITP1_1_A": {UserID: 7, TaskID: "ITP1_1_A", StatusID: 99, UpdatedAt: updated},
	}

	results := MergeTaskResults(tasks, answers, 7)
	require.Len(t, results, len(tasks))

	order := make([]string, 0, len(results))
	for _, r := range results {
		order = append(order, r.TaskID)
		assert.Equal(t, uint64(7), r.UserID)
	}
	assert.Equal(t, []string{"abc086_a", "abc211_a", "abc212_g", "abc212_h", "dp_a", "ITP1_1_A"}, order)

	byID := make(map[string]entity.TaskResult, len(results))
	for _, r := range results {
		byID[r.TaskID] = r
	}
	assert.Equal(t, entity.SubmissionStatusNameAC, byID["abc212_g"].StatusName)
	assert.True(t, byID["abc212_g"].IsAC)
	assert.Equal(t, updated, byID["abc212_g"].UpdatedAt)
	assert.Equal(t, entity.SubmissionStatusNameWA, byID["dp_a"].StatusName)
	assert.Equal(t, "挑戦中", byID["dp_a"].SubmissionStatusLabelName)
	assert.Equal(t, entity.SubmissionStatusNameNS, byID["abc212_h"].StatusName)
	assert.Equal(t, entity.SubmissionStatusNameNS, byID["ITP1_1_A"].StatusName)
	assert.False(t, byID["abc212_h"].IsAC)
}

func TestMergeTaskResultsEmpty(t *testing.T) {
	assert.Empty(t, MergeTaskResults(nil, nil, 1))
	results := MergeTaskResults([]entity.Task{task("abc330", "abc330_a", "A")}, nil, 1)
	require.Len(t, results, 1)
	assert.Equal(t, entity.SubmissionStatusNS.ID, results[0].StatusID)
}

func newTestTaskResultService(t *testing.T, producer event.Producer) (TaskResultService, *taskResultFixture) {
	db := newTestDB(t)
	_, rdb := newTestRedis(t)
	taskSvc := NewTaskService(db, rdb, testLog)
	answerSvc := NewAnswerService(db, producer, testLog)
	seedTasks(t, db,
		task("abc330", "abc330_a", "A"),
		task("abc330", "abc330_b", "B"),
		task("dp", "dp_a", "A"),
	)
	return NewTaskResultService(taskSvc, answerSvc, testLog), &taskResultFixture{answerSvc: answerSvc}
}

type taskResultFixture struct {
	answerSvc AnswerService
}

func TestTaskResultServiceUpdateTaskResult(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageAndSucceed()
	mp.ExpectSendMessageAndSucceed()
	svc, fx := newTestTaskResultService(t, event.NewSaramaSyncProducer(mp))

	result, err := svc.UpdateTaskResult(testCtx, 1, "abc330_a", entity.SubmissionStatusNameWA)
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusNameWA, result.StatusName)

	result, err = svc.UpdateTaskResult(testCtx, 1, "abc330_a", entity.SubmissionStatusNameAC)
	require.NoError(t, err)
	assert.True(t, result.IsAC)

	answers, err := fx.answerSvc.GetAnswers(testCtx, 1)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, entity.SubmissionStatusAC.ID, answers["abc330_a"].StatusID)

	_, err = svc.UpdateTaskResult(testCtx, 1, "abc330_a", "unknown")
	assert.ErrorIs(t, err, ErrInvalidSubmissionStatus)

	_, err = svc.UpdateTaskResult(testCtx, 1, "missing", entity.SubmissionStatusNameAC)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskResultServiceProduceFailureKeepsAnswer(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageAndFail(assert.AnError)
	svc, fx := newTestTaskResultService(t, event.NewSaramaSyncProducer(mp))

	_, err := svc.UpdateTaskResult(testCtx, 2, "dp_a", entity.SubmissionStatusNameACWithEditorial)
	require.NoError(t, err)

	answer, err := fx.answerSvc.GetAnswer(testCtx, 2, "dp_a")
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.Equal(t, entity.SubmissionStatusACWithEditorial.ID, answer.StatusID)
}

func TestTaskResultServiceGetTaskResults(t *testing.T) {
	svc, _ := newTestTaskResultService(t, nil)

	_, err := svc.UpdateTaskResult(testCtx, 3, "abc330_b", entity.SubmissionStatusNameAC)
	require.NoError(t, err)

	results, err := svc.GetTaskResults(testCtx, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "abc330_a", results[0].TaskID)
	assert.Equal(t, entity.SubmissionStatusNameNS, results[0].StatusName)
	assert.Equal(t, entity.SubmissionStatusNameAC, results[1].StatusName)

	// 其他用户看不到该回答
	results, err = svc.GetTaskResults(testCtx, 4)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, entity.SubmissionStatusNameNS, r.StatusName)
	}

	results, err = svc.GetTaskResultsByTaskIDs(testCtx, 3, []string{"abc330_b", "missing"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsAC)

	result, err := svc.GetTaskResult(testCtx, 3, "abc330", "abc330_b")
	require.NoError(t, err)
	assert.True(t, result.IsAC)

	_, err = svc.GetTaskResult(testCtx, 3, "abc331", "abc330_b")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
