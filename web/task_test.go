package web

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/to404hanga/task_tracker/constants"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/service"
)

type stubTaskService struct {
	service.TaskService
	tasks   map[string]entity.Task
	created []*model.CreateTaskParam
}

func (s *stubTaskService) GetTask(_ context.Context, taskID string) (*entity.Task, error) {
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, service.ErrTaskNotFound
	}
	return &t, nil
}

func (s *stubTaskService) CreateTask(_ context.Context, param *model.CreateTaskParam) error {
	s.created = append(s.created, param)
	return nil
}

func (s *stubTaskService) GetTaskList(_ context.Context, param *model.GetTaskListParam) ([]entity.Task, int, error) {
	list := make([]entity.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		list = append(list, t)
	}
	return list, len(list), nil
}

func newStubTaskService() *stubTaskService {
	return &stubTaskService{tasks: map[string]entity.Task{
		"abc330_a": {ContestID: "abc330", TaskID: "abc330_a", TaskTableIndex: "A", Title: "Counting Passes", Grade: entity.TaskGradeQ7},
	}}
}

func TestTaskHandler_GetTask(t *testing.T) {
	engine := newEngine(7, NewTaskHandler(newStubTaskService(), newStubUserService(), testLog))

	w := doRequest(engine, http.MethodGet, constants.GetTaskPath+"?task_id=abc330_a", "", nil)
	resp := decode[model.Task](t, w)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ABC330", resp.Data.ContestLabel)
	assert.Equal(t, "ABC330 - A", resp.Data.TaskLabel)
	assert.Equal(t, "https://atcoder.jp/contests/abc330/tasks/abc330_a", resp.Data.TaskURL)

	w = doRequest(engine, http.MethodGet, constants.GetTaskPath+"?task_id=missing", "", nil)
	assert.Equal(t, http.StatusNotFound, decode[any](t, w).Code)

	// 缺少必填参数
	w = doRequest(engine, http.MethodGet, constants.GetTaskPath, "", nil)
	assert.Equal(t, http.StatusBadRequest, decode[any](t, w).Code)
}

func TestTaskHandler_GetTaskListRequiresLogin(t *testing.T) {
	engine := newEngine(0, NewTaskHandler(newStubTaskService(), newStubUserService(), testLog))

	w := doRequest(engine, http.MethodGet, constants.GetTaskListPath+"?page=1&page_size=10", "", nil)
	assert.Equal(t, http.StatusUnauthorized, decode[any](t, w).Code)
}

func TestTaskHandler_GetTaskList(t *testing.T) {
	engine := newEngine(7, NewTaskHandler(newStubTaskService(), newStubUserService(), testLog))

	w := doRequest(engine, http.MethodGet, constants.GetTaskListPath+"?page=1&page_size=10", "", nil)
	resp := decode[model.GetTaskListResponse](t, w)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, resp.Data.List, 1)
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "7Q", resp.Data.List[0].GradeLabel)

	w = doRequest(engine, http.MethodGet, constants.GetTaskListPath+"?page=0&page_size=10", "", nil)
	assert.Equal(t, http.StatusBadRequest, decode[any](t, w).Code)
}

func TestTaskHandler_CreateTask(t *testing.T) {
	body := `{"contest_id":"abc331","task_id":"abc331_a","task_table_index":"A","title":"Tomorrow"}`

	testCases := []struct {
		name    string
		header  map[string]string
		code    int
		created int
	}{
		{name: "missing operator", header: nil, code: http.StatusBadRequest},
		{name: "invalid operator", header: map[string]string{constants.HeaderUserIDKey: "abc"}, code: http.StatusBadRequest},
		{name: "unknown operator", header: map[string]string{constants.HeaderUserIDKey: "99"}, code: http.StatusForbidden},
		{name: "normal user", header: map[string]string{constants.HeaderUserIDKey: "2"}, code: http.StatusForbidden},
		{name: "admin", header: map[string]string{constants.HeaderUserIDKey: "1"}, code: http.StatusOK, created: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			taskSvc := newStubTaskService()
			engine := newEngine(0, NewTaskHandler(taskSvc, newStubUserService(), testLog))

			w := doRequest(engine, http.MethodPost, constants.CreateTaskPath, body, tc.header)
			assert.Equal(t, tc.code, decode[any](t, w).Code)
			require.Len(t, taskSvc.created, tc.created)
			if tc.created > 0 {
				assert.Equal(t, uint64(1), taskSvc.created[0].Operator)
				assert.Equal(t, "Tomorrow", taskSvc.created[0].Title)
			}
		})
	}
}

func TestTaskHandler_CreateTaskValidation(t *testing.T) {
	taskSvc := newStubTaskService()
	engine := newEngine(0, NewTaskHandler(taskSvc, newStubUserService(), testLog))

	w := doRequest(engine, http.MethodPost, constants.CreateTaskPath, `{"contest_id":"abc331"}`,
		map[string]string{constants.HeaderUserIDKey: "1"})
	assert.Equal(t, http.StatusBadRequest, decode[any](t, w).Code)
	assert.Empty(t, taskSvc.created)
}
