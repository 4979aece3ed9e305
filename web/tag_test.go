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

type stubTagService struct {
	service.TagService
	taskTags map[string][]entity.Tag
	removed  []uint64
}

func (s *stubTagService) GetTagsByTaskID(_ context.Context, taskID string) ([]entity.Tag, error) {
	return s.taskTags[taskID], nil
}

func (s *stubTagService) RemoveTaskTag(_ context.Context, _ string, tagID uint64) error {
	s.removed = append(s.removed, tagID)
	return nil
}

func TestTagHandler(t *testing.T) {
	svc := &stubTagService{taskTags: map[string][]entity.Tag{
		"dp_a": {{ID: 1, Name: "DP"}, {ID: 2, Name: "基本"}},
	}}
	engine := newEngine(7, NewTagHandler(svc, newStubUserService(), testLog))

	w := doRequest(engine, http.MethodGet, constants.GetTaskTagListPath+"?task_id=dp_a", "", nil)
	resp := decode[model.GetTaskTagListResponse](t, w)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, resp.Data.List, 2)
	assert.Equal(t, "DP", resp.Data.List[0].Name)

	body := `{"task_id":"dp_a","tag_id":1}`
	w = doRequest(engine, http.MethodDelete, constants.RemoveTaskTagPath, body, map[string]string{constants.HeaderUserIDKey: "2"})
	assert.Equal(t, http.StatusForbidden, decode[any](t, w).Code)
	assert.Empty(t, svc.removed)

	w = doRequest(engine, http.MethodDelete, constants.RemoveTaskTagPath, body, map[string]string{constants.HeaderUserIDKey: "1"})
	assert.Equal(t, http.StatusOK, decode[any](t, w).Code)
	assert.Equal(t, []uint64{1}, svc.removed)
}
