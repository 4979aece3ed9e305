package importer

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/service"
	"go.uber.org/zap"
)

const problemsJSON = `[
  {"id":"abc330_a","contest_id":"abc330","problem_index":"A","name":"Counting Passes","title":"A. Counting Passes"},
  {"id":"abc212_h","contest_id":"abc212","problem_index":"Ex","name":"","title":"Ex. Nim Counting"},
  {"id":"dp_a","contest_id":"dp","problem_index":"A","name":"Frog 1","title":"A. Frog 1"},
  {"id":"","contest_id":"abc330","problem_index":"B","name":"broken","title":"B. broken"},
  {"id":"ITP1_1_A","contest_id":"ITP1","problem_index":"1_A","name":"Hello World","title":"Hello World"}
]`

type stubTaskService struct {
	service.TaskService
	imported []model.ImportedTask
}

func (s *stubTaskService) UpsertImportedTasks(_ context.Context, tasks []model.ImportedTask) (int64, error) {
	s.imported = append(s.imported, tasks...)
	return int64(len(tasks)), nil
}

func TestTaskImporterRunImport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Accept-Encoding"))
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		_, _ = gz.Write([]byte(problemsJSON))
	}))
	defer srv.Close()

	svc := &stubTaskService{}
	imp := NewTaskImporter(srv.Client(), srv.URL, nil, svc, loggerv2.NewZapContextLogger(zap.NewNop()))
	require.NoError(t, imp.RunImport(context.Background()))

	require.Len(t, svc.imported, 3)
	assert.Equal(t, model.ImportedTask{
		ContestID: "abc330", TaskID: "abc330_a", TaskTableIndex: "A", Title: "Counting Passes",
	}, svc.imported[0])
	assert.Equal(t, "Nim Counting", svc.imported[1].Title)
	assert.Equal(t, "Ex", svc.imported[1].TaskTableIndex)
	assert.Equal(t, "dp_a", svc.imported[2].TaskID)
}

func TestTaskImporterContestTypeFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(problemsJSON))
	}))
	defer srv.Close()

	svc := &stubTaskService{}
	imp := NewTaskImporter(srv.Client(), srv.URL, []string{"EDPC"}, svc, loggerv2.NewZapContextLogger(zap.NewNop()))
	require.NoError(t, imp.RunImport(context.Background()))

	require.Len(t, svc.imported, 1)
	assert.Equal(t, "dp_a", svc.imported[0].TaskID)
}

func TestTaskImporterRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(problemsJSON))
	}))
	defer srv.Close()

	svc := &stubTaskService{}
	imp := NewTaskImporter(srv.Client(), srv.URL, nil, svc, loggerv2.NewZapContextLogger(zap.NewNop()))
	require.NoError(t, imp.RunImport(context.Background()))
	assert.EqualValues(t, 2, calls.Load())
	assert.Len(t, svc.imported, 3)
}

func TestTaskImporterBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	svc := &stubTaskService{}
	imp := NewTaskImporter(srv.Client(), srv.URL, nil, svc, loggerv2.NewZapContextLogger(zap.NewNop()))
	assert.Error(t, imp.RunImport(context.Background()))
	assert.Empty(t, svc.imported)
}
