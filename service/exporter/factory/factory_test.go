package factory

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type stubSource struct {
	results []entity.TaskResult
	err     error
}

func (s *stubSource) GetTaskResults(context.Context, uint64) ([]entity.TaskResult, error) {
	return s.results, s.err
}

func newStubSource() *stubSource {
	return &stubSource{results: []entity.TaskResult{
		{
			ContestID: "abc330", TaskID: "abc330_a", TaskTableIndex: "A", Title: "Counting Passes",
			Grade: entity.TaskGradeQ7, StatusName: "ac", SubmissionStatusLabelName: "AC", IsAC: true,
			UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			ContestID: "dp", TaskID: "dp_a", TaskTableIndex: "A", Title: "Frog 1",
			Grade: entity.TaskGradePending, StatusName: "ns", SubmissionStatusLabelName: "未挑戦",
		},
	}}
}

func TestGetExporter(t *testing.T) {
	f := NewExporterFactory(newStubSource(), loggerv2.NewZapContextLogger(zap.NewNop()))
	assert.NotNil(t, f.GetExporter(CSVExporter))
	assert.Same(t, f.GetExporter(XLSXExporter), f.GetExporter(XLSXExporter))
	assert.Nil(t, f.GetExporter("pdf"))
}

func TestCSVExport(t *testing.T) {
	f := NewExporterFactory(newStubSource(), loggerv2.NewZapContextLogger(zap.NewNop()))

	var buf bytes.Buffer
	require.NoError(t, f.GetExporter(CSVExporter).Export(context.Background(), 1, "", &buf))

	content := strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")
	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "比赛", records[0][0])
	assert.Equal(t, []string{
		"ABC330", "A", "Counting Passes", "7Q", "AC", "是", "2024-01-02 03:04:05",
		"https://atcoder.jp/contests/abc330/tasks/abc330_a",
	}, records[1])
	assert.Equal(t, "-", records[2][3])

	buf.Reset()
	require.NoError(t, f.GetExporter(CSVExporter).Export(context.Background(), 1, "EDPC", &buf))
	records, err = csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "EDPC", records[1][0])
}

func TestXLSXExport(t *testing.T) {
	f := NewExporterFactory(newStubSource(), loggerv2.NewZapContextLogger(zap.NewNop()))

	var buf bytes.Buffer
	require.NoError(t, f.GetExporter(XLSXExporter).Export(context.Background(), 1, "", &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("题目结果")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "链接", rows[0][7])
	assert.Equal(t, "Frog 1", rows[2][2])
}

func TestExportSourceError(t *testing.T) {
	source := &stubSource{err: assert.AnError}
	f := NewExporterFactory(source, loggerv2.NewZapContextLogger(zap.NewNop()))

	var buf bytes.Buffer
	assert.ErrorIs(t, f.GetExporter(CSVExporter).Export(context.Background(), 1, "", &buf), assert.AnError)
	assert.Zero(t, buf.Len())
}
