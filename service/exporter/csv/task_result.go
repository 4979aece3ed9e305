package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/samber/lo"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/service/exporter"
	"github.com/to404hanga/task_tracker/service/exporter/common"
)

const batchSize = 1000

type CSVTaskResultExporter struct {
	source common.TaskResultSource
	log    loggerv2.Logger
}

var _ exporter.Exporter = (*CSVTaskResultExporter)(nil)

func NewCSVTaskResultExporter(source common.TaskResultSource, log loggerv2.Logger) *CSVTaskResultExporter {
	return &CSVTaskResultExporter{
		source: source,
		log:    log,
	}
}

func (e *CSVTaskResultExporter) Export(ctx context.Context, userID uint64, contestType string, writer io.Writer) error {
	results, err := common.FetchTaskResults(ctx, e.source, userID, contestType)
	if err != nil {
		return err
	}

	// 写入 BOM, 避免 Excel 打开时中文乱码
	if _, err = writer.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return fmt.Errorf("write bom failed: %w", err)
	}

	csvWriter := csv.NewWriter(writer)
	if err = csvWriter.Write(common.Headers); err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}

	for _, batch := range lo.Chunk(results, batchSize) {
		if err = ctx.Err(); err != nil {
			return err
		}
		records := lo.Map(batch, func(r entity.TaskResult, _ int) []string {
			return common.Row(r)
		})
		// WriteAll 每批都会 Flush
		if err = csvWriter.WriteAll(records); err != nil {
			return fmt.Errorf("write records failed: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
