package xlsx

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/service/exporter"
	"github.com/to404hanga/task_tracker/service/exporter/common"
	"github.com/xuri/excelize/v2"
)

const sheetName = "题目结果"

type StreamableXLSXTaskResultExporter struct {
	source common.TaskResultSource
	log    loggerv2.Logger
}

var _ exporter.Exporter = (*StreamableXLSXTaskResultExporter)(nil)

func NewStreamableXLSXTaskResultExporter(source common.TaskResultSource, log loggerv2.Logger) *StreamableXLSXTaskResultExporter {
	return &StreamableXLSXTaskResultExporter{
		source: source,
		log:    log,
	}
}

func (e *StreamableXLSXTaskResultExporter) Export(ctx context.Context, userID uint64, contestType string, writer io.Writer) error {
	results, err := common.FetchTaskResults(ctx, e.source, userID, contestType)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.log.ErrorContext(ctx, "close excel file failed", logger.Error(err))
		}
	}()

	if err = f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet failed: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("create stream writer failed: %w", err)
	}

	if err = e.writeHeader(f, sw); err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}

	for i, r := range results {
		if i%1000 == 0 {
			if err = ctx.Err(); err != nil {
				return err
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2) // 第一行是表头
		if err != nil {
			return fmt.Errorf("get cell name failed: %w", err)
		}
		row := lo.Map(common.Row(r), func(v string, _ int) any {
			return v
		})
		if err = sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("set row failed: %w", err)
		}
	}

	if err = sw.Flush(); err != nil {
		return fmt.Errorf("flush stream writer failed: %w", err)
	}
	if err = f.Write(writer); err != nil {
		return fmt.Errorf("write excel file failed: %w", err)
	}
	return nil
}

// writeHeader 写入表头, 流式写入时列宽需在第一行之前设置
func (e *StreamableXLSXTaskResultExporter) writeHeader(f *excelize.File, sw *excelize.StreamWriter) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E0E0E0"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style failed: %w", err)
	}

	columnWidths := []float64{
		24, // 比赛
		8,  // 题号
		36, // 题目
		8,  // 难度
		10, // 状态
		10, // 是否通过
		20, // 更新时间
		48, // 链接
	}
	for i, width := range columnWidths {
		if err = sw.SetColWidth(i+1, i+1, width); err != nil {
			return fmt.Errorf("set column width failed: %w", err)
		}
	}

	header := lo.Map(common.Headers, func(h string, _ int) any {
		return excelize.Cell{StyleID: headerStyle, Value: h}
	})
	return sw.SetRow("A1", header)
}
