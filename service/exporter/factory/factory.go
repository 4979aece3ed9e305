package factory

import (
	"sync"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/service/exporter"
	"github.com/to404hanga/task_tracker/service/exporter/common"
	"github.com/to404hanga/task_tracker/service/exporter/csv"
	"github.com/to404hanga/task_tracker/service/exporter/xlsx"
)

type ExporterType string

const (
	CSVExporter  ExporterType = "csv"
	XLSXExporter ExporterType = "xlsx"
)

var ExporterSuffixMap = map[ExporterType]string{
	CSVExporter:  ".csv",
	XLSXExporter: ".xlsx",
}

var ExporterContentTypeMap = map[ExporterType]string{
	CSVExporter:  "text/csv; charset=utf-8",
	XLSXExporter: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type ExporterFactory struct {
	factory map[ExporterType]exporter.Exporter
	source  common.TaskResultSource
	log     loggerv2.Logger
	mux     sync.RWMutex
}

func NewExporterFactory(source common.TaskResultSource, log loggerv2.Logger) *ExporterFactory {
	return &ExporterFactory{
		factory: make(map[ExporterType]exporter.Exporter), // 延迟创建
		source:  source,
		log:     log,
	}
}

// GetExporter 未知类型返回 nil
func (f *ExporterFactory) GetExporter(exporterType ExporterType) exporter.Exporter {
	f.mux.RLock()
	if exp, exists := f.factory[exporterType]; exists {
		f.mux.RUnlock()
		return exp
	}
	f.mux.RUnlock()

	f.mux.Lock()
	defer f.mux.Unlock()

	// 双重检查，避免重复创建
	if exp, exists := f.factory[exporterType]; exists {
		return exp
	}

	switch exporterType {
	case CSVExporter:
		f.factory[CSVExporter] = csv.NewCSVTaskResultExporter(f.source, f.log)
		return f.factory[CSVExporter]
	case XLSXExporter:
		f.factory[XLSXExporter] = xlsx.NewStreamableXLSXTaskResultExporter(f.source, f.log)
		return f.factory[XLSXExporter]
	}

	return nil
}
