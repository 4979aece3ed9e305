package web

import "github.com/prometheus/client_golang/prometheus"

var (
	getTaskResultListMetrics = newRequestMetrics("task_result", "get_task_result_list", "GetTaskResultList")
	updateTaskResultMetrics  = newRequestMetrics("task_result", "update_task_result", "UpdateTaskResult")
	exportTaskResultMetrics  = newRequestMetrics("task_result", "export_task_result", "ExportTaskResult")
	getContestTableMetrics   = newRequestMetrics("contest_table", "get_contest_table", "GetContestTable")
)

func init() {
	for _, m := range []requestMetrics{
		getTaskResultListMetrics,
		updateTaskResultMetrics,
		exportTaskResultMetrics,
		getContestTableMetrics,
	} {
		prometheus.MustRegister(m.collectors()...)
	}
}
