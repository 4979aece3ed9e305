package web

import "github.com/prometheus/client_golang/prometheus"

var (
	createWorkBookMetrics  = newRequestMetrics("workbook", "create_workbook", "CreateWorkBook")
	getWorkBookMetrics     = newRequestMetrics("workbook", "get_workbook", "GetWorkBook")
	getWorkBookListMetrics = newRequestMetrics("workbook", "get_workbook_list", "GetWorkBookList")
	updateWorkBookMetrics  = newRequestMetrics("workbook", "update_workbook", "UpdateWorkBook")
	deleteWorkBookMetrics  = newRequestMetrics("workbook", "delete_workbook", "DeleteWorkBook")
)

func init() {
	for _, m := range []requestMetrics{
		createWorkBookMetrics,
		getWorkBookMetrics,
		getWorkBookListMetrics,
		updateWorkBookMetrics,
		deleteWorkBookMetrics,
	} {
		prometheus.MustRegister(m.collectors()...)
	}
}
