package constants

const (
	GetTaskListPath = "/GetTaskList" // 获取题目列表
	GetTaskPath     = "/GetTask"     // 获取题目
	CreateTaskPath  = "/CreateTask"  // 创建题目
	UpdateTaskPath  = "/UpdateTask"  // 更新题目
)

const (
	GetTaskResultListPath = "/GetTaskResultList" // 获取用户题目结果列表
	GetTaskResultPath     = "/GetTaskResult"     // 获取用户单题结果
	UpdateTaskResultPath  = "/UpdateTaskResult"  // 更新用户单题状态
	ExportTaskResultPath  = "/ExportTaskResult"  // 导出用户题目结果
)

const (
	GetContestTablePath          = "/GetContestTable"          // 获取比赛表格
	GetContestTableGroupListPath = "/GetContestTableGroupList" // 获取比赛表格分组列表
)

const (
	GetTagListPath     = "/GetTagList"     // 获取标签列表
	GetTaskTagListPath = "/GetTaskTagList" // 获取题目标签列表
	CreateTagPath      = "/CreateTag"      // 创建标签
	UpdateTagPath      = "/UpdateTag"      // 更新标签
	AddTaskTagPath     = "/AddTaskTag"     // 为题目添加标签
	RemoveTaskTagPath  = "/RemoveTaskTag"  // 移除题目标签
)

const (
	CreateWorkBookPath  = "/CreateWorkBook"  // 创建题单
	GetWorkBookPath     = "/GetWorkBook"     // 获取题单
	GetWorkBookListPath = "/GetWorkBookList" // 获取题单列表
	UpdateWorkBookPath  = "/UpdateWorkBook"  // 更新题单
	DeleteWorkBookPath  = "/DeleteWorkBook"  // 删除题单
)

const (
	HealthPath  = "/health"
	MetricsPath = "/metrics"
)
