package contesttable

import "github.com/to404hanga/task_tracker/entity"

// Metadata 表格标题与切换按钮文案
type Metadata struct {
	Title       string `json:"title"`
	ButtonLabel string `json:"button_label"`
	AriaLabel   string `json:"aria_label"`
}

// DisplayConfig 前端渲染表格时使用的展示选项
type DisplayConfig struct {
	IsShownHeader       bool   `json:"is_shown_header"`
	IsShownRoundLabel   bool   `json:"is_shown_round_label"`
	IsShownTaskIndex    bool   `json:"is_shown_task_index"`
	RoundLabelWidth     string `json:"round_label_width"`
	TableBodyCellsWidth string `json:"table_body_cells_width"`
}

// Table 比赛 ID -> 题号 -> 结果
type Table map[string]map[string]entity.TaskResult

// Provider 负责从全部结果中挑出某一类比赛并排成表格
type Provider interface {
	// Filter 保留属于该表格的结果, 保持输入顺序
	Filter(results []entity.TaskResult) []entity.TaskResult
	// GenerateTable 过滤后按 [比赛][题号] 分桶, 重复项以后出现的为准
	GenerateTable(results []entity.TaskResult) Table
	// ContestRoundIDs 表格的行, 即去重后的比赛 ID
	ContestRoundIDs(results []entity.TaskResult) []string
	// HeaderIDs 表格的列, 即去重后的题号
	HeaderIDs(results []entity.TaskResult) []string
	Metadata() Metadata
	DisplayConfig() DisplayConfig
	// RoundLabel 行标题
	RoundLabel(contestID string) string
}

// View 一个 Provider 渲染后的完整表格
type View struct {
	Metadata      Metadata          `json:"metadata"`
	DisplayConfig DisplayConfig     `json:"display_config"`
	RoundIDs      []string          `json:"round_ids"`
	HeaderIDs     []string          `json:"header_ids"`
	RoundLabels   map[string]string `json:"round_labels"`
	Table         Table             `json:"table"`
}

// Render 用 p 渲染 results
func Render(p Provider, results []entity.TaskResult) View {
	filtered := p.Filter(results)
	roundIDs := p.ContestRoundIDs(filtered)
	labels := make(map[string]string, len(roundIDs))
	for _, id := range roundIDs {
		labels[id] = p.RoundLabel(id)
	}
	return View{
		Metadata:      p.Metadata(),
		DisplayConfig: p.DisplayConfig(),
		RoundIDs:      roundIDs,
		HeaderIDs:     p.HeaderIDs(filtered),
		RoundLabels:   labels,
		Table:         p.GenerateTable(filtered),
	}
}
