package contesttable

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/pkg/contest"
)

type roundOrder int

const (
	roundOrderAsc roundOrder = iota
	roundOrderDesc
)

// baseProvider 各类 Provider 的公共实现, 具体 Provider 通过字段定制行为
type baseProvider struct {
	contestType   contest.ContestType
	predicate     func(r entity.TaskResult) bool
	roundOrder    roundOrder
	roundLimit    int // >0 时仅保留排序后的前 roundLimit 场
	metadata      Metadata
	displayConfig DisplayConfig
	roundLabel    func(contestID string) string
}

var _ Provider = (*baseProvider)(nil)

func (p *baseProvider) Filter(results []entity.TaskResult) []entity.TaskResult {
	filtered := lo.Filter(results, func(r entity.TaskResult, _ int) bool {
		return contest.Classify(r.ContestID) == p.contestType && (p.predicate == nil || p.predicate(r))
	})
	if p.roundLimit <= 0 {
		return filtered
	}

	kept := lo.Keyify(lo.Slice(p.sortedRoundIDs(filtered), 0, p.roundLimit))
	return lo.Filter(filtered, func(r entity.TaskResult, _ int) bool {
		return lo.HasKey(kept, r.ContestID)
	})
}

func (p *baseProvider) GenerateTable(results []entity.TaskResult) Table {
	table := make(Table)
	for _, r := range p.Filter(results) {
		row, ok := table[r.ContestID]
		if !ok {
			row = make(map[string]entity.TaskResult)
			table[r.ContestID] = row
		}
		row[r.TaskTableIndex] = r
	}
	return table
}

func (p *baseProvider) ContestRoundIDs(results []entity.TaskResult) []string {
	return p.sortedRoundIDs(p.Filter(results))
}

func (p *baseProvider) HeaderIDs(results []entity.TaskResult) []string {
	ids := lo.Uniq(lo.Map(p.Filter(results), func(r entity.TaskResult, _ int) string {
		return r.TaskTableIndex
	}))
	sort.Slice(ids, func(i, j int) bool {
		return LessTaskTableIndex(ids[i], ids[j])
	})
	return ids
}

func (p *baseProvider) Metadata() Metadata {
	return p.metadata
}

func (p *baseProvider) DisplayConfig() DisplayConfig {
	return p.displayConfig
}

func (p *baseProvider) RoundLabel(contestID string) string {
	if p.roundLabel == nil {
		return contest.NameLabel(contestID)
	}
	return p.roundLabel(contestID)
}

func (p *baseProvider) sortedRoundIDs(results []entity.TaskResult) []string {
	ids := lo.Uniq(lo.Map(results, func(r entity.TaskResult, _ int) string {
		return r.ContestID
	}))
	sort.Slice(ids, func(i, j int) bool {
		if p.roundOrder == roundOrderDesc {
			return lessRoundID(ids[j], ids[i])
		}
		return lessRoundID(ids[i], ids[j])
	})
	return ids
}

// lessRoundID 前缀相同时按末尾数字比较, 否则按字典序
func lessRoundID(a, b string) bool {
	ap, an, aok := splitTrailingNumber(a)
	bp, bn, bok := splitTrailingNumber(b)
	if aok && bok && ap == bp && an != bn {
		return an < bn
	}
	return a < b
}

func splitTrailingNumber(s string) (string, int, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}

// LessTaskTableIndex 比赛内题号的自然顺序, ABC212 ~ ABC232 的第 8 题题号为 Ex, 排在 H 的位置
func LessTaskTableIndex(a, b string) bool {
	ka, kb := taskTableIndexKey(a), taskTableIndexKey(b)
	if ka != kb {
		return ka < kb
	}
	return a < b
}

func taskTableIndexKey(index string) string {
	if strings.EqualFold(index, "Ex") {
		return "H"
	}
	return index
}

// abcRound 解析 abcNNN 的回次, 非 ABC 返回 -1
func abcRound(contestID string) int {
	if contest.Classify(contestID) != contest.ContestTypeABC {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimPrefix(contestID, "abc"))
	if err != nil {
		return -1
	}
	return n
}
