package contesttable

import (
	"strconv"
	"strings"

	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/pkg/contest"
)

const (
	abcLatestRoundLimit  = 20
	abcRoundLabelWidth   = "xl:w-16"
	abcTableBodyCells    = "w-1/2 xs:w-1/3 sm:w-1/4 md:w-1/5 lg:w-1/6 2xl:w-1/7 px-1 py-1"
	singleTableBodyCells = "w-1/2 xs:w-1/3 sm:w-1/4 md:w-1/5 lg:w-1/6 2xl:w-1/10 px-1 py-2"
)

func abcDisplayConfig() DisplayConfig {
	return DisplayConfig{
		IsShownHeader:       true,
		IsShownRoundLabel:   true,
		IsShownTaskIndex:    false,
		RoundLabelWidth:     abcRoundLabelWidth,
		TableBodyCellsWidth: abcTableBodyCells,
	}
}

func singleRoundDisplayConfig() DisplayConfig {
	return DisplayConfig{
		IsShownHeader:       false,
		IsShownRoundLabel:   false,
		IsShownTaskIndex:    true,
		TableBodyCellsWidth: singleTableBodyCells,
	}
}

func abcRoundLabel(contestID string) string {
	if n := abcRound(contestID); n >= 0 {
		return strconv.Itoa(n)
	}
	return contestID
}

func emptyRoundLabel(string) string {
	return ""
}

func abcRoundBetween(from, to int) func(entity.TaskResult) bool {
	return func(r entity.TaskResult) bool {
		n := abcRound(r.ContestID)
		return n >= from && (to <= 0 || n <= to)
	}
}

// NewABCLatest20RoundsProvider 最近 20 场 ABC
func NewABCLatest20RoundsProvider() Provider {
	return &baseProvider{
		contestType: contest.ContestTypeABC,
		roundOrder:  roundOrderDesc,
		roundLimit:  abcLatestRoundLimit,
		metadata: Metadata{
			Title:       "AtCoder Beginner Contest (最新 20 回)",
			ButtonLabel: "ABC 最新 20 回",
			AriaLabel:   "Filter ABC latest 20 rounds",
		},
		displayConfig: abcDisplayConfig(),
		roundLabel:    abcRoundLabel,
	}
}

// NewABC319OnwardsProvider ABC319 以后 (A ~ G)
func NewABC319OnwardsProvider() Provider {
	return &baseProvider{
		contestType: contest.ContestTypeABC,
		predicate:   abcRoundBetween(319, 0),
		roundOrder:  roundOrderDesc,
		metadata: Metadata{
			Title:       "AtCoder Beginner Contest 319 〜 ",
			ButtonLabel: "ABC 319 〜 ",
			AriaLabel:   "Filter contests from ABC 319 onwards",
		},
		displayConfig: abcDisplayConfig(),
		roundLabel:    abcRoundLabel,
	}
}

// NewABC212ToABC318Provider ABC212 ~ ABC318 (A ~ H/Ex)
func NewABC212ToABC318Provider() Provider {
	return &baseProvider{
		contestType: contest.ContestTypeABC,
		predicate:   abcRoundBetween(212, 318),
		roundOrder:  roundOrderDesc,
		metadata: Metadata{
			Title:       "AtCoder Beginner Contest 212 〜 318",
			ButtonLabel: "ABC 212 〜 318",
			AriaLabel:   "Filter contests from ABC 212 to ABC 318",
		},
		displayConfig: abcDisplayConfig(),
		roundLabel:    abcRoundLabel,
	}
}

// NewABC126ToABC211Provider ABC126 ~ ABC211 (A ~ F)
func NewABC126ToABC211Provider() Provider {
	return &baseProvider{
		contestType: contest.ContestTypeABC,
		predicate:   abcRoundBetween(126, 211),
		roundOrder:  roundOrderDesc,
		metadata: Metadata{
			Title:       "AtCoder Beginner Contest 126 〜 211",
			ButtonLabel: "ABC 126 〜 211",
			AriaLabel:   "Filter contests from ABC 126 to ABC 211",
		},
		displayConfig: abcDisplayConfig(),
		roundLabel:    abcRoundLabel,
	}
}

func newSingleRoundProvider(contestType contest.ContestType, metadata Metadata) Provider {
	return &baseProvider{
		contestType:   contestType,
		roundOrder:    roundOrderAsc,
		metadata:      metadata,
		displayConfig: singleRoundDisplayConfig(),
		roundLabel:    emptyRoundLabel,
	}
}

// NewEDPCProvider Educational DP Contest
func NewEDPCProvider() Provider {
	return newSingleRoundProvider(contest.ContestTypeEDPC, Metadata{
		Title:       "Educational DP Contest / DP まとめコンテスト",
		ButtonLabel: "EDPC",
		AriaLabel:   "EDPC",
	})
}

// NewTDPCProvider Typical DP Contest
func NewTDPCProvider() Provider {
	return newSingleRoundProvider(contest.ContestTypeTDPC, Metadata{
		Title:       "Typical DP Contest",
		ButtonLabel: "TDPC",
		AriaLabel:   "TDPC",
	})
}

// NewFPS24Provider 数え上げ・形式的冪級数 24 題
func NewFPS24Provider() Provider {
	return newSingleRoundProvider(contest.ContestTypeFPS24, Metadata{
		Title:       "FPS 24 題",
		ButtonLabel: "FPS 24 題",
		AriaLabel:   "FPS 24",
	})
}

// NewACLPracticeProvider AtCoder Library Practice Contest
func NewACLPracticeProvider() Provider {
	return newSingleRoundProvider(contest.ContestTypeACLPractice, Metadata{
		Title:       "AtCoder Library Practice Contest",
		ButtonLabel: "ACL Practice",
		AriaLabel:   "ACL Practice",
	})
}

// TessokuBookSection 鉄則本的章节, 对应题号首字母
type TessokuBookSection string

const (
	TessokuBookSectionExamples   TessokuBookSection = "A"
	TessokuBookSectionPracticals TessokuBookSection = "B"
	TessokuBookSectionChallenges TessokuBookSection = "C"
)

var tessokuBookSectionTitles = map[TessokuBookSection]string{
	TessokuBookSectionExamples:   "例題",
	TessokuBookSectionPracticals: "応用問題",
	TessokuBookSectionChallenges: "力試し問題",
}

// NewTessokuBookProvider 鉄則本的某一章节
func NewTessokuBookProvider(section TessokuBookSection) Provider {
	title := tessokuBookSectionTitles[section]
	return &baseProvider{
		contestType: contest.ContestTypeTessokuBook,
		predicate: func(r entity.TaskResult) bool {
			return strings.HasPrefix(r.TaskTableIndex, string(section))
		},
		roundOrder: roundOrderAsc,
		metadata: Metadata{
			Title:       "競技プログラミングの鉄則 " + title,
			ButtonLabel: title,
			AriaLabel:   "Tessoku book " + string(section),
		},
		displayConfig: singleRoundDisplayConfig(),
		roundLabel:    emptyRoundLabel,
	}
}

// NewJOIFirstQualRoundProvider JOI 一次予選
func NewJOIFirstQualRoundProvider() Provider {
	return &baseProvider{
		contestType: contest.ContestTypeJOI,
		predicate: func(r entity.TaskResult) bool {
			return contest.IsJOIFirstQualRound(r.ContestID)
		},
		roundOrder: roundOrderDesc,
		metadata: Metadata{
			Title:       "JOI 一次予選",
			ButtonLabel: "JOI 一次予選",
			AriaLabel:   "Filter JOI first qualifying round",
		},
		displayConfig: DisplayConfig{
			IsShownHeader:       true,
			IsShownRoundLabel:   true,
			IsShownTaskIndex:    false,
			RoundLabelWidth:     "xl:w-28",
			TableBodyCellsWidth: abcTableBodyCells,
		},
		roundLabel: contest.NameLabel,
	}
}
