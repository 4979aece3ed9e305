package contest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		contestID string
		want      ContestType
	}{
		{"abs", ContestTypeABS},
		{"abc001", ContestTypeABC},
		{"abc375", ContestTypeABC},
		{"abc1000", ContestTypeOthers},
		{"arc180", ContestTypeARC},
		{"agc066", ContestTypeAGC},
		{"APG4b", ContestTypeAPG4B},
		{"APG4bPython", ContestTypeAPG4B},
		{"typical90", ContestTypeTypical90},
		{"dp", ContestTypeEDPC},
		{"tdpc", ContestTypeTDPC},
		{"fps-24", ContestTypeFPS24},
		{"past17-open", ContestTypePAST},
		{"past202012-open", ContestTypePAST},
		{"past17", ContestTypePAST},
		{"past201912", ContestTypePAST},
		{"practice2", ContestTypeACLPractice},
		{"joi2024yo1a", ContestTypeJOI},
		{"joi2023ho", ContestTypeJOI},
		{"joisc2007", ContestTypeJOI},
		{"joig2024-open", ContestTypeJOI},
		{"tessoku-book", ContestTypeTessokuBook},
		{"math-and-algorithm", ContestTypeMathAndAlgorithm},
		{"tenka1-2019-beginner", ContestTypeABCLike},
		{"panasonic2020", ContestTypeABCLike},
		{"keyence2021", ContestTypeABCLike},
		{"keyence2019", ContestTypeARCLike},
		{"jsc2019-qual", ContestTypeARCLike},
		{"code-festival-2017-final", ContestTypeAGCLike},
		{"kupc2023", ContestTypeUniversity},
		{"utpc2022", ContestTypeUniversity},
		{"kupcfoo", ContestTypeOthers},
		{"kupc", ContestTypeOthers},
		{"ITP1", ContestTypeAOJCourses},
		{"ALDS1", ContestTypeAOJCourses},
		{"PCKPrelim2023", ContestTypeAOJPCK},
		{"JAGRegional2022", ContestTypeAOJJAG},
		{"chokudai_S001", ContestTypeOthers},
		{"", ContestTypeOthers},
	}
	for _, tc := range testCases {
		t.Run(tc.contestID, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.contestID))
		})
	}
}

func TestContestPriority(t *testing.T) {
	assert.Equal(t, 0, ContestPriority("abs"))
	assert.Equal(t, 1, ContestPriority("abc375"))
	assert.Equal(t, 15, ContestPriority("arc180"))
	assert.Equal(t, 21, ContestPriority("unknown-contest"))
	assert.Less(t, ContestPriority("abc001"), ContestPriority("agc001"))
	assert.Equal(t, ContestTypeOthers.Priority(), ContestType("NOPE").Priority())

	types := ContestTypes()
	assert.Len(t, types, 22)
	for i, ct := range types {
		assert.Equal(t, i, ct.Priority())
	}
}

func TestNameLabel(t *testing.T) {
	testCases := []struct {
		contestID string
		want      string
	}{
		{"abc375", "ABC375"},
		{"arc001", "ARC001"},
		{"agc066", "AGC066"},
		{"abs", "ABS"},
		{"APG4b", "APG4b"},
		{"typical90", "競プロ典型 90 問"},
		{"dp", "EDPC"},
		{"tdpc", "TDPC"},
		{"fps-24", "FPS 24 題"},
		{"past17-open", "PAST 第 17 回"},
		{"past202004-open", "PAST 2020 年 4 月"},
		{"past17", "PAST 第 17 回"},
		{"past201912", "PAST 2019 年 12 月"},
		{"practice2", "ACL Practice"},
		{"tessoku-book", "競技プログラミングの鉄則"},
		{"math-and-algorithm", "アルゴリズムと数学"},
		{"joi2024yo1a", "JOI 2024 一次予選 第 1 回"},
		{"joi2024yo1c", "JOI 2024 一次予選 第 3 回"},
		{"joi2024yo2", "JOI 2024 二次予選"},
		{"joi2012yo", "JOI 2012 予選"},
		{"joi2023ho", "JOI 2023 本選"},
		{"joisc2024", "JOI 春合宿 2024"},
		{"joig2024-open", "JOIG 2024"},
		{"joi2024yo1z", "joi2024yo1z"},
		{"hhkb2020", "HHKB プログラミングコンテスト 2020"},
		{"code-festival-2016-final", "CODE FESTIVAL 2016 Final"},
		{"kupc2023", "京都大学プログラミングコンテスト 2023"},
		{"kupcfoo", "kupcfoo"},
		{"ITP1", "AOJ Courses - ITP1"},
		{"PCKPrelim2023", "AOJ - パソコン甲子園 2023 予選"},
		{"PCKFinal2022", "AOJ - パソコン甲子園 2022 本選"},
		{"JAGPrelim2023", "AOJ - JAG 模擬国内予選 2023"},
		{"JAGRegional2021", "AOJ - JAG 模擬地区予選 2021"},
		{"PCKSpring", "AOJ - PCKSpring"},
		{"chokudai_S001", "chokudai_S001"},
	}
	for _, tc := range testCases {
		t.Run(tc.contestID, func(t *testing.T) {
			assert.Equal(t, tc.want, NameLabel(tc.contestID))
		})
	}
}

func TestTaskLabel(t *testing.T) {
	assert.Equal(t, "ABC375 - A", TaskLabel("abc375", "A"))
	assert.Equal(t, "競技プログラミングの鉄則 - A01", TaskLabel("tessoku-book", "A01"))
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://atcoder.jp/contests/abc375", ContestURL("abc375"))
	assert.Equal(t, "https://atcoder.jp/contests/abc375/tasks/abc375_a", TaskURL("abc375", "abc375_a"))
	assert.Equal(t, "https://onlinejudge.u-aizu.ac.jp/problems/ITP1_1_A", TaskURL("ITP1", "ITP1_1_A"))
	assert.Equal(t, "https://onlinejudge.u-aizu.ac.jp/courses/library/ITP1", ContestURL("ITP1"))
	assert.Equal(t, "https://onlinejudge.u-aizu.ac.jp/challenges/sources/PCK/Prelim?year=2023", ContestURL("PCKPrelim2023"))
	assert.Equal(t, "https://onlinejudge.u-aizu.ac.jp/challenges/sources/JAG", ContestURL("JAGSpring"))
	assert.True(t, IsAtCoder("abc375"))
	assert.True(t, IsAOJ("JAGPrelim2023"))
}
