package contesttable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/to404hanga/task_tracker/entity"
)

func result(contestID, index string) entity.TaskResult {
	return entity.TaskResult{
		ContestID:      contestID,
		TaskID:         fmt.Sprintf("%s_%s", contestID, index),
		TaskTableIndex: index,
		StatusName:     entity.SubmissionStatusNameNS,
	}
}

func abcResults(from, to int, indices ...string) []entity.TaskResult {
	out := make([]entity.TaskResult, 0)
	for n := from; n <= to; n++ {
		for _, idx := range indices {
			out = append(out, result(fmt.Sprintf("abc%03d", n), idx))
		}
	}
	return out
}

func TestABCLatest20Rounds(t *testing.T) {
	results := append(abcResults(350, 380, "A", "B"), result("arc180", "A"), result("dp", "a"))
	p := NewABCLatest20RoundsProvider()

	ids := p.ContestRoundIDs(results)
	require.Len(t, ids, 20)
	assert.Equal(t, "abc380", ids[0])
	assert.Equal(t, "abc361", ids[19])

	filtered := p.Filter(results)
	assert.Len(t, filtered, 40)
	for _, r := range filtered {
		assert.NotEqual(t, "abc360", r.ContestID)
	}
	assert.Equal(t, "375", p.RoundLabel("abc375"))
}

func TestABCRangeProviders(t *testing.T) {
	results := abcResults(120, 330, "A")

	testCases := []struct {
		name     string
		provider Provider
		first    string
		last     string
		count    int
	}{
		{"319 onwards", NewABC319OnwardsProvider(), "abc330", "abc319", 12},
		{"212 to 318", NewABC212ToABC318Provider(), "abc318", "abc212", 107},
		{"126 to 211", NewABC126ToABC211Provider(), "abc211", "abc126", 86},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids := tc.provider.ContestRoundIDs(results)
			require.Len(t, ids, tc.count)
			assert.Equal(t, tc.first, ids[0])
			assert.Equal(t, tc.last, ids[len(ids)-1])
		})
	}
}

func TestFilterKeepsInputOrderUnderRoundLimit(t *testing.T) {
	results := []entity.TaskResult{
		result("abc372", "B"),
		result("abc370", "A"),
		result("abc372", "A"),
		result("abc371", "A"),
		result("abc370", "A"),
	}
	p := NewABCLatest20RoundsProvider()

	assert.Equal(t, results, p.Filter(results))
	assert.Equal(t, []string{"abc372", "abc371", "abc370"}, p.ContestRoundIDs(results))
	assert.Equal(t, []string{"A", "B"}, p.HeaderIDs(results))
	assert.Empty(t, p.ContestRoundIDs(nil))
}

func TestHeaderIDsExSortedAsH(t *testing.T) {
	results := []entity.TaskResult{
		result("abc230", "Ex"),
		result("abc230", "G"),
		result("abc230", "A"),
		result("abc229", "D"),
		result("abc229", "A"),
	}
	ids := NewABC212ToABC318Provider().HeaderIDs(results)
	assert.Equal(t, []string{"A", "D", "G", "Ex"}, ids)
}

func TestGenerateTableLaterDuplicateWins(t *testing.T) {
	first := result("abc330", "A")
	second := result("abc330", "A")
	second.StatusName = entity.SubmissionStatusNameAC

	table := NewABC319OnwardsProvider().GenerateTable([]entity.TaskResult{first, result("abc331", "B"), second})
	require.Len(t, table, 2)
	assert.Equal(t, entity.SubmissionStatusNameAC, table["abc330"]["A"].StatusName)
	assert.Contains(t, table["abc331"], "B")
}

func TestSingleRoundProviders(t *testing.T) {
	results := []entity.TaskResult{
		result("dp", "A"), result("dp", "B"),
		result("tdpc", "A"),
		result("fps-24", "A"),
		result("practice2", "A"),
		result("abc330", "A"),
	}
	testCases := []struct {
		name     string
		provider Provider
		contest  string
		count    int
	}{
		{"edpc", NewEDPCProvider(), "dp", 2},
		{"tdpc", NewTDPCProvider(), "tdpc", 1},
		{"fps24", NewFPS24Provider(), "fps-24", 1},
		{"acl", NewACLPracticeProvider(), "practice2", 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.provider.Filter(results), tc.count)
			assert.Equal(t, []string{tc.contest}, tc.provider.ContestRoundIDs(results))
			assert.Equal(t, "", tc.provider.RoundLabel(tc.contest))
			assert.False(t, tc.provider.DisplayConfig().IsShownRoundLabel)
		})
	}
}

func TestTessokuBookSections(t *testing.T) {
	results := []entity.TaskResult{
		result("tessoku-book", "A01"),
		result("tessoku-book", "A10"),
		result("tessoku-book", "A02"),
		result("tessoku-book", "B01"),
		result("tessoku-book", "C01"),
		result("math-and-algorithm", "A01"),
	}
	examples := NewTessokuBookProvider(TessokuBookSectionExamples)
	assert.Equal(t, []string{"A01", "A02", "A10"}, examples.HeaderIDs(results))
	assert.Len(t, NewTessokuBookProvider(TessokuBookSectionPracticals).Filter(results), 1)
	assert.Len(t, NewTessokuBookProvider(TessokuBookSectionChallenges).Filter(results), 1)
}

func TestJOIFirstQualRound(t *testing.T) {
	results := []entity.TaskResult{
		result("joi2024yo1a", "A"),
		result("joi2024yo1c", "A"),
		result("joi2023yo1b", "A"),
		result("joi2024yo2", "A"),
		result("joi2024ho", "A"),
	}
	p := NewJOIFirstQualRoundProvider()
	assert.Equal(t, []string{"joi2024yo1c", "joi2024yo1a", "joi2023yo1b"}, p.ContestRoundIDs(results))
	assert.Equal(t, "JOI 2024 一次予選 第 1 回", p.RoundLabel("joi2024yo1a"))
}

func TestRender(t *testing.T) {
	results := append(abcResults(328, 330, "A", "B"), result("dp", "A"))
	view := Render(NewABC319OnwardsProvider(), results)

	assert.Equal(t, []string{"abc330", "abc329", "abc328"}, view.RoundIDs)
	assert.Equal(t, []string{"A", "B"}, view.HeaderIDs)
	assert.Equal(t, "329", view.RoundLabels["abc329"])
	assert.Len(t, view.Table, 3)
}

func TestGroups(t *testing.T) {
	names := make([]string, 0)
	for _, g := range Groups() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{
		GroupABCLatest20Rounds, GroupABC319Onwards, GroupABC212ToABC318, GroupABC126ToABC211,
		GroupEDPC, GroupTDPC, GroupFPS24, GroupACLPractice, GroupTessokuBook, GroupJOIFirstQualRound,
	}, names)

	g, ok := GroupByName(GroupTessokuBook)
	require.True(t, ok)
	assert.Equal(t, 3, g.Size())

	_, ok = GroupByName("unknown")
	assert.False(t, ok)
}
