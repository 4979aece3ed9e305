package contest

import (
	"regexp"
	"strings"
)

var (
	abcPattern  = regexp.MustCompile(`^abc\d{3}$`)
	arcPattern  = regexp.MustCompile(`^arc\d{3}$`)
	agcPattern  = regexp.MustCompile(`^agc\d{3}$`)
	pastPattern = regexp.MustCompile(`^past\d+(-open)?$`)
	joiPattern  = regexp.MustCompile(`^(joi|joisc|joig)\d{4}`)
)

type rule struct {
	match       func(contestID string) bool
	contestType ContestType
}

func exact(ids ...string) func(string) bool {
	return func(contestID string) bool {
		for _, id := range ids {
			if contestID == id {
				return true
			}
		}
		return false
	}
}

func prefix(p string) func(string) bool {
	return func(contestID string) bool {
		return strings.HasPrefix(contestID, p)
	}
}

func inRegistry(registry map[string]string) func(string) bool {
	return func(contestID string) bool {
		_, _, ok := lookupPrefix(registry, contestID)
		return ok
	}
}

// rules 按顺序匹配, 命中第一条即返回
var rules = []rule{
	{match: exact("abs"), contestType: ContestTypeABS},
	{match: abcPattern.MatchString, contestType: ContestTypeABC},
	{match: arcPattern.MatchString, contestType: ContestTypeARC},
	{match: agcPattern.MatchString, contestType: ContestTypeAGC},
	{match: prefix("APG4b"), contestType: ContestTypeAPG4B},
	{match: exact("typical90"), contestType: ContestTypeTypical90},
	{match: exact("dp"), contestType: ContestTypeEDPC},
	{match: exact("tdpc"), contestType: ContestTypeTDPC},
	{match: exact("fps-24"), contestType: ContestTypeFPS24},
	{match: pastPattern.MatchString, contestType: ContestTypePAST},
	{match: exact("practice2"), contestType: ContestTypeACLPractice},
	{match: joiPattern.MatchString, contestType: ContestTypeJOI},
	{match: exact("tessoku-book"), contestType: ContestTypeTessokuBook},
	{match: exact("math-and-algorithm"), contestType: ContestTypeMathAndAlgorithm},
	{match: inRegistry(abcLikeContests), contestType: ContestTypeABCLike},
	{match: inRegistry(arcLikeContests), contestType: ContestTypeARCLike},
	{match: inRegistry(agcLikeContests), contestType: ContestTypeAGCLike},
	{match: isUniversityContest, contestType: ContestTypeUniversity},
	{match: isAOJCourse, contestType: ContestTypeAOJCourses},
	{match: prefix("PCK"), contestType: ContestTypeAOJPCK},
	{match: prefix("JAG"), contestType: ContestTypeAOJJAG},
}

func isUniversityContest(contestID string) bool {
	_, _, ok := lookupUniversity(contestID)
	return ok
}

func isAOJCourse(contestID string) bool {
	_, ok := aojCourses[contestID]
	return ok
}

// Classify 根据比赛 ID 判断比赛分类, 无法识别时返回 OTHERS
func Classify(contestID string) ContestType {
	for _, r := range rules {
		if r.match(contestID) {
			return r.contestType
		}
	}
	return ContestTypeOthers
}

// ContestPriority 比赛 ID 对应分类的排序优先级
func ContestPriority(contestID string) int {
	return Classify(contestID).Priority()
}

// IsAOJ 比赛是否托管在 AOJ 上
func IsAOJ(contestID string) bool {
	return Classify(contestID).IsAOJ()
}

// IsAtCoder 比赛是否托管在 AtCoder 上
func IsAtCoder(contestID string) bool {
	return !IsAOJ(contestID)
}
