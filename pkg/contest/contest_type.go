package contest

// ContestType 比赛分类
type ContestType string

const (
	ContestTypeABS              ContestType = "ABS"
	ContestTypeABC              ContestType = "ABC"
	ContestTypeAPG4B            ContestType = "APG4B"
	ContestTypeABCLike          ContestType = "ABC_LIKE"
	ContestTypeARCLike          ContestType = "ARC_LIKE"
	ContestTypeAGCLike          ContestType = "AGC_LIKE"
	ContestTypePAST             ContestType = "PAST"
	ContestTypeEDPC             ContestType = "EDPC"
	ContestTypeTDPC             ContestType = "TDPC"
	ContestTypeFPS24            ContestType = "FPS_24"
	ContestTypeJOI              ContestType = "JOI"
	ContestTypeTessokuBook      ContestType = "TESSOKU_BOOK"
	ContestTypeMathAndAlgorithm ContestType = "MATH_AND_ALGORITHM"
	ContestTypeTypical90        ContestType = "TYPICAL90"
	ContestTypeACLPractice      ContestType = "ACL_PRACTICE"
	ContestTypeARC              ContestType = "ARC"
	ContestTypeAGC              ContestType = "AGC"
	ContestTypeUniversity       ContestType = "UNIVERSITY"
	ContestTypeAOJCourses       ContestType = "AOJ_COURSES"
	ContestTypeAOJPCK           ContestType = "AOJ_PCK"
	ContestTypeAOJJAG           ContestType = "AOJ_JAG"
	ContestTypeOthers           ContestType = "OTHERS"
)

// contestTypePriorities 数值越小越靠前
var contestTypePriorities = map[ContestType]int{
	ContestTypeABS:              0,
	ContestTypeABC:              1,
	ContestTypeAPG4B:            2,
	ContestTypeABCLike:          3,
	ContestTypeARCLike:          4,
	ContestTypeAGCLike:          5,
	ContestTypePAST:             6,
	ContestTypeEDPC:             7,
	ContestTypeTDPC:             8,
	ContestTypeFPS24:            9,
	ContestTypeJOI:              10,
	ContestTypeTessokuBook:      11,
	ContestTypeMathAndAlgorithm: 12,
	ContestTypeTypical90:        13,
	ContestTypeACLPractice:      14,
	ContestTypeARC:              15,
	ContestTypeAGC:              16,
	ContestTypeUniversity:       17,
	ContestTypeAOJCourses:       18,
	ContestTypeAOJPCK:           19,
	ContestTypeAOJJAG:           20,
	ContestTypeOthers:           21,
}

// ContestTypes 按优先级返回全部分类
func ContestTypes() []ContestType {
	types := make([]ContestType, len(contestTypePriorities))
	for t, p := range contestTypePriorities {
		types[p] = t
	}
	return types
}

// Priority 返回分类的排序优先级, 未知分类与 OTHERS 相同
func (t ContestType) Priority() int {
	if p, ok := contestTypePriorities[t]; ok {
		return p
	}
	return contestTypePriorities[ContestTypeOthers]
}

func (t ContestType) Valid() bool {
	_, ok := contestTypePriorities[t]
	return ok
}

// IsAOJ 是否为 AOJ 上的比赛
func (t ContestType) IsAOJ() bool {
	return t == ContestTypeAOJCourses || t == ContestTypeAOJPCK || t == ContestTypeAOJJAG
}
