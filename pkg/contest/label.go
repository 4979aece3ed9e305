package contest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	pastRoundPattern = regexp.MustCompile(`^past(\d{1,2})(?:-open)?$`)
	pastMonthPattern = regexp.MustCompile(`^past(\d{4})(\d{2})(?:-open)?$`)

	joiFirstQualPattern  = regexp.MustCompile(`^joi(\d{4})yo1([abc])$`)
	joiSecondQualPattern = regexp.MustCompile(`^joi(\d{4})yo2$`)
	joiQualPattern       = regexp.MustCompile(`^joi(\d{4})yo$`)
	joiFinalPattern      = regexp.MustCompile(`^joi(\d{4})ho$`)
	joiSpringCampPattern = regexp.MustCompile(`^joisc(\d{4})$`)
	joigPattern          = regexp.MustCompile(`^joig(\d{4})(-open)?$`)

	pckPattern = regexp.MustCompile(`^PCK(Prelim|Final)(\d{4})$`)
	jagPattern = regexp.MustCompile(`^JAG(Prelim|Regional)(\d{4})$`)
)

var fixedLabels = map[string]string{
	"abs":                "ABS",
	"typical90":          "競プロ典型 90 問",
	"dp":                 "EDPC",
	"tdpc":               "TDPC",
	"fps-24":             "FPS 24 題",
	"practice2":          "ACL Practice",
	"tessoku-book":       "競技プログラミングの鉄則",
	"math-and-algorithm": "アルゴリズムと数学",
}

var joiFirstQualRounds = map[string]int{"a": 1, "b": 2, "c": 3}

var aojRoundLabels = map[string]string{
	"Prelim":   "予選",
	"Final":    "本選",
	"Regional": "地区予選",
}

// NameLabel 比赛的展示名称
func NameLabel(contestID string) string {
	if label, ok := fixedLabels[contestID]; ok {
		return label
	}

	switch Classify(contestID) {
	case ContestTypeABC, ContestTypeARC, ContestTypeAGC:
		return strings.ToUpper(contestID)
	case ContestTypePAST:
		return pastLabel(contestID)
	case ContestTypeJOI:
		return joiLabel(contestID)
	case ContestTypeABCLike:
		return registryLabel(abcLikeContests, contestID)
	case ContestTypeARCLike:
		return registryLabel(arcLikeContests, contestID)
	case ContestTypeAGCLike:
		return registryLabel(agcLikeContests, contestID)
	case ContestTypeUniversity:
		return universityLabel(contestID)
	case ContestTypeAOJCourses, ContestTypeAOJPCK, ContestTypeAOJJAG:
		return aojLabel(contestID)
	}
	return contestID
}

// TaskLabel 题目在比赛中的展示名称, 如 "ABC375 - A"
func TaskLabel(contestID, taskTableIndex string) string {
	return fmt.Sprintf("%s - %s", NameLabel(contestID), taskTableIndex)
}

func pastLabel(contestID string) string {
	if m := pastRoundPattern.FindStringSubmatch(contestID); m != nil {
		round, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("PAST 第 %d 回", round)
	}
	if m := pastMonthPattern.FindStringSubmatch(contestID); m != nil {
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("PAST %s 年 %d 月", m[1], month)
	}
	return contestID
}

func joiLabel(contestID string) string {
	if m := joiFirstQualPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("JOI %s 一次予選 第 %d 回", m[1], joiFirstQualRounds[m[2]])
	}
	if m := joiSecondQualPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("JOI %s 二次予選", m[1])
	}
	if m := joiQualPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("JOI %s 予選", m[1])
	}
	if m := joiFinalPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("JOI %s 本選", m[1])
	}
	if m := joiSpringCampPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("JOI 春合宿 %s", m[1])
	}
	if m := joigPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("JOIG %s", m[1])
	}
	return contestID
}

func registryLabel(registry map[string]string, contestID string) string {
	if _, name, ok := lookupPrefix(registry, contestID); ok {
		return name
	}
	return contestID
}

// universityLabel 前缀之后的部分视为年份或回次, 如 kupc2023 -> 京都大学プログラミングコンテスト 2023
func universityLabel(contestID string) string {
	p, name, ok := lookupUniversity(contestID)
	if !ok {
		return contestID
	}
	return name + " " + contestID[len(p):]
}

func aojLabel(contestID string) string {
	if isAOJCourse(contestID) {
		return "AOJ Courses - " + contestID
	}
	if m := pckPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("AOJ - パソコン甲子園 %s %s", m[2], aojRoundLabels[m[1]])
	}
	if m := jagPattern.FindStringSubmatch(contestID); m != nil {
		return fmt.Sprintf("AOJ - JAG 模擬%s %s", jagRoundLabel(m[1]), m[2])
	}
	return "AOJ - " + contestID
}

func jagRoundLabel(round string) string {
	if round == "Prelim" {
		return "国内予選"
	}
	return aojRoundLabels[round]
}

// IsJOIFirstQualRound 是否为 JOI 一次予選 (joiYYYYyo1a|b|c)
func IsJOIFirstQualRound(contestID string) bool {
	return joiFirstQualPattern.MatchString(contestID)
}
