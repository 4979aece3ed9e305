package contest

import (
	"fmt"
	"net/url"
)

const (
	atCoderBaseURL = "https://atcoder.jp"
	aojBaseURL     = "https://onlinejudge.u-aizu.ac.jp"
)

// ContestURL 比赛页面链接
func ContestURL(contestID string) string {
	switch Classify(contestID) {
	case ContestTypeAOJCourses:
		return fmt.Sprintf("%s/courses/library/%s", aojBaseURL, url.PathEscape(contestID))
	case ContestTypeAOJPCK:
		return aojChallengeURL("PCK", pckPattern.FindStringSubmatch(contestID))
	case ContestTypeAOJJAG:
		return aojChallengeURL("JAG", jagPattern.FindStringSubmatch(contestID))
	}
	return fmt.Sprintf("%s/contests/%s", atCoderBaseURL, url.PathEscape(contestID))
}

// TaskURL 题目页面链接
func TaskURL(contestID, taskID string) string {
	if IsAOJ(contestID) {
		return fmt.Sprintf("%s/problems/%s", aojBaseURL, url.PathEscape(taskID))
	}
	return fmt.Sprintf("%s/contests/%s/tasks/%s", atCoderBaseURL, url.PathEscape(contestID), url.PathEscape(taskID))
}

// aojChallengeURL m 为 [全匹配, 轮次, 年份], 不匹配时退回来源列表页
func aojChallengeURL(source string, m []string) string {
	if m == nil {
		return fmt.Sprintf("%s/challenges/sources/%s", aojBaseURL, source)
	}
	return fmt.Sprintf("%s/challenges/sources/%s/%s?year=%s", aojBaseURL, source, m[1], m[2])
}
