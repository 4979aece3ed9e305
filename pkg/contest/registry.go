package contest

// 赞助商冠名比赛, 按 AtCoder 的赛制分为 ABC / ARC / AGC 同等级别.
// key 为比赛 ID 前缀, value 为展示名称
var abcLikeContests = map[string]string{
	"tenka1-2019-beginner": "Tenka1 Programmer Beginner Contest 2019",
	"aising2019":           "エイシング プログラミング コンテスト 2019",
	"aising2020":           "エイシング プログラミング コンテスト 2020",
	"sumitomo2019":         "三井住友信託銀行プログラミングコンテスト 2019",
	"panasonic2020":        "パナソニックプログラミングコンテスト 2020",
	"tokiomarine2020":      "東京海上日動 プログラミングコンテスト 2020",
	"m-solutions2020":      "M-SOLUTIONS プロコンオープン 2020",
	"hhkb2020":             "HHKB プログラミングコンテスト 2020",
	"keyence2021":          "キーエンス プログラミング コンテスト 2021",
}

var arcLikeContests = map[string]string{
	"keyence2019":   "キーエンス プログラミング コンテスト 2019",
	"jsc2019-qual":  "第一回日本最強プログラマー学生選手権 -予選-",
	"ddcc2020-qual": "DISCO presents ディスカバリーチャンネル コードフェスティバル 2020 予選",
	"diverta2019-2": "DISCO presents ディスカバリーチャンネル コードフェスティバル 2019 本戦",
}

var agcLikeContests = map[string]string{
	"code-festival-2016-final": "CODE FESTIVAL 2016 Final",
	"code-festival-2017-final": "CODE FESTIVAL 2017 Final",
	"mujin-pc-2018":            "Mujin Programming Challenge 2018",
}

// 大学主办的比赛, 前缀之后通常紧跟年份
var universityContests = map[string]string{
	"utpc": "東京大学プログラミングコンテスト",
	"ttpc": "東京工業大学プログラミングコンテスト",
	"tupc": "東北大学プログラミングコンテスト",
	"kupc": "京都大学プログラミングコンテスト",
	"qupc": "九州大学プログラミングコンテスト",
}

var aojCourses = map[string]struct{}{
	"ITP1":  {},
	"ITP2":  {},
	"ALDS1": {},
	"DSL":   {},
	"GRL":   {},
	"CGL":   {},
	"DPL":   {},
	"NTL":   {},
}

// lookupPrefix 在 registry 中查找比赛 ID 命中的前缀, 多个命中时取最长的前缀
func lookupPrefix(registry map[string]string, contestID string) (prefix, name string, ok bool) {
	for p, n := range registry {
		if len(p) <= len(contestID) && contestID[:len(p)] == p && len(p) > len(prefix) {
			prefix, name, ok = p, n, true
		}
	}
	return prefix, name, ok
}

// lookupUniversity 大学比赛 ID 为前缀后紧跟年份或回次, 如 kupc2023
func lookupUniversity(contestID string) (prefix, name string, ok bool) {
	prefix, name, ok = lookupPrefix(universityContests, contestID)
	if !ok || len(contestID) == len(prefix) || contestID[len(prefix)] < '0' || contestID[len(prefix)] > '9' {
		return "", "", false
	}
	return prefix, name, true
}
