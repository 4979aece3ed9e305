package entity

import "strings"

// TaskGrade 题目难度等级, Q11 最易, D6 最难, PENDING 表示未评定
type TaskGrade string

const (
	TaskGradeQ11     TaskGrade = "Q11"
	TaskGradeQ10     TaskGrade = "Q10"
	TaskGradeQ9      TaskGrade = "Q9"
	TaskGradeQ8      TaskGrade = "Q8"
	TaskGradeQ7      TaskGrade = "Q7"
	TaskGradeQ6      TaskGrade = "Q6"
	TaskGradeQ5      TaskGrade = "Q5"
	TaskGradeQ4      TaskGrade = "Q4"
	TaskGradeQ3      TaskGrade = "Q3"
	TaskGradeQ2      TaskGrade = "Q2"
	TaskGradeQ1      TaskGrade = "Q1"
	TaskGradeD1      TaskGrade = "D1"
	TaskGradeD2      TaskGrade = "D2"
	TaskGradeD3      TaskGrade = "D3"
	TaskGradeD4      TaskGrade = "D4"
	TaskGradeD5      TaskGrade = "D5"
	TaskGradeD6      TaskGrade = "D6"
	TaskGradePending TaskGrade = "PENDING"
)

var taskGrades = []TaskGrade{
	TaskGradeQ11, TaskGradeQ10, TaskGradeQ9, TaskGradeQ8, TaskGradeQ7, TaskGradeQ6,
	TaskGradeQ5, TaskGradeQ4, TaskGradeQ3, TaskGradeQ2, TaskGradeQ1,
	TaskGradeD1, TaskGradeD2, TaskGradeD3, TaskGradeD4, TaskGradeD5, TaskGradeD6,
	TaskGradePending,
}

var taskGradeOrder = func() map[TaskGrade]int {
	m := make(map[TaskGrade]int, len(taskGrades))
	for i, g := range taskGrades {
		m[g] = i
	}
	return m
}()

// TaskGrades 按难度升序返回全部等级, PENDING 在最后
func TaskGrades() []TaskGrade {
	grades := make([]TaskGrade, len(taskGrades))
	copy(grades, taskGrades)
	return grades
}

// ParseTaskGrade 解析等级字符串, 大小写不敏感
func ParseTaskGrade(s string) (TaskGrade, bool) {
	g := TaskGrade(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := taskGradeOrder[g]
	return g, ok
}

func (g TaskGrade) Valid() bool {
	_, ok := taskGradeOrder[g]
	return ok
}

// Order 难度序号, 未知等级排在 PENDING 之后
func (g TaskGrade) Order() int {
	if o, ok := taskGradeOrder[g]; ok {
		return o
	}
	return len(taskGrades)
}

// Label 展示用名称: Q11 -> 11Q, D1 -> 1D, PENDING -> -
func (g TaskGrade) Label() string {
	switch {
	case g == TaskGradePending:
		return "-"
	case !g.Valid():
		return string(g)
	case strings.HasPrefix(string(g), "Q"):
		return strings.TrimPrefix(string(g), "Q") + "Q"
	default:
		return strings.TrimPrefix(string(g), "D") + "D"
	}
}
