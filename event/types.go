package event

import (
	"time"

	json "github.com/bytedance/sonic"
)

const AnswerStatusChangedTopic = "task_answer_status_changed"

// AnswerStatusChangedMessage 用户题目回答状态变更
type AnswerStatusChangedMessage struct {
	UserID     uint64    `json:"user_id"`
	TaskID     string    `json:"task_id"`
	ContestID  string    `json:"contest_id"`
	StatusName string    `json:"status_name"`
	IsAC       bool      `json:"is_ac"`
	ChangedAt  time.Time `json:"changed_at"`
}

func (m *AnswerStatusChangedMessage) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *AnswerStatusChangedMessage) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
