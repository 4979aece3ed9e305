package entity

// SubmissionStatus 提交状态, 固定的查找表, 回答记录通过 ID 引用
type SubmissionStatus struct {
	ID          uint8  `json:"id"`
	Name        string `json:"status_name"`
	LabelName   string `json:"label_name"`
	ImagePath   string `json:"image_path"`
	ButtonColor string `json:"button_color"`
	IsAC        bool   `json:"is_ac"`
}

const (
	SubmissionStatusNameAC              = "ac"
	SubmissionStatusNameACWithEditorial = "ac_with_editorial"
	SubmissionStatusNameWA              = "wa"
	SubmissionStatusNameNS              = "ns"
)

var (
	SubmissionStatusAC = SubmissionStatus{
		ID: 1, Name: SubmissionStatusNameAC, LabelName: "AC",
		ImagePath: "ac.png", ButtonColor: "success", IsAC: true,
	}
	SubmissionStatusACWithEditorial = SubmissionStatus{
		ID: 2, Name: SubmissionStatusNameACWithEditorial, LabelName: "解説AC",
		ImagePath: "ac_with_editorial.png", ButtonColor: "lime", IsAC: true,
	}
	SubmissionStatusWA = SubmissionStatus{
		ID: 3, Name: SubmissionStatusNameWA, LabelName: "挑戦中",
		ImagePath: "wa.png", ButtonColor: "warning", IsAC: false,
	}
	SubmissionStatusNS = SubmissionStatus{
		ID: 4, Name: SubmissionStatusNameNS, LabelName: "未挑戦",
		ImagePath: "ns.png", ButtonColor: "light", IsAC: false,
	}
)

var submissionStatuses = []SubmissionStatus{
	SubmissionStatusAC,
	SubmissionStatusACWithEditorial,
	SubmissionStatusWA,
	SubmissionStatusNS,
}

func SubmissionStatuses() []SubmissionStatus {
	statuses := make([]SubmissionStatus, len(submissionStatuses))
	copy(statuses, submissionStatuses)
	return statuses
}

func SubmissionStatusByName(name string) (SubmissionStatus, bool) {
	for _, s := range submissionStatuses {
		if s.Name == name {
			return s, true
		}
	}
	return SubmissionStatus{}, false
}

func SubmissionStatusByID(id uint8) (SubmissionStatus, bool) {
	for _, s := range submissionStatuses {
		if s.ID == id {
			return s, true
		}
	}
	return SubmissionStatus{}, false
}
