package config

type BaseCronJobConfig struct {
	CronExpr string `yaml:"cronExpr" mapstructure:"cronExpr"`
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Timeout  int    `yaml:"timeout" mapstructure:"timeout"` // 单位: 毫秒
}

type TaskImporterConfig struct {
	BaseCronJobConfig `yaml:",inline" mapstructure:",squash"`

	URL          string   `yaml:"url" mapstructure:"url"`
	ContestTypes []string `yaml:"contestTypes" mapstructure:"contestTypes"` // 为空时导入全部 AtCoder 比赛
	HTTPTimeout  int      `yaml:"httpTimeout" mapstructure:"httpTimeout"`   // 单位: 秒
}

func (TaskImporterConfig) Key() string {
	return "taskImporter"
}
