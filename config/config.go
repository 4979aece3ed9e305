package config

type GinConfig struct {
	Addr             string   `yaml:"addr" mapstructure:"addr"`
	Mode             string   `yaml:"mode" mapstructure:"mode"` // debug, release, test
	EnablePprof      bool     `yaml:"enablePprof" mapstructure:"enablePprof"`
	AllowOrigins     []string `yaml:"allowOrigins" mapstructure:"allowOrigins"`
	AllowMethods     []string `yaml:"allowMethods" mapstructure:"allowMethods"`
	AllowHeaders     []string `yaml:"allowHeaders" mapstructure:"allowHeaders"`
	ExposeHeaders    []string `yaml:"exposeHeaders" mapstructure:"exposeHeaders"`
	AllowCredentials bool     `yaml:"allowCredentials" mapstructure:"allowCredentials"`
	MaxAge           int      `yaml:"maxAge" mapstructure:"maxAge"` // 单位: 秒
	CheckLoginPath   []string `yaml:"checkLoginPath" mapstructure:"checkLoginPath"`
	ShutdownTimeout  int      `yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"` // 单位: 秒
}

func (GinConfig) Key() string {
	return "gin"
}

type DBConfig struct {
	DSN             string `yaml:"dsn" mapstructure:"dsn"`
	MaxIdleConns    int    `yaml:"maxIdleConns" mapstructure:"maxIdleConns"`
	MaxOpenConns    int    `yaml:"maxOpenConns" mapstructure:"maxOpenConns"`
	ConnMaxLifetime int    `yaml:"connMaxLifetime" mapstructure:"connMaxLifetime"` // 单位: 秒
	SlowThreshold   int    `yaml:"slowThreshold" mapstructure:"slowThreshold"`     // 单位: 毫秒
}

func (DBConfig) Key() string {
	return "db"
}

type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	PoolSize int    `yaml:"poolSize" mapstructure:"poolSize"`
}

func (RedisConfig) Key() string {
	return "redis"
}

type KafkaConfig struct {
	Enabled  bool     `yaml:"enabled" mapstructure:"enabled"`
	Brokers  []string `yaml:"brokers" mapstructure:"brokers"`
	ClientID string   `yaml:"clientId" mapstructure:"clientId"`
	Retry    int      `yaml:"retry" mapstructure:"retry"`
}

func (KafkaConfig) Key() string {
	return "kafka"
}

type JWTConfig struct {
	JwtKey string `yaml:"jwtKey" mapstructure:"jwtKey"`
}

func (JWTConfig) Key() string {
	return "jwt"
}

type LoggerConfig struct {
	Level       string   `yaml:"level" mapstructure:"level"`
	Encoding    string   `yaml:"encoding" mapstructure:"encoding"` // json, console
	OutputPaths []string `yaml:"outputPaths" mapstructure:"outputPaths"`
	Development bool     `yaml:"development" mapstructure:"development"`
}

func (LoggerConfig) Key() string {
	return "logger"
}
