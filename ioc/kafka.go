package ioc

import (
	"log"

	"github.com/IBM/sarama"
	"github.com/spf13/viper"
	"github.com/to404hanga/task_tracker/config"
	"github.com/to404hanga/task_tracker/event"
)

// InitKafka 未启用时返回 nil, 不发布答题状态事件
func InitKafka() event.Producer {
	var cfg config.KafkaConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal kafka config failed: %v", err)
	}
	if !cfg.Enabled {
		return nil
	}

	scfg := sarama.NewConfig()
	scfg.ClientID = cfg.ClientID
	scfg.Producer.Return.Successes = true
	scfg.Producer.RequiredAcks = sarama.WaitForAll
	if cfg.Retry > 0 {
		scfg.Producer.Retry.Max = cfg.Retry
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, scfg)
	if err != nil {
		log.Panicf("new kafka sync producer failed: %v", err)
	}
	return event.NewSaramaSyncProducer(producer)
}
