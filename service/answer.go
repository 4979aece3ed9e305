package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/event"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerService interface {
	// GetAnswers 获取用户全部回答, 以 task_id 为键
	GetAnswers(ctx context.Context, userID uint64) (map[string]entity.TaskAnswer, error)
	// GetAnswer 获取用户对某题的回答, 不存在时返回 nil
	GetAnswer(ctx context.Context, userID uint64, taskID string) (*entity.TaskAnswer, error)
	// UpsertAnswer 新增或更新用户对某题的回答状态
	UpsertAnswer(ctx context.Context, userID uint64, task *entity.Task, status entity.SubmissionStatus) error
}

type AnswerServiceImpl struct {
	db    *gorm.DB
	kafka event.Producer
	log   loggerv2.Logger
}

var _ AnswerService = (*AnswerServiceImpl)(nil)

// NewAnswerService kafka 为 nil 时不发布状态变更事件
func NewAnswerService(db *gorm.DB, kafka event.Producer, log loggerv2.Logger) AnswerService {
	return &AnswerServiceImpl{
		db:    db,
		kafka: kafka,
		log:   log,
	}
}

func (s *AnswerServiceImpl) GetAnswers(ctx context.Context, userID uint64) (map[string]entity.TaskAnswer, error) {
	var answers []entity.TaskAnswer
	err := s.db.WithContext(ctx).Model(&entity.TaskAnswer{}).
		Where("user_id = ?", userID).
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("GetAnswers failed: %w", err)
	}

	m := make(map[string]entity.TaskAnswer, len(answers))
	for _, a := range answers {
		m[a.TaskID] = a
	}
	return m, nil
}

func (s *AnswerServiceImpl) GetAnswer(ctx context.Context, userID uint64, taskID string) (*entity.TaskAnswer, error) {
	var answer entity.TaskAnswer
	err := s.db.WithContext(ctx).Model(&entity.TaskAnswer{}).
		Where("user_id = ?", userID).
		Where("task_id = ?", taskID).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetAnswer failed: %w", err)
	}
	return &answer, nil
}

func (s *AnswerServiceImpl) UpsertAnswer(ctx context.Context, userID uint64, task *entity.Task, status entity.SubmissionStatus) error {
	now := time.Now()
	answer := entity.TaskAnswer{
		UserID:    userID,
		TaskID:    task.TaskID,
		StatusID:  status.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status_id", "updated_at"}),
	}).Create(&answer).Error
	if err != nil {
		return fmt.Errorf("UpsertAnswer failed at upsert answer: %w", err)
	}

	if s.kafka == nil {
		return nil
	}

	// 状态已落库, 事件发布失败只记录日志
	msg := event.AnswerStatusChangedMessage{
		UserID:     userID,
		TaskID:     task.TaskID,
		ContestID:  task.ContestID,
		StatusName: status.Name,
		IsAC:       status.IsAC,
		ChangedAt:  now,
	}
	val, err := msg.Marshal()
	if err != nil {
		s.log.ErrorContext(ctx, "UpsertAnswer marshal message failed", logger.Error(err))
		return nil
	}
	_, _, err = s.kafka.Produce(ctx, &sarama.ProducerMessage{
		Topic: event.AnswerStatusChangedTopic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", userID)),
		Value: sarama.ByteEncoder(val),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "UpsertAnswer produce message failed", logger.Error(err))
	}
	return nil
}
