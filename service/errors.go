package service

import "errors"

var (
	ErrTaskNotFound              = errors.New("task not found")
	ErrTaskAlreadyExists         = errors.New("task already exists")
	ErrInvalidTaskGrade          = errors.New("invalid task grade")
	ErrInvalidContestType        = errors.New("invalid contest type")
	ErrInvalidSubmissionStatus   = errors.New("invalid submission status")
	ErrTagNotFound               = errors.New("tag not found")
	ErrTagAlreadyExists          = errors.New("tag already exists")
	ErrWorkBookNotFound          = errors.New("workbook not found")
	ErrInvalidWorkBookTasks      = errors.New("invalid workbook tasks")
	ErrUserNotFound              = errors.New("user not found")
	ErrForbidden                 = errors.New("forbidden")
	ErrContestTableGroupNotFound = errors.New("contest table group not found")
)
