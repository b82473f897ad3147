package util

import "errors"

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailRegistered   = errors.New("该邮箱已被注册")
	ErrQuestionNotFound  = errors.New("quiz question not found")
	ErrPathNotFound      = errors.New("learning path not found")
	ErrSessionNotFound   = errors.New("tutor session not found")
	ErrInvalidTopicIndex = errors.New("topic index out of range")
)
