package service

import "errors"

// Precondition and lookup errors surfaced to callers. Provider failures are
// never exposed here; they degrade to fallback scoring/feedback.
var (
	ErrInterviewNotFound      = errors.New("interview not found")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrInterviewNotInProgress = errors.New("interview is not in progress")
	ErrQuotaExhausted         = errors.New("all planned questions have been answered")
	ErrQuestionNotInPlan      = errors.New("question is not part of this interview's plan")
	ErrDuplicateAnswer        = errors.New("an answer for this question was already submitted")
	ErrFeedbackNotAvailable   = errors.New("feedback is not available for this interview")
	ErrEmailTaken             = errors.New("user already exists with this email")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
)
