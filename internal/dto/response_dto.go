package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type AuthResponseDTO struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type UserResponseDTO struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	TargetRole  string `json:"target_role,omitempty"`
	Role        string `json:"role"`
}

type QuestionResponseDTO struct {
	ID               uint      `json:"id"`
	Question         string    `json:"question"`
	Type             string    `json:"type"`
	Domain           string    `json:"domain"`
	JobRole          string    `json:"job_role"`
	Hints            string    `json:"hints,omitempty"`
	Difficulty       int       `json:"difficulty"`
	TimeLimitSeconds int       `json:"time_limit_seconds"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

type InterviewResponseDTO struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"user_id"`
	JobRole           string     `json:"job_role"`
	Domain            string     `json:"domain"`
	Status            string     `json:"status"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	TotalQuestions    int        `json:"total_questions"`
	QuestionsAnswered int        `json:"questions_answered"`
	OverallScore      float64    `json:"overall_score"`
}

type AnswerResponseDTO struct {
	ID               uint      `json:"id"`
	InterviewID      uint      `json:"interview_id"`
	QuestionID       uint      `json:"question_id"`
	AnswerText       string    `json:"answer_text"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	AnsweredAt       time.Time `json:"answered_at"`
	Score            *float64  `json:"score,omitempty"`
	AIEvaluation     string    `json:"ai_evaluation,omitempty"`
}

type FeedbackResponseDTO struct {
	ID              uint      `json:"id"`
	InterviewID     uint      `json:"interview_id"`
	Strengths       string    `json:"strengths,omitempty"`
	Weaknesses      string    `json:"weaknesses,omitempty"`
	Improvements    string    `json:"improvements,omitempty"`
	OverallComments string    `json:"overall_comments,omitempty"`
	OverallScore    float64   `json:"overall_score"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// InterviewHistoryEntryDTO is one row of the last-interviews view inside the
// detailed analytics response.
type InterviewHistoryEntryDTO struct {
	ID      uint      `json:"id"`
	JobRole string    `json:"job_role"`
	Domain  string    `json:"domain"`
	Score   float64   `json:"score"`
	Date    time.Time `json:"date"`
}

type AnalyticsResponseDTO struct {
	TotalInterviews     int                        `json:"total_interviews"`
	CompletedInterviews int                        `json:"completed_interviews"`
	AverageScore        float64                    `json:"average_score"`
	BestScore           float64                    `json:"best_score"`
	WorstScore          float64                    `json:"worst_score"`
	TopicStrengths      string                     `json:"topic_strengths"`
	TopicWeaknesses     string                     `json:"topic_weaknesses"`
	LastInterviewDate   *time.Time                 `json:"last_interview_date,omitempty"`
	InterviewHistory    []InterviewHistoryEntryDTO `json:"interview_history"`
	DomainPerformance   map[string]float64         `json:"domain_performance"`
}
