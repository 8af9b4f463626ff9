package dto

type RegisterRequestDTO struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	TargetRole  string `json:"target_role"`
}

// ProfileUpdateDTO carries the mutable profile fields. Email, password, and
// role are not editable through this payload.
type ProfileUpdateDTO struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	TargetRole  string `json:"target_role"`
	ResumeText  string `json:"resume_text"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// InterviewStartDTO opens a new session. NumberOfQuestions is the fixed plan
// size; the plan is generated immediately and never grows.
type InterviewStartDTO struct {
	JobRole           string `json:"job_role" binding:"required"`
	Domain            string `json:"domain" binding:"required"`
	NumberOfQuestions int    `json:"number_of_questions" binding:"required,min=1,max=20"`
	ResumeContent     string `json:"resume_content"`
}

type SubmitAnswerDTO struct {
	QuestionID       uint   `json:"question_id" binding:"required"`
	AnswerText       string `json:"answer_text" binding:"required"`
	AnswerAudio      string `json:"answer_audio"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// QuestionCreateDTO is the admin question-authoring payload.
type QuestionCreateDTO struct {
	Question         string `json:"question" binding:"required"`
	Type             string `json:"type" binding:"required,oneof=TECHNICAL BEHAVIORAL CODING"`
	Domain           string `json:"domain" binding:"required"`
	JobRole          string `json:"job_role" binding:"required"`
	ExpectedAnswer   string `json:"expected_answer"`
	Hints            string `json:"hints"`
	Difficulty       int    `json:"difficulty" binding:"required,min=1,max=5"`
	TimeLimitSeconds int    `json:"time_limit_seconds"`
}
