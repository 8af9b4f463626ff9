package repository

import (
	"testing"
	"time"

	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/testhelpers"
)

func TestAnswerRepository_UniquePerInterviewQuestion(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	score := 60.0
	first := model.Answer{InterviewID: 1, QuestionID: 5, AnswerText: "first", AnsweredAt: time.Now(), Score: &score}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	dup := model.Answer{InterviewID: 1, QuestionID: 5, AnswerText: "second", AnsweredAt: time.Now()}
	if err := repo.Create(&dup); err == nil {
		t.Fatalf("expected unique constraint violation for duplicate answer")
	}

	// Same question in another interview is fine.
	other := model.Answer{InterviewID: 2, QuestionID: 5, AnswerText: "other session", AnsweredAt: time.Now()}
	if err := repo.Create(&other); err != nil {
		t.Fatalf("Create for other interview returned error: %v", err)
	}
}

func TestAnswerRepository_ExistsForQuestion(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	if err := repo.Create(&model.Answer{InterviewID: 1, QuestionID: 5, AnswerText: "x", AnsweredAt: time.Now()}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	exists, err := repo.ExistsForQuestion(1, 5)
	if err != nil {
		t.Fatalf("ExistsForQuestion returned error: %v", err)
	}
	if !exists {
		t.Fatalf("expected answer to exist")
	}

	exists, err = repo.ExistsForQuestion(1, 6)
	if err != nil {
		t.Fatalf("ExistsForQuestion returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected no answer for question 6")
	}
}

func TestAnswerRepository_FindByInterviewIDWithQuestions(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewAnswerRepository(db)

	question := model.InterviewQuestion{Question: "Q", Type: model.QuestionTechnical, Domain: "DSA", JobRole: "BE", CreatedBy: model.CreatedByAdmin}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	if err := repo.Create(&model.Answer{InterviewID: 3, QuestionID: question.ID, AnswerText: "x", AnsweredAt: time.Now()}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	answers, err := repo.FindByInterviewIDWithQuestions(3)
	if err != nil {
		t.Fatalf("FindByInterviewIDWithQuestions returned error: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if answers[0].Question.Domain != "DSA" {
		t.Fatalf("expected question preloaded, got %+v", answers[0].Question)
	}
}
