package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/model"
	"gorm.io/gorm"
)

func seedQuestion(t *testing.T, db *gorm.DB, questionType model.QuestionType, domain string) model.InterviewQuestion {
	t.Helper()
	q := model.InterviewQuestion{
		Question:  fmt.Sprintf("A %s question about %s.", questionType, domain),
		Type:      questionType,
		Domain:    domain,
		JobRole:   "Backend Engineer",
		CreatedBy: "ADMIN",
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return q
}

func TestGetQuestionByID(t *testing.T) {
	r, db := newTestRouter(t)
	seeded := seedQuestion(t, db, model.QuestionTechnical, "DSA")

	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/questions/%d", seeded.ID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	got := decode[dto.QuestionResponseDTO](t, rec)
	if got.ID != seeded.ID || got.Question != seeded.Question {
		t.Fatalf("unexpected question: %+v", got)
	}
	if got.Type != string(model.QuestionTechnical) {
		t.Fatalf("type = %q, want %q", got.Type, model.QuestionTechnical)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/questions/9999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/questions/not-a-number", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetQuestionsByType_FiltersTypeAndDomain(t *testing.T) {
	r, db := newTestRouter(t)
	match := seedQuestion(t, db, model.QuestionBehavioral, "HR")
	seedQuestion(t, db, model.QuestionTechnical, "HR")
	seedQuestion(t, db, model.QuestionBehavioral, "DSA")

	// The type segment is case-insensitive.
	rec := doJSON(t, r, http.MethodGet, "/api/v1/questions/type/behavioral/HR", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	got := decode[[]dto.QuestionResponseDTO](t, rec)
	if len(got) != 1 {
		t.Fatalf("questions = %d, want 1 (%s)", len(got), rec.Body.String())
	}
	if got[0].ID != match.ID {
		t.Fatalf("question ID = %d, want %d", got[0].ID, match.ID)
	}
}
