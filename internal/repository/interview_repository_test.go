package repository

import (
	"testing"
	"time"

	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/testhelpers"
)

func seedInterview(t *testing.T, repo InterviewRepository, status model.InterviewStatus) *model.Interview {
	t.Helper()
	interview := &model.Interview{
		UserID:         1,
		JobRole:        "Backend Engineer",
		Domain:         "DSA",
		Status:         status,
		StartTime:      time.Now(),
		TotalQuestions: 3,
	}
	if err := repo.Create(interview); err != nil {
		t.Fatalf("failed to seed interview: %v", err)
	}
	return interview
}

func TestCompleteIfInProgress_FlipsOnce(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)
	interview := seedInterview(t, repo, model.StatusInProgress)

	end := time.Now()
	rows, err := repo.CompleteIfInProgress(interview.ID, end)
	if err != nil {
		t.Fatalf("CompleteIfInProgress returned error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows = %d, want 1", rows)
	}

	reloaded, err := repo.FindByID(interview.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if reloaded.Status != model.StatusCompleted {
		t.Fatalf("status = %q, want %q", reloaded.Status, model.StatusCompleted)
	}
	if reloaded.EndTime == nil {
		t.Fatalf("expected end time to be set")
	}

	// Second flip finds no IN_PROGRESS row to update.
	rows, err = repo.CompleteIfInProgress(interview.ID, time.Now())
	if err != nil {
		t.Fatalf("second CompleteIfInProgress returned error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows = %d, want 0", rows)
	}
}

func TestCompleteIfInProgress_IgnoresOtherStatuses(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	for _, status := range []model.InterviewStatus{model.StatusPaused, model.StatusAbandoned, model.StatusCompleted} {
		interview := seedInterview(t, repo, status)
		rows, err := repo.CompleteIfInProgress(interview.ID, time.Now())
		if err != nil {
			t.Fatalf("CompleteIfInProgress(%s) returned error: %v", status, err)
		}
		if rows != 0 {
			t.Fatalf("CompleteIfInProgress(%s) rows = %d, want 0", status, rows)
		}
	}
}

func TestFindByIDWithPlan_OrdersByPosition(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)
	interview := seedInterview(t, repo, model.StatusInProgress)

	// Insert slots out of order.
	slots := []model.PlanSlot{
		{InterviewID: interview.ID, QuestionID: 30, Position: 2},
		{InterviewID: interview.ID, QuestionID: 10, Position: 0},
		{InterviewID: interview.ID, QuestionID: 20, Position: 1},
	}
	if err := db.Create(&slots).Error; err != nil {
		t.Fatalf("failed to seed slots: %v", err)
	}

	loaded, err := repo.FindByIDWithPlan(interview.ID)
	if err != nil {
		t.Fatalf("FindByIDWithPlan returned error: %v", err)
	}
	if len(loaded.PlanSlots) != 3 {
		t.Fatalf("plan slots = %d, want 3", len(loaded.PlanSlots))
	}
	for i, want := range []uint{10, 20, 30} {
		if loaded.PlanSlots[i].QuestionID != want {
			t.Fatalf("slot %d: question = %d, want %d", i, loaded.PlanSlots[i].QuestionID, want)
		}
	}
}

func TestFindAllByUser_NewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	old := model.Interview{UserID: 7, JobRole: "x", Domain: "DSA", StartTime: time.Now().Add(-time.Hour)}
	recent := model.Interview{UserID: 7, JobRole: "x", Domain: "DSA", StartTime: time.Now()}
	other := model.Interview{UserID: 8, JobRole: "x", Domain: "DSA", StartTime: time.Now()}
	for _, iv := range []*model.Interview{&old, &recent, &other} {
		if err := repo.Create(iv); err != nil {
			t.Fatalf("failed to seed interview: %v", err)
		}
	}

	interviews, err := repo.FindAllByUser(7)
	if err != nil {
		t.Fatalf("FindAllByUser returned error: %v", err)
	}
	if len(interviews) != 2 {
		t.Fatalf("interviews = %d, want 2", len(interviews))
	}
	if interviews[0].ID != recent.ID {
		t.Fatalf("expected newest first, got %d", interviews[0].ID)
	}
}
