// file: internals/features/progress/service/progress_test.go
package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	amodel "kpsc_backend/internals/features/questionbank/attempts/model"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	umodel "kpsc_backend/internals/features/users/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cmodel.ExamModel{},
		&cmodel.TopicModel{},
		&cmodel.QuestionModel{},
		&amodel.UserAnswerModel{},
		&umodel.UserModel{},
		&umodel.UserProfileModel{},
	))
	return db
}

type seeder struct {
	t    *testing.T
	db   *gorm.DB
	user uuid.UUID
	at   time.Time
}

func newSeeder(t *testing.T, db *gorm.DB) *seeder {
	return &seeder{
		t:    t,
		db:   db,
		user: uuid.New(),
		at:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *seeder) topic(name string) *cmodel.TopicModel {
	s.t.Helper()
	topic := &cmodel.TopicModel{TopicName: name}
	require.NoError(s.t, s.db.Create(topic).Error)
	return topic
}

func (s *seeder) answer(topic *cmodel.TopicModel, correct bool, exams ...cmodel.ExamModel) {
	s.t.Helper()
	q := &cmodel.QuestionModel{
		QuestionText:    "q",
		QuestionTopicID: topic.TopicID,
		Exams:           exams,
	}
	require.NoError(s.t, q.SetOptions(map[string]string{"A": "a", "B": "b"}, "A"))
	require.NoError(s.t, s.db.Create(q).Error)

	sel := "A"
	if !correct {
		sel = "B"
	}
	s.at = s.at.Add(time.Minute)
	require.NoError(s.t, s.db.Create(&amodel.UserAnswerModel{
		UserAnswerUserID:         s.user,
		UserAnswerQuestionID:     q.QuestionID,
		UserAnswerSelectedOption: sel,
		UserAnswerIsCorrect:      correct,
		UserAnswerAnsweredAt:     s.at,
	}).Error)
}

func TestBuildOverallReport(t *testing.T) {
	db := newTestDB(t)
	s := newSeeder(t, db)

	history := s.topic("History")
	maths := s.topic("Maths")
	polity := s.topic("Polity")

	// History: 2/2, Maths: 1/3, Polity: 0/1
	s.answer(history, true)
	s.answer(history, true)
	s.answer(maths, true)
	s.answer(maths, false)
	s.answer(maths, false)
	s.answer(polity, false)

	rep, err := NewBuilder(db).Build(context.Background(), s.user, ModeOverall)
	require.NoError(t, err)

	assert.Equal(t, ModeOverall, rep.Mode)
	assert.Equal(t, 6, rep.Attempted)
	assert.Equal(t, 3, rep.Correct)
	assert.Equal(t, 3, rep.Wrong)
	assert.InDelta(t, 50, rep.Accuracy, 1e-9)
	assert.InDelta(t, 3-0.33*3, rep.NetScore, 1e-9)
	assert.InDelta(t, 3*1.33, rep.MarksLost, 1e-9)

	require.Len(t, rep.Topics, 3)

	require.NotEmpty(t, rep.Strongest)
	assert.Equal(t, "History", rep.Strongest[0].Topic)

	// Weakest ranks by marks lost; History has no wrong answers so it
	// never appears there.
	require.Len(t, rep.Weakest, 2)
	assert.Equal(t, "Maths", rep.Weakest[0].Topic)
	assert.Equal(t, "Polity", rep.Weakest[1].Topic)
	for _, w := range rep.Weakest {
		assert.NotEqual(t, "History", w.Topic)
	}

	assert.Len(t, rep.Recent, 6)
}

func TestBuildIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	s := newSeeder(t, db)

	history := s.topic("History")
	maths := s.topic("Maths")

	// Equal accuracy on both topics so the ranking order rests purely on
	// the stable first-seen tiebreak.
	s.answer(history, true)
	s.answer(history, false)
	s.answer(maths, true)
	s.answer(maths, false)

	b := NewBuilder(db)
	first, err := b.Build(context.Background(), s.user, ModeOverall)
	require.NoError(t, err)
	second, err := b.Build(context.Background(), s.user, ModeOverall)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "History", first.Strongest[0].Topic)
	assert.Equal(t, "History", second.Strongest[0].Topic)
}

func TestBuildTopRankingsCapAtThree(t *testing.T) {
	db := newTestDB(t)
	s := newSeeder(t, db)

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		s.answer(s.topic(name), false)
	}

	rep, err := NewBuilder(db).Build(context.Background(), s.user, ModeOverall)
	require.NoError(t, err)
	assert.Len(t, rep.Strongest, 3)
	assert.Len(t, rep.Weakest, 3)
}

func TestBuildNoData(t *testing.T) {
	db := newTestDB(t)
	_, err := NewBuilder(db).Build(context.Background(), uuid.New(), ModeOverall)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuildFocusWithoutPreferredExams(t *testing.T) {
	db := newTestDB(t)
	s := newSeeder(t, db)
	s.answer(s.topic("History"), true)

	// Even with history present, focus mode refuses instead of falling
	// back to overall.
	_, err := NewBuilder(db).Build(context.Background(), s.user, ModeFocus)
	assert.ErrorIs(t, err, ErrNoFocusExams)
}

func TestBuildFocusNarrowsToPreferredExams(t *testing.T) {
	db := newTestDB(t)
	s := newSeeder(t, db)

	exam := cmodel.ExamModel{ExamName: "LDC", ExamYear: 2024}
	require.NoError(t, db.Create(&exam).Error)

	profile := umodel.UserProfileModel{
		UserProfileUserID: s.user,
		PreferredExams:    []cmodel.ExamModel{exam},
	}
	require.NoError(t, db.Create(&profile).Error)

	topic := s.topic("History")
	s.answer(topic, true, exam)
	s.answer(topic, false) // untagged, excluded in focus mode

	rep, err := NewBuilder(db).Build(context.Background(), s.user, ModeFocus)
	require.NoError(t, err)
	assert.Equal(t, ModeFocus, rep.Mode)
	assert.Equal(t, []string{"LDC"}, rep.FocusExams)
	assert.Equal(t, 1, rep.Attempted)
	assert.Equal(t, 1, rep.Correct)
	assert.Zero(t, rep.Wrong)
}

func TestBuildExamGroupsOverlap(t *testing.T) {
	db := newTestDB(t)
	s := newSeeder(t, db)

	ldc := cmodel.ExamModel{ExamName: "LDC", ExamYear: 2024}
	lgs := cmodel.ExamModel{ExamName: "LGS", ExamYear: 2024}
	require.NoError(t, db.Create(&ldc).Error)
	require.NoError(t, db.Create(&lgs).Error)

	topic := s.topic("History")
	s.answer(topic, true, ldc, lgs) // one answer, both exam groups
	s.answer(topic, false, ldc)

	rep, err := NewBuilder(db).Build(context.Background(), s.user, ModeOverall)
	require.NoError(t, err)

	byName := map[string]ExamStat{}
	for _, e := range rep.Exams {
		byName[e.Exam] = e
	}
	require.Len(t, byName, 2)
	assert.Equal(t, 2, byName["LDC"].Attempted)
	assert.Equal(t, 1, byName["LDC"].Correct)
	assert.InDelta(t, 50, byName["LDC"].Accuracy, 1e-9)
	assert.Equal(t, 1, byName["LGS"].Attempted)
	assert.InDelta(t, 100, byName["LGS"].Accuracy, 1e-9)
}
