// file: internals/features/questionbank/attempts/service/ledger_test.go
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
	"gorm.io/gorm/clause"

	amodel "kpsc_backend/internals/features/questionbank/attempts/model"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
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
		&amodel.DailyExamModel{},
		&amodel.DailyExamAttemptModel{},
		&amodel.ModelExamModel{},
		&amodel.ModelExamAttemptModel{},
	))
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, exams ...cmodel.ExamModel) *cmodel.QuestionModel {
	t.Helper()
	topic := &cmodel.TopicModel{TopicName: "History"}
	require.NoError(t, db.Create(topic).Error)
	q := &cmodel.QuestionModel{
		QuestionText:    "q",
		QuestionTopicID: topic.TopicID,
		Exams:           exams,
	}
	require.NoError(t, q.SetOptions(map[string]string{"A": "a", "B": "b"}, "A"))
	require.NoError(t, db.Create(q).Error)
	return q
}

func TestRecordAnswersAndHistoryOrder(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	userID := uuid.New()

	q1 := seedQuestion(t, db)
	q2 := seedQuestion(t, db)

	require.NoError(t, ledger.RecordAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: q1.QuestionID, SelectedOption: "A", IsCorrect: true},
		{QuestionID: q2.QuestionID, SelectedOption: "B", IsCorrect: false},
	}))

	rows, err := ledger.AnswersFor(context.Background(), userID, nil, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Question)
	require.NotNil(t, rows[0].Question.Topic)
}

func TestRecordAnswersSkipsDuplicates(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	q := seedQuestion(t, db)
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	mk := func() *amodel.UserAnswerModel {
		return &amodel.UserAnswerModel{
			UserAnswerUserID:         userID,
			UserAnswerQuestionID:     q.QuestionID,
			UserAnswerSelectedOption: "A",
			UserAnswerIsCorrect:      true,
			UserAnswerAnsweredAt:     at,
		}
	}
	require.NoError(t, db.Clauses(clause.OnConflict{DoNothing: true}).Create(mk()).Error)
	require.NoError(t, db.Clauses(clause.OnConflict{DoNothing: true}).Create(mk()).Error)

	var count int64
	require.NoError(t, db.Model(&amodel.UserAnswerModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordPracticeAnswer(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	userID := uuid.New()
	q := seedQuestion(t, db)

	res, err := ledger.RecordPracticeAnswer(context.Background(), userID, nil, q.QuestionID, "A")
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, "A", res.Question.QuestionCorrectAnswer)
	require.NotNil(t, res.Question.Topic)

	wrong, err := ledger.RecordPracticeAnswer(context.Background(), userID, nil, q.QuestionID, "B")
	require.NoError(t, err)
	assert.False(t, wrong.IsCorrect)

	// Blank selection is still an answer, graded wrong.
	blank, err := ledger.RecordPracticeAnswer(context.Background(), userID, nil, q.QuestionID, "")
	require.NoError(t, err)
	assert.False(t, blank.IsCorrect)

	rows, err := ledger.AnswersFor(context.Background(), userID, nil, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	_, err = ledger.RecordPracticeAnswer(context.Background(), userID, nil, uuid.New(), "A")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestRecordPracticeAnswerRespectsVisibility(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	userID := uuid.New()
	institute := uuid.New()

	q := seedQuestion(t, db)
	require.NoError(t, db.Model(q).
		Update("question_institute_id", institute).Error)

	_, err := ledger.RecordPracticeAnswer(context.Background(), userID, nil, q.QuestionID, "A")
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	res, err := ledger.RecordPracticeAnswer(context.Background(), userID, &institute, q.QuestionID, "A")
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)
}

func TestAnswersForExamFilterAndLimit(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	userID := uuid.New()

	exam := cmodel.ExamModel{ExamName: "LDC", ExamYear: 2024}
	require.NoError(t, db.Create(&exam).Error)

	tagged := seedQuestion(t, db, exam)
	untagged := seedQuestion(t, db)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, q := range []*cmodel.QuestionModel{tagged, untagged, tagged} {
		require.NoError(t, db.Create(&amodel.UserAnswerModel{
			UserAnswerUserID:         userID,
			UserAnswerQuestionID:     q.QuestionID,
			UserAnswerSelectedOption: "A",
			UserAnswerIsCorrect:      true,
			UserAnswerAnsweredAt:     base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	all, err := ledger.AnswersFor(context.Background(), userID, nil, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].UserAnswerAnsweredAt.After(all[2].UserAnswerAnsweredAt))

	focus, err := ledger.AnswersFor(context.Background(), userID, []uuid.UUID{exam.ExamID}, 0)
	require.NoError(t, err)
	require.Len(t, focus, 2)
	for _, a := range focus {
		assert.Equal(t, tagged.QuestionID, a.UserAnswerQuestionID)
	}

	limited, err := ledger.AnswersFor(context.Background(), userID, nil, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAnswersForHonorsContext(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	userID := uuid.New()

	exam := cmodel.ExamModel{ExamName: "LDC", ExamYear: 2024}
	require.NoError(t, db.Create(&exam).Error)
	q := seedQuestion(t, db, exam)
	require.NoError(t, ledger.RecordAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: q.QuestionID, SelectedOption: "A", IsCorrect: true},
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The exam-filter subquery runs on the same request context, so a
	// cancelled request aborts the whole lookup.
	_, err := ledger.AnswersFor(ctx, userID, []uuid.UUID{exam.ExamID}, 0)
	assert.Error(t, err)
}

func TestRecordAttemptDailyExamSingleShot(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	userID := uuid.New()

	daily := amodel.DailyExamModel{DailyExamDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Create(&daily).Error)

	first := &amodel.DailyExamAttemptModel{
		DailyExamAttemptUserID:      userID,
		DailyExamAttemptDailyExamID: daily.DailyExamID,
		DailyExamAttemptScore:       80,
	}
	require.NoError(t, ledger.RecordAttempt(context.Background(), DailyExamPolicy, first))

	second := &amodel.DailyExamAttemptModel{
		DailyExamAttemptUserID:      userID,
		DailyExamAttemptDailyExamID: daily.DailyExamID,
		DailyExamAttemptScore:       90,
	}
	err := ledger.RecordAttempt(context.Background(), DailyExamPolicy, second)
	assert.ErrorIs(t, err, ErrAlreadyAttempted)

	// A different user attempts the same paper fine.
	other := &amodel.DailyExamAttemptModel{
		DailyExamAttemptUserID:      uuid.New(),
		DailyExamAttemptDailyExamID: daily.DailyExamID,
		DailyExamAttemptScore:       50,
	}
	require.NoError(t, ledger.RecordAttempt(context.Background(), DailyExamPolicy, other))
}

func TestRecordAttemptModelExamAllowsRetakes(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	userID := uuid.New()

	exam := cmodel.ExamModel{ExamName: "LDC", ExamYear: 2024}
	require.NoError(t, db.Create(&exam).Error)
	paper := amodel.ModelExamModel{ModelExamName: "Paper 1", ModelExamExamID: exam.ExamID}
	require.NoError(t, db.Create(&paper).Error)

	for i := 0; i < 3; i++ {
		att := &amodel.ModelExamAttemptModel{
			ModelExamAttemptUserID:      userID,
			ModelExamAttemptModelExamID: paper.ModelExamID,
			ModelExamAttemptScore:       float64(50 + i),
		}
		require.NoError(t, ledger.RecordAttempt(context.Background(), ModelExamPolicy, att))
	}

	var count int64
	require.NoError(t, db.Model(&amodel.ModelExamAttemptModel{}).
		Where("model_exam_attempt_user_id = ?", userID).
		Count(&count).Error)
	assert.EqualValues(t, 3, count)
}
