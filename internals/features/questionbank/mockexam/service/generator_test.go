// file: internals/features/questionbank/mockexam/service/generator_test.go
package service

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cmodel.ExamCategoryModel{},
		&cmodel.ExamModel{},
		&cmodel.TopicModel{},
		&cmodel.QuestionModel{},
		&cmodel.ExamSyllabusModel{},
	))
	return db
}

func seedTopic(t *testing.T, db *gorm.DB, name string, instituteID *uuid.UUID) *cmodel.TopicModel {
	t.Helper()
	topic := &cmodel.TopicModel{TopicName: name, TopicInstituteID: instituteID}
	require.NoError(t, db.Create(topic).Error)
	return topic
}

func seedQuestions(t *testing.T, db *gorm.DB, topicID uuid.UUID, instituteID *uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		q := &cmodel.QuestionModel{
			QuestionText:        "sample question",
			QuestionTopicID:     topicID,
			QuestionInstituteID: instituteID,
		}
		require.NoError(t, q.SetOptions(map[string]string{"A": "a", "B": "b"}, "A"))
		require.NoError(t, db.Create(q).Error)
	}
}

func seedExamWithSyllabus(t *testing.T, db *gorm.DB, weights map[uuid.UUID]int) *cmodel.ExamModel {
	t.Helper()
	exam := &cmodel.ExamModel{ExamName: "LDC", ExamYear: 2024, ExamDurationMinutes: 75}
	require.NoError(t, db.Create(exam).Error)
	for topicID, n := range weights {
		require.NoError(t, db.Create(&cmodel.ExamSyllabusModel{
			ExamSyllabusExamID:       exam.ExamID,
			ExamSyllabusTopicID:      topicID,
			ExamSyllabusNumQuestions: n,
		}).Error)
	}
	return exam
}

func newSeededGenerator(db *gorm.DB) *Generator {
	return &Generator{DB: db, Rand: rand.New(rand.NewSource(42))}
}

func TestGenerateSyllabusWeightedCounts(t *testing.T) {
	db := newTestDB(t)
	t1 := seedTopic(t, db, "History", nil)
	t2 := seedTopic(t, db, "Maths", nil)
	seedQuestions(t, db, t1.TopicID, nil, 5)
	seedQuestions(t, db, t2.TopicID, nil, 4)
	exam := seedExamWithSyllabus(t, db, map[uuid.UUID]int{
		t1.TopicID: 3,
		t2.TopicID: 2,
	})

	paper, err := newSeededGenerator(db).Generate(context.Background(), exam.ExamID, nil)
	require.NoError(t, err)
	require.Len(t, paper, 5)

	perTopic := map[uuid.UUID]int{}
	seen := map[uuid.UUID]bool{}
	for i := range paper {
		perTopic[paper[i].QuestionTopicID]++
		assert.False(t, seen[paper[i].QuestionID], "question repeated in one paper")
		seen[paper[i].QuestionID] = true
	}
	assert.Equal(t, 3, perTopic[t1.TopicID])
	assert.Equal(t, 2, perTopic[t2.TopicID])
}

func TestGenerateUnderfillsSmallPool(t *testing.T) {
	db := newTestDB(t)
	topic := seedTopic(t, db, "GK", nil)
	seedQuestions(t, db, topic.TopicID, nil, 2)
	exam := seedExamWithSyllabus(t, db, map[uuid.UUID]int{topic.TopicID: 10})

	paper, err := newSeededGenerator(db).Generate(context.Background(), exam.ExamID, nil)
	require.NoError(t, err)
	assert.Len(t, paper, 2)
}

func TestGenerateEmptySyllabus(t *testing.T) {
	db := newTestDB(t)
	exam := seedExamWithSyllabus(t, db, nil)

	paper, err := newSeededGenerator(db).Generate(context.Background(), exam.ExamID, nil)
	require.NoError(t, err)
	assert.Empty(t, paper)
}

func TestGenerateUnknownExam(t *testing.T) {
	db := newTestDB(t)
	_, err := newSeededGenerator(db).Generate(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrExamNotFound)
}

func TestGenerateRespectsVisibility(t *testing.T) {
	db := newTestDB(t)
	mine := uuid.New()
	other := uuid.New()

	topic := seedTopic(t, db, "Polity", nil)
	seedQuestions(t, db, topic.TopicID, nil, 1)    // global
	seedQuestions(t, db, topic.TopicID, &mine, 1)  // visible to mine
	seedQuestions(t, db, topic.TopicID, &other, 1) // hidden from mine
	exam := seedExamWithSyllabus(t, db, map[uuid.UUID]int{topic.TopicID: 10})

	gen := newSeededGenerator(db)

	paper, err := gen.Generate(context.Background(), exam.ExamID, &mine)
	require.NoError(t, err)
	assert.Len(t, paper, 2)
	for i := range paper {
		if paper[i].QuestionInstituteID != nil {
			assert.Equal(t, mine, *paper[i].QuestionInstituteID)
		}
	}

	anon, err := gen.Generate(context.Background(), exam.ExamID, nil)
	require.NoError(t, err)
	assert.Len(t, anon, 1)
}

func TestGenerateFreshPaperEachCall(t *testing.T) {
	db := newTestDB(t)
	topic := seedTopic(t, db, "Science", nil)
	seedQuestions(t, db, topic.TopicID, nil, 30)
	exam := seedExamWithSyllabus(t, db, map[uuid.UUID]int{topic.TopicID: 10})

	gen := newSeededGenerator(db)
	first, err := gen.Generate(context.Background(), exam.ExamID, nil)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), exam.ExamID, nil)
	require.NoError(t, err)

	ids := func(qs []cmodel.QuestionModel) []uuid.UUID {
		out := make([]uuid.UUID, len(qs))
		for i := range qs {
			out[i] = qs[i].QuestionID
		}
		return out
	}
	// 10 of 30 twice; identical draws are vanishingly unlikely with this seed.
	assert.NotEqual(t, ids(first), ids(second))
}
