// file: internals/features/questionbank/catalog/service/visibility_test.go
package service

import (
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
		&cmodel.TopicModel{},
		&cmodel.QuestionModel{},
	))
	return db
}

func seed(t *testing.T, db *gorm.DB, instituteID *uuid.UUID) {
	t.Helper()
	topic := &cmodel.TopicModel{TopicName: "t", TopicInstituteID: instituteID}
	require.NoError(t, db.Create(topic).Error)
	q := &cmodel.QuestionModel{
		QuestionText:        "q",
		QuestionTopicID:     topic.TopicID,
		QuestionInstituteID: instituteID,
	}
	require.NoError(t, q.SetOptions(map[string]string{"A": "a", "B": "b"}, "A"))
	require.NoError(t, db.Create(q).Error)
}

func TestVisibilityScopes(t *testing.T) {
	db := newTestDB(t)
	mine := uuid.New()
	other := uuid.New()

	seed(t, db, nil)    // global
	seed(t, db, &mine)  // my institute
	seed(t, db, &other) // someone else's

	count := func(q *gorm.DB) int64 {
		var n int64
		require.NoError(t, q.Count(&n).Error)
		return n
	}

	// Anonymous and tenant-less users see only global content.
	assert.EqualValues(t, 1, count(VisibleQuestions(db, nil)))
	assert.EqualValues(t, 1, count(VisibleTopics(db, nil)))

	// Institute members see global plus their own, never a third party's.
	assert.EqualValues(t, 2, count(VisibleQuestions(db, &mine)))
	assert.EqualValues(t, 2, count(VisibleTopics(db, &mine)))

	unrelated := uuid.New()
	assert.EqualValues(t, 1, count(VisibleQuestions(db, &unrelated)))
}
