// file: internals/features/questionbank/mockexam/service/scoring_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

func makeQuestion(t *testing.T, correct string) cmodel.QuestionModel {
	t.Helper()
	q := cmodel.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionText: "q",
	}
	require.NoError(t, q.SetOptions(map[string]string{
		"A": "a", "B": "b", "C": "c", "D": "d",
	}, correct))
	return q
}

func TestGradeNetScore(t *testing.T) {
	q1 := makeQuestion(t, "A")
	q2 := makeQuestion(t, "B")
	q3 := makeQuestion(t, "C")
	q4 := makeQuestion(t, "D")

	res, graded := Grade(
		[]cmodel.QuestionModel{q1, q2, q3, q4},
		map[uuid.UUID]string{
			q1.QuestionID: "A", // correct
			q2.QuestionID: "C", // wrong
			q3.QuestionID: "C", // correct
			// q4 unanswered
		},
	)

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 1, res.Wrong)
	assert.Equal(t, 1, res.Unanswered)
	assert.InDelta(t, 2-0.33, res.Score, 1e-9)
	assert.Len(t, graded, 3)
}

func TestGradeLabelsAreCaseSensitive(t *testing.T) {
	q := makeQuestion(t, "B")
	res, graded := Grade(
		[]cmodel.QuestionModel{q},
		map[uuid.UUID]string{q.QuestionID: "b"},
	)
	assert.Equal(t, 0, res.Correct)
	assert.Equal(t, 1, res.Wrong)
	require.Len(t, graded, 1)
	assert.False(t, graded[0].IsCorrect)
}

func TestGradeBlankSelectionIsWrong(t *testing.T) {
	q := makeQuestion(t, "A")
	res, graded := Grade(
		[]cmodel.QuestionModel{q},
		map[uuid.UUID]string{q.QuestionID: ""},
	)
	assert.Equal(t, 1, res.Attempted)
	assert.Equal(t, 1, res.Wrong)
	assert.Zero(t, res.Unanswered)
	assert.InDelta(t, -NegativeMark, res.Score, 1e-9)
	require.Len(t, graded, 1)
	assert.False(t, graded[0].IsCorrect)
}

func TestGradeIgnoresUnknownAnswerKeys(t *testing.T) {
	q := makeQuestion(t, "A")
	res, graded := Grade(
		[]cmodel.QuestionModel{q},
		map[uuid.UUID]string{
			q.QuestionID: "A",
			uuid.New():   "B", // not part of the form
		},
	)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.Correct)
	assert.Zero(t, res.Wrong)
	assert.Len(t, graded, 1)
}

func TestGradeAllWrongGoesNegative(t *testing.T) {
	q1 := makeQuestion(t, "A")
	q2 := makeQuestion(t, "A")
	res, _ := Grade(
		[]cmodel.QuestionModel{q1, q2},
		map[uuid.UUID]string{q1.QuestionID: "B", q2.QuestionID: "C"},
	)
	assert.InDelta(t, -0.66, res.Score, 1e-9)
}

func TestGradeEmptyForm(t *testing.T) {
	res, graded := Grade(nil, nil)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.Score)
	assert.Empty(t, graded)
}

func TestPercentage(t *testing.T) {
	assert.Zero(t, Percentage(0, 0))
	assert.InDelta(t, 50, Percentage(1, 2), 1e-9)
	assert.InDelta(t, 100, Percentage(7, 7), 1e-9)
}
