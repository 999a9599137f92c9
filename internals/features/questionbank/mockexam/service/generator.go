// file: internals/features/questionbank/mockexam/service/generator.go
package service

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	cservice "kpsc_backend/internals/features/questionbank/catalog/service"
)

var ErrExamNotFound = errors.New("exam not found")

// Generator assembles mock exams by syllabus-weighted random sampling.
// Every call produces a fresh paper; nothing is persisted.
type Generator struct {
	DB   *gorm.DB
	Rand *rand.Rand
}

func NewGenerator(db *gorm.DB) *Generator {
	var seed int64
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return &Generator{DB: db, Rand: rand.New(rand.NewSource(seed))}
}

// Generate samples up to entry.NumQuestions questions per syllabus topic,
// restricted to the requester's visible set, then shuffles the combined
// paper once so topics are interleaved. A topic whose visible pool is
// smaller than its target under-fills silently; an exam with no syllabus
// yields an empty paper.
func (g *Generator) Generate(ctx context.Context, examID uuid.UUID, instituteID *uuid.UUID) ([]cmodel.QuestionModel, error) {
	db := g.DB.WithContext(ctx)

	var examCount int64
	if err := db.Model(&cmodel.ExamModel{}).
		Where("exam_id = ?", examID).
		Count(&examCount).Error; err != nil {
		return nil, err
	}
	if examCount == 0 {
		return nil, ErrExamNotFound
	}

	var entries []cmodel.ExamSyllabusModel
	if err := db.
		Where("exam_syllabus_exam_id = ?", examID).
		Order("exam_syllabus_created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	paper := make([]cmodel.QuestionModel, 0, 100)
	for i := range entries {
		e := &entries[i]
		if e.ExamSyllabusNumQuestions <= 0 {
			continue
		}
		var batch []cmodel.QuestionModel
		err := cservice.VisibleQuestions(db, instituteID).
			Where("question_topic_id = ?", e.ExamSyllabusTopicID).
			Order("RANDOM()").
			Limit(e.ExamSyllabusNumQuestions).
			Preload("Topic").
			Preload("Exams").
			Find(&batch).Error
		if err != nil {
			return nil, err
		}
		paper = append(paper, batch...)
	}

	g.Rand.Shuffle(len(paper), func(i, j int) {
		paper[i], paper[j] = paper[j], paper[i]
	})
	return paper, nil
}
