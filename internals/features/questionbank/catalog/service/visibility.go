// file: internals/features/questionbank/catalog/service/visibility.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

// Tenant visibility rule: a row is visible iff its institute ownership is
// NULL (global) or equals the requester's home institute. This predicate is
// applied before any further filtering (exam, topic, random sampling) and
// before any mutation permission check. Pure per-request query scoping; no
// caching.

// QuestionScope narrows any questions query to the requester's visible set.
func QuestionScope(instituteID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if instituteID != nil {
			return db.Where("question_institute_id IS NULL OR question_institute_id = ?", *instituteID)
		}
		return db.Where("question_institute_id IS NULL")
	}
}

// TopicScope is the same rule over topics.
func TopicScope(instituteID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if instituteID != nil {
			return db.Where("topic_institute_id IS NULL OR topic_institute_id = ?", *instituteID)
		}
		return db.Where("topic_institute_id IS NULL")
	}
}

// VisibleQuestions is the query entrypoint used by every content endpoint.
func VisibleQuestions(db *gorm.DB, instituteID *uuid.UUID) *gorm.DB {
	return db.Model(&cmodel.QuestionModel{}).Scopes(QuestionScope(instituteID))
}

// VisibleTopics lists the topics the requester may see.
func VisibleTopics(db *gorm.DB, instituteID *uuid.UUID) *gorm.DB {
	return db.Model(&cmodel.TopicModel{}).Scopes(TopicScope(instituteID))
}
