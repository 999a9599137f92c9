// file: internals/features/progress/service/progress.go
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "kpsc_backend/internals/features/questionbank/attempts/model"
	aservice "kpsc_backend/internals/features/questionbank/attempts/service"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	mservice "kpsc_backend/internals/features/questionbank/mockexam/service"
	umodel "kpsc_backend/internals/features/users/model"
)

type Mode string

const (
	ModeOverall Mode = "overall"
	ModeFocus   Mode = "focus"
)

// Sentinel outcomes: both are guidance for the user, not failures, and the
// controller maps them to friendly messages. Focus mode without preferred
// exams does NOT fall back to overall.
var (
	ErrNoFocusExams = errors.New("no preferred exams selected")
	ErrNoData       = errors.New("no answered questions yet")
)

const recentAnswersLimit = 50

const topicRankSize = 3

// TopicStat aggregates one topic's answer history. Accuracy and MarksLost
// stay unrounded here; rounding happens once at the response boundary.
type TopicStat struct {
	Topic     string
	Attempted int
	Correct   int
	Wrong     int
	Accuracy  float64
	MarksLost float64
}

// ExamStat aggregates answers per exam tag. One answer counts toward every
// exam its question belongs to, so exam groups overlap.
type ExamStat struct {
	Exam      string
	Attempted int
	Correct   int
	Wrong     int
	Accuracy  float64
}

type Report struct {
	Mode       Mode
	FocusExams []string

	Attempted int
	Correct   int
	Wrong     int
	Accuracy  float64
	NetScore  float64
	MarksLost float64

	// Topics and Exams keep first-seen order from the (newest first)
	// answer history.
	Topics    []TopicStat
	Exams     []ExamStat
	Strongest []TopicStat
	Weakest   []TopicStat

	Recent []amodel.UserAnswerModel
}

// Builder derives the progress dashboard from the attempt ledger on every
// call. No aggregate rows are stored.
type Builder struct {
	DB     *gorm.DB
	Ledger *aservice.Ledger
}

func NewBuilder(db *gorm.DB) *Builder {
	return &Builder{DB: db, Ledger: aservice.NewLedger(db)}
}

// Build assembles the report for one user. Focus mode narrows the history to
// questions tagged with any of the user's preferred exams.
func (b *Builder) Build(ctx context.Context, userID uuid.UUID, mode Mode) (*Report, error) {
	if mode != ModeFocus {
		mode = ModeOverall
	}

	var examIDs []uuid.UUID
	var focusNames []string
	if mode == ModeFocus {
		var profile umodel.UserProfileModel
		err := b.DB.WithContext(ctx).
			Preload("PreferredExams").
			First(&profile, "user_profile_user_id = ?", userID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		for i := range profile.PreferredExams {
			examIDs = append(examIDs, profile.PreferredExams[i].ExamID)
			focusNames = append(focusNames, profile.PreferredExams[i].ExamName)
		}
		if len(examIDs) == 0 {
			return nil, ErrNoFocusExams
		}
	}

	answers, err := b.Ledger.AnswersFor(ctx, userID, examIDs, 0)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, ErrNoData
	}

	rep := &Report{Mode: mode, FocusExams: focusNames}

	byTopic := map[string]*TopicStat{}
	var topicOrder []string
	byExam := map[string]*ExamStat{}
	var examOrder []string
	for i := range answers {
		a := &answers[i]
		rep.Attempted++
		if a.UserAnswerIsCorrect {
			rep.Correct++
		} else {
			rep.Wrong++
		}

		name := topicNameOf(a.Question)
		st, ok := byTopic[name]
		if !ok {
			st = &TopicStat{Topic: name}
			byTopic[name] = st
			topicOrder = append(topicOrder, name)
		}
		st.Attempted++
		if a.UserAnswerIsCorrect {
			st.Correct++
		} else {
			st.Wrong++
		}

		if a.Question == nil {
			continue
		}
		for j := range a.Question.Exams {
			examName := a.Question.Exams[j].ExamName
			es, ok := byExam[examName]
			if !ok {
				es = &ExamStat{Exam: examName}
				byExam[examName] = es
				examOrder = append(examOrder, examName)
			}
			es.Attempted++
			if a.UserAnswerIsCorrect {
				es.Correct++
			} else {
				es.Wrong++
			}
		}
	}

	for _, name := range topicOrder {
		st := byTopic[name]
		st.Accuracy = accuracy(st.Correct, st.Attempted)
		st.MarksLost = marksLost(st.Wrong)
		rep.Topics = append(rep.Topics, *st)
	}
	for _, name := range examOrder {
		es := byExam[name]
		es.Accuracy = accuracy(es.Correct, es.Attempted)
		rep.Exams = append(rep.Exams, *es)
	}

	rep.Accuracy = accuracy(rep.Correct, rep.Attempted)
	rep.NetScore = float64(rep.Correct) - mservice.NegativeMark*float64(rep.Wrong)
	rep.MarksLost = marksLost(rep.Wrong)

	rep.Strongest = rankTopics(rep.Topics, func(a, b TopicStat) bool {
		return a.Accuracy > b.Accuracy
	}, nil)
	rep.Weakest = rankTopics(rep.Topics, func(a, b TopicStat) bool {
		return a.MarksLost > b.MarksLost
	}, func(t TopicStat) bool { return t.Wrong > 0 })

	if len(answers) > recentAnswersLimit {
		answers = answers[:recentAnswersLimit]
	}
	rep.Recent = answers

	return rep, nil
}

func topicNameOf(q *cmodel.QuestionModel) string {
	if q != nil && q.Topic != nil {
		return q.Topic.TopicName
	}
	return "Uncategorized"
}

func accuracy(correct, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted) * 100
}

// Each wrong answer forfeits the mark itself plus the negative-mark penalty.
func marksLost(wrong int) float64 {
	return float64(wrong) * (1 + mservice.NegativeMark)
}

// rankTopics returns the top entries under less, keeping first-seen order
// among ties (stable sort).
func rankTopics(topics []TopicStat, less func(a, b TopicStat) bool, keep func(TopicStat) bool) []TopicStat {
	pool := make([]TopicStat, 0, len(topics))
	for _, t := range topics {
		if keep == nil || keep(t) {
			pool = append(pool, t)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return less(pool[i], pool[j]) })
	if len(pool) > topicRankSize {
		pool = pool[:topicRankSize]
	}
	return pool
}
