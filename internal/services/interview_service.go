package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridhire/gridhire/internal/cache"
	"github.com/gridhire/gridhire/internal/evaluator"
	"github.com/gridhire/gridhire/internal/interview"
	"github.com/gridhire/gridhire/internal/metrics"
	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/questions"
	"github.com/gridhire/gridhire/internal/report"
	mongorepo "github.com/gridhire/gridhire/internal/repositories/mongo"
	"github.com/gridhire/gridhire/internal/utils"
)

const (
	introTemplate = "Hello %s! I'm the AI Excel Mock Interviewer. " +
		"I'll ask a few questions about Excel (theory, formulas, and scenarios). " +
		"Answer as you would in a live interview. Let's begin."
	closingMessage     = "Thanks — the interview is complete. We'll generate a short performance summary."
	noQuestionsMessage = "No questions configured."

	roleInterviewer = "interviewer"
	roleCandidate   = "candidate"
)

// StartResult carries the opening exchange of a new interview. Question is
// nil when the generated set came back empty; Message is set in that case.
type StartResult struct {
	InterviewID string
	Intro       string
	Question    *models.Question
	Message     string
	Progress    string
}

// AnswerResult carries one evaluated turn. Mid-interview NextQuestion and
// Progress are set; on the last answer Finished is true and Message plus the
// freshly built Report are set instead.
type AnswerResult struct {
	Evaluation   models.Evaluation
	NextQuestion *models.Question
	Progress     string
	Message      string
	Report       *models.Report
	Finished     bool
}

type InterviewService interface {
	Start(ctx context.Context, candidateName string) (*StartResult, error)
	Answer(ctx context.Context, interviewID, answer string) (*AnswerResult, error)
}

type interviewService struct {
	registry    *interview.Registry
	questions   *questions.Generator
	evaluator   *evaluator.Evaluator
	transcripts mongorepo.TranscriptRepository
	reports     mongorepo.ReportRepository
	cache       cache.Cache
	log         *logrus.Logger
}

func NewInterviewService(
	registry *interview.Registry,
	gen *questions.Generator,
	eval *evaluator.Evaluator,
	transcripts mongorepo.TranscriptRepository,
	reports mongorepo.ReportRepository,
	c cache.Cache,
	log *logrus.Logger,
) InterviewService {
	return &interviewService{
		registry:    registry,
		questions:   gen,
		evaluator:   eval,
		transcripts: transcripts,
		reports:     reports,
		cache:       c,
		log:         log,
	}
}

func (s *interviewService) Start(ctx context.Context, candidateName string) (*StartResult, error) {
	const op = "InterviewService.Start"

	name := strings.TrimSpace(candidateName)
	if name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_name is required", nil)
	}

	sess := interview.NewSession(name)
	sess.SetQuestions(s.questions.Generate(ctx, sess.TotalQuestions))

	intro := fmt.Sprintf(introTemplate, name)
	sess.AddTurn(roleInterviewer, intro)

	q := sess.NextQuestion()
	if q == nil {
		// degenerate set: the session is already finished, keep it for audit
		s.registry.Put(sess)
		metrics.InterviewsStarted.Inc()
		return &StartResult{InterviewID: sess.ID, Intro: intro, Message: noQuestionsMessage}, nil
	}

	sess.AddTurn(roleInterviewer, q.Text)
	s.registry.Put(sess)
	metrics.InterviewsStarted.Inc()

	s.log.WithFields(logrus.Fields{
		"interview_id": sess.ID,
		"questions":    sess.TotalQuestions,
	}).Info("interview started")

	return &StartResult{
		InterviewID: sess.ID,
		Intro:       intro,
		Question:    q,
		Progress:    fmt.Sprintf("%d/%d", sess.CurrentIndex, sess.TotalQuestions),
	}, nil
}

func (s *interviewService) Answer(ctx context.Context, interviewID, answer string) (*AnswerResult, error) {
	const op = "InterviewService.Answer"

	if interviewID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "interview_id is required", nil)
	}

	var out *AnswerResult
	err := s.registry.With(interviewID, func(sess *interview.Session) error {
		if sess.Finished {
			return utils.E(utils.CodeConflict, op, "interview already finished", nil)
		}

		sess.AddTurn(roleCandidate, answer)

		var ev models.Evaluation
		if q := sess.LastQuestion(); q != nil {
			ev = s.evaluator.Evaluate(ctx, *q, answer)
		} else {
			ev = noContextEvaluation(answer)
		}
		sess.AddEvaluation(ev)
		metrics.AnswersEvaluated.Inc()

		if sess.CurrentIndex < sess.TotalQuestions {
			if next := sess.NextQuestion(); next != nil {
				sess.AddTurn(roleInterviewer, next.Text)
				out = &AnswerResult{
					Evaluation:   ev,
					NextQuestion: next,
					Progress:     fmt.Sprintf("%d/%d", sess.CurrentIndex, sess.TotalQuestions),
				}
				return nil
			}
		}

		sess.Finished = true
		sess.AddTurn(roleInterviewer, closingMessage)
		out = &AnswerResult{
			Evaluation: ev,
			Message:    closingMessage,
			Report:     s.finish(ctx, sess),
			Finished:   true,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, err
	}
	return out, nil
}

// finish persists the transcript and report. Persistence failures are logged
// and swallowed so the candidate still receives their evaluation and report.
func (s *interviewService) finish(ctx context.Context, sess *interview.Session) *models.Report {
	tr := sess.Transcript(time.Now().UTC())
	if err := s.transcripts.Insert(ctx, tr); err != nil {
		s.log.WithError(err).WithField("interview_id", sess.ID).Error("transcript insert failed")
	}

	rep := report.Build(sess.ID, sess.CandidateName, sess.Evaluations)
	if err := s.reports.Insert(ctx, rep); err != nil {
		s.log.WithError(err).WithField("interview_id", sess.ID).Error("report insert failed")
	} else if s.cache != nil {
		if err := s.cache.Del(ctx, cacheKeyReports, cacheKeyAnalytics); err != nil {
			s.log.WithError(err).Warn("admin cache invalidation failed")
		}
	}
	metrics.ReportsGenerated.Inc()
	return rep
}

// noContextEvaluation covers a candidate turn that arrives before any
// question was issued.
func noContextEvaluation(answer string) models.Evaluation {
	zero := 0.0
	return models.Evaluation{
		QuestionID:  "unknown",
		Answer:      answer,
		Score:       &zero,
		Reasoning:   "No question context",
		Suggestions: []string{},
		Plagiarism: models.PlagiarismCheck{
			Status:      "unknown",
			Explanation: "No explanation provided",
		},
	}
}
