package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/services"
	"github.com/gridhire/gridhire/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type StartInterviewRequest struct {
	CandidateName string `json:"candidate_name" binding:"required"`
}

type StartInterviewResponse struct {
	ID       string `json:"id"`
	Question string `json:"question,omitempty"`
	Intro    string `json:"intro,omitempty"`
	Progress string `json:"progress,omitempty"`
	Message  string `json:"message,omitempty"`
}

// AnswerRequest takes a pointer so a present-but-empty answer is accepted;
// skipped questions are scored too.
type AnswerRequest struct {
	Answer *string `json:"answer" binding:"required"`
}

type AnswerResponse struct {
	Evaluation   models.Evaluation `json:"evaluation"`
	NextQuestion string            `json:"next_question,omitempty"`
	Progress     string            `json:"progress,omitempty"`
	Message      string            `json:"message,omitempty"`
	Report       *models.Report    `json:"report,omitempty"`
}

func (h *InterviewHandler) Start(c *gin.Context) {
	var req StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Start", "candidate_name is required", err))
		return
	}

	res, err := h.svc.Start(c.Request.Context(), req.CandidateName)
	if err != nil {
		writeError(c, err)
		return
	}

	out := StartInterviewResponse{ID: res.InterviewID}
	if res.Question != nil {
		out.Question = res.Question.Text
		out.Intro = res.Intro
		out.Progress = res.Progress
	} else {
		out.Message = res.Message
	}
	c.JSON(http.StatusOK, out)
}

func (h *InterviewHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Answer", "answer is required", err))
		return
	}

	res, err := h.svc.Answer(c.Request.Context(), c.Param("interview_id"), *req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}

	out := AnswerResponse{Evaluation: res.Evaluation}
	if res.Finished {
		out.Message = res.Message
		out.Report = res.Report
	} else {
		if res.NextQuestion != nil {
			out.NextQuestion = res.NextQuestion.Text
		}
		out.Progress = res.Progress
	}
	c.JSON(http.StatusOK, out)
}
