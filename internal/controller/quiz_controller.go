package controller

import (
	"edupiyasa_backend/internal/service"
	"edupiyasa_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// ListQuizzes godoc
// @Summary Quiz catalog with question counts
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.QuizSummary}
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary Quiz with its questions, answers withheld
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=service.QuizDetail}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	detail, err := c.QuizService.GetQuiz(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, detail)
}

// StartAttempt godoc
// @Summary Open a scoring record for a quiz run
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 201 {object} util.Response{data=model.QuizAttempt}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response "quiz has no questions"
// @Router /api/quizzes/{id}/attempts/start [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.QuizService.StartAttempt(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNoQuestions):
			util.Error(ctx, 422, "quiz has no questions")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, attempt)
}

// swagger:model QuizAnswer
type QuizAnswer struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Selected   string `json:"selected" binding:"required"`
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers   []QuizAnswer `json:"answers" binding:"required"`
	TimeTaken int          `json:"timeTaken"`
}

// SubmitAttempt godoc
// @Summary Submit answers and close the attempt
// @Description Grades the answer sheet and credits the score. The same path
// @Description serves timer expiry, the client submits whatever is answered.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param attemptID path int true "attempt id"
// @Param body body SubmitQuizRequest true "answer sheet"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response "attempt belongs to another user or quiz"
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "attempt already submitted"
// @Router /api/quizzes/{id}/attempts/{attemptID} [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answers := make(map[uint]string, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = a.Selected
	}

	attempt, err := c.QuizService.SubmitAttempt(claims.UserID, util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("attemptID")), answers, req.TimeTaken)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAttemptNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrForeignAttempt):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrAttemptSubmitted):
			util.Error(ctx, 409, "attempt already submitted")
		case errors.Is(err, util.ErrUnknownOption):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, attempt)
}

// AttemptHistory godoc
// @Summary The caller's past quiz attempts
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /api/attempts [get]
func (c *QuizController) AttemptHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.QuizService.AttemptHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
