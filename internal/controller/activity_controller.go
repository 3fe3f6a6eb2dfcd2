package controller

import (
	"edupiyasa_backend/internal/service"
	"edupiyasa_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// ListActivities godoc
// @Summary Matching activity catalog
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/activities [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	activities, err := c.ActivityService.ListActivities()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// GetActivity godoc
// @Summary One matching activity with its pairs
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "activity id"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [get]
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	activity, err := c.ActivityService.GetActivity(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, activity)
}

// AttemptHistory godoc
// @Summary The caller's matching attempts, newest first
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ActivityAttempt}
// @Router /api/attempts/activities [get]
func (c *ActivityController) AttemptHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.ActivityService.AttemptHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// swagger:model SubmitActivityRequest
type SubmitActivityRequest struct {
	Matches   map[string]string `json:"matches" binding:"required"`
	HintsUsed int               `json:"hintsUsed"`
	TimeTaken int               `json:"timeTaken"`
}

// SubmitAttempt godoc
// @Summary Check a completed matching board
// @Description Every right slot must hold a card. A perfect board earns the
// @Description activity's points; partial boards are recorded but award none.
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "activity id"
// @Param body body SubmitActivityRequest true "board state"
// @Success 200 {object} util.Response{data=model.ActivityAttempt}
// @Failure 400 {object} util.Response "board incomplete"
// @Failure 404 {object} util.Response
// @Router /api/activities/{id}/attempts [post]
func (c *ActivityController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.ActivityService.SubmitAttempt(claims.UserID, util.MustParseUint(ctx.Param("id")), req.Matches, req.HintsUsed, req.TimeTaken)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrActivityNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrIncompleteMatches):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, attempt)
}
