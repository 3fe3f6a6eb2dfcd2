package controller

import (
	"edupiyasa_backend/internal/service"
	"edupiyasa_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// ParentController serves the progress console. Routes are gated to teacher
// and admin roles by the router.
type ParentController struct {
	ParentService *service.ParentService
}

func NewParentController(parentService *service.ParentService) *ParentController {
	return &ParentController{ParentService: parentService}
}

// ListStudents godoc
// @Summary Students available to the console
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/parent/students [get]
func (c *ParentController) ListStudents(ctx *gin.Context) {
	students, err := c.ParentService.ListStudents()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// StudentOverview godoc
// @Summary Progress summary for one student
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=service.StudentSummary}
// @Failure 404 {object} util.Response
// @Router /api/parent/students/{id}/overview [get]
func (c *ParentController) StudentOverview(ctx *gin.Context) {
	summary, err := c.ParentService.StudentOverview(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, summary)
}

// StudentEmotions godoc
// @Summary Most recent emotional states for one student
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=[]model.EmotionalState}
// @Failure 404 {object} util.Response
// @Router /api/parent/students/{id}/emotions [get]
func (c *ParentController) StudentEmotions(ctx *gin.Context) {
	moods, err := c.ParentService.Emotions(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, moods)
}

// StudentAlerts godoc
// @Summary Unread alerts for one student
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=[]model.ParentalAlert}
// @Failure 404 {object} util.Response
// @Router /api/parent/students/{id}/alerts [get]
func (c *ParentController) StudentAlerts(ctx *gin.Context) {
	alerts, err := c.ParentService.Alerts(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, alerts)
}

// MarkAlertRead godoc
// @Summary Acknowledge an alert
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Param id path int true "alert id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/parent/alerts/{id}/read [post]
func (c *ParentController) MarkAlertRead(ctx *gin.Context) {
	if err := c.ParentService.MarkAlertRead(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrAlertNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"read": true})
}
