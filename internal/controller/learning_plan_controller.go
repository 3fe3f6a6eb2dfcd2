package controller

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/service"
	"edupiyasa_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type LearningPlanController struct {
	PlanService *service.LearningPlanService
}

func NewLearningPlanController(planService *service.LearningPlanService) *LearningPlanController {
	return &LearningPlanController{PlanService: planService}
}

// GetPlan godoc
// @Summary The caller's learning plan
// @Tags learning-plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.LearningPlan}
// @Failure 404 {object} util.Response "no plan saved yet"
// @Router /api/learning-plan [get]
func (c *LearningPlanController) GetPlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.PlanService.GetPlan(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrLearningPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, plan)
}

// SavePlan godoc
// @Summary Create or replace the caller's learning plan
// @Tags learning-plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.LearningPlan true "plan"
// @Success 200 {object} util.Response{data=model.LearningPlan}
// @Failure 400 {object} util.Response
// @Router /api/learning-plan [put]
func (c *LearningPlanController) SavePlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var plan model.LearningPlan
	if err := ctx.ShouldBindJSON(&plan); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if plan.Title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}

	saved, err := c.PlanService.SavePlan(claims.UserID, &plan)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, saved)
}
