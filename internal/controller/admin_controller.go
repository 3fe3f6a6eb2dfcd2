package controller

import (
	"errors"

	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/service"
	"edupiyasa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController is the content management console for teachers and admins.
type AdminController struct {
	ContentService *service.ContentService
	SubjectService *service.SubjectService
}

func NewAdminController(contentService *service.ContentService, subjectService *service.SubjectService) *AdminController {
	return &AdminController{
		ContentService: contentService,
		SubjectService: subjectService,
	}
}

// Stats godoc
// @Summary Console landing page counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.AdminStats}
// @Router /api/admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.ContentService.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// ListLessons godoc
// @Summary All lessons, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/admin/lessons [get]
func (c *AdminController) ListLessons(ctx *gin.Context) {
	lessons, err := c.ContentService.ListLessons()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// CreateLesson godoc
// @Summary Create a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Lesson true "lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response
// @Router /api/admin/lessons [post]
func (c *AdminController) CreateLesson(ctx *gin.Context) {
	var lesson model.Lesson
	if err := ctx.ShouldBindJSON(&lesson); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if lesson.SubjectID == 0 || lesson.Title == "" {
		util.BadRequest(ctx, "subjectId and title are required")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims != nil {
		lesson.CreatedBy = claims.UserID
	}
	if err := c.ContentService.CreateLesson(&lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body model.Lesson true "lesson"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response
// @Router /api/admin/lessons/{id} [put]
func (c *AdminController) UpdateLesson(ctx *gin.Context) {
	var lesson model.Lesson
	if err := ctx.ShouldBindJSON(&lesson); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	lesson.ID = util.MustParseUint(ctx.Param("id"))
	if lesson.ID == 0 {
		util.NotFound(ctx)
		return
	}

	if err := c.ContentService.UpdateLesson(&lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/admin/lessons/{id} [delete]
func (c *AdminController) DeleteLesson(ctx *gin.Context) {
	if err := c.ContentService.DeleteLesson(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// ListAssignments godoc
// @Summary All assignments, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/admin/assignments [get]
func (c *AdminController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.ContentService.ListAssignments()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// CreateAssignment godoc
// @Summary Create an assignment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Assignment true "assignment"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Router /api/admin/assignments [post]
func (c *AdminController) CreateAssignment(ctx *gin.Context) {
	var assignment model.Assignment
	if err := ctx.ShouldBindJSON(&assignment); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if assignment.SubjectID == 0 || assignment.Title == "" {
		util.BadRequest(ctx, "subjectId and title are required")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims != nil {
		assignment.CreatedBy = claims.UserID
	}
	if err := c.ContentService.CreateAssignment(&assignment); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Router /api/admin/assignments/{id} [delete]
func (c *AdminController) DeleteAssignment(ctx *gin.Context) {
	if err := c.ContentService.DeleteAssignment(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Subject true "subject"
// @Success 201 {object} util.Response{data=model.Subject}
// @Failure 400 {object} util.Response
// @Router /api/admin/subjects [post]
func (c *AdminController) CreateSubject(ctx *gin.Context) {
	var subject model.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if subject.Name == "" {
		util.BadRequest(ctx, "name is required")
		return
	}

	if err := c.SubjectService.CreateSubject(ctx.Request.Context(), &subject); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, subject)
}

// UpdateSubject godoc
// @Summary Update a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "subject id"
// @Param body body model.Subject true "subject"
// @Success 200 {object} util.Response{data=model.Subject}
// @Failure 404 {object} util.Response
// @Router /api/admin/subjects/{id} [put]
func (c *AdminController) UpdateSubject(ctx *gin.Context) {
	var subject model.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	subject.ID = util.MustParseUint(ctx.Param("id"))
	if subject.ID == 0 {
		util.NotFound(ctx)
		return
	}

	if err := c.SubjectService.UpdateSubject(ctx.Request.Context(), &subject); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subject)
}

// DeleteSubject godoc
// @Summary Delete a subject
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "subject id"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [delete]
func (c *AdminController) DeleteSubject(ctx *gin.Context) {
	if err := c.SubjectService.DeleteSubject(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// CreateTextbook godoc
// @Summary Create a textbook entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Textbook true "textbook metadata"
// @Success 201 {object} util.Response{data=model.Textbook}
// @Failure 400 {object} util.Response
// @Router /api/admin/textbooks [post]
func (c *AdminController) CreateTextbook(ctx *gin.Context) {
	var textbook model.Textbook
	if err := ctx.ShouldBindJSON(&textbook); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if textbook.Title == "" || textbook.Grade == 0 || textbook.Medium == "" {
		util.BadRequest(ctx, "title, grade and medium are required")
		return
	}

	if err := c.ContentService.CreateTextbook(&textbook); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, textbook)
}

// UpdateTextbook godoc
// @Summary Update a textbook entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "textbook id"
// @Param body body model.Textbook true "textbook metadata"
// @Success 200 {object} util.Response{data=model.Textbook}
// @Failure 400 {object} util.Response
// @Router /api/admin/textbooks/{id} [put]
func (c *AdminController) UpdateTextbook(ctx *gin.Context) {
	var textbook model.Textbook
	if err := ctx.ShouldBindJSON(&textbook); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	textbook.ID = util.MustParseUint(ctx.Param("id"))
	if textbook.ID == 0 {
		util.NotFound(ctx)
		return
	}

	if err := c.ContentService.UpdateTextbook(&textbook); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, textbook)
}

// DeleteTextbook godoc
// @Summary Delete a textbook
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "textbook id"
// @Success 200 {object} util.Response
// @Router /api/admin/textbooks/{id} [delete]
func (c *AdminController) DeleteTextbook(ctx *gin.Context) {
	if err := c.ContentService.DeleteTextbook(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// CreateActivity godoc
// @Summary Create a matching activity
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Activity true "activity with pairs"
// @Success 201 {object} util.Response{data=model.Activity}
// @Failure 400 {object} util.Response
// @Router /api/admin/activities [post]
func (c *AdminController) CreateActivity(ctx *gin.Context) {
	var activity model.Activity
	if err := ctx.ShouldBindJSON(&activity); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if activity.Title == "" || len(activity.Pairs) == 0 {
		util.BadRequest(ctx, "title and at least one pair are required")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims != nil {
		activity.CreatedBy = claims.UserID
	}
	if err := c.ContentService.CreateActivity(&activity); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, activity)
}

// DeleteActivity godoc
// @Summary Delete a matching activity
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "activity id"
// @Success 200 {object} util.Response
// @Router /api/admin/activities/{id} [delete]
func (c *AdminController) DeleteActivity(ctx *gin.Context) {
	if err := c.ContentService.DeleteActivity(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// UploadPDF godoc
// @Summary Upload a PDF to the storage provider
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "pdf file"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Failure 400 {object} util.Response
// @Router /api/admin/uploads/pdf [post]
func (c *AdminController) UploadPDF(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	result, err := c.ContentService.UploadPDF(ctx.Request.Context(), file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, result)
}

// UploadCover godoc
// @Summary Upload a textbook cover image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "image file"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Failure 400 {object} util.Response
// @Router /api/admin/uploads/cover [post]
func (c *AdminController) UploadCover(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	result, err := c.ContentService.UploadCoverImage(ctx.Request.Context(), file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, result)
}

// UploadVideo godoc
// @Summary Upload a lesson video
// @Description Stores the file and probes its duration for the lesson player.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "video file"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Failure 400 {object} util.Response
// @Router /api/admin/uploads/video [post]
func (c *AdminController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	result, err := c.ContentService.UploadLessonVideo(ctx.Request.Context(), file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, result)
}
