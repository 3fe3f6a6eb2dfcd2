package controller

import (
	"edupiyasa_backend/internal/service"
	"edupiyasa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TextbookController struct {
	TextbookService *service.TextbookService
}

func NewTextbookController(textbookService *service.TextbookService) *TextbookController {
	return &TextbookController{TextbookService: textbookService}
}

// ListTextbooks godoc
// @Summary Textbook library
// @Description Filters combine with AND. Subject and medium accept "all".
// @Tags textbooks
// @Produce json
// @Security BearerAuth
// @Param grade query int false "school grade, 0 for all"
// @Param subject query string false "subject id or all"
// @Param medium query string false "Sinhala, English, Tamil or all"
// @Success 200 {object} util.Response{data=[]model.Textbook}
// @Router /api/textbooks [get]
func (c *TextbookController) ListTextbooks(ctx *gin.Context) {
	filter := service.TextbookFilter{
		Grade:   util.ParseIntDefault(ctx.Query("grade"), 0),
		Subject: ctx.DefaultQuery("subject", service.FilterAll),
		Medium:  ctx.DefaultQuery("medium", service.FilterAll),
	}

	books, err := c.TextbookService.ListTextbooks(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, books)
}

// GetTextbook godoc
// @Summary One textbook with its download link
// @Tags textbooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "textbook id"
// @Success 200 {object} util.Response{data=model.Textbook}
// @Failure 404 {object} util.Response
// @Router /api/textbooks/{id} [get]
func (c *TextbookController) GetTextbook(ctx *gin.Context) {
	book, err := c.TextbookService.GetTextbook(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, book)
}
