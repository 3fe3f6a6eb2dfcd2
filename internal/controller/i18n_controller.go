package controller

import (
	"edupiyasa_backend/internal/i18n"
	"edupiyasa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type I18nController struct{}

func NewI18nController() *I18nController {
	return &I18nController{}
}

// Bundle godoc
// @Summary Translation bundle for one language
// @Description Unknown language codes fall back to English.
// @Tags i18n
// @Produce json
// @Param lang path string true "language code, en or si"
// @Success 200 {object} util.Response
// @Router /api/i18n/{lang} [get]
func (c *I18nController) Bundle(ctx *gin.Context) {
	lang := i18n.Normalize(ctx.Param("lang"))
	util.Success(ctx, gin.H{
		"language": lang,
		"strings":  i18n.Bundle(lang),
	})
}
