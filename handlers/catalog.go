package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scheduly/services/catalog"
	"scheduly/services/requirements"
	"scheduly/utils"
)

// SectionsPayload requests the candidate sections for a set of courses.
type SectionsPayload struct {
	Term        string   `json:"term"`
	CourseCodes []string `json:"course_codes"`
}

// CatalogSectionsHandler serves raw section lookups against the catalog
// source, mostly for frontend course browsing.
func (hb *HandlerBundle) CatalogSectionsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var p SectionsPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !requirements.ValidateTerm(p.Term) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid term format",
			"Expected a code like 2251 for Fall 2025")
		return
	}
	if len(p.CourseCodes) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Empty course list", "Course codes list cannot be empty")
		return
	}
	codes := catalog.CleanCourseCodes(p.CourseCodes)
	if len(codes) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No valid course codes", "No valid course codes provided")
		return
	}

	logger.Info("Fetching sections", zap.String("term", p.Term), zap.Strings("courses", codes))

	sections, err := hb.Catalog.GetSections(c.Request.Context(), p.Term, codes)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Course catalog service error", err.Error())
		return
	}

	logger.Info("Found sections", zap.Int("sections", len(sections)), zap.Int("courses", len(codes)))
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}
