package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"scheduly/config"
	"scheduly/models"
	"scheduly/services/catalog"
	ai "scheduly/services/intelligence"
	"scheduly/services/requirements"
	"scheduly/services/schedule"
	"scheduly/services/session"
	"scheduly/utils"
)

// BuildPayload starts a scheduling session for a school/major/term.
type BuildPayload struct {
	School    string `json:"school"`
	Major     string `json:"major"`
	Term      string `json:"term"`
	Utterance string `json:"utterance"`
}

// OptimizePayload reruns an existing session with new free-text preferences.
type OptimizePayload struct {
	SessionID string `json:"session_id"`
	Utterance string `json:"utterance"`
}

// BuildScheduleHandler resolves requirements, fetches sections, parses
// preferences and builds the first plan of a new session.
func (hb *HandlerBundle) BuildScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var p BuildPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if p.School == "" {
		p.School = config.AppConfig.DefaultSchool
	}
	if p.Term == "" {
		p.Term = config.AppConfig.DefaultTerm
	}
	if !requirements.ValidateTerm(p.Term) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid term format",
			"Expected a code like 2251 for Fall 2025")
		return
	}
	if len(strings.TrimSpace(p.Major)) < 2 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid major", "Major must be at least 2 characters long")
		return
	}
	if config.DevelopmentMode() && !strings.EqualFold(p.School, config.AppConfig.DefaultSchool) {
		utils.JSONError(c, http.StatusBadRequest, "School not supported",
			"Development mode only supports "+config.AppConfig.DefaultSchool+"; set APP_MODE=production for multi-university support")
		return
	}

	logger.Info("Building schedule",
		zap.String("school", p.School), zap.String("major", p.Major), zap.String("term", p.Term))

	reqSet, err := hb.resolveRequirements(c, p.School, p.Major)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Requirements service error", err.Error())
		return
	}

	courseCodes := selectCourses(reqSet, config.AppConfig.MaxCourseSelection)
	if len(courseCodes) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No valid course codes",
			"No valid course codes found for the specified major")
		return
	}

	sections, err := hb.Catalog.GetSections(c.Request.Context(), p.Term, courseCodes)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Course catalog service error", err.Error())
		return
	}
	if len(sections) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No sections found",
			"No sections found for any of the required courses in the specified term")
		return
	}

	prefs, err := hb.parsePreferences(c, p.Utterance)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Preference parsing error", err.Error())
		return
	}

	multiTermPrereqs := hb.resolvePrereqs(c, p.School, p.Major, courseCodes)
	reqSet.MultiTermPrereqs = multiTermPrereqs

	// A fresh session has no completed courses yet.
	plan := hb.Engine.BuildSchedule(schedule.BuildRequest{
		Term:             p.Term,
		Sections:         sections,
		Preferences:      prefs,
		SameTermPrereqs:  reqSet.Prereqs,
		AvailableCourses: courseCodes,
		MultiTermPrereqs: multiTermPrereqs,
	})

	sessionID := uuid.New().String()
	state := models.SessionState{
		School:           p.School,
		Major:            p.Major,
		Term:             p.Term,
		Preferences:      prefs,
		Courses:          courseCodes,
		Prereqs:          reqSet.Prereqs,
		MultiTermPrereqs: multiTermPrereqs,
		CompletedCourses: []string{},
		LastPlan:         &plan,
	}
	if err := hb.Sessions.Create(c.Request.Context(), sessionID, state); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store session", err.Error())
		return
	}

	logger.Info("Created scheduling session",
		zap.String("sessionId", sessionID), zap.Int("sections", len(plan.Sections)))

	c.JSON(http.StatusOK, gin.H{
		"session_id":   sessionID,
		"requirements": reqSet,
		"plan":         plan,
	})
}

// OptimizeScheduleHandler folds a new utterance into a session's preferences
// and rebuilds the plan.
func (hb *HandlerBundle) OptimizeScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var p OptimizePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(p.Utterance) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Empty utterance",
			"Utterance cannot be empty for optimization")
		return
	}

	rec, err := hb.Sessions.Get(c.Request.Context(), p.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Session not found",
				"Session "+p.SessionID+" not found or expired")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Session lookup failed", err.Error())
		return
	}
	state := rec.State

	logger.Info("Optimizing session",
		zap.String("sessionId", p.SessionID), zap.String("utterance", p.Utterance))

	newPrefs, err := hb.parseUtterance(c, p.Utterance)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Preference parsing error", err.Error())
		return
	}
	state.Preferences.Merge(newPrefs)

	sections, err := hb.Catalog.GetSections(c.Request.Context(), state.Term, state.Courses)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Course catalog service error", err.Error())
		return
	}
	if len(sections) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No sections found",
			"No sections found for the courses in this session. The course offerings may have changed.")
		return
	}

	plan := hb.Engine.BuildSchedule(schedule.BuildRequest{
		Term:             state.Term,
		Sections:         sections,
		Preferences:      state.Preferences,
		SameTermPrereqs:  state.Prereqs,
		AvailableCourses: state.Courses,
		MultiTermPrereqs: state.MultiTermPrereqs,
		CompletedCourses: state.CompletedCourses,
	})
	state.LastPlan = &plan

	if err := hb.Sessions.Update(c.Request.Context(), p.SessionID, state); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// resolveRequirements prefers the curated catalog and uses the AI source for
// everything else when configured.
func (hb *HandlerBundle) resolveRequirements(c *gin.Context, school, major string) (*models.RequirementSet, error) {
	if hb.Curated != nil && hb.Curated.Supported(school, major) {
		return hb.Curated.GetRequirements(c.Request.Context(), school, major)
	}
	if hb.AIRequirements != nil {
		return hb.AIRequirements.GetRequirements(c.Request.Context(), school, major)
	}
	return hb.Curated.GetRequirements(c.Request.Context(), school, major)
}

// parsePreferences handles the build-time default rules: development mode
// tolerates an empty utterance and a failing parser.
func (hb *HandlerBundle) parsePreferences(c *gin.Context, utterance string) (models.Preferences, error) {
	if utterance == "" {
		return models.Preferences{}, nil
	}
	prefs, err := hb.parseUtterance(c, utterance)
	if err != nil && config.DevelopmentMode() {
		utils.GetLogger().Warn("Preference parsing failed, using defaults", zap.Error(err))
		return models.Preferences{}, nil
	}
	return prefs, err
}

func (hb *HandlerBundle) parseUtterance(c *gin.Context, utterance string) (models.Preferences, error) {
	if hb.Parser == nil {
		return models.Preferences{}, nil
	}
	return hb.Parser.ParsePreferences(c.Request.Context(), utterance)
}

// resolvePrereqs returns the multi-term prerequisite set for the session:
// the hardcoded development-mode list, or an AI search in production. Search
// failures degrade to no prerequisites.
func (hb *HandlerBundle) resolvePrereqs(c *gin.Context, school, major string, courseCodes []string) []models.Prereq {
	if hb.PrereqSearcher == nil {
		return requirements.HardcodedMultiTermPrereqs(school, major)
	}
	results, err := hb.PrereqSearcher.BatchSearchPrereqs(c.Request.Context(), school, courseCodes)
	if err != nil {
		utils.GetLogger().Warn("Prerequisite search failed, using empty prerequisites", zap.Error(err))
		return nil
	}
	return ai.MultiTermPrereqs(results, courseCodes)
}

// selectCourses picks the term's candidate courses from a requirement set:
// all major requirements, then each gen-ed and elective group's first
// count options, capped at limit.
func selectCourses(set *models.RequirementSet, limit int) []string {
	all := make([]string, 0, len(set.Required))
	all = append(all, set.Required...)
	for _, group := range set.GenEds {
		all = append(all, takeN(group.Options, group.Count)...)
	}
	for _, group := range set.ChooseFrom {
		all = append(all, takeN(group.Options, group.Count)...)
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return catalog.CleanCourseCodes(all)
}

func takeN(options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	if n < 0 {
		n = 0
	}
	return options[:n]
}
