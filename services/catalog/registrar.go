package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"scheduly/models"
	"scheduly/utils"
)

// PeopleSoft campus-solutions endpoints. These GETs need no CSRF token.
const (
	subjectCoursesAPI = "https://pitcsprd.csps.pitt.edu/psc/pitcsprd/EMPLOYEE/SA/s/" +
		"WEBLIB_HCX_CM.H_COURSE_CATALOG.FieldFormula.IScript_SubjectCourses" +
		"?institution=UPITT&subject=%s"
	courseSectionsAPI = "https://pitcsprd.csps.pitt.edu/psc/pitcsprd/EMPLOYEE/SA/s/" +
		"WEBLIB_HCX_CM.H_BROWSE_CLASSES.FieldFormula.IScript_BrowseSections" +
		"?institution=UPITT&campus=&location=&course_id=%s&term=%s&crse_offer_nbr=1"
)

// RegistrarSource pulls live sections from the university registrar. When a
// course cannot be resolved or a request fails, that course contributes no
// sections; the overall call still succeeds. A mock catalog backstops a
// completely empty result so demos always have data.
type RegistrarSource struct {
	httpClient *http.Client
	cache      *SectionCache
}

// NewRegistrarSource builds a registrar client. cache may be nil to disable
// caching.
func NewRegistrarSource(cache *SectionCache) *RegistrarSource {
	return &RegistrarSource{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		cache:      cache,
	}
}

type subjectCoursesResponse struct {
	Courses []struct {
		CatalogNbr string `json:"catalog_nbr"`
		CourseID   string `json:"crse_id"`
	} `json:"courses"`
}

type browseSectionsResponse struct {
	Sections []registrarSection `json:"sections"`
}

type registrarSection struct {
	ClassNbr     json.Number `json:"class_nbr"`
	ClassSection string      `json:"class_section"`
	Meetings     []struct {
		Days      string `json:"days"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	} `json:"meetings"`
	Instructors []struct {
		Name string `json:"name"`
	} `json:"instructors"`
}

func (r *RegistrarSource) GetSections(ctx context.Context, term string, courseCodes []string) ([]models.Section, error) {
	logger := utils.GetLogger()
	out := make([]models.Section, 0, len(courseCodes))

	for _, code := range courseCodes {
		if r.cache != nil {
			if cached, ok := r.cache.Get(ctx, term, code); ok {
				out = append(out, cached...)
				continue
			}
		}

		sections, err := r.fetchCourse(ctx, term, code)
		if err != nil {
			logger.Warn("Registrar lookup failed, skipping course",
				zap.String("course", code), zap.String("term", term), zap.Error(err))
			continue
		}
		if r.cache != nil {
			r.cache.Put(ctx, term, code, sections)
		}
		out = append(out, sections...)
	}

	// Keep the demo alive when the registrar returns nothing at all.
	if len(out) == 0 {
		logger.Info("Registrar returned no sections, serving mock catalog", zap.String("term", term))
		return MockSections(term, courseCodes), nil
	}
	return out, nil
}

func (r *RegistrarSource) fetchCourse(ctx context.Context, term, code string) ([]models.Section, error) {
	subject, number := SplitCourseCode(code)
	courseID, err := r.lookupCourseID(ctx, subject, number)
	if err != nil {
		return nil, err
	}
	if courseID == "" {
		return nil, fmt.Errorf("course %s not found in subject catalog", code)
	}

	var resp browseSectionsResponse
	url := fmt.Sprintf(courseSectionsAPI, courseID, term)
	if err := r.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("failed to browse sections for %s: %w", code, err)
	}

	sections := make([]models.Section, 0, len(resp.Sections))
	for _, rs := range resp.Sections {
		sections = append(sections, r.toSection(code, rs))
	}
	return sections, nil
}

func (r *RegistrarSource) lookupCourseID(ctx context.Context, subject, number string) (string, error) {
	var resp subjectCoursesResponse
	url := fmt.Sprintf(subjectCoursesAPI, subject)
	if err := r.getJSON(ctx, url, &resp); err != nil {
		return "", fmt.Errorf("failed to list subject %s: %w", subject, err)
	}
	for _, c := range resp.Courses {
		if c.CatalogNbr == number {
			return c.CourseID, nil
		}
	}
	return "", nil
}

func (r *RegistrarSource) toSection(code string, rs registrarSection) models.Section {
	s := models.Section{
		Course:  code,
		CRN:     rs.ClassNbr.String(),
		Label:   rs.ClassSection,
		Days:    []string{},
		Start:   "00:00",
		End:     "00:00",
		Credits: models.DefaultCredits,
	}
	if len(rs.Meetings) > 0 {
		// The primary meeting block carries the schedule.
		m := rs.Meetings[0]
		s.Days = NormalizeDays(m.Days)
		s.Start = NormalizeTime(m.StartTime)
		s.End = NormalizeTime(m.EndTime)
	}
	if len(rs.Instructors) > 0 {
		name := rs.Instructors[0].Name
		if name != "To be Announced" && name != "-" {
			s.Instructor = name
		}
	}
	return s
}

func (r *RegistrarSource) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
