package handlers

import (
	"scheduly/services/catalog"
	ai "scheduly/services/intelligence"
	"scheduly/services/requirements"
	"scheduly/services/schedule"
	"scheduly/services/session"
)

// HandlerBundle groups the endpoint handlers and the collaborators they call.
// AI-backed fields stay nil in development mode; handlers fall back to the
// curated catalog and default preferences when they are.
type HandlerBundle struct {
	Engine         schedule.Engine
	Curated        *requirements.CuratedSource
	AIRequirements requirements.Source
	Catalog        catalog.Source
	Parser         ai.PreferenceParser
	PrereqSearcher ai.PrereqSearcher
	Sessions       session.Store
}
