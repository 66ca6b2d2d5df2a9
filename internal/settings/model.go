package settings

import "github.com/yacinedev/mystore-backend/internal/document"

// Patch carries the fields present in a settings update. Absent fields are
// left untouched; nested objects are replaced wholesale when present, never
// deep-merged.
type Patch struct {
	StoreName       *string           `json:"storeName"`
	HeroTitle       *string           `json:"heroTitle"`
	HeroDescription *string           `json:"heroDescription"`
	Currency        *string           `json:"currency"`
	Language        *string           `json:"language"`
	Active          *bool             `json:"active"`
	LogoURL         *string           `json:"logoUrl"`
	FaviconURL      *string           `json:"faviconUrl"`
	Theme           *document.Theme   `json:"theme"`
	Contact         *document.Contact `json:"contact"`
	Social          *document.Social  `json:"social"`
}

// Apply merges the patch into existing settings.
func (p Patch) Apply(s *document.Settings) {
	if p.StoreName != nil {
		s.StoreName = *p.StoreName
	}
	if p.HeroTitle != nil {
		s.HeroTitle = *p.HeroTitle
	}
	if p.HeroDescription != nil {
		s.HeroDescription = *p.HeroDescription
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	if p.LogoURL != nil {
		s.LogoURL = *p.LogoURL
	}
	if p.FaviconURL != nil {
		s.FaviconURL = *p.FaviconURL
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Contact != nil {
		s.Contact = *p.Contact
	}
	if p.Social != nil {
		s.Social = *p.Social
	}
}
