package domain

// TemplateKey is the coarse fallback style applied when neither a preset nor a
// keyword group matches the event text.
type TemplateKey string

const (
	TemplateElegant TemplateKey = "elegant"
	TemplateFun     TemplateKey = "fun"
	TemplateMinimal TemplateKey = "minimal"
	TemplateDesi    TemplateKey = "desi"
	TemplateRamadan TemplateKey = "ramadan"
)

// Mode selects the rendering strategy for one generation call.
type Mode string

const (
	// ModeClassic renders entirely through the local layout pipeline.
	ModeClassic Mode = "classic"
	// ModeAIPoster asks the artwork supplier first and falls back to classic.
	ModeAIPoster Mode = "ai_poster"
)

// FlyerInput carries all event fields consumed by one generation call. It is
// constructed fresh per request and never mutated.
type FlyerInput struct {
	TemplateKey  TemplateKey `json:"template_key"`
	PresetID     string      `json:"preset_id,omitempty"`
	Theme        string      `json:"theme"`
	DateTimeText string      `json:"date_time_text"`
	Location     string      `json:"location"`
	DressCode    string      `json:"dress_code,omitempty"`
	Note         string      `json:"note,omitempty"`
	Description  string      `json:"description,omitempty"`
	Tagline      string      `json:"tagline,omitempty"`
	Palette      []string    `json:"palette,omitempty"`
}

// RenderedFlyer is the finished output of one generation call: a 1080x1350
// PNG and a single-page PDF wrapping the same bitmap.
type RenderedFlyer struct {
	PNG []byte
	PDF []byte
}
