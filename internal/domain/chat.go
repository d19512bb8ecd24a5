package domain

// ChatRole distinguishes who authored a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "model"
)

// StyleRecommendation is the assistant's structured answer for a photo
// shoot. Style fields hold display names as returned by the model; the
// resolver maps them back onto catalog ids before they touch a config.
type StyleRecommendation struct {
	AngleStyle      string `json:"angleStyle"`
	LightingStyle   string `json:"lightingStyle"`
	StylingStyle    string `json:"stylingStyle"`
	BackgroundStyle string `json:"backgroundStyle"`
	OutfitStyle     string `json:"outfitStyle,omitempty"`
}

// PosterRecommendation is the assistant's structured answer for the poster
// designer: style names plus ready-to-use copy.
type PosterRecommendation struct {
	Theme        string `json:"theme"`
	ColorPalette string `json:"colorPalette"`
	FontStyle    string `json:"fontStyle"`
	Headline     string `json:"headline"`
	BodyText     string `json:"bodyText"`
	CTA          string `json:"cta"`
}

// PosterCopy is generated ad copy for a poster, without style choices.
type PosterCopy struct {
	Headline string `json:"headline"`
	BodyText string `json:"bodyText"`
	CTA      string `json:"cta"`
}

// ChatMessage is one entry in a session's assistant conversation. Assistant
// replies may carry a pending recommendation the user can apply later.
type ChatMessage struct {
	Role           ChatRole              `json:"role"`
	Text           string                `json:"text"`
	Recommendation *StyleRecommendation  `json:"recommendation,omitempty"`
	PosterRec      *PosterRecommendation `json:"posterRecommendation,omitempty"`
}
