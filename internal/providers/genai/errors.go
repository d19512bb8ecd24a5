package genai

// NoImageError reports a generateContent call that succeeded at the HTTP
// level but returned only text. The model text often explains a safety
// refusal and is worth showing to the user.
type NoImageError struct {
	ModelText string
}

func (e *NoImageError) Error() string {
	if e.ModelText == "" {
		return "model returned no image"
	}
	return "model returned no image: " + e.ModelText
}
