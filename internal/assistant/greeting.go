package assistant

import (
	"strings"

	"anostudio/internal/domain"
)

type greetingSet struct {
	generic  string
	product  string
	portrait string
	poster   string
	applied  string
}

var greetings = map[string]greetingSet{
	"id": {
		generic:  "Halo! Saya asisten AI Anda. Tanyakan apa saja tentang gaya foto, misalnya 'berikan gaya yang cocok untuk keripik singkong'.",
		product:  "Halo! Saya melihat Anda mengunggah foto {productName}. Ada gaya foto seperti apa yang Anda inginkan?",
		portrait: "Halo! Untuk caption foto Anda, AI menyarankan: {photoCaption}. Gaya foto seperti apa yang Anda inginkan?",
		poster:   "Halo! Saya siap membantu mendesain poster Anda. Beri tahu saya tema atau ide yang Anda inginkan, misalnya 'buatkan teks dan desain untuk promosi grand opening'.",
		applied:  "Rekomendasi telah diterapkan! Silakan periksa konfigurasinya.",
	},
	"en": {
		generic:  "Hello! I'm your AI assistant. Ask me anything about photo styles, for example, 'suggest a style for cassava chips'.",
		product:  "Hello! I see you've uploaded a photo of {productName}. What kind of photo style are you looking for?",
		portrait: "Hello! For your photo caption, the AI suggests: {photoCaption}. What kind of photo style are you looking for?",
		poster:   "Hi! I'm ready to help design your poster. Tell me the theme or idea you have in mind, like 'create text and a design for a grand opening promotion'.",
		applied:  "Recommendations have been applied! Please check the configuration.",
	},
}

func greetingsFor(language string) greetingSet {
	if set, ok := greetings[language]; ok {
		return set
	}
	return greetings["id"]
}

// Greeting composes the message that seeds a fresh chat. Poster chats get
// the poster greeting; photography chats mention the identified product when
// one is known.
func Greeting(mode domain.Mode, poster bool, productName, language string) string {
	set := greetingsFor(language)
	if poster {
		return set.poster
	}
	name := strings.TrimSpace(productName)
	if name == "" {
		return set.generic
	}
	if mode == domain.ModePortrait {
		return strings.ReplaceAll(set.portrait, "{photoCaption}", name)
	}
	return strings.ReplaceAll(set.product, "{productName}", name)
}

// AppliedMessage is the confirmation appended after a recommendation is
// merged into the configuration.
func AppliedMessage(language string) string {
	return greetingsFor(language).applied
}
