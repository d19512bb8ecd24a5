package assistant

import (
	"fmt"
	"strings"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
	"anostudio/internal/providers/genai"
)

const identifyPromptTemplate = `Analyze the provided image and identify the main product or subject.
1.  Provide a short, descriptive name for it in Indonesian (e.g., "Sepatu hak tinggi merah", "Cangkir kopi espresso", "Pria berjas bisnis").
2.  Classify this product/subject into ONE of the following categories: %s. Choose the most specific and relevant category.
Respond with your answer.`

const posterAssistantTemplate = `Anda adalah seorang AI direktur kreatif dan copywriter pemasaran yang ahli. Tugas Anda adalah membantu pengguna membuat desain poster yang menarik dan efektif.

**CRITICAL: Penjelasan Anda ("reasoning") HARUS dalam bahasa {{response_language}}.**

Konteks Poster Pengguna:
-   Nama Produk: "{{product_name}}"

Pilihan Gaya yang Tersedia:
-   Tema Desain: {{theme_options}}
-   Palet Warna: {{color_palette_options}}
-   Gaya Huruf: {{font_style_options}}

Berdasarkan permintaan pengguna: "{{user_query}}", berikan rekomendasi desain dan teks poster.
Pertama, berikan penjelasan singkat dan ramah tentang visi kreatif Anda dalam bahasa {{response_language}}.
Kemudian, berikan rekomendasi spesifik Anda. Rekomendasi untuk 'theme', 'colorPalette', dan 'fontStyle' HARUS dipilih dari nama Bahasa Inggris (English name) pada daftar pilihan yang tersedia.

Rekomendasi Desain:
1.  **theme**: Nama gaya tema dari daftar.
2.  **colorPalette**: Nama palet warna dari daftar.
3.  **fontStyle**: Nama gaya huruf dari daftar.

Rekomendasi Teks:
1.  **headline**: Judul utama yang menarik perhatian.
2.  **bodyText**: Teks isi singkat yang informatif (bisa dikosongkan).
3.  **cta**: Ajakan bertindak yang jelas dan kuat.

Pastikan rekomendasi Anda kohesif dan sesuai dengan produk serta permintaan pengguna. Jawab dengan format JSON.`

const posterCopyTemplate = `Anda adalah seorang AI copywriter pemasaran yang ahli. Tugas Anda adalah membuat teks iklan yang menarik dan efektif untuk sebuah poster, berdasarkan nama produk.

**CRITICAL: Respon HARUS dalam bahasa {{response_language}}.**

Nama Produk: "{{product_name}}"

Buatlah teks yang singkat, profesional, dan persuasif.
-   **headline**: Judul utama yang menarik perhatian.
-   **bodyText**: Teks isi singkat yang informatif (opsional, bisa dikosongkan jika tidak perlu).
-   **cta**: Ajakan bertindak yang jelas dan kuat.

Jawab HANYA dengan format JSON.`

func responseLanguage(language string) string {
	if language == "en" {
		return "English"
	}
	return "Indonesian"
}

func stylePrompt(cfg domain.GenerationConfig, mode domain.Mode, query, language string) string {
	set := catalog.OptionsFor(catalog.CategoryOf(cfg.PhotoType))
	lang := responseLanguage(language)

	productName := cfg.ProductName
	if productName == "" {
		productName = catalog.ProductTypeName(cfg.PhotoType, language)
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "You are an expert creative director AI assistant for a photography app. The user needs recommendations for their photo shoot.\n\n")
	fmt.Fprintf(sb, "**CRITICAL: Your explanation (\"reasoning\") MUST be in %s.**\n\n", lang)
	fmt.Fprintf(sb, "User's product: %q\nPhotography mode: %q\n\n", productName, mode)
	sb.WriteString("Here are the available style options the app supports. Your recommendations for angle, lighting, styling, and background MUST be one of the exact English names from these lists if a suitable option exists.\n\n")
	fmt.Fprintf(sb, "Angle Options: %s\n", strings.Join(catalog.EnglishNames(set.Angles), ", "))
	fmt.Fprintf(sb, "Lighting Options: %s\n", strings.Join(catalog.EnglishNames(set.Lighting), ", "))
	fmt.Fprintf(sb, "Styling Options: %s\n", strings.Join(catalog.EnglishNames(set.Styling), ", "))
	fmt.Fprintf(sb, "Background Options: %s\n", strings.Join(catalog.EnglishNames(set.Backgrounds), ", "))
	if mode == domain.ModePortrait {
		fmt.Fprintf(sb, "Outfit Options: %s\n", strings.Join(catalog.EnglishNames(set.Outfits), ", "))
	}
	fmt.Fprintf(sb, "\nBased on the user's request: %q, provide a creative direction.\n", query)
	fmt.Fprintf(sb, "First, give a friendly and concise explanation of your creative vision in %s.\n", lang)
	sb.WriteString("Then, provide your specific style choices. If you recommend a background not in the list, provide a descriptive custom string for 'backgroundStyle'. For portrait mode, also recommend an outfit.\n\nRespond with your answer.")
	return sb.String()
}

func posterPrompt(cfg domain.PosterConfig, query, language string) string {
	productName := cfg.ProductName
	if productName == "" {
		productName = "the user's product"
	}
	quoted := func(options []catalog.StyleOption) string {
		names := catalog.EnglishNames(options)
		return "'" + strings.Join(names, "', '") + "'"
	}
	return strings.NewReplacer(
		"{{response_language}}", responseLanguage(language),
		"{{product_name}}", productName,
		"{{user_query}}", query,
		"{{theme_options}}", quoted(catalog.PosterThemes()),
		"{{color_palette_options}}", quoted(catalog.ColorPalettes()),
		"{{font_style_options}}", quoted(catalog.FontStyles()),
	).Replace(posterAssistantTemplate)
}

func posterCopyPrompt(productName, language string) string {
	return strings.NewReplacer(
		"{{response_language}}", responseLanguage(language),
		"{{product_name}}", productName,
	).Replace(posterCopyTemplate)
}

func identifyPrompt() string {
	types := catalog.AllProductTypes()
	ids := make([]string, len(types))
	for i, t := range types {
		ids[i] = string(t.ID)
	}
	return fmt.Sprintf(identifyPromptTemplate, strings.Join(ids, ", "))
}

func styleSchema(language string) *genai.Schema {
	lang := responseLanguage(language)
	return &genai.Schema{
		Type: "OBJECT",
		Properties: map[string]*genai.Schema{
			"reasoning": {
				Type:        "STRING",
				Description: fmt.Sprintf("A friendly and concise explanation of the creative vision for the user, written in %s. Formatted as clean HTML paragraph.", lang),
			},
			"recommendations": {
				Type: "OBJECT",
				Properties: map[string]*genai.Schema{
					"angleStyle":      {Type: "STRING", Description: "The English name of the recommended angle style from the provided list."},
					"lightingStyle":   {Type: "STRING", Description: "The English name of the recommended lighting style from the provided list."},
					"stylingStyle":    {Type: "STRING", Description: "The English name of the recommended styling style from the provided list."},
					"backgroundStyle": {Type: "STRING", Description: "The English name of the recommended background style from the list, OR a custom descriptive string."},
					"outfitStyle":     {Type: "STRING", Description: "Optional. For portrait mode, the English name of the recommended outfit style from the list."},
				},
				Required: []string{"angleStyle", "lightingStyle", "stylingStyle", "backgroundStyle"},
			},
		},
		Required: []string{"reasoning", "recommendations"},
	}
}

func posterSchema(language string) *genai.Schema {
	lang := responseLanguage(language)
	return &genai.Schema{
		Type: "OBJECT",
		Properties: map[string]*genai.Schema{
			"reasoning": {
				Type:        "STRING",
				Description: fmt.Sprintf("A friendly and concise explanation of the creative vision for the poster text, written in %s. Formatted as clean HTML paragraph.", lang),
			},
			"recommendations": {
				Type: "OBJECT",
				Properties: map[string]*genai.Schema{
					"theme":        {Type: "STRING", Description: "The English name of the recommended theme from the provided list."},
					"colorPalette": {Type: "STRING", Description: "The English name of the recommended color palette from the provided list."},
					"fontStyle":    {Type: "STRING", Description: "The English name of the recommended font style from the provided list."},
					"headline":     {Type: "STRING", Description: "A catchy and effective headline for the poster."},
					"bodyText":     {Type: "STRING", Description: "A short and informative body text. Can be empty."},
					"cta":          {Type: "STRING", Description: "A clear and strong call to action."},
				},
				Required: []string{"theme", "colorPalette", "fontStyle", "headline", "bodyText", "cta"},
			},
		},
		Required: []string{"reasoning", "recommendations"},
	}
}

func posterCopySchema() *genai.Schema {
	return &genai.Schema{
		Type: "OBJECT",
		Properties: map[string]*genai.Schema{
			"headline": {Type: "STRING", Description: "A catchy and effective headline for the poster."},
			"bodyText": {Type: "STRING", Description: "A short and informative body text. Can be empty."},
			"cta":      {Type: "STRING", Description: "A clear and strong call to action."},
		},
		Required: []string{"headline", "bodyText", "cta"},
	}
}

func identifySchema() *genai.Schema {
	return &genai.Schema{
		Type: "OBJECT",
		Properties: map[string]*genai.Schema{
			"productName": {Type: "STRING", Description: "A short, descriptive name in Indonesian for the product/subject in the image."},
			"photoType":   {Type: "STRING", Description: "The most relevant category ID for the product from the provided list."},
		},
		Required: []string{"productName", "photoType"},
	}
}
