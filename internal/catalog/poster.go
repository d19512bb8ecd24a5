package catalog

// Poster designer options. These have no random/other sentinels; the color
// palette list leads with an "auto" entry that derives colors from the
// source image.

var posterThemes = []StyleOption{
	{ID: "minimalist-clean", NameID: "Minimalis & Bersih", NameEN: "Minimalist & Clean"},
	{ID: "bold-modern", NameID: "Modern & Berani", NameEN: "Bold & Modern"},
	{ID: "elegant-luxury", NameID: "Elegan & Mewah", NameEN: "Elegant & Luxury"},
	{ID: "fun-playful", NameID: "Ceria & Menyenangkan", NameEN: "Fun & Playful"},
	{ID: "rustic-natural", NameID: "Rustic & Alami", NameEN: "Rustic & Natural"},
	{ID: "vintage-retro", NameID: "Vintage & Retro", NameEN: "Vintage & Retro"},
	{ID: "tech-futuristic", NameID: "Teknologi & Futuristik", NameEN: "Tech & Futuristic"},
	{ID: "art-deco", NameID: "Art Deco Glamor", NameEN: "Art Deco Glamour"},
	{ID: "swiss-typography", NameID: "Tipografi Swiss", NameEN: "Swiss Typography"},
	{ID: "grunge-distressed", NameID: "Grunge & Urban", NameEN: "Grunge & Urban"},
	{ID: "hand-drawn-organic", NameID: "Gambar Tangan & Organik", NameEN: "Hand-drawn & Organic"},
	{ID: "corporate-professional", NameID: "Korporat & Profesional", NameEN: "Corporate & Professional"},
	{ID: "bohemian-earthy", NameID: "Bohemian & Natural", NameEN: "Bohemian & Earthy"},
	{ID: "pop-art-comic", NameID: "Pop Art & Komik", NameEN: "Pop Art & Comic"},
	{ID: "photographic-focus", NameID: "Fokus pada Fotografi", NameEN: "Photographic Focus"},
	{ID: "abstract-geometric", NameID: "Abstrak & Geometris", NameEN: "Abstract & Geometric"},
	{ID: "surreal-dreamy", NameID: "Surealis & Seperti Mimpi", NameEN: "Surreal & Dreamy"},
	{ID: "eco-friendly-green", NameID: "Ramah Lingkungan & Hijau", NameEN: "Eco-Friendly & Green"},
	{ID: "luxury-dark-mode", NameID: "Mewah Mode Gelap", NameEN: "Luxury Dark Mode"},
	{ID: "collage-scrapbook", NameID: "Kolase & Scrapbook", NameEN: "Collage & Scrapbook"},
}

var colorPalettes = []StyleOption{
	{ID: "auto", NameID: "Otomatis dari Gambar", NameEN: "Auto from Image"},
	{ID: "warm-tones", NameID: "Nuansa Hangat (Merah, Oranye)", NameEN: "Warm Tones (Reds, Oranges)"},
	{ID: "cool-tones", NameID: "Nuansa Dingin (Biru, Hijau)", NameEN: "Cool Tones (Blues, Greens)"},
	{ID: "monochromatic", NameID: "Monokromatik", NameEN: "Monochromatic"},
	{ID: "high-contrast", NameID: "Kontras Tinggi (Hitam & Putih)", NameEN: "High Contrast (Black & White)"},
	{ID: "pastel-dreams", NameID: "Warna Pastel Lembut", NameEN: "Pastel Dreams"},
	{ID: "earthy-tones", NameID: "Warna Bumi (Cokelat, Hijau Zaitun)", NameEN: "Earthy Tones (Browns, Olive)"},
	{ID: "neon-glow", NameID: "Neon Terang", NameEN: "Neon Glow"},
	{ID: "sunset-gradient", NameID: "Gradien Matahari Terbenam", NameEN: "Sunset Gradient"},
	{ID: "oceanic-blues", NameID: "Biru Lautan", NameEN: "Oceanic Blues"},
	{ID: "black-gold-luxury", NameID: "Hitam & Emas Mewah", NameEN: "Black & Gold Luxury"},
	{ID: "jewel-tones", NameID: "Warna Permata (Ungu, Zamrud)", NameEN: "Jewel Tones (Purple, Emerald)"},
	{ID: "vibrant-primary", NameID: "Warna Primer Cerah", NameEN: "Vibrant Primary Colors"},
	{ID: "muted-tones", NameID: "Warna Redup & Kalem", NameEN: "Muted & Desaturated Tones"},
	{ID: "rose-gold-blush", NameID: "Rose Gold & Merah Muda", NameEN: "Rose Gold & Blush"},
	{ID: "forest-greens", NameID: "Hijau Hutan", NameEN: "Forest Greens"},
	{ID: "citrus-punch", NameID: "Warna Jeruk (Kuning, Oranye)", NameEN: "Citrus Punch (Yellows, Oranges)"},
	{ID: "grayscale-red-accent", NameID: "Skala Abu dengan Aksen Merah", NameEN: "Grayscale with Red Accent"},
	{ID: "iridescent-holographic", NameID: "Iridisen & Holografik", NameEN: "Iridescent & Holographic"},
	{ID: "terracotta-desert", NameID: "Terakota & Gurun", NameEN: "Terracotta & Desert"},
}

var fontStyles = []StyleOption{
	{ID: "sans-serif-modern", NameID: "Modern Sans-Serif (Helvetica, Futura)", NameEN: "Modern Sans-Serif (Helvetica, Futura)"},
	{ID: "serif-elegant", NameID: "Elegan Serif (Garamond, Bodoni)", NameEN: "Elegant Serif (Garamond, Bodoni)"},
	{ID: "display-bold", NameID: "Display (Tebal & Unik)", NameEN: "Display (Bold & Unique)"},
	{ID: "script-handwritten", NameID: "Tulisan Tangan (Script)", NameEN: "Script / Handwritten"},
	{ID: "slab-serif-strong", NameID: "Slab Serif (Kuat & Tegas)", NameEN: "Slab Serif (Strong & Bold)"},
	{ID: "geometric-sans", NameID: "Geometris Sans-Serif", NameEN: "Geometric Sans-Serif"},
	{ID: "classic-roman", NameID: "Serif Romawi Klasik", NameEN: "Classic Roman Serif"},
	{ID: "brush-script", NameID: "Kuas (Brush Script)", NameEN: "Brush Script"},
	{ID: "industrial-stencil", NameID: "Stensil Industrial", NameEN: "Industrial Stencil"},
	{ID: "pixel-art-arcade", NameID: "Pixel Art / Arcade", NameEN: "Pixel Art / Arcade"},
	{ID: "calligraphy-formal", NameID: "Kaligrafi Formal", NameEN: "Formal Calligraphy"},
	{ID: "condensed-tall", NameID: "Ramping & Tinggi (Condensed)", NameEN: "Condensed & Tall"},
	{ID: "vintage-typescript", NameID: "Mesin Tik Vintage", NameEN: "Vintage Typescript"},
	{ID: "futuristic-tech", NameID: "Futuristik & Teknologi", NameEN: "Futuristic & Tech"},
	{ID: "light-airy-sans", NameID: "Sans-Serif Tipis & Ringan", NameEN: "Light & Airy Sans-Serif"},
	{ID: "blackletter-gothic", NameID: "Blackletter / Gothic", NameEN: "Blackletter / Gothic"},
	{ID: "casual-marker", NameID: "Spidol Kasual", NameEN: "Casual Marker"},
	{ID: "rounded-friendly", NameID: "Sudut Tumpul & Ramah", NameEN: "Rounded & Friendly"},
	{ID: "outline-font", NameID: "Gaya Garis Tepi (Outline)", NameEN: "Outline Style"},
	{ID: "woodcut-letterpress", NameID: "Gaya Cetak Kayu (Woodcut)", NameEN: "Woodcut / Letterpress"},
}

// PosterThemes lists the poster design themes in display order.
func PosterThemes() []StyleOption { return posterThemes }

// ColorPalettes lists the poster color palettes in display order.
func ColorPalettes() []StyleOption { return colorPalettes }

// FontStyles lists the poster typography styles in display order.
func FontStyles() []StyleOption { return fontStyles }
