package catalog

var portraitAngles = []StyleOption{
	RandomOption,
	{ID: "eye-level", NameID: "Setara Mata", NameEN: "Eye-Level"},
	{ID: "high-angle", NameID: "Sudut Tinggi", NameEN: "High Angle"},
	{ID: "low-angle", NameID: "Sudut Rendah", NameEN: "Low Angle"},
	{ID: "dutch-angle", NameID: "Sudut Miring (Dutch Angle)", NameEN: "Dutch Angle"},
	{ID: "close-up", NameID: "Close-up (Wajah)", NameEN: "Close-up (Face)"},
	{ID: "medium-shot", NameID: "Setengah Badan (Medium Shot)", NameEN: "Medium Shot"},
	{ID: "full-body", NameID: "Seluruh Badan (Full Body)", NameEN: "Full Body"},
	{ID: "over-the-shoulder", NameID: "Dari Atas Bahu", NameEN: "Over the Shoulder"},
	{ID: "profile-shot", NameID: "Tampak Samping (Profile)", NameEN: "Profile Shot"},
	{ID: "candid-shot", NameID: "Candid (Tidak Sadar Kamera)", NameEN: "Candid Shot"},
	{ID: "environmental-portrait", NameID: "Potret dengan Lingkungan", NameEN: "Environmental Portrait"},
	{ID: "rule-of-thirds", NameID: "Komposisi Aturan Sepertiga", NameEN: "Rule of Thirds Composition"},
	{ID: "centered", NameID: "Komposisi di Tengah", NameEN: "Centered Composition"},
	{ID: "leading-lines", NameID: "Komposisi Garis Pemandu", NameEN: "Leading Lines Composition"},
	{ID: "framing", NameID: "Komposisi dengan Bingkai", NameEN: "Framing Composition"},
	{ID: "reflection", NameID: "Potret dengan Refleksi", NameEN: "Reflection Portrait"},
	{ID: "wide-angle", NameID: "Lensa Lebar (Wide Angle)", NameEN: "Wide Angle"},
	{ID: "telephoto-compression", NameID: "Lensa Tele (Kompresi Latar)", NameEN: "Telephoto Compression"},
	{ID: "abstract-angle", NameID: "Sudut Abstrak", NameEN: "Abstract Angle"},
}

var portraitLighting = []StyleOption{
	RandomOption,
	{ID: "soft-natural-light", NameID: "Cahaya Alami yang Lembut", NameEN: "Soft Natural Light"},
	{ID: "dramatic-cinematic", NameID: "Sinematik & Dramatis", NameEN: "Cinematic & Dramatic"},
	{ID: "golden-hour", NameID: "Cahaya Sore (Golden Hour)", NameEN: "Golden Hour"},
	{ID: "studio-lighting-clean", NameID: "Pencahayaan Studio Profesional", NameEN: "Professional Studio Lighting"},
	{ID: "high-key", NameID: "High-Key (Terang & Ceria)", NameEN: "High-Key (Bright & Airy)"},
	{ID: "low-key", NameID: "Low-Key (Gelap & Misterius)", NameEN: "Low-Key (Dark & Mysterious)"},
	{ID: "black-and-white", NameID: "Hitam Putih Kontras Tinggi", NameEN: "High-Contrast Black & White"},
	{ID: "rim-light", NameID: "Cahaya Tepi (Rim Light)", NameEN: "Rim Light"},
	{ID: "split-light", NameID: "Cahaya Terbelah (Split Light)", NameEN: "Split Light"},
	{ID: "rembrandt-light", NameID: "Cahaya Rembrandt", NameEN: "Rembrandt Lighting"},
	{ID: "backlight-silhouette", NameID: "Siluet (Cahaya dari Belakang)", NameEN: "Silhouette (Backlight)"},
	{ID: "window-light", NameID: "Cahaya dari Jendela", NameEN: "Window Light"},
	{ID: "neon-lights", NameID: "Lampu Neon Perkotaan", NameEN: "Urban Neon Lights"},
	{ID: "candlelight", NameID: "Cahaya Lilin", NameEN: "Candlelight"},
	{ID: "color-gels", NameID: "Gel Warna Artistik", NameEN: "Artistic Color Gels"},
	{ID: "dappled-light", NameID: "Cahaya Rindang (Dappled)", NameEN: "Dappled Light"},
	{ID: "hard-sunlight", NameID: "Cahaya Matahari Terik", NameEN: "Hard Sunlight"},
	{ID: "blue-hour", NameID: "Cahaya \"Blue Hour\"", NameEN: "Blue Hour"},
	{ID: "fairy-lights", NameID: "Lampu Hias (Fairy Lights)", NameEN: "Fairy Lights"},
}

var portraitStyling = []StyleOption{
	RandomOption,
	{ID: "corporate-clean", NameID: "Korporat & Bersih", NameEN: "Clean & Corporate"},
	{ID: "candid-lifestyle", NameID: "Gaya Hidup (Candid)", NameEN: "Lifestyle (Candid)"},
	{ID: "vintage-film", NameID: "Gaya Film Vintage", NameEN: "Vintage Film Look"},
	{ID: "high-fashion", NameID: "Mode (High Fashion)", NameEN: "High Fashion"},
	{ID: "fantasy-surreal", NameID: "Fantasi & Sureal", NameEN: "Fantasy & Surreal"},
	{ID: "family-portrait-warm", NameID: "Potret Keluarga Hangat", NameEN: "Warm Family Portrait"},
	{ID: "couple-romantic", NameID: "Potret Pasangan Romantis", NameEN: "Romantic Couple Portrait"},
	{ID: "musician-artist", NameID: "Potret Musisi/Seniman", NameEN: "Musician/Artist Portrait"},
	{ID: "athlete-sport", NameID: "Potret Atlet Olahraga", NameEN: "Sports Athlete Portrait"},
	{ID: "author-intellectual", NameID: "Potret Penulis/Intelektual", NameEN: "Author/Intellectual Portrait"},
	{ID: "cosplay-character", NameID: "Potret Karakter (Cosplay)", NameEN: "Character Portrait (Cosplay)"},
	{ID: "maternity", NameID: "Potret Kehamilan (Maternity)", NameEN: "Maternity Portrait"},
	{ID: "graduation", NameID: "Potret Wisuda", NameEN: "Graduation Portrait"},
	{ID: "street-style", NameID: "Gaya Jalanan (Street Style)", NameEN: "Street Style"},
	{ID: "minimalist", NameID: "Minimalis", NameEN: "Minimalist"},
	{ID: "bohemian", NameID: "Gaya Bohemian", NameEN: "Bohemian Style"},
	{ID: "futuristic-cyberpunk", NameID: "Futuristik / Cyberpunk", NameEN: "Futuristic / Cyberpunk"},
	{ID: "historical-period", NameID: "Gaya Periode Sejarah", NameEN: "Historical Period Style"},
	{ID: "with-pet", NameID: "Potret dengan Hewan Peliharaan", NameEN: "Portrait with Pet"},
}

var portraitBackgrounds = []StyleOption{
	RandomOption,
	{ID: "studio-gray-solid", NameID: "Studio Abu-abu Polos", NameEN: "Solid Gray Studio"},
	{ID: "office-blur", NameID: "Kantor Modern (Blur)", NameEN: "Blurred Modern Office"},
	{ID: "outdoor-park-nature", NameID: "Taman atau Alam Terbuka", NameEN: "Outdoor Park or Nature"},
	{ID: "cityscape-urban", NameID: "Pemandangan Kota (Urban)", NameEN: "Urban Cityscape"},
	{ID: "cozy-home-interior", NameID: "Interior Rumah yang Nyaman", NameEN: "Cozy Home Interior"},
	{ID: "textured-wall", NameID: "Dinding Bertekstur", NameEN: "Textured Wall"},
	{ID: "library-bookshelf", NameID: "Perpustakaan/Rak Buku", NameEN: "Library/Bookshelf"},
	{ID: "beach-sunset", NameID: "Pantai Saat Matahari Terbenam", NameEN: "Beach at Sunset"},
	{ID: "abstract-gradient", NameID: "Gradien Abstrak", NameEN: "Abstract Gradient"},
	{ID: "historic-architecture", NameID: "Arsitektur Bersejarah", NameEN: "Historic Architecture"},
	{ID: "industrial-loft", NameID: "Loteng Industrial", NameEN: "Industrial Loft"},
	{ID: "art-gallery", NameID: "Galeri Seni", NameEN: "Art Gallery"},
	{ID: "forest-woods", NameID: "Hutan", NameEN: "Forest/Woods"},
	{ID: "coffee-shop", NameID: "Kedai Kopi", NameEN: "Coffee Shop"},
	{ID: "neon-city-night", NameID: "Kota Malam Penuh Neon", NameEN: "Neon City Night"},
	{ID: "rooftop", NameID: "Atap Gedung", NameEN: "Rooftop"},
	{ID: "desert-landscape", NameID: "Pemandangan Gurun", NameEN: "Desert Landscape"},
	{ID: "flower-field", NameID: "Ladang Bunga", NameEN: "Flower Field"},
	{ID: "old-library", NameID: "Perpustakaan Tua", NameEN: "Old Library"},
	OtherOption,
}

var portraitOutfits = []StyleOption{
	RandomOption,
	{ID: "casual-everyday", NameID: "Kasual Sehari-hari", NameEN: "Everyday Casual"},
	{ID: "smart-casual", NameID: "Smart Casual (Kemeja & Chino)", NameEN: "Smart Casual (Shirt & Chinos)"},
	{ID: "business-formal", NameID: "Formal Bisnis (Jas & Dasi)", NameEN: "Business Formal (Suit & Tie)"},
	{ID: "evening-gown", NameID: "Gaun Malam Elegan", NameEN: "Elegant Evening Gown"},
	{ID: "cocktail-dress", NameID: "Pakaian Pesta Koktail", NameEN: "Cocktail Party Attire"},
	{ID: "bohemian", NameID: "Gaya Bohemian", NameEN: "Bohemian Style"},
	{ID: "streetwear", NameID: "Streetwear Modern", NameEN: "Modern Streetwear"},
	{ID: "sportswear", NameID: "Pakaian Olahraga (Athleisure)", NameEN: "Sportswear (Athleisure)"},
	{ID: "vintage-retro", NameID: "Gaya Vintage/Retro", NameEN: "Vintage/Retro Style"},
	{ID: "traditional-wear", NameID: "Pakaian Tradisional (Batik/Kebaya)", NameEN: "Traditional Wear (Batik/Kebaya)"},
	{ID: "professional-uniform", NameID: "Seragam Profesional (Dokter/Pilot)", NameEN: "Professional Uniform (Doctor/Pilot)"},
	{ID: "leather-jacket-jeans", NameID: "Jaket Kulit & Jeans", NameEN: "Leather Jacket & Jeans"},
	{ID: "cozy-sweater", NameID: "Sweater Rajut Nyaman", NameEN: "Cozy Knit Sweater"},
	{ID: "summer-wear", NameID: "Pakaian Musim Panas (Pantai)", NameEN: "Summer Wear (Beach)"},
	{ID: "winter-wear", NameID: "Pakaian Musim Dingin (Mantel & Syal)", NameEN: "Winter Wear (Coat & Scarf)"},
	{ID: "academic-attire", NameID: "Pakaian Akademik (Toga Wisuda)", NameEN: "Academic Attire (Graduation Gown)"},
	{ID: "fantasy-cosplay", NameID: "Fantasi / Cosplay", NameEN: "Fantasy / Cosplay"},
	{ID: "futuristic-cyberpunk", NameID: "Futuristik / Cyberpunk", NameEN: "Futuristic / Cyberpunk"},
	{ID: "luxury-pajamas", NameID: "Piyama Sutra Mewah", NameEN: "Luxury Silk Pajamas"},
	{ID: "creative-artist", NameID: "Gaya Seniman Kreatif", NameEN: "Creative Artist Style"},
}
