package catalog

var sportsAngles = []StyleOption{
	RandomOption,
	{ID: "in-action-use", NameID: "Aksi (Sedang Digunakan)", NameEN: "In Action (In Use)"},
	{ID: "flat-lay-gear-set", NameID: "Flat Lay (Satu Set Perlengkapan)", NameEN: "Gear Set Flat Lay"},
	{ID: "low-angle-hero", NameID: "Sudut Rendah Heroik", NameEN: "Low-Angle Heroic"},
	{ID: "close-up-texture-detail", NameID: "Close-up Detail & Tekstur", NameEN: "Close-up Texture & Detail"},
	{ID: "top-down-angle", NameID: "Sudut Pandang Atas (Top-down)", NameEN: "Top-down Angle"},
	{ID: "point-of-view-athlete", NameID: "Sudut Pandang (POV) Atlet", NameEN: "Athlete's Point of View (POV)"},
	{ID: "motion-blur-effect", NameID: "Efek Gerak (Motion Blur)", NameEN: "Motion Blur Effect"},
	{ID: "dutch-angle-dynamic", NameID: "Sudut Miring Dinamis", NameEN: "Dynamic Dutch Angle"},
	{ID: "product-on-pedestal", NameID: "Produk di Atas Podium", NameEN: "Product on Pedestal"},
	{ID: "exploded-view-tech", NameID: "Bagian Terpisah (Teknologi)", NameEN: "Exploded View (Technology)"},
	{ID: "wide-angle-environment", NameID: "Wide Angle dengan Lingkungan", NameEN: "Wide Angle with Environment"},
	{ID: "on-a-mannequin", NameID: "Pada Manekin (Untuk Pakaian)", NameEN: "On a Mannequin (For Apparel)"},
	{ID: "comparison-shot", NameID: "Foto Perbandingan", NameEN: "Comparison Shot"},
	{ID: "from-the-ground", NameID: "Dari Permukaan Tanah", NameEN: "From the Ground Up"},
	{ID: "symmetrical-layout", NameID: "Tata Letak Simetris", NameEN: "Symmetrical Layout"},
	{ID: "product-line-up", NameID: "Jajaran Varian Warna/Model", NameEN: "Color/Model Line-up"},
	{ID: "high-angle-overview", NameID: "Sudut Tinggi (Overview)", NameEN: "High-Angle Overview"},
	{ID: "tracking-shot", NameID: "Mengikuti Subjek (Tracking Shot)", NameEN: "Tracking Shot"},
	{ID: "frozen-motion", NameID: "Gerakan yang Dibekukan", NameEN: "Frozen Motion"},
}

var sportsLighting = []StyleOption{
	RandomOption,
	{ID: "dramatic-hard-light", NameID: "Cahaya Keras & Dramatis", NameEN: "Dramatic Hard Light"},
	{ID: "bright-daylight", NameID: "Cahaya Terang Siang Hari", NameEN: "Bright Daylight"},
	{ID: "stadium-lights-night", NameID: "Lampu Stadion (Malam Hari)", NameEN: "Stadium Lights (Night)"},
	{ID: "dark-and-gritty", NameID: "Gaya Gelap & Keras", NameEN: "Dark and Gritty Style"},
	{ID: "clean-studio-light", NameID: "Cahaya Studio yang Bersih", NameEN: "Clean Studio Light"},
	{ID: "golden-hour-outdoor", NameID: "Cahaya Sore Outdoor", NameEN: "Outdoor Golden Hour"},
	{ID: "backlight-silhouette", NameID: "Backlight / Siluet", NameEN: "Backlight / Silhouette"},
	{ID: "rim-light-muscles", NameID: "Rim Light Menyorot Otot/Bentuk", NameEN: "Rim Light on Muscles/Shape"},
	{ID: "cinematic-flares", NameID: "Efek \"Lens Flare\" Sinematik", NameEN: "Cinematic Lens Flares"},
	{ID: "high-contrast-bw", NameID: "Hitam Putih Kontras Tinggi", NameEN: "High-Contrast Black & White"},
	{ID: "spotlight-on-athlete", NameID: "Spotlight pada Atlet/Produk", NameEN: "Spotlight on Athlete/Product"},
	{ID: "gym-fluorescent", NameID: "Lampu Neon Gym", NameEN: "Gym Fluorescent Lighting"},
	{ID: "natural-forest-light", NameID: "Cahaya Alami Hutan", NameEN: "Natural Forest Light"},
	{ID: "split-lighting", NameID: "Split Lighting", NameEN: "Split Lighting"},
	{ID: "soft-overcast", NameID: "Cahaya Mendung yang Lembut", NameEN: "Soft Overcast Light"},
	{ID: "colored-gels-energetic", NameID: "Gel Warna Enerjik", NameEN: "Energetic Colored Gels"},
	{ID: "underwater-lighting", NameID: "Cahaya Bawah Air", NameEN: "Underwater Lighting"},
	{ID: "long-exposure-trails", NameID: "Jejak Cahaya (Long Exposure)", NameEN: "Long Exposure Light Trails"},
	{ID: "reflective-surface", NameID: "Cahaya dari Permukaan Reflektif", NameEN: "Light from Reflective Surfaces"},
}

var sportsStyling = []StyleOption{
	RandomOption,
	{ID: "lifestyle-athlete", NameID: "Lifestyle dengan Atlet", NameEN: "Lifestyle with Athlete"},
	{ID: "splash-water-sweat", NameID: "Aksi Percikan (Air/Keringat)", NameEN: "Splash Action (Water/Sweat)"},
	{ID: "clean-and-minimal", NameID: "Bersih & Minimalis", NameEN: "Clean and Minimal"},
	{ID: "urban-sports-environment", NameID: "Lingkungan Olahraga Urban", NameEN: "Urban Sports Environment"},
	{ID: "outdoor-adventure", NameID: "Konteks Petualangan Outdoor", NameEN: "Outdoor Adventure Context"},
	{ID: "ready-to-go", NameID: "Tertata Siap Berangkat", NameEN: "Ready-to-Go Layout"},
	{ID: "product-in-gym-bag", NameID: "Produk di Dalam Tas Gym", NameEN: "Product in Gym Bag"},
	{ID: "levitation-shot", NameID: "Produk Melayang (Levitasi)", NameEN: "Levitation Shot"},
	{ID: "chalk-dust-powder", NameID: "Dengan Debu Kapur (Chalk)", NameEN: "With Chalk Dust/Powder"},
	{ID: "monochromatic-color", NameID: "Tema Warna Monokromatik", NameEN: "Monochromatic Color Theme"},
	{ID: "futuristic-tech", NameID: "Gaya Teknologi Futuristik", NameEN: "Futuristic Tech Style"},
	{ID: "vintage-retro-sport", NameID: "Gaya Olahraga Retro/Vintage", NameEN: "Vintage/Retro Sport Style"},
	{ID: "pre-post-workout", NameID: "Konteks Sebelum/Sesudah Latihan", NameEN: "Pre/Post-Workout Context"},
	{ID: "with-team-members", NameID: "Dengan Anggota Tim", NameEN: "With Team Members"},
	{ID: "focused-on-details", NameID: "Fokus pada Detail (Jahitan, dll)", NameEN: "Focused on Details (Stitching, etc.)"},
	{ID: "in-the-rain", NameID: "Dalam Kondisi Hujan", NameEN: "In the Rain"},
	{ID: "yoga-meditation-zen", NameID: "Suasana Zen Yoga/Meditasi", NameEN: "Zen Yoga/Meditation Vibe"},
	{ID: "high-fashion-sport", NameID: "Gaya High-Fashion Sport", NameEN: "High-Fashion Sport Style"},
	{ID: "celebration-victory", NameID: "Momen Kemenangan/Perayaan", NameEN: "Victory/Celebration Moment"},
}

var sportsBackgrounds = []StyleOption{
	RandomOption,
	{ID: "gym-floor-blur", NameID: "Lantai Gym (Blur)", NameEN: "Gym Floor (Blur)"},
	{ID: "running-track", NameID: "Lintasan Lari", NameEN: "Running Track"},
	{ID: "concrete-wall-industrial", NameID: "Dinding Beton Industrial", NameEN: "Industrial Concrete Wall"},
	{ID: "yoga-studio-wood-floor", NameID: "Studio Yoga Lantai Kayu", NameEN: "Yoga Studio Wood Floor"},
	{ID: "mountain-trail", NameID: "Jalur Pendakian Gunung", NameEN: "Mountain Trail"},
	{ID: "locker-room", NameID: "Ruang Ganti Atlet", NameEN: "Locker Room"},
	{ID: "urban-basketball-court", NameID: "Lapangan Basket Perkotaan", NameEN: "Urban Basketball Court"},
	{ID: "swimming-pool", NameID: "Kolam Renang", NameEN: "Swimming Pool"},
	{ID: "stadium-lights", NameID: "Lampu Stadion (Malam Hari)", NameEN: "Stadium Lights (Night)"},
	{ID: "minimalist-gradient", NameID: "Latar Gradien Minimalis", NameEN: "Minimalist Gradient Background"},
	{ID: "textured-metal", NameID: "Permukaan Logam Bertekstur", NameEN: "Textured Metal Surface"},
	{ID: "forest-path", NameID: "Jalan Setapak di Hutan", NameEN: "Forest Path"},
	{ID: "rock-climbing-wall", NameID: "Dinding Panjat Tebing", NameEN: "Rock Climbing Wall"},
	{ID: "beach-sand-volley", NameID: "Pasir Pantai (Voli)", NameEN: "Beach Sand (Volleyball)"},
	{ID: "ski-slope", NameID: "Lereng Gunung Salju", NameEN: "Ski Slope"},
	{ID: "abstract-lines-speed", NameID: "Garis-garis Abstrak Kecepatan", NameEN: "Abstract Speed Lines"},
	{ID: "blueprint-tech-bg", NameID: "Latar Teknologi Blueprint", NameEN: "Blueprint Tech Background"},
	{ID: "grass-field", NameID: "Lapangan Rumput", NameEN: "Grass Field"},
	{ID: "city-park-path", NameID: "Jalur Lari di Taman Kota", NameEN: "City Park Running Path"},
	{ID: "asphalt-road", NameID: "Jalan Aspal", NameEN: "Asphalt Road"},
	OtherOption,
}
