package catalog

var cookwareAngles = []StyleOption{
	RandomOption,
	{ID: "flat-lay-organized", NameID: "Flat Lay Peralatan Tertata", NameEN: "Organized Utensils Flat Lay"},
	{ID: "in-action-cooking", NameID: "Aksi (Sedang Memasak)", NameEN: "In Action (Cooking)"},
	{ID: "eye-level-hero", NameID: "Hero Shot Setara Mata", NameEN: "Eye-Level Hero Shot"},
	{ID: "low-angle-stovetop", NameID: "Sudut Rendah di Atas Kompor", NameEN: "Low Angle on Stovetop"},
	{ID: "detail-shot-material", NameID: "Close-up Detail Material", NameEN: "Material Detail Close-up"},
	{ID: "product-line-up", NameID: "Jajaran Satu Set Produk", NameEN: "Product Set Line-up"},
	{ID: "hanging-on-a-rack", NameID: "Tergantung di Rak Dapur", NameEN: "Hanging on a Kitchen Rack"},
	{ID: "stacked-symmetrically", NameID: "Ditumpuk Secara Simetris", NameEN: "Symmetrically Stacked"},
	{ID: "point-of-view-cooking", NameID: "Sudut Pandang (POV) Memasak", NameEN: "Point of View (POV) Cooking"},
	{ID: "exploded-view", NameID: "Bagian-bagian Terpisah (Exploded)", NameEN: "Exploded View"},
	{ID: "wide-angle-kitchen", NameID: "Wide Angle Suasana Dapur", NameEN: "Wide Angle Kitchen Scene"},
	{ID: "top-down-on-table", NameID: "Top-Down di Meja Makan", NameEN: "Top-Down on Dining Table"},
	{ID: "product-in-hand", NameID: "Produk di Tangan", NameEN: "Product in Hand"},
	{ID: "comparison-shot", NameID: "Perbandingan Ukuran/Model", NameEN: "Size/Model Comparison"},
	{ID: "from-inside-oven", NameID: "Dari Dalam Oven/Lemari", NameEN: "From Inside Oven/Cabinet"},
	{ID: "reflection-on-steel", NameID: "Refleksi pada Permukaan Logam", NameEN: "Reflection on Metal Surface"},
	{ID: "dutch-angle", NameID: "Sudut Miring (Dutch Angle)", NameEN: "Dutch Angle"},
	{ID: "food-in-pan", NameID: "Close-up Makanan di Dalamnya", NameEN: "Close-up of Food Inside"},
	{ID: "architectural", NameID: "Sudut Pandang Arsitektural", NameEN: "Architectural Angle"},
}

var cookwareLighting = []StyleOption{
	RandomOption,
	{ID: "bright-kitchen", NameID: "Cahaya Dapur yang Terang", NameEN: "Bright Kitchen Light"},
	{ID: "warm-morning-light", NameID: "Cahaya Pagi yang Hangat", NameEN: "Warm Morning Light"},
	{ID: "dramatic-sidelight", NameID: "Cahaya Samping Dramatis", NameEN: "Dramatic Sidelight"},
	{ID: "soft-studio-light", NameID: "Cahaya Studio yang Lembut", NameEN: "Soft Studio Light"},
	{ID: "dark-moody-kitchen", NameID: "Dapur Gelap & Dramatis", NameEN: "Dark Moody Kitchen"},
	{ID: "backlight-steam", NameID: "Backlight Menyorot Uap", NameEN: "Backlight on Steam"},
	{ID: "rim-light-shape", NameID: "Rim Light Menegaskan Bentuk", NameEN: "Rim Light Defining Shape"},
	{ID: "natural-window-light", NameID: "Cahaya Jendela Alami", NameEN: "Natural Window Light"},
	{ID: "professional-chef-kitchen", NameID: "Cahaya Dapur Chef Profesional", NameEN: "Professional Chef Kitchen Lighting"},
	{ID: "high-contrast", NameID: "Kontras Tinggi Hitam Putih", NameEN: "High-Contrast Black and White"},
	{ID: "cinematic", NameID: "Pencahayaan Sinematik", NameEN: "Cinematic Lighting"},
	{ID: "spotlight-on-product", NameID: "Spotlight pada Produk", NameEN: "Spotlight on Product"},
	{ID: "clean-commercial", NameID: "Cahaya Komersial yang Bersih", NameEN: "Clean Commercial Lighting"},
	{ID: "low-key-industrial", NameID: "Low-Key Industrial", NameEN: "Low-Key Industrial"},
	{ID: "golden-hour", NameID: "Cahaya Sore Keemasan", NameEN: "Golden Hour"},
	{ID: "overcast-soft", NameID: "Cahaya Mendung yang Lembut", NameEN: "Soft Overcast Light"},
	{ID: "colored-gels", NameID: "Gel Warna Artistik", NameEN: "Artistic Color Gels"},
	{ID: "under-cabinet-light", NameID: "Cahaya dari Bawah Kabinet", NameEN: "Under-Cabinet Lighting"},
	{ID: "fire-stovetop", NameID: "Cahaya dari Api Kompor", NameEN: "Light from Stovetop Flame"},
}

var cookwareStyling = []StyleOption{
	RandomOption,
	{ID: "clean-organized-kitchen", NameID: "Tertata Rapi di Dapur", NameEN: "Neatly Organized in Kitchen"},
	{ID: "with-fresh-ingredients", NameID: "Dengan Bahan Masak Segar", NameEN: "With Fresh Cooking Ingredients"},
	{ID: "lifestyle-serving-food", NameID: "Lifestyle (Menyajikan Makanan)", NameEN: "Lifestyle (Serving Food)"},
	{ID: "minimalist-scandinavian", NameID: "Minimalis Skandinavia", NameEN: "Minimalist Scandinavian"},
	{ID: "rustic-farmhouse", NameID: "Gaya Dapur Pedesaan", NameEN: "Farmhouse Kitchen Style"},
	{ID: "professional-chef", NameID: "Gaya Dapur Chef Profesional", NameEN: "Professional Chef Kitchen Style"},
	{ID: "messy-cooking-process", NameID: "Proses Memasak (Agak Berantakan)", NameEN: "Messy Cooking Process"},
	{ID: "product-in-packaging", NameID: "Produk di Dalam Kemasan", NameEN: "Product in Packaging"},
	{ID: "human-hand-interaction", NameID: "Interaksi Tangan Manusia", NameEN: "Human Hand Interaction"},
	{ID: "before-and-after", NameID: "Konsep Sebelum & Sesudah Masak", NameEN: "Before & After Cooking Concept"},
	{ID: "monochromatic-theme", NameID: "Tema Warna Monokromatik", NameEN: "Monochromatic Color Theme"},
	{ID: "on-a-dining-table", NameID: "Disajikan di Meja Makan", NameEN: "Served on a Dining Table"},
	{ID: "with-recipe-book", NameID: "Dengan Buku Resep Terbuka", NameEN: "With an Open Recipe Book"},
	{ID: "modern-industrial", NameID: "Gaya Industrial Modern", NameEN: "Modern Industrial Style"},
	{ID: "floating-levitation", NameID: "Peralatan Melayang (Levitasi)", NameEN: "Floating Utensils (Levitation)"},
	{ID: "in-a-dishwasher", NameID: "Di dalam Mesin Cuci Piring", NameEN: "Inside a Dishwasher"},
	{ID: "outdoor-bbq-setting", NameID: "Konteks Barbekyu Outdoor", NameEN: "Outdoor BBQ Setting"},
	{ID: "family-cooking", NameID: "Suasana Memasak Keluarga", NameEN: "Family Cooking Atmosphere"},
	{ID: "color-coordinated", NameID: "Penataan Warna Senada", NameEN: "Color-Coordinated Arrangement"},
}

var cookwareBackgrounds = []StyleOption{
	RandomOption,
	{ID: "kitchen-countertop-marble", NameID: "Meja Dapur Marmer", NameEN: "Marble Kitchen Countertop"},
	{ID: "wooden-chopping-board", NameID: "Talenan Kayu", NameEN: "Wooden Chopping Board"},
	{ID: "subway-tile-wall", NameID: "Dinding Keramik Subway", NameEN: "Subway Tile Wall"},
	{ID: "butcher-block-island", NameID: "Meja Dapur Kayu (Butcher Block)", NameEN: "Butcher Block Island"},
	{ID: "stainless-steel-surface", NameID: "Permukaan Stainless Steel", NameEN: "Stainless Steel Surface"},
	{ID: "solid-color-matte", NameID: "Warna Solid Doff", NameEN: "Matte Solid Color"},
	{ID: "open-shelving", NameID: "Rak Dapur Terbuka", NameEN: "Open Kitchen Shelving"},
	{ID: "dining-table-setting", NameID: "Set Meja Makan", NameEN: "Dining Table Setting"},
	{ID: "blurred-professional-kitchen", NameID: "Dapur Profesional (Blur)", NameEN: "Blurred Professional Kitchen"},
	{ID: "pantry-background", NameID: "Latar Belakang Pantry", NameEN: "Pantry Background"},
	{ID: "concrete-wall", NameID: "Dinding Beton Industrial", NameEN: "Industrial Concrete Wall"},
	{ID: "vegetable-garden", NameID: "Kebun Sayur", NameEN: "Vegetable Garden"},
	{ID: "dark-moody-kitchen", NameID: "Dapur Gelap & Dramatis", NameEN: "Dark Moody Kitchen"},
	{ID: "linen-tablecloth", NameID: "Taplak Meja Linen", NameEN: "Linen Tablecloth"},
	{ID: "outdoor-bbq-area", NameID: "Area Barbekyu Outdoor", NameEN: "Outdoor BBQ Area"},
	{ID: "farmers-market", NameID: "Pasar Petani (Blur)", NameEN: "Farmers Market (Blur)"},
	{ID: "pegboard-organizer", NameID: "Dinding Pegboard", NameEN: "Pegboard Organizer Wall"},
	{ID: "terrazzo-surface", NameID: "Permukaan Terrazzo", NameEN: "Terrazzo Surface"},
	{ID: "modern-kitchen-sink", NameID: "Wastafel Dapur Modern", NameEN: "Modern Kitchen Sink"},
	{ID: "blueprint-schematic", NameID: "Latar Gambar Teknis (Blueprint)", NameEN: "Blueprint Schematic Background"},
	OtherOption,
}
