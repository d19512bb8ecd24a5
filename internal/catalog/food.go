package catalog

var foodAngles = []StyleOption{
	RandomOption,
	{ID: "top-down-flat-lay", NameID: "Top-Down / Flat Lay", NameEN: "Top-Down / Flat Lay"},
	{ID: "45-degree", NameID: "Sudut 45 Derajat", NameEN: "45-Degree Angle"},
	{ID: "eye-level", NameID: "Setara Mata / Hero Shot", NameEN: "Eye-Level / Hero Shot"},
	{ID: "macro-close-up", NameID: "Makro / Close-Up Detail", NameEN: "Macro / Close-Up Detail"},
	{ID: "low-angle", NameID: "Sudut Rendah Dramatis", NameEN: "Dramatic Low Angle"},
	{ID: "dynamic-action", NameID: "Aksi Dinamis (Dituang/Dipotong)", NameEN: "Dynamic Action (Pouring/Cutting)"},
	{ID: "wide-angle-tablescape", NameID: "Wide Angle / Suasana Meja", NameEN: "Wide Angle / Tablescape"},
	{ID: "dutch-angle", NameID: "Sudut Miring (Dutch Angle)", NameEN: "Dutch Angle"},
	{ID: "point-of-view", NameID: "Sudut Pandang (Point of View)", NameEN: "Point of View (POV)"},
	{ID: "over-the-shoulder", NameID: "Dari Atas Bahu", NameEN: "Over the Shoulder"},
	{ID: "product-lineup", NameID: "Jajaran Produk", NameEN: "Product Lineup"},
	{ID: "deconstructed", NameID: "Komposisi Terpisah (Deconstructed)", NameEN: "Deconstructed Composition"},
	{ID: "framing", NameID: "Dengan Bingkai Alami (Framing)", NameEN: "Framing Composition"},
	{ID: "leading-lines", NameID: "Garis Pemandu (Leading Lines)", NameEN: "Leading Lines"},
	{ID: "rule-of-thirds", NameID: "Aturan Sepertiga (Rule of Thirds)", NameEN: "Rule of Thirds"},
	{ID: "negative-space", NameID: "Ruang Negatif Minimalis", NameEN: "Minimalist Negative Space"},
	{ID: "pattern-repetition", NameID: "Pola dan Pengulangan", NameEN: "Pattern and Repetition"},
	{ID: "food-portrait", NameID: "Potret Makanan", NameEN: "Food Portrait"},
	{ID: "exploded-view", NameID: "Bahan Melayang (Exploded View)", NameEN: "Exploded View / Levitation"},
}

var foodLighting = []StyleOption{
	RandomOption,
	{ID: "natural-bright", NameID: "Cahaya Alami / Terang & Ceria", NameEN: "Natural Light / Bright & Airy"},
	{ID: "golden-hour", NameID: "Cahaya Sore / Hangat & Keemasan", NameEN: "Golden Hour / Warm & Golden"},
	{ID: "studio-soft", NameID: "Lampu Studio / Lembut & Merata", NameEN: "Studio Light / Soft & Even"},
	{ID: "dark-moody", NameID: "Gelap & Dramatis (Moody)", NameEN: "Dark & Moody"},
	{ID: "cinematic", NameID: "Sinematik dengan Bayangan Kuat", NameEN: "Cinematic with Hard Shadows"},
	{ID: "backlight", NameID: "Backlight / Cahaya dari Belakang", NameEN: "Backlight"},
	{ID: "high-key", NameID: "High-Key / Dominan Putih", NameEN: "High-Key / White Dominant"},
	{ID: "low-key", NameID: "Low-Key / Dominan Gelap", NameEN: "Low-Key / Dark Dominant"},
	{ID: "split-lighting", NameID: "Split Lighting", NameEN: "Split Lighting"},
	{ID: "rim-lighting", NameID: "Rim Lighting / Cahaya Tepi", NameEN: "Rim Lighting"},
	{ID: "dappled-light", NameID: "Cahaya Rindang (Dappled)", NameEN: "Dappled Light"},
	{ID: "artificial-neon", NameID: "Lampu Neon Berwarna", NameEN: "Colored Neon Light"},
	{ID: "candlelight", NameID: "Cahaya Lilin", NameEN: "Candlelight"},
	{ID: "morning-light", NameID: "Cahaya Pagi yang Lembut", NameEN: "Soft Morning Light"},
	{ID: "overcast", NameID: "Cuaca Mendung (Overcast)", NameEN: "Overcast Lighting"},
	{ID: "spotlight", NameID: "Spotlight / Fokus Terpusat", NameEN: "Spotlight"},
	{ID: "color-gels", NameID: "Gel Warna Artistik", NameEN: "Artistic Color Gels"},
	{ID: "window-light", NameID: "Cahaya dari Jendela", NameEN: "Window Light"},
	{ID: "long-exposure", NameID: "Efek Jejak Cahaya (Long Exposure)", NameEN: "Long Exposure Light Trails"},
}

var foodStyling = []StyleOption{
	RandomOption,
	{ID: "minimalist", NameID: "Minimalis, Fokus pada Produk", NameEN: "Minimalist, Focus on Product"},
	{ID: "with-ingredients", NameID: "Dengan Bahan Baku Segar", NameEN: "With Fresh Ingredients"},
	{ID: "lifestyle-human-element", NameID: "Lifestyle / Dengan Elemen Manusia", NameEN: "Lifestyle / With Human Element"},
	{ID: "messy-and-delicious", NameID: "Berantakan yang Menggugah Selera", NameEN: "Appetizingly Messy"},
	{ID: "rustic-natural", NameID: "Gaya Rustic & Alami", NameEN: "Rustic & Natural Style"},
	{ID: "symmetrical-pattern", NameID: "Pola Simetris", NameEN: "Symmetrical Pattern"},
	{ID: "monochromatic", NameID: "Tema Warna Monokromatik", NameEN: "Monochromatic Color Theme"},
	{ID: "vintage-retro", NameID: "Gaya Vintage / Retro", NameEN: "Vintage / Retro Style"},
	{ID: "modern-clean", NameID: "Modern & Bersih", NameEN: "Modern & Clean"},
	{ID: "farm-to-table", NameID: "Konsep \"Farm to Table\"", NameEN: "Farm to Table Concept"},
	{ID: "on-the-go", NameID: "Konteks \"On The Go\"", NameEN: "\"On The Go\" Context"},
	{ID: "with-packaging", NameID: "Bersama Kemasan Produk", NameEN: "With Product Packaging"},
	{ID: "deconstructed-dish", NameID: "Bahan-bahan Terpisah", NameEN: "Deconstructed Ingredients"},
	{ID: "texture-focus", NameID: "Fokus pada Tekstur", NameEN: "Texture Focus"},
	{ID: "cut-in-half", NameID: "Makanan Terpotong Setengah", NameEN: "Cut in Half"},
	{ID: "with-steam-smoke", NameID: "Dengan Uap/Asap Panas", NameEN: "With Steam/Smoke"},
	{ID: "holiday-themed", NameID: "Tema Hari Raya (Natal, Lebaran)", NameEN: "Holiday Themed (Christmas, Eid)"},
	{ID: "stacked-high", NameID: "Makanan Ditumpuk Tinggi", NameEN: "Stacked High"},
	{ID: "with-drinks", NameID: "Dipasangkan dengan Minuman", NameEN: "Paired with Drinks"},
}

var foodBackgrounds = []StyleOption{
	RandomOption,
	{ID: "rustic-wood-table", NameID: "Meja Kayu Rustic", NameEN: "Rustic Wood Table"},
	{ID: "white-marble", NameID: "Marmer Putih Elegan", NameEN: "Elegant White Marble"},
	{ID: "solid-pastel-color", NameID: "Warna Solid Pastel", NameEN: "Solid Pastel Color"},
	{ID: "modern-kitchen-blur", NameID: "Dapur Modern (Blur)", NameEN: "Modern Kitchen (Blur)"},
	{ID: "picnic-park", NameID: "Taman Piknik", NameEN: "Picnic Park"},
	{ID: "slate-stone", NameID: "Batu Tulis Gelap", NameEN: "Dark Slate Stone"},
	{ID: "linen-fabric", NameID: "Kain Linen Bertekstur", NameEN: "Textured Linen Fabric"},
	{ID: "concrete-surface", NameID: "Permukaan Beton Industrial", NameEN: "Industrial Concrete Surface"},
	{ID: "fresh-garden", NameID: "Kebun dengan Sayuran Segar", NameEN: "Garden with Fresh Vegetables"},
	{ID: "cozy-cafe", NameID: "Suasana Kafe yang Nyaman", NameEN: "Cozy Cafe Atmosphere"},
	{ID: "vibrant-market", NameID: "Pasar Tradisional (Blur)", NameEN: "Traditional Market (Blur)"},
	{ID: "baking-scene", NameID: "Latar Proses Membuat Kue", NameEN: "Baking Scene Background"},
	{ID: "geometric-patterns", NameID: "Pola Geometris Berwarna", NameEN: "Colored Geometric Patterns"},
	{ID: "beach-sand", NameID: "Pasir Pantai", NameEN: "Beach Sand"},
	{ID: "dark-wood", NameID: "Kayu Gelap Elegan", NameEN: "Elegant Dark Wood"},
	{ID: "neutral-ceramic-tiles", NameID: "Keramik Netral", NameEN: "Neutral Ceramic Tiles"},
	{ID: "blurred-restaurant", NameID: "Restoran (Blur)", NameEN: "Blurred Restaurant"},
	{ID: "floating-podium", NameID: "Podium Melayang Minimalis", NameEN: "Minimalist Floating Podium"},
	{ID: "watercolor-splash", NameID: "Percikan Cat Air Abstrak", NameEN: "Abstract Watercolor Splash"},
	{ID: "vintage-newspaper", NameID: "Alas Koran Vintage", NameEN: "Vintage Newspaper Base"},
	OtherOption,
}
