package catalog

var beautyAngles = []StyleOption{
	RandomOption,
	{ID: "flat-lay-top-down", NameID: "Flat Lay / Top-Down", NameEN: "Flat Lay / Top-Down"},
	{ID: "eye-level-hero", NameID: "Setara Mata / Hero Shot", NameEN: "Eye-Level / Hero Shot"},
	{ID: "macro-texture", NameID: "Makro / Detail Tekstur Produk", NameEN: "Macro / Product Texture Detail"},
	{ID: "45-degree-angle", NameID: "Sudut 45 Derajat", NameEN: "45-Degree Angle"},
	{ID: "product-lineup", NameID: "Jajaran Grup Produk", NameEN: "Product Group Lineup"},
	{ID: "low-angle-pedestal", NameID: "Sudut Rendah di Podium", NameEN: "Low Angle on Pedestal"},
	{ID: "exploded-view", NameID: "Komposisi Terpisah (Exploded View)", NameEN: "Exploded View Composition"},
	{ID: "dutch-angle-edgy", NameID: "Sudut Miring (Dutch Angle)", NameEN: "Edgy Dutch Angle"},
	{ID: "straight-on-packaging", NameID: "Tampak Depan Kemasan", NameEN: "Straight-on Packaging Shot"},
	{ID: "high-angle-overview", NameID: "Sudut Tinggi (Overview)", NameEN: "High Angle Overview"},
	{ID: "close-up-applicator", NameID: "Close-up Aplikator", NameEN: "Applicator Close-up"},
	{ID: "asymmetrical-balance", NameID: "Komposisi Asimetris", NameEN: "Asymmetrical Balance"},
	{ID: "rule-of-thirds", NameID: "Aturan Sepertiga", NameEN: "Rule of Thirds"},
	{ID: "framing-with-props", NameID: "Framing dengan Properti", NameEN: "Framing with Props"},
	{ID: "centered-symmetrical", NameID: "Simetris di Tengah", NameEN: "Centered & Symmetrical"},
	{ID: "product-in-motion", NameID: "Produk Dalam Gerakan", NameEN: "Product in Motion"},
	{ID: "stacked-vertically", NameID: "Produk Ditumpuk Vertikal", NameEN: "Vertically Stacked"},
	{ID: "diagonal-lines", NameID: "Komposisi Garis Diagonal", NameEN: "Diagonal Lines Composition"},
	{ID: "reflection", NameID: "Komposisi dengan Refleksi", NameEN: "Reflection Composition"},
}

var beautyLighting = []StyleOption{
	RandomOption,
	{ID: "soft-diffused", NameID: "Cahaya Lembut & Merata (Soft)", NameEN: "Soft & Diffused Light"},
	{ID: "bright-clinical", NameID: "Cahaya Terang & Klinis", NameEN: "Bright & Clinical Light"},
	{ID: "sunlight-shadow-play", NameID: "Cahaya Matahari & Bayangan", NameEN: "Sunlight & Shadow Play"},
	{ID: "dramatic-hard-light", NameID: "Cahaya Keras & Dramatis", NameEN: "Dramatic Hard Light"},
	{ID: "luxury-dark-moody", NameID: "Mewah (Gelap & Dramatis)", NameEN: "Luxury (Dark & Moody)"},
	{ID: "backlight-glow", NameID: "Backlight / Cahaya dari Belakang", NameEN: "Backlight / Glow"},
	{ID: "golden-hour-warmth", NameID: "Cahaya Sore yang Hangat", NameEN: "Golden Hour Warmth"},
	{ID: "ring-light-beauty", NameID: "Cahaya \"Ring Light\"", NameEN: "Ring Light"},
	{ID: "neon-futuristic", NameID: "Lampu Neon Futuristik", NameEN: "Futuristic Neon Light"},
	{ID: "rim-lighting-edges", NameID: "Rim Light (Menyorot Tepi)", NameEN: "Rim Light (Highlighting Edges)"},
	{ID: "underwater-effect", NameID: "Efek Cahaya Bawah Air", NameEN: "Underwater Light Effect"},
	{ID: "caustic-light", NameID: "Refleksi Cahaya Air (Caustics)", NameEN: "Caustic Light Reflections"},
	{ID: "spotlight-focus", NameID: "Spotlight Terpusat", NameEN: "Focused Spotlight"},
	{ID: "high-key-ethereal", NameID: "High-Key (Ethereal)", NameEN: "High-Key (Ethereal)"},
	{ID: "low-key-mysterious", NameID: "Low-Key (Misterius)", NameEN: "Low-Key (Mysterious)"},
	{ID: "holographic-light", NameID: "Cahaya Holografik", NameEN: "Holographic Light"},
	{ID: "gobo-patterns", NameID: "Pola Bayangan (Gobo)", NameEN: "Gobo Shadow Patterns"},
	{ID: "split-lighting-duality", NameID: "Split Lighting", NameEN: "Split Lighting"},
	{ID: "soft-glow", NameID: "Pendaran Cahaya Lembut", NameEN: "Soft Glow"},
}

var beautyStyling = []StyleOption{
	RandomOption,
	{ID: "product-smear-swatch", NameID: "Tekstur Produk (Swirl/Smear)", NameEN: "Product Texture (Swirl/Smear)"},
	{ID: "minimalist-on-pedestal", NameID: "Minimalis di Atas Podium", NameEN: "Minimalist on Pedestal"},
	{ID: "with-natural-elements", NameID: "Dengan Elemen Alam (Bunga/Daun)", NameEN: "With Natural Elements (Flowers/Leaves)"},
	{ID: "water-splash-fresh", NameID: "Percikan Air Segar", NameEN: "Fresh Water Splash"},
	{ID: "lifestyle-in-use", NameID: "Lifestyle (Sedang Digunakan)", NameEN: "Lifestyle (In Use)"},
	{ID: "floating-levitation", NameID: "Produk Melayang (Levitasi)", NameEN: "Floating Product (Levitation)"},
	{ID: "laboratory-clean", NameID: "Gaya Laboratorium Bersih", NameEN: "Clean Laboratory Style"},
	{ID: "on-a-mirror", NameID: "Di Atas Cermin dengan Refleksi", NameEN: "On a Mirror with Reflection"},
	{ID: "shelfie-style", NameID: "Ditata di Rak (\"Shelfie\")", NameEN: "\"Shelfie\" Style Arrangement"},
	{ID: "deconstructed-ingredients", NameID: "Bahan Baku di Sekitar Produk", NameEN: "Ingredients Around Product"},
	{ID: "hand-model-applying", NameID: "Model Tangan Mengaplikasikan", NameEN: "Hand Model Applying"},
	{ID: "in-a-makeup-bag", NameID: "Di dalam Tas Makeup", NameEN: "Inside a Makeup Bag"},
	{ID: "monochromatic-theme", NameID: "Tema Warna Monokromatik", NameEN: "Monochromatic Color Theme"},
	{ID: "with-silk-fabric", NameID: "Dengan Kain Sutra Mewah", NameEN: "With Luxury Silk Fabric"},
	{ID: "on-ice", NameID: "Di Atas Es", NameEN: "On Ice"},
	{ID: "geometric-blocks", NameID: "Dengan Blok Geometris", NameEN: "With Geometric Blocks"},
	{ID: "product-and-packaging", NameID: "Produk & Kotak Kemasan", NameEN: "Product & Packaging Box"},
	{ID: "minimalist-with-shadow", NameID: "Minimalis dengan Bayangan Artistik", NameEN: "Minimalist with Artistic Shadow"},
	{ID: "on-sand", NameID: "Di Atas Pasir", NameEN: "On Sand"},
}

var beautyBackgrounds = []StyleOption{
	RandomOption,
	{ID: "white-marble-surface", NameID: "Permukaan Marmer Putih", NameEN: "White Marble Surface"},
	{ID: "silk-fabric", NameID: "Kain Sutra Mewah", NameEN: "Luxury Silk Fabric"},
	{ID: "concrete-pedestal", NameID: "Podium Beton", NameEN: "Concrete Pedestal"},
	{ID: "blurred-bathroom", NameID: "Kamar Mandi Modern (Blur)", NameEN: "Modern Bathroom (Blur)"},
	{ID: "water-surface", NameID: "Permukaan Air Beriak", NameEN: "Rippling Water Surface"},
	{ID: "pink-pastel-solid", NameID: "Warna Solid Pink Pastel", NameEN: "Solid Pink Pastel Color"},
	{ID: "fresh-flowers", NameID: "Bunga Segar (Mawar, Peony)", NameEN: "Fresh Flowers (Roses, Peonies)"},
	{ID: "acrylic-blocks", NameID: "Blok Akrilik Bening", NameEN: "Clear Acrylic Blocks"},
	{ID: "vanity-table", NameID: "Meja Rias Elegan", NameEN: "Elegant Vanity Table"},
	{ID: "tropical-leaf-shadows", NameID: "Bayangan Daun Tropis", NameEN: "Tropical Leaf Shadows"},
	{ID: "black-slate", NameID: "Batu Tulis Hitam", NameEN: "Black Slate"},
	{ID: "sand-dunes", NameID: "Gurun Pasir Halus", NameEN: "Soft Sand Dunes"},
	{ID: "holographic-foil", NameID: "Latar Holografik", NameEN: "Holographic Background"},
	{ID: "geometric-tiles", NameID: "Ubin Geometris", NameEN: "Geometric Tiles"},
	{ID: "lab-glassware", NameID: "Peralatan Gelas Laboratorium", NameEN: "Lab Glassware"},
	{ID: "soft-focus-garden", NameID: "Taman Bunga (Fokus Lembut)", NameEN: "Soft Focus Flower Garden"},
	{ID: "gold-textured", NameID: "Permukaan Emas Bertekstur", NameEN: "Gold Textured Surface"},
	{ID: "minimalist-arch", NameID: "Lengkungan Arsitektur Minimalis", NameEN: "Minimalist Architectural Arch"},
	{ID: "crushed-ice", NameID: "Pecahan Es", NameEN: "Crushed Ice"},
	{ID: "gradient-aurora", NameID: "Gradien Warna Aurora", NameEN: "Aurora Gradient Color"},
	OtherOption,
}
