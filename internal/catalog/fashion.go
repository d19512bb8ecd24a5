package catalog

var fashionAngles = []StyleOption{
	RandomOption,
	{ID: "flat-lay-top-down", NameID: "Flat Lay / Top-Down", NameEN: "Flat Lay / Top-Down"},
	{ID: "eye-level-hero", NameID: "Setara Mata / Hero Shot", NameEN: "Eye-Level / Hero Shot"},
	{ID: "macro-detail", NameID: "Makro / Detail Bahan", NameEN: "Macro / Material Detail"},
	{ID: "45-degree-angle", NameID: "Sudut 45 Derajat", NameEN: "45-Degree Angle"},
	{ID: "product-lineup", NameID: "Jajaran Grup Produk", NameEN: "Product Group Lineup"},
	{ID: "low-angle-pedestal", NameID: "Sudut Rendah di Podium", NameEN: "Low Angle on Pedestal"},
	{ID: "dutch-angle-edgy", NameID: "Sudut Miring (Dutch Angle)", NameEN: "Edgy Dutch Angle"},
	{ID: "on-model", NameID: "Dikenakan Model (Close-up)", NameEN: "Worn by Model (Close-up)"},
	{ID: "straight-on", NameID: "Tampak Depan Lurus", NameEN: "Straight-on View"},
	{ID: "high-angle-overview", NameID: "Sudut Tinggi (Overview)", NameEN: "High Angle Overview"},
	{ID: "asymmetrical-balance", NameID: "Komposisi Asimetris", NameEN: "Asymmetrical Balance"},
	{ID: "rule-of-thirds", NameID: "Aturan Sepertiga", NameEN: "Rule of Thirds"},
	{ID: "framing-with-props", NameID: "Framing dengan Properti", NameEN: "Framing with Props"},
	{ID: "centered-symmetrical", NameID: "Simetris di Tengah", NameEN: "Centered & Symmetrical"},
	{ID: "product-in-motion", NameID: "Produk Dalam Gerakan", NameEN: "Product in Motion"},
	{ID: "stacked", NameID: "Produk Ditumpuk", NameEN: "Stacked"},
	{ID: "diagonal-lines", NameID: "Komposisi Garis Diagonal", NameEN: "Diagonal Lines Composition"},
	{ID: "reflection", NameID: "Komposisi dengan Refleksi", NameEN: "Reflection Composition"},
}

var fashionLighting = []StyleOption{
	RandomOption,
	{ID: "soft-diffused", NameID: "Cahaya Lembut & Merata (Soft)", NameEN: "Soft & Diffused Light"},
	{ID: "bright-clean", NameID: "Cahaya Terang & Bersih", NameEN: "Bright & Clean Light"},
	{ID: "sunlight-shadow-play", NameID: "Cahaya Matahari & Bayangan", NameEN: "Sunlight & Shadow Play"},
	{ID: "dramatic-hard-light", NameID: "Cahaya Keras & Dramatis", NameEN: "Dramatic Hard Light"},
	{ID: "luxury-dark-moody", NameID: "Mewah (Gelap & Dramatis)", NameEN: "Luxury (Dark & Moody)"},
	{ID: "backlight-glow", NameID: "Backlight / Cahaya dari Belakang", NameEN: "Backlight / Glow"},
	{ID: "golden-hour-warmth", NameID: "Cahaya Sore yang Hangat", NameEN: "Golden Hour Warmth"},
	{ID: "ring-light-clean", NameID: "Cahaya \"Ring Light\" Bersih", NameEN: "Clean Ring Light"},
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

var fashionStyling = []StyleOption{
	RandomOption,
	{ID: "minimalist-on-pedestal", NameID: "Minimalis di Atas Podium", NameEN: "Minimalist on Pedestal"},
	{ID: "with-natural-elements", NameID: "Dengan Elemen Alam (Bunga/Batu)", NameEN: "With Natural Elements (Flowers/Stones)"},
	{ID: "lifestyle-in-use", NameID: "Lifestyle (Sedang Dikenakan)", NameEN: "Lifestyle (In Use)"},
	{ID: "floating-levitation", NameID: "Produk Melayang (Levitasi)", NameEN: "Floating Product (Levitation)"},
	{ID: "on-a-mirror", NameID: "Di Atas Cermin dengan Refleksi", NameEN: "On a Mirror with Reflection"},
	{ID: "hand-model-holding", NameID: "Model Tangan Memegang/Mengenakan", NameEN: "Hand Model Holding/Wearing"},
	{ID: "in-a-box-or-bag", NameID: "Di dalam Kotak Perhiasan/Tas", NameEN: "Inside a Jewelry Box/Bag"},
	{ID: "monochromatic-theme", NameID: "Tema Warna Monokromatik", NameEN: "Monochromatic Color Theme"},
	{ID: "with-silk-fabric", NameID: "Dengan Kain Sutra Mewah", NameEN: "With Luxury Silk Fabric"},
	{ID: "geometric-blocks", NameID: "Dengan Blok Geometris", NameEN: "With Geometric Blocks"},
	{ID: "product-and-packaging", NameID: "Produk & Kotak Kemasan", NameEN: "Product & Packaging Box"},
	{ID: "minimalist-with-shadow", NameID: "Minimalis dengan Bayangan Artistik", NameEN: "Minimalist with Artistic Shadow"},
	{ID: "on-sand", NameID: "Di Atas Pasir", NameEN: "On Sand"},
	{ID: "casually-placed-on-table", NameID: "Diletakkan di Meja Rias/Kerja", NameEN: "Casually Placed on a Vanity/Desk"},
	{ID: "on-mannequin-bust", NameID: "Pada Manekin Leher/Tangan", NameEN: "On a Mannequin Bust/Hand"},
	{ID: "with-architectural-elements", NameID: "Dengan Elemen Arsitektur", NameEN: "With Architectural Elements"},
	{ID: "color-blocking", NameID: "Penataan \"Color Blocking\"", NameEN: "Color Blocking Arrangement"},
	{ID: "vintage-props", NameID: "Dengan Properti Vintage", NameEN: "With Vintage Props"},
}

var fashionBackgrounds = []StyleOption{
	RandomOption,
	{ID: "white-marble-surface", NameID: "Permukaan Marmer Putih", NameEN: "White Marble Surface"},
	{ID: "silk-fabric", NameID: "Kain Sutra Mewah", NameEN: "Luxury Silk Fabric"},
	{ID: "concrete-pedestal", NameID: "Podium Beton", NameEN: "Concrete Pedestal"},
	{ID: "blurred-boutique", NameID: "Butik Mewah (Blur)", NameEN: "Blurred Luxury Boutique"},
	{ID: "water-surface", NameID: "Permukaan Air Beriak", NameEN: "Rippling Water Surface"},
	{ID: "neutral-pastel-solid", NameID: "Warna Solid Netral/Pastel", NameEN: "Solid Neutral/Pastel Color"},
	{ID: "fresh-flowers", NameID: "Bunga Segar", NameEN: "Fresh Flowers"},
	{ID: "acrylic-blocks", NameID: "Blok Akrilik Bening", NameEN: "Clear Acrylic Blocks"},
	{ID: "vanity-table", NameID: "Meja Rias Elegan", NameEN: "Elegant Vanity Table"},
	{ID: "tropical-leaf-shadows", NameID: "Bayangan Daun Tropis", NameEN: "Tropical Leaf Shadows"},
	{ID: "black-slate", NameID: "Batu Tulis Hitam", NameEN: "Black Slate"},
	{ID: "sand-dunes", NameID: "Gurun Pasir Halus", NameEN: "Soft Sand Dunes"},
	{ID: "holographic-foil", NameID: "Latar Holografik", NameEN: "Holographic Background"},
	{ID: "geometric-tiles", NameID: "Ubin Geometris", NameEN: "Geometric Tiles"},
	{ID: "soft-focus-garden", NameID: "Taman Bunga (Fokus Lembut)", NameEN: "Soft Focus Flower Garden"},
	{ID: "gold-textured", NameID: "Permukaan Emas Bertekstur", NameEN: "Gold Textured Surface"},
	{ID: "minimalist-arch", NameID: "Lengkungan Arsitektur Minimalis", NameEN: "Minimalist Architectural Arch"},
	{ID: "rich-velvet", NameID: "Kain Beludru Mewah", NameEN: "Rich Velvet Fabric"},
	{ID: "gradient-aurora", NameID: "Gradien Warna Aurora", NameEN: "Aurora Gradient Color"},
	OtherOption,
}
