package catalog

var beverageAngles = []StyleOption{
	RandomOption,
	{ID: "eye-level-hero", NameID: "Setara Mata / Hero Shot", NameEN: "Eye-Level / Hero Shot"},
	{ID: "low-angle-dramatic", NameID: "Sudut Rendah Dramatis", NameEN: "Dramatic Low Angle"},
	{ID: "top-down-flat-lay", NameID: "Top-Down / Flat Lay", NameEN: "Top-Down / Flat Lay"},
	{ID: "macro-detail", NameID: "Makro (Detail Embun/Buih)", NameEN: "Macro (Condensation/Foam Detail)"},
	{ID: "pouring-action", NameID: "Aksi Menuang", NameEN: "Pouring Action"},
	{ID: "splash-action", NameID: "Aksi Percikan (Splash)", NameEN: "Splash Action"},
	{ID: "group-of-drinks", NameID: "Komposisi Grup Minuman", NameEN: "Group of Drinks Composition"},
	{ID: "point-of-view-drinking", NameID: "Sudut Pandang (POV) Minum", NameEN: "Point of View (POV) Drinking"},
	{ID: "wide-angle-bar-scene", NameID: "Wide Angle / Suasana Bar", NameEN: "Wide Angle / Bar Scene"},
	{ID: "reflection-shot", NameID: "Komposisi dengan Refleksi", NameEN: "Reflection Shot Composition"},
	{ID: "dutch-angle-dynamic", NameID: "Sudut Miring Dinamis", NameEN: "Dynamic Dutch Angle"},
	{ID: "product-in-context", NameID: "Produk dalam Konteks (di Meja)", NameEN: "Product in Context (on a table)"},
	{ID: "from-above-glass", NameID: "Langsung dari Atas Gelas", NameEN: "Directly Above the Glass"},
	{ID: "product-and-glass", NameID: "Produk & Gelas Sajian Berdampingan", NameEN: "Product & Serving Glass Side-by-Side"},
	{ID: "line-up-flavors", NameID: "Jajaran Varian Rasa", NameEN: "Flavor Line-up"},
	{ID: "framing-with-props", NameID: "Framing dengan Properti", NameEN: "Framing with Props"},
	{ID: "high-angle", NameID: "Sudut Tinggi", NameEN: "High Angle"},
	{ID: "close-up-ice", NameID: "Close-up Detail Es Batu", NameEN: "Close-up Ice Detail"},
	{ID: "through-the-glass", NameID: "Melihat Melalui Kaca", NameEN: "Through the Glass"},
}

var beverageLighting = []StyleOption{
	RandomOption,
	{ID: "backlight-glow", NameID: "Backlight (Menyala dari Belakang)", NameEN: "Backlight (Glowing from Behind)"},
	{ID: "bright-outdoor", NameID: "Cahaya Terang Outdoor / Siang Hari", NameEN: "Bright Outdoor / Daylight"},
	{ID: "dark-moody-bar", NameID: "Suasana Bar (Gelap & Dramatis)", NameEN: "Bar Scene (Dark & Moody)"},
	{ID: "studio-clean", NameID: "Lampu Studio Bersih & Tajam", NameEN: "Clean & Crisp Studio Light"},
	{ID: "golden-hour-warm", NameID: "Cahaya Sore Hangat", NameEN: "Warm Golden Hour Light"},
	{ID: "cinematic-shadows", NameID: "Sinematik dengan Bayangan Kuat", NameEN: "Cinematic with Hard Shadows"},
	{ID: "neon-lights", NameID: "Lampu Neon Berwarna", NameEN: "Colored Neon Lights"},
	{ID: "rim-lighting-highlight", NameID: "Rim Light (Menyorot Tepi Gelas)", NameEN: "Rim Light (Highlighting Glass Edge)"},
	{ID: "soft-window-light", NameID: "Cahaya Jendela yang Lembut", NameEN: "Soft Window Light"},
	{ID: "high-key-refreshing", NameID: "High-Key (Cerah & Menyegarkan)", NameEN: "High-Key (Bright & Refreshing)"},
	{ID: "low-key-luxury", NameID: "Low-Key (Mewah & Eksklusif)", NameEN: "Low-Key (Luxurious & Exclusive)"},
	{ID: "dappled-sunlight", NameID: "Cahaya Matahari Rindang", NameEN: "Dappled Sunlight"},
	{ID: "candlelight-intimate", NameID: "Cahaya Lilin (Intim)", NameEN: "Candlelight (Intimate)"},
	{ID: "spotlight-on-drink", NameID: "Spotlight Fokus pada Minuman", NameEN: "Spotlight on the Drink"},
	{ID: "underlit", NameID: "Cahaya dari Bawah (Underlit)", NameEN: "Underlit"},
	{ID: "color-gel-creative", NameID: "Gel Warna Kreatif", NameEN: "Creative Color Gels"},
	{ID: "overcast-soft", NameID: "Cahaya Mendung yang Lembut", NameEN: "Soft Overcast Light"},
	{ID: "firelight", NameID: "Cahaya Api Unggun", NameEN: "Firelight"},
	{ID: "blue-hour", NameID: "Cahaya \"Blue Hour\"", NameEN: "Blue Hour Lighting"},
}

var beverageStyling = []StyleOption{
	RandomOption,
	{ID: "condensation-fresh", NameID: "Dengan Embun Dingin (Segar)", NameEN: "With Condensation (Fresh)"},
	{ID: "with-fresh-garnishes", NameID: "Dengan Garnish Segar (Buah/Daun)", NameEN: "With Fresh Garnishes (Fruit/Leaves)"},
	{ID: "surrounded-by-ingredients", NameID: "Dikelilingi Bahan Baku", NameEN: "Surrounded by Ingredients"},
	{ID: "lifestyle-cheers", NameID: "Lifestyle (Bersulang/Cheers)", NameEN: "Lifestyle (Cheers)"},
	{ID: "hand-holding-drink", NameID: "Tangan Memegang Minuman", NameEN: "Hand Holding Drink"},
	{ID: "minimalist-clean", NameID: "Minimalis & Bersih", NameEN: "Minimalist & Clean"},
	{ID: "on-a-tray", NameID: "Disajikan di atas Nampan", NameEN: "Served on a Tray"},
	{ID: "with-steam-hot", NameID: "Dengan Uap (Minuman Panas)", NameEN: "With Steam (Hot Drink)"},
	{ID: "ice-cubes-detail", NameID: "Dengan Detail Es Batu", NameEN: "With Ice Cubes Detail"},
	{ID: "rustic-natural", NameID: "Gaya Rustic & Alami", NameEN: "Rustic & Natural Style"},
	{ID: "product-in-fridge", NameID: "Produk di dalam Kulkas", NameEN: "Product in Fridge"},
	{ID: "paired-with-food", NameID: "Dipasangkan dengan Makanan", NameEN: "Paired with Food"},
	{ID: "trio-of-drinks", NameID: "Tiga Gelas Berjajar", NameEN: "Trio of Drinks"},
	{ID: "action-swirl", NameID: "Aksi Mengaduk (Swirl)", NameEN: "Swirling Action"},
	{ID: "in-takeaway-cup", NameID: "Dalam Gelas Bawa Pulang", NameEN: "In a Takeaway Cup"},
	{ID: "luxury-elegant", NameID: "Penataan Mewah & Elegan", NameEN: "Luxury & Elegant Styling"},
	{ID: "beach-holiday-vibe", NameID: "Suasana Liburan Pantai", NameEN: "Beach Holiday Vibe"},
	{ID: "cozy-at-home", NameID: "Suasana Nyaman di Rumah", NameEN: "Cozy at Home Vibe"},
	{ID: "party-celebration", NameID: "Tema Pesta & Perayaan", NameEN: "Party & Celebration Theme"},
}

var beverageBackgrounds = []StyleOption{
	RandomOption,
	{ID: "bar-counter", NameID: "Meja Bar Modern", NameEN: "Modern Bar Counter"},
	{ID: "poolside", NameID: "Tepi Kolam Renang", NameEN: "Poolside"},
	{ID: "coffee-shop-blur", NameID: "Kedai Kopi (Blur)", NameEN: "Coffee Shop (Blur)"},
	{ID: "tropical-leaves", NameID: "Daun-daun Tropis", NameEN: "Tropical Leaves"},
	{ID: "solid-vibrant-color", NameID: "Warna Solid Cerah", NameEN: "Solid Vibrant Color"},
	{ID: "wooden-deck", NameID: "Dek Kayu Outdoor", NameEN: "Outdoor Wooden Deck"},
	{ID: "kitchen-counter", NameID: "Meja Dapur Bersih", NameEN: "Clean Kitchen Counter"},
	{ID: "fruit-market", NameID: "Pasar Buah (Blur)", NameEN: "Fruit Market (Blur)"},
	{ID: "sunset-beach", NameID: "Pantai Saat Matahari Terbenam", NameEN: "Sunset Beach"},
	{ID: "cozy-reading-nook", NameID: "Sudut Baca yang Nyaman", NameEN: "Cozy Reading Nook"},
	{ID: "dark-slate", NameID: "Batu Tulis Gelap dengan Tetesan Air", NameEN: "Dark Slate with Water Drops"},
	{ID: "ice-cave", NameID: "Gua Es Abstrak", NameEN: "Abstract Ice Cave"},
	{ID: "gradient-background", NameID: "Latar Belakang Gradien", NameEN: "Gradient Background"},
	{ID: "picnic-blanket", NameID: "Alas Piknik di Rumput", NameEN: "Picnic Blanket on Grass"},
	{ID: "rooftop-city-view", NameID: "Atap Gedung Pemandangan Kota", NameEN: "Rooftop City View"},
	{ID: "tea-plantation", NameID: "Perkebunan Teh (Blur)", NameEN: "Tea Plantation (Blur)"},
	{ID: "minimalist-podium", NameID: "Podium Minimalis", NameEN: "Minimalist Podium"},
	{ID: "rainy-window", NameID: "Jendela Berembun Saat Hujan", NameEN: "Rainy Window"},
	{ID: "celebration-confetti", NameID: "Konfeti Pesta (Blur)", NameEN: "Celebration Confetti (Blur)"},
	{ID: "library-study-desk", NameID: "Meja Belajar Perpustakaan", NameEN: "Library Study Desk"},
	OtherOption,
}
