package catalog

// ProductTypeInfo pairs a product type with its display names and category.
type ProductTypeInfo struct {
	ID       ProductType `json:"id"`
	NameID   string      `json:"name_id"`
	NameEN   string      `json:"name_en"`
	Category Category    `json:"category"`
}

var marketingProductTypes = []ProductTypeInfo{
	{ID: "makanan-ringan", NameID: "Makanan Ringan", NameEN: "Snacks", Category: CategoryFood},
	{ID: "roti-kue", NameID: "Roti & Kue", NameEN: "Bakery & Cakes", Category: CategoryFood},
	{ID: "makanan-beku", NameID: "Makanan Beku", NameEN: "Frozen Food", Category: CategoryFood},
	{ID: "bahan-masak", NameID: "Bahan Masak", NameEN: "Cooking Ingredients", Category: CategoryFood},
	{ID: "hidangan-utama", NameID: "Hidangan Utama", NameEN: "Main Course", Category: CategoryFood},
	{ID: "hidangan-pembuka", NameID: "Hidangan Pembuka", NameEN: "Appetizer", Category: CategoryFood},
	{ID: "hidangan-penutup", NameID: "Hidangan Penutup", NameEN: "Dessert", Category: CategoryFood},
	{ID: "mie-pasta", NameID: "Mie & Pasta", NameEN: "Noodles & Pasta", Category: CategoryFood},
	{ID: "seafood", NameID: "Seafood", NameEN: "Seafood", Category: CategoryFood},
	{ID: "kopi-teh", NameID: "Kopi & Teh", NameEN: "Coffee & Tea", Category: CategoryBeverage},
	{ID: "jus-smoothie", NameID: "Jus & Smoothie", NameEN: "Juice & Smoothies", Category: CategoryBeverage},
	{ID: "minuman-kemasan", NameID: "Minuman Kemasan", NameEN: "Packaged Drinks", Category: CategoryBeverage},
	{ID: "minuman-tradisional", NameID: "Minuman Tradisional", NameEN: "Traditional Drinks", Category: CategoryBeverage},
	{ID: "skincare", NameID: "Skincare", NameEN: "Skincare", Category: CategoryBeauty},
	{ID: "makeup", NameID: "Makeup", NameEN: "Makeup", Category: CategoryBeauty},
	{ID: "parfum", NameID: "Parfum", NameEN: "Perfume", Category: CategoryBeauty},
	{ID: "perawatan-rambut", NameID: "Perawatan Rambut", NameEN: "Hair Care", Category: CategoryBeauty},
	{ID: "aksesoris-general", NameID: "Aksesoris (Umum)", NameEN: "Accessories (General)", Category: CategoryFashion},
	{ID: "perhiasan", NameID: "Perhiasan", NameEN: "Jewelry", Category: CategoryFashion},
	{ID: "jam-tangan", NameID: "Jam Tangan", NameEN: "Watches", Category: CategoryFashion},
	{ID: "tas", NameID: "Tas & Dompet", NameEN: "Bags & Wallets", Category: CategoryFashion},
	{ID: "topi", NameID: "Topi & Penutup Kepala", NameEN: "Hats & Headwear", Category: CategoryFashion},
	{ID: "kacamata", NameID: "Kacamata", NameEN: "Eyewear", Category: CategoryFashion},
	{ID: "peralatan-masak", NameID: "Peralatan Masak", NameEN: "Cookware", Category: CategoryCookware},
	{ID: "peralatan-makan", NameID: "Peralatan Makan", NameEN: "Tableware", Category: CategoryCookware},
	{ID: "elektronik-dapur", NameID: "Elektronik Dapur", NameEN: "Kitchen Electronics", Category: CategoryCookware},
	{ID: "wadah-penyimpanan", NameID: "Wadah Penyimpanan", NameEN: "Storage Containers", Category: CategoryCookware},
	{ID: "pakaian-olahraga", NameID: "Pakaian Olahraga", NameEN: "Sportswear", Category: CategorySport},
	{ID: "sepatu-olahraga", NameID: "Sepatu Olahraga", NameEN: "Sports Shoes", Category: CategorySport},
	{ID: "aksesoris-gym", NameID: "Aksesoris Gym", NameEN: "Gym Accessories", Category: CategorySport},
	{ID: "alat-yoga-pilates", NameID: "Alat Yoga & Pilates", NameEN: "Yoga & Pilates Gear", Category: CategorySport},
}

var portraitSubjectTypes = []ProductTypeInfo{
	{ID: "portrait-headshot", NameID: "Foto Wajah (Headshot)", NameEN: "Headshot Portrait", Category: CategoryPortrait},
	{ID: "portrait-full-body", NameID: "Seluruh Badan", NameEN: "Full Body Portrait", Category: CategoryPortrait},
	{ID: "portrait-couple", NameID: "Pasangan", NameEN: "Couple Portrait", Category: CategoryPortrait},
	{ID: "portrait-group", NameID: "Grup", NameEN: "Group Portrait", Category: CategoryPortrait},
}

// AllProductTypes lists every catalogued product type, marketing first.
func AllProductTypes() []ProductTypeInfo {
	out := make([]ProductTypeInfo, 0, len(marketingProductTypes)+len(portraitSubjectTypes))
	out = append(out, marketingProductTypes...)
	out = append(out, portraitSubjectTypes...)
	return out
}

var productTypeIndex = buildProductTypeIndex()

func buildProductTypeIndex() map[ProductType]ProductTypeInfo {
	idx := make(map[ProductType]ProductTypeInfo, len(marketingProductTypes)+len(portraitSubjectTypes))
	for _, p := range marketingProductTypes {
		idx[p.ID] = p
	}
	for _, p := range portraitSubjectTypes {
		idx[p.ID] = p
	}
	return idx
}
