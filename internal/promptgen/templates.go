// Package promptgen compiles generation configs into the Indonesian
// instruction prompts sent to the image model. Compilation is pure string
// work; identical inputs always yield identical prompts.
package promptgen

const productTemplate = `Buatkan sebuah foto iklan profesional, realistis, dan berkualitas tinggi untuk produk {{product_description}}. Ambil produk utama dari gambar yang diunggah dan letakkan secara mulus ke dalam skenario baru. Komposisi: "{{angle_style}}". Pencahayaan: "{{lighting_style}}". Penataan: "{{styling_style}}". Latar belakang: "{{background_style}}". Instruksi tambahan: "{{extra_instructions}}". PENTING: Untuk setiap gambar yang dihasilkan, berikan sedikit variasi pada sudut kamera, komposisi, dan pencahayaan agar setiap hasil terasa unik seolah-olah diambil dari sesi foto yang sama. SANGAT PENTING: Pastikan produk yang ditampilkan SAMA PERSIS dengan produk dari foto asli. Jangan mengubah bentuk, warna, label, atau branding produk sama sekali. Pertahankan detail produk asli, namun tingkatkan kualitas foto secara keseluruhan menjadi terlihat seperti hasil jepretan fotografer iklan profesional. Pencahayaan harus menonjolkan produk dan sesuai dengan suasana. {{watermark_instruction}}. Hanya hasilkan gambar final, jangan tambahkan teks deskriptif apapun.
`

const portraitTemplate = `Buatkan sebuah foto potret profesional, realistis, dan berkualitas tinggi untuk subjek {{subject_description}}. Ambil subjek utama dari gambar yang diunggah dan letakkan secara mulus ke dalam skenario baru. Kenakan subjek dengan pakaian bergaya: "{{outfit_style}}". Komposisi & Sudut: "{{angle_style}}". Pencahayaan & Suasana: "{{lighting_style}}". Gaya Potret: "{{styling_style}}". Latar belakang: "{{background_style}}". Instruksi tambahan: "{{extra_instructions}}". PENTING: Untuk setiap gambar yang dihasilkan, berikan sedikit variasi pada sudut kamera, komposisi, dan pencahayaan agar setiap hasil terasa unik seolah-olah diambil dari sesi foto yang sama. SANGAT PENTING: Pastikan subjek yang ditampilkan SAMA PERSIS dengan subjek dari foto asli. Jangan mengubah penampilan atau fitur wajah subjek sama sekali. Ganti HANYA pakaiannya sesuai dengan gaya yang diminta. Pertahankan detail subjek asli, namun tingkatkan kualitas foto secara keseluruhan menjadi terlihat seperti hasil jepretan fotografer profesional. Pencahayaan harus menonjolkan subjek dan sesuai dengan suasana. {{watermark_instruction}}. Hanya hasilkan gambar final, jangan tambahkan teks deskriptif apapun.
`

const portraitWithStyleTemplate = `ANDA ADALAH SEORANG EDITOR FOTO AI. Tugas Anda adalah menggabungkan DUA gambar. Gambar PERTAMA berisi subjek utama. Gambar KEDUA berisi gaya, pakaian, atau suasana yang diinginkan.
Instruksi:
1.  Ambil subjek utama (orang) dari gambar PERTAMA.
2.  Terapkan gaya, pakaian, dan/atau suasana dari gambar KEDUA ke subjek tersebut. Jika ada instruksi gaya pakaian spesifik, prioritaskan instruksi tersebut.
3.  Letakkan subjek yang telah dimodifikasi ke dalam skenario baru yang sesuai dengan gaya dan pengaturan yang dipilih.
4.  SANGAT PENTING: Pertahankan fitur wajah dan identitas subjek dari gambar PERTAMA. JANGAN mengubah wajahnya.
5.  Hasil akhir harus berupa foto potret profesional, realistis, dan berkualitas tinggi.

Detail Skenario:
-   Deskripsi Subjek: {{subject_description}}.
-   Gaya Pakaian yang Diinginkan: "{{outfit_style}}".
-   Komposisi & Sudut: "{{angle_style}}".
-   Pencahayaan & Suasana: "{{lighting_style}}".
-   Gaya Potret: "{{styling_style}}".
-   Latar belakang: "{{background_style}}".
-   Instruksi tambahan: "{{extra_instructions}}".

Instruksi Tambahan:
-   PENTING: Untuk setiap gambar yang dihasilkan, berikan sedikit variasi pada sudut kamera, komposisi, dan pencahayaan agar setiap hasil terasa unik seolah-olah diambil dari sesi foto yang sama.
-   {{watermark_instruction}}.
-   Hanya hasilkan gambar final, jangan tambahkan teks deskriptif apapun.
`

const posterTemplate = `ANDA ADALAH SEORANG DESAINER GRAFIS AI AHLI. Tugas Anda adalah membuat poster iklan yang menarik secara visual, profesional, dan efektif berdasarkan spesifikasi pengguna.

Instruksi Utama:
1.  Ambil produk utama ({{product_name}}) dari GAMBAR SUMBER yang diberikan dan integrasikan secara mulus ke dalam desain poster. JANGAN mengubah bentuk, warna, atau branding produk sama sekali.
2.  Buat tata letak (layout) yang seimbang, dinamis, dan menarik perhatian.
3.  Terapkan gaya visual dan elemen desain yang sesuai dengan tema yang diminta.
4.  Gunakan palet warna yang harmonis dan sesuai dengan tema.
5.  Pilih dan terapkan tipografi (gaya huruf) yang mudah dibaca dan cocok dengan gaya keseluruhan.
6.  Pastikan hasil akhir adalah gambar beresolusi tinggi, siap untuk dicetak atau digunakan dalam kampanye pemasaran digital.

Spesifikasi Desain dari Pengguna:
-   **Tema & Gaya Poster**: "{{theme}}"
-   **Palet Warna**: "{{color_palette}}"
-   **Gaya Huruf (Tipografi)**: "{{font_style}}"

Teks yang Harus Dicantumkan:
-   **Judul Utama (Headline)**: "{{headline}}"
-   **Teks Isi**: "{{body_text}}"
-   **Ajakan Bertindak (Call to Action)**: "{{cta}}"

**ATURAN TEKS KRITIS (SANGAT PENTING):**
1.  **AKURASI TEKS 100%**: Teks yang Anda tampilkan di poster HARUS SAMA PERSIS, karakter per karakter, dengan teks yang disediakan di atas. Jangan mengubah, menambah, atau mengurangi kata atau huruf apa pun.
2.  **TIDAK ADA TEKS TAMBAHAN**: JANGAN menambahkan teks, logo, atau watermark lain apa pun ke dalam poster selain dari yang telah ditentukan.
3.  **KETERBACAAN**: Pastikan semua teks mudah dibaca dan terintegrasi dengan baik ke dalam desain. Prioritaskan akurasi dan keterbacaan teks di atas segalanya.

PENTING: Untuk setiap poster yang dihasilkan, berikan sedikit variasi pada tata letak, komposisi, atau detail grafis agar setiap hasil terasa unik dan memberikan pilihan bagi pengguna. HANYA hasilkan gambar poster final, jangan tambahkan teks deskriptif atau penjelasan apa pun. Akurasi teks adalah prioritas tertinggi.
`

// UpscaleInstruction asks the model for a 2K rendition without altering the
// subject or composition.
const UpscaleInstruction = `Tingkatkan resolusi gambar ini menjadi 2K. Pertajam detail, tingkatkan kualitas dan pencahayaan secara keseluruhan, namun JANGAN mengubah subjek, komposisi, atau elemen asli apa pun di dalam gambar. Hasil harus terlihat seperti versi resolusi tinggi dari gambar asli.`

// Watermark clauses. Exactly one of these lands in every photography
// prompt: the default studio watermark when the user left the toggle off,
// the custom text when they provided one, or an explicit clean-image
// instruction when they enabled the toggle without text.
const (
	defaultWatermarkClause = `PENTING: Tambahkan watermark teks kecil "anotechhub" yang dibuat samar (semi-transparan) di pojok kanan bawah gambar. Watermark harus halus, profesional, dan tidak mengganggu komposisi utama.`
	customWatermarkPrefix  = `PENTING: Tambahkan watermark teks kecil "`
	customWatermarkSuffix  = `" yang dibuat samar (semi-transparan) di pojok kanan bawah gambar. Watermark harus halus, profesional, dan tidak mengganggu komposisi utama.`
	noWatermarkClause      = `PENTING: Jangan tambahkan watermark atau teks apa pun ke dalam gambar. Hasilnya harus berupa gambar yang bersih tanpa ada tulisan tambahan.`
)

// Fallback texts for axes the user left blank or delegated.
const (
	randomStyleText       = "Gaya kreatif dan menarik pilihan AI."
	customBackgroundText  = "Latar belakang yang ditentukan oleh pengguna"
	noExtraText           = "Tidak ada instruksi tambahan."
	noBodyText            = "Tidak ada teks isi."
	noCTAText             = "Tidak ada ajakan bertindak."
	fallbackPosterProduct = "produk"
)
