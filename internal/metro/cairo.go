package metro

// Line ids of the Cairo network.
const (
	LineOne   LineID = "L1"
	LineTwo   LineID = "L2"
	LineThree LineID = "L3"
)

// CairoLines returns the Cairo Metro topology as drawn on the official map.
func CairoLines() []LineDefinition {
	return []LineDefinition{
		{
			ID:    LineOne,
			Name:  "الخط الأول",
			Color: "#d32f2f",
			Stations: []string{
				"المرج الجديدة", "المرج", "عزبة النخل", "عين شمس", "المطرية", "حلمية الزيتون", "حدائق الزيتون",
				"سراي القبة", "حمامات القبة", "كوبري القبة", "منشية الصدر", "الدمرداش", "غمرة", "الشهداء",
				"ناصر", "السادات", "سعد زغلول", "السيدة زينب", "المنيل", "مار جرجس", "الملك الصالح", "دار السلام",
				"حدائق المعادي", "المعادي", "ثكنات المعادي", "طره البلد", "كوتسيكا", "طرة الأسمنت", "المعصرة",
				"حدائق حلوان", "وادي حوف", "جامعة حلوان", "عين حلوان", "حلوان",
			},
		},
		{
			ID:    LineTwo,
			Name:  "الخط الثاني",
			Color: "#f9a825",
			Stations: []string{
				"شبرا الخيمة", "كلية الزراعة", "المظلات", "الخلفاوي", "سانت تريزا", "روض الفرج", "مسرة",
				"الشهداء", "العتبة", "محمد نجيب", "السادات", "الأوبرا", "الدقي", "البحوث", "جامعة القاهرة",
				"فيصل", "الجيزة", "أم المصريين", "ساقية مكي", "المنيب",
			},
		},
		{
			ID:    LineThree,
			Name:  "الخط الثالث",
			Color: "#2e7d32",
			Stations: []string{
				"عدلي منصور", "الهايكستب", "عمر بن الخطاب", "قباء", "هشام بركات", "النزهة", "نادي الشمس",
				"ألف مسكن", "هارون", "هليوبوليس", "كلية البنات", "الأهرام", "ميدان هليوبوليس", "أرض المعارض",
				"الاستاد", "عباس العقاد", "العباسية", "عبده باشا", "الجيش", "باب الشعرية", "العتبة",
				"ناصر", "السودان", "إمبابة", "البوهي", "القومية العربية", "الطريق الدائري", "محور روض الفرج",
			},
		},
	}
}

// DefaultNetwork builds the Cairo network.
func DefaultNetwork() (*Network, error) {
	return BuildNetwork(CairoLines())
}
