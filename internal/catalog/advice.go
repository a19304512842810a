package catalog

import "github.com/terraincognita07/medlifequest/internal/models"

var adviceTable = map[models.SymptomCategory]string{
	models.CategoryHeadache:        "Stay hydrated and rest in a quiet, dark room. If headaches persist or worsen, consult a healthcare provider.",
	models.CategoryFatigue:         "Ensure you're getting 7-9 hours of quality sleep. Regular exercise and a balanced diet can help improve energy levels.",
	models.CategoryDigestive:       "Eat smaller, more frequent meals. Avoid spicy or fatty foods. Stay hydrated and consider probiotic-rich foods.",
	models.CategoryRespiratory:     "Stay hydrated, use a humidifier, and rest. If breathing difficulties persist or worsen, seek medical attention immediately.",
	models.CategoryMusculoskeletal: "Apply ice for acute pain or heat for chronic pain. Gentle stretching and proper posture can help. Consider physical therapy if pain persists.",
	models.CategorySkin:            "Keep the area clean and moisturized. Avoid irritants and allergens. If symptoms persist or worsen, consult a dermatologist.",
	models.CategoryMental:          "Practice stress-reduction techniques like meditation or deep breathing. Regular exercise and adequate sleep are important. Consider speaking with a mental health professional.",
	models.CategoryOther:           "Monitor your symptoms carefully. Keep a symptom diary to track patterns. Consult a healthcare provider if symptoms persist or cause concern.",
}

// AdviceFor returns the canned advice for a category. Every valid category has
// an entry; an invalid category yields the empty string.
func AdviceFor(category models.SymptomCategory) string {
	return adviceTable[category]
}
