// Package langs holds the supported-language catalog exposed by the API.
// This is configuration data for the surface, not translation logic: the
// core passes language tags through untouched and the model server is the
// authority on which codes it accepts.
package langs

// Language pairs an NLLB-200 language tag with a display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// catalog is the subset of NLLB-200 languages advertised by GET /languages.
var catalog = []Language{
	{Code: "eng_Latn", Name: "English"},
	{Code: "khm_Khmr", Name: "Khmer"},
	{Code: "spa_Latn", Name: "Spanish"},
	{Code: "fra_Latn", Name: "French"},
	{Code: "deu_Latn", Name: "German"},
	{Code: "ita_Latn", Name: "Italian"},
	{Code: "por_Latn", Name: "Portuguese"},
	{Code: "rus_Cyrl", Name: "Russian"},
	{Code: "zho_Hans", Name: "Chinese (Simplified)"},
	{Code: "zho_Hant", Name: "Chinese (Traditional)"},
	{Code: "jpn_Jpan", Name: "Japanese"},
	{Code: "kor_Hang", Name: "Korean"},
	{Code: "ara_Arab", Name: "Arabic"},
	{Code: "hin_Deva", Name: "Hindi"},
	{Code: "tha_Thai", Name: "Thai"},
	{Code: "vie_Latn", Name: "Vietnamese"},
	{Code: "ind_Latn", Name: "Indonesian"},
	{Code: "tam_Taml", Name: "Tamil"},
	{Code: "tur_Latn", Name: "Turkish"},
	{Code: "pol_Latn", Name: "Polish"},
}

// Supported returns the advertised languages in catalog order.
func Supported() []Language {
	out := make([]Language, len(catalog))
	copy(out, catalog)
	return out
}

// DisplayName returns the display name for a language tag, or the tag
// itself when it is not in the catalog.
func DisplayName(code string) string {
	for _, l := range catalog {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}
