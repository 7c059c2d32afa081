package utils

// CodeName pairs a remote API code with its display name.
type CodeName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Cities supported by the search form.
var Cities = []CodeName{
	{Code: "C01", Name: "台北市"},
	{Code: "C02", Name: "新北市"},
	{Code: "C03", Name: "桃園市"},
	{Code: "C04", Name: "台中市"},
	{Code: "C05", Name: "台南市"},
	{Code: "C06", Name: "高雄市"},
	{Code: "C07", Name: "基隆市"},
	{Code: "C08", Name: "新竹市"},
	{Code: "C09", Name: "新竹縣"},
	{Code: "C10", Name: "苗栗縣"},
	{Code: "C11", Name: "彰化縣"},
	{Code: "C12", Name: "南投縣"},
	{Code: "C13", Name: "雲林縣"},
	{Code: "C14", Name: "嘉義市"},
	{Code: "C15", Name: "嘉義縣"},
	{Code: "C16", Name: "屏東縣"},
	{Code: "C17", Name: "宜蘭縣"},
	{Code: "C18", Name: "花蓮縣"},
	{Code: "C19", Name: "台東縣"},
	{Code: "C20", Name: "澎湖縣"},
	{Code: "C21", Name: "金門縣"},
	{Code: "C22", Name: "連江縣"},
}

// Instruments supported by the search form.
var Instruments = []CodeName{
	{Code: "DRUMS", Name: "爵士鼓"},
	{Code: "PIANO", Name: "鋼琴"},
}

// InstrumentMap maps instrument codes to display names.
var InstrumentMap = map[string]string{
	"DRUMS": "爵士鼓",
	"PIANO": "鋼琴",
}

// InstrumentName returns the display name for an instrument code,
// falling back to the code itself.
func InstrumentName(code string) string {
	if name, ok := InstrumentMap[code]; ok {
		return name
	}
	return code
}

// ValidCityCode reports whether code names a known city.
func ValidCityCode(code string) bool {
	for _, c := range Cities {
		if c.Code == code {
			return true
		}
	}
	return false
}

// ValidInstrumentCode reports whether code names a known instrument.
func ValidInstrumentCode(code string) bool {
	_, ok := InstrumentMap[code]
	return ok
}
