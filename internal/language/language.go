package language

import (
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 terminological (3-letter)
	alt3    string   // ISO 639-2 bibliographic variant (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms as they appear in track titles
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish", "espanol", "español"}},
	{"fr", "fra", "fre", "French", []string{"french", "francais", "français"}},
	{"de", "deu", "ger", "German", []string{"german", "deutsch"}},
	{"it", "ita", "", "Italian", []string{"italian", "italiano"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese", "portugues", "português"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese", "mandarin", "cantonese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"cs", "ces", "cze", "Czech", []string{"czech"}},
	{"el", "ell", "gre", "Greek", []string{"greek"}},
	{"he", "heb", "", "Hebrew", []string{"hebrew"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian"}},
	{"th", "tha", "", "Thai", []string{"thai"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
	{"uk", "ukr", "", "Ukrainian", []string{"ukrainian"}},
}

// Index maps built at init time.
var (
	byCode map[string]*entry
	byWord map[string]*entry
)

func init() {
	byCode = make(map[string]*entry, len(languages)*3)
	byWord = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode[e.code2] = e
		byCode[e.code3] = e
		if e.alt3 != "" {
			byCode[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

// Parse reduces a raw language token to a canonical ISO 639-1 tag. Accepts
// 2-letter and 3-letter codes, full names, and BCP-47 tags ("en-US").
// Returns false for unrecognized or undetermined input.
func Parse(raw string) (string, bool) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" || token == "und" {
		return "", false
	}
	if e, ok := byCode[token]; ok {
		return e.code2, true
	}
	if e, ok := byWord[token]; ok {
		return e.code2, true
	}
	// Region-qualified or otherwise well-formed BCP-47 input.
	tag, err := xlang.Parse(token)
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence == xlang.No {
		return "", false
	}
	code := base.String()
	if code == "und" || len(code) != 2 {
		return "", false
	}
	return code, true
}

// Word looks up a single word ("english", "français") as a language name.
// Used to infer track language from naming conventions.
func Word(word string) (string, bool) {
	e, ok := byWord[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return "", false
	}
	return e.code2, true
}

// Display returns the human-readable English name for a canonical tag,
// falling back to the x/text display catalog for codes outside the table.
func Display(code string) string {
	token := strings.ToLower(strings.TrimSpace(code))
	if token == "" {
		return "Unknown"
	}
	if e, ok := byCode[token]; ok {
		return e.display
	}
	if tag, err := xlang.Parse(token); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return strings.ToUpper(token)
}
