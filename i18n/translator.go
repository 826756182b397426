package i18n

import "sort"

// Translator retrieves localized messages for validation message codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var base string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			base = "型が不正です"
		case "required":
			base = "必須の回答が不足しています"
		case "too_small":
			base = "小さすぎます"
		case "too_big":
			base = "大きすぎます"
		case "too_few":
			base = "項目が少なすぎます"
		case "too_many":
			base = "項目が多すぎます"
		case "invalid_enum":
			base = "選択肢が不正です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			base = "invalid type"
		case "required":
			base = "answer required"
		case "too_small":
			base = "too small"
		case "too_big":
			base = "too big"
		case "too_few":
			base = "too few items"
		case "too_many":
			base = "too many items"
		case "invalid_enum":
			base = "invalid choice"
		}
	}
	if base == "" {
		base = code
	}
	return base + renderData(data)
}

// renderData appends metadata deterministically: " (got 42, min 1)".
func renderData(data map[string]string) string {
	if len(data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := " ("
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += k + " " + data[k]
	}
	return out + ")"
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
