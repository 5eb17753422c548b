package i18n

import "fmt"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "attr" or "owner").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	attr := quoted(data, "attr")
	owner := data["owner"]
	if t.lang == "ja" {
		switch code {
		case "protected":
			return fmt.Sprintf("%s は %s により保護されています", attr, owner)
		case "protection_conflict":
			return fmt.Sprintf("%s の保護が競合しています: %s", attr, owner)
		case "linearize_error":
			return "祖先クラスを線形化できません"
		case "unknown_param":
			return fmt.Sprintf("無効なパラメータです: %s。操作は取り消されました", data["names"])
		case "unknown_attribute":
			return fmt.Sprintf("属性 %s がありません", attr)
		case "invalid_param":
			return fmt.Sprintf("予約形式のパラメータ名 (%s) は禁止されています", attr)
		case "missing_value":
			return fmt.Sprintf("特別な欠損値の代入 (属性 %s) は禁止されています", attr)
		case "abstract_class":
			return fmt.Sprintf("抽象メンバ %s が未解決のためインスタンス化できません", data["names"])
		case "reserved_attribute":
			return fmt.Sprintf("予約属性名 %s は使用できません", attr)
		case "parse_error":
			return "解析エラー"
		case "invalid_type":
			return fmt.Sprintf("型が不正です: %s", data["type"])
		case "duplicate_class":
			return fmt.Sprintf("クラス %s が重複しています", data["class"])
		case "unknown_base":
			return fmt.Sprintf("未知の基底クラスです: %s", data["base"])
		}
		return code
	}
	switch code {
	case "protected":
		return fmt.Sprintf("%s is protected by %s", attr, owner)
	case "protection_conflict":
		return fmt.Sprintf("%s protection conflict: %s", attr, owner)
	case "linearize_error":
		return "cannot linearize ancestors"
	case "unknown_param":
		return fmt.Sprintf("invalid parameters: %s. Operation cancelled", data["names"])
	case "unknown_attribute":
		return fmt.Sprintf("no attribute %s", attr)
	case "invalid_param":
		return fmt.Sprintf("reserved-style parameter names (%s) are forbidden", attr)
	case "missing_value":
		return fmt.Sprintf("assigning special missing value (attribute %s) is forbidden", attr)
	case "abstract_class":
		return fmt.Sprintf("cannot instantiate with unresolved abstract members: %s", data["names"])
	case "reserved_attribute":
		return fmt.Sprintf("reserved attribute name %s cannot be used", attr)
	case "parse_error":
		return "parse error"
	case "invalid_type":
		return fmt.Sprintf("invalid type: %s", data["type"])
	case "duplicate_class":
		return fmt.Sprintf("duplicate class %s", data["class"])
	case "unknown_base":
		return fmt.Sprintf("unknown base class: %s", data["base"])
	}
	return code
}

func quoted(data map[string]string, key string) string {
	if v, ok := data[key]; ok {
		return "'" + v + "'"
	}
	return "?"
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
