package lang

// Language represents supported output languages for commit messages
type Language string

const (
	English  Language = "en"
	French   Language = "fr"
	Spanish  Language = "es"
	German   Language = "de"
	Chinese  Language = "zh"
	Japanese Language = "ja"
)

// String returns the string representation of the language
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the language is valid
func (l Language) IsValid() bool {
	switch l {
	case English, French, Spanish, German, Chinese, Japanese:
		return true
	default:
		return false
	}
}

// DisplayName returns the English display name of the language, suitable for
// embedding in a translation prompt
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case French:
		return "French"
	case Spanish:
		return "Spanish"
	case German:
		return "German"
	case Chinese:
		return "Chinese"
	case Japanese:
		return "Japanese"
	default:
		return string(l)
	}
}

// DefaultLanguage returns the default language
func DefaultLanguage() Language {
	return English
}

// ParseLanguage parses a string to a Language
func ParseLanguage(s string) Language {
	l := Language(s)
	if l.IsValid() {
		return l
	}
	return DefaultLanguage()
}
