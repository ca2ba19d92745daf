package mapcanvas

import "golang.org/x/text/language"

// supported display languages, English first as the fallback.
var supported = []language.Tag{
	language.English,
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// LocalizedName is a bilingual English/Arabic display name. Either field
// may be empty; In falls back to the other.
type LocalizedName struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Name is shorthand for an English-only LocalizedName.
func Name(en string) LocalizedName {
	return LocalizedName{En: en}
}

// In returns the name variant best matching the given language tag,
// using BCP 47 matching (so "ar-SA" selects the Arabic variant).
// An empty selected variant falls back to the other one.
func (n LocalizedName) In(tag language.Tag) string {
	_, idx, _ := matcher.Match(tag)
	if supported[idx] == language.Arabic {
		if n.Ar != "" {
			return n.Ar
		}
		return n.En
	}
	if n.En != "" {
		return n.En
	}
	return n.Ar
}

// IsEmpty reports whether both variants are empty.
func (n LocalizedName) IsEmpty() bool {
	return n.En == "" && n.Ar == ""
}
