package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage_IsValid(t *testing.T) {
	assert.True(t, English.IsValid())
	assert.True(t, French.IsValid())
	assert.True(t, Japanese.IsValid())
	assert.False(t, Language("xx").IsValid())
	assert.False(t, Language("").IsValid())
}

func TestLanguage_DisplayName(t *testing.T) {
	assert.Equal(t, "English", English.DisplayName())
	assert.Equal(t, "French", French.DisplayName())
	assert.Equal(t, "Spanish", Spanish.DisplayName())
	assert.Equal(t, "xx", Language("xx").DisplayName())
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, French, ParseLanguage("fr"))
	assert.Equal(t, English, ParseLanguage("unknown"))
	assert.Equal(t, English, ParseLanguage(""))
}
