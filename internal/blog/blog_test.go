package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "elixir-26-registrations-open", Slugify("ELIXIR'26 Registrations Open!"))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World  "))
	assert.Equal(t, "100-days-to-go", Slugify("100 Days To Go"))
	assert.Equal(t, "", Slugify("!!!"))
}
