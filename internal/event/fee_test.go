package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxTeamSize(t *testing.T) {
	assert.Equal(t, 1, MaxTeamSize(nil))
	assert.Equal(t, 1, MaxTeamSize([]string{}))
	assert.Equal(t, 1, MaxTeamSize([]string{"quicktalk"}))
	assert.Equal(t, 2, MaxTeamSize([]string{"tech-hunt"}))
	assert.Equal(t, 5, MaxTeamSize([]string{"tech-hunt", "short-film", "quicktalk"}))
	assert.Equal(t, 1, MaxTeamSize([]string{"no-such-event"}))
}

func TestResizeTeamPreservesPrefix(t *testing.T) {
	members := []string{"Asha", "Vikram", "Ravi"}

	grown := ResizeTeam(members, 5)
	assert.Equal(t, []string{"Asha", "Vikram", "Ravi", ""}, grown)

	shrunk := ResizeTeam(members, 2)
	assert.Equal(t, []string{"Asha"}, shrunk)

	solo := ResizeTeam(members, 1)
	assert.Empty(t, solo)
}

func TestTotalFeeCountsOnlyNamedMembers(t *testing.T) {
	assert.Equal(t, 250, TotalFee(nil))
	assert.Equal(t, 250, TotalFee([]string{"", "   ", ""}))
	assert.Equal(t, 500, TotalFee([]string{"Asha", ""}))
	assert.Equal(t, 1000, TotalFee([]string{"Asha", "Vikram", " Ravi "}))
}

func TestNamedMembersTrims(t *testing.T) {
	assert.Equal(t, []string{"Asha", "Ravi"}, NamedMembers([]string{" Asha ", "", "Ravi", "  "}))
	assert.Empty(t, NamedMembers([]string{"", " "}))
}

func TestTitlesSkipsUnknownIDs(t *testing.T) {
	titles := Titles([]string{"tech-hunt", "bogus", "quicktalk"})
	assert.Equal(t, []string{"TECH HUNT", "QUICKTALK"}, titles)
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Catalog {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		assert.NotEmpty(t, e.Title)
		assert.GreaterOrEqual(t, e.MaxMembers, 1)
	}
}
