package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContentCategory(t *testing.T) {
	c, ok := ParseContentCategory(" Contest ")
	assert.True(t, ok)
	assert.Equal(t, CategoryContest, c)

	_, ok = ParseContentCategory("all")
	assert.False(t, ok)

	_, ok = ParseContentCategory("")
	assert.False(t, ok)
}

func TestContentMatches(t *testing.T) {
	c := Content{
		Title:       "Spring AI Hackathon",
		Category:    CategoryContest,
		Description: "Build something with machine learning over a weekend.",
	}

	assert.True(t, c.Matches(ContentFilter{}))
	assert.True(t, c.Matches(ContentFilter{Category: CategoryContest}))
	assert.False(t, c.Matches(ContentFilter{Category: CategoryEvent}))
	assert.True(t, c.Matches(ContentFilter{Query: "hackathon"}))
	assert.True(t, c.Matches(ContentFilter{Query: "MACHINE learning"}))
	assert.False(t, c.Matches(ContentFilter{Query: "blockchain"}))
	assert.True(t, c.Matches(ContentFilter{Category: CategoryContest, Query: "spring"}))
	assert.False(t, c.Matches(ContentFilter{Category: CategoryEvent, Query: "spring"}))
}

func TestPostMatches(t *testing.T) {
	p := CommunityPost{Title: "Looking for teammates", Body: "Design contest this fall", Category: "recruit"}

	assert.True(t, p.Matches(PostFilter{}))
	assert.True(t, p.Matches(PostFilter{Category: "Recruit"}))
	assert.False(t, p.Matches(PostFilter{Category: "review"}))
	assert.True(t, p.Matches(PostFilter{Query: "teammates"}))
	assert.True(t, p.Matches(PostFilter{Query: "design CONTEST"}))
	assert.False(t, p.Matches(PostFilter{Query: "internship"}))
}
