package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type image struct {
	Title    string
	Category string
}

var images = []image{
	{Title: "Community Outreach 2024", Category: "Events"},
	{Title: "Youth Empowerment Workshop", Category: "Programs"},
	{Title: "Women Health Seminar", Category: "Programs"},
	{Title: "Team Meeting", Category: "Team"},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		want     []string
	}{
		{name: "No filters returns everything", search: "", category: "All", want: []string{"Community Outreach 2024", "Youth Empowerment Workshop", "Women Health Seminar", "Team Meeting"}},
		{name: "Category only", search: "", category: "Programs", want: []string{"Youth Empowerment Workshop", "Women Health Seminar"}},
		{name: "Search is case insensitive", search: "WORKSHOP", category: "all", want: []string{"Youth Empowerment Workshop"}},
		{name: "Search and category combine", search: "e", category: "Team", want: []string{"Team Meeting"}},
		{name: "No match", search: "gala", category: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(images,
				func(img image) bool { return Contains(img.Title, tt.search) },
				func(img image) bool { return Category(img.Category, tt.category) },
			)

			titles := make([]string, 0, len(got))
			for _, img := range got {
				titles = append(titles, img.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilter_NilPredicateIgnored(t *testing.T) {
	got := Filter(images, nil)
	assert.Len(t, got, len(images))
}

func TestAnyContains(t *testing.T) {
	assert.True(t, AnyContains("okafor", "Chinedu Okafor", "chinedu.o@email.com"))
	assert.True(t, AnyContains("email.com", "Chinedu Okafor", "chinedu.o@email.com"))
	assert.True(t, AnyContains("  ", "anything"))
	assert.False(t, AnyContains("ibrahim", "Chinedu Okafor", "chinedu.o@email.com"))
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(true, "all", "read", "unread"))
	assert.True(t, Bool(true, "read", "read", "unread"))
	assert.False(t, Bool(false, "read", "read", "unread"))
	assert.True(t, Bool(false, "unread", "read", "unread"))
	assert.False(t, Bool(true, "unread", "read", "unread"))
}
