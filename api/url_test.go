package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_URLBuilder(t *testing.T) {
	testCases := []struct {
		name      string
		segments  []string
		expectUrl string
	}{
		{name: "search contact", segments: []string{"search", "contact"}, expectUrl: "https://api.bestbuy.com/search/contact"},
		{name: "no segments", expectUrl: "https://api.bestbuy.com/"},
		{name: "single segment", segments: []string{"lookup"}, expectUrl: "https://api.bestbuy.com/lookup"},
		{name: "usage", segments: pathUsage, expectUrl: "https://api.bestbuy.com/lookup/usage"},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expectUrl, NewURLBuilder(tt.segments...).URL())
		})
	}
}

func Test_URLBuilder_recomputes(t *testing.T) {
	u := NewURLBuilder("search")
	assert.Equal(t, "https://api.bestbuy.com/search", u.URL())

	u.SetPath("search", "contact")
	assert.Equal(t, "https://api.bestbuy.com/search/contact", u.URL())

	u.AppendPath("enrich")
	assert.Equal(t, "https://api.bestbuy.com/search/contact/enrich", u.String())

	u.SetPath()
	assert.Equal(t, "https://api.bestbuy.com/", u.URL())
}

func Test_URLBuilder_does_not_alias_segments(t *testing.T) {
	segments := []string{"search", "contact"}
	u := NewURLBuilder(segments...)
	segments[1] = "company"
	assert.Equal(t, "https://api.bestbuy.com/search/contact", u.URL())

	got := u.Segments()
	got[0] = "changed"
	assert.Equal(t, []string{"search", "contact"}, u.Segments())
}

func Test_URLBuilder_base(t *testing.T) {
	u := NewURLBuilderWithBase("http://127.0.0.1:8080/", "lookup", "usage")
	assert.Equal(t, "http://127.0.0.1:8080", u.Base())
	assert.Equal(t, "http://127.0.0.1:8080/lookup/usage", u.URL())
}
