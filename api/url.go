package api

import "strings"

const DefaultBaseURL = "https://api.bestbuy.com"

// URLBuilder composes BestBuy API URLs from path segments.
// URL is recomputed on every call, so SetPath/AppendPath are reflected
// immediately.
//
//	u := api.NewURLBuilder("search", "contact")
//	u.URL() // https://api.bestbuy.com/search/contact
type URLBuilder struct {
	base     string
	segments []string
}

func NewURLBuilder(segments ...string) *URLBuilder {
	return NewURLBuilderWithBase(DefaultBaseURL, segments...)
}

func NewURLBuilderWithBase(base string, segments ...string) *URLBuilder {
	u := &URLBuilder{base: strings.TrimSuffix(base, "/")}
	u.SetPath(segments...)
	return u
}

func (u *URLBuilder) SetPath(segments ...string) {
	u.segments = append([]string(nil), segments...)
}

func (u *URLBuilder) AppendPath(segments ...string) {
	u.segments = append(u.segments, segments...)
}

func (u *URLBuilder) Segments() []string {
	return append([]string(nil), u.segments...)
}

func (u *URLBuilder) Base() string {
	return u.base
}

func (u *URLBuilder) URL() string {
	return u.base + "/" + strings.Join(u.segments, "/")
}

func (u *URLBuilder) String() string {
	return u.URL()
}
