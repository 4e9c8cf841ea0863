package types

import "encoding/json"

// ResponseBody is the JSON document returned by the API, kept as raw
// bytes. It may be any JSON value, including a top-level array.
type ResponseBody json.RawMessage

// Decode unmarshals the body into v, for callers that want a typed view.
// An empty body leaves v untouched.
func (b ResponseBody) Decode(v any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, v)
}

// MarshalJSON writes the body back out unchanged.
func (b ResponseBody) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}
	return b, nil
}

// Usage is the typed view of the usage statistics response.
type Usage struct {
	Usage []UsageEntry `json:"usage"`
}

type UsageEntry struct {
	LimitType      string `json:"limitType"`
	Description    string `json:"description"`
	Limit          int64  `json:"limit"`
	CurrentUsage   int64  `json:"currentUsage"`
	UsageRemaining int64  `json:"usageRemaining"`
}
