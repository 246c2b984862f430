package model

// Pattern describes one catalog entry: a design pattern with a runnable demo
// and a published article.
type Pattern struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Intent   string `json:"intent"`
}
