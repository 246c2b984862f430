package model

import "time"

// Article is the persisted metadata of a published pattern article.
// The article body itself lives in object storage under StorageKey.
type Article struct {
	Slug        string    `json:"slug"`
	StorageKey  string    `json:"storage_key"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	PublishedAt time.Time `json:"published_at"`
}
