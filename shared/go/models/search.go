package models

// SearchResult is the answer to a name search.
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}
