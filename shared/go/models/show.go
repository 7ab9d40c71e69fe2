package models

import "time"

// Show is a scheduled event linking one artist to one venue.
type Show struct {
	ID       int64     `json:"id"`
	ArtistID int64     `json:"artist_id"`
	VenueID  int64     `json:"venue_id"`
	StartsAt time.Time `json:"start_time"`
}

// ShowWithDetails includes the names and images of both sides of a show.
// Populated via JOIN queries.
type ShowWithDetails struct {
	Show
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
}

// StartTime lets shows be partitioned by schedule helpers.
func (s ShowWithDetails) StartTime() time.Time {
	return s.StartsAt
}
