package models

// Venue is a physical location that can host shows.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// VenueSummary is the short form of a venue used by listings and search hits.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city"`
	State            string `json:"state"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues that share a city and state.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetail is a venue together with its shows split around "now".
type VenueDetail struct {
	Venue
	PastShows          []ShowWithDetails `json:"past_shows"`
	UpcomingShows      []ShowWithDetails `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}
