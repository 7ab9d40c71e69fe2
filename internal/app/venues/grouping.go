package venues

import "fyyur/shared/go/models"

// GroupByArea walks venues already ordered by (state, city) and collects them
// into areas.
//
// A new area starts only when both state and city differ from the current
// area, and a venue is appended only when both match. A venue matching the
// current area on exactly one of the two fits neither case and is left out
// of the listing.
func GroupByArea(venues []models.VenueSummary) []models.Area {
	areas := []models.Area{}
	for _, v := range venues {
		last := len(areas) - 1
		switch {
		case last < 0 || (v.State != areas[last].State && v.City != areas[last].City):
			areas = append(areas, models.Area{City: v.City, State: v.State, Venues: []models.VenueSummary{v}})
		case v.State == areas[last].State && v.City == areas[last].City:
			areas[last].Venues = append(areas[last].Venues, v)
		}
	}
	return areas
}
