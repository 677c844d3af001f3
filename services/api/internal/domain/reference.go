package domain

// SportCategory is a kind of sport an event can be organized for.
type SportCategory struct {
	ID   string
	Name string
}

type City struct {
	ID   string
	Name string
}

// Area is a neighbourhood inside a city.
type Area struct {
	ID     string
	Name   string
	CityID string
}

// FilterAreas returns the areas of cityID, keeping input order. No city
// selected means no areas to offer.
func FilterAreas(all []Area, cityID string) []Area {
	if cityID == "" {
		return nil
	}
	out := make([]Area, 0, len(all))
	for _, a := range all {
		if a.CityID == cityID {
			out = append(out, a)
		}
	}
	return out
}

// AreaInCity reports whether areaID is one of the areas listed for cityID.
func AreaInCity(all []Area, cityID, areaID string) bool {
	for _, a := range all {
		if a.ID == areaID {
			return a.CityID == cityID
		}
	}
	return false
}
