package types

import "strings"

const ContextSessionKey = "session"

const (
	RentPerHour = "per hour"
	RentPerDay  = "per day"
)

const (
	CategoryElectronics    = "ELECTRONICS"
	CategoryFurniture      = "FURNITURE"
	CategoryHomeAppliances = "HOME APPLIANCES"
	CategorySportingGoods  = "SPORTING GOODS"
	CategoryOutdoor        = "OUTDOOR"
	CategoryToys           = "TOYS"
)

var (
	RentTypes = []string{RentPerHour, RentPerDay}

	Categories = []string{
		CategoryElectronics,
		CategoryFurniture,
		CategoryHomeAppliances,
		CategorySportingGoods,
		CategoryOutdoor,
		CategoryToys,
	}

	// Default allowed origins for development
	DefaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
)

// AllowedOrigins merges the development origins with the deployed client
// URL and the comma separated extra list.
func AllowedOrigins(clientURL, extra string) []string {
	origins := make([]string, len(DefaultOrigins))
	copy(origins, DefaultOrigins)

	if clientURL = strings.TrimSpace(clientURL); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(extra, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
