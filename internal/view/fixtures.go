package view

// Static page content. These are presentation fixtures, not remote data:
// the leaderboard is mocked, stations and the map are campus reference
// material maintained by hand.

type Station struct {
	Name    string
	Details string
	Status  string
}

const (
	StationAvailable   = "Available"
	StationInUse       = "In Use"
	StationMaintenance = "Maintenance"
)

var Stations = []Station{
	{Name: "Chai Bugs", Details: "4 Level 2 Chargers", Status: StationAvailable},
	{Name: "Student lounge", Details: "2 DC Fast Chargers", Status: StationInUse},
	{Name: "Science Building Lot D", Details: "6 Level 2 Chargers", Status: StationAvailable},
	{Name: "Basketball Court", Details: "8 Level 2 Chargers", Status: StationMaintenance},
	{Name: "UniKamp Office", Details: "4 Level 2 Chargers", Status: StationAvailable},
}

// FilterStations keeps stations in the given status; "All" keeps everything.
func FilterStations(filter string) []Station {
	if filter == "All" || filter == "" {
		return Stations
	}
	out := make([]Station, 0, len(Stations))
	for _, s := range Stations {
		if s.Status == filter {
			out = append(out, s)
		}
	}
	return out
}

type LeaderboardEntry struct {
	Rank    int
	Name    string
	Savings string
}

var Leaderboard = []LeaderboardEntry{
	{Rank: 1, Name: "Suryansh K.", Savings: "15.8 kg CO₂"},
	{Rank: 2, Name: "Tanay M.", Savings: "12.2 kg CO₂"},
	{Rank: 3, Name: "Mayank H.", Savings: "11.6 kg CO₂"},
	{Rank: 4, Name: "Dev C.", Savings: "9.8 kg CO₂"},
	{Rank: 5, Name: "Irisha D.", Savings: "9.0 kg CO₂"},
	{Rank: 6, Name: "Ayush K.", Savings: "8.5 kg CO₂"},
	{Rank: 7, Name: "Shreya K.", Savings: "7.9 kg CO₂"},
}

type MapPin struct {
	Label string
	Top   string
	Left  string
	Right string
}

type MapBuilding struct {
	Name   string
	Top    string
	Left   string
	Right  string
	Width  string
	Height string
}

var MapBuildings = []MapBuilding{
	{Name: "Library", Top: "15px", Left: "30px", Width: "150px", Height: "120px"},
	{Name: "Sagar Sirs Lab", Top: "10px", Left: "350px", Width: "200px", Height: "120px"},
	{Name: "Chai Bugs", Top: "320px", Left: "350px", Width: "240px", Height: "120px"},
	{Name: "Suryansh's Office", Top: "180px", Left: "350px", Width: "240px", Height: "120px"},
	{Name: "UniKamp Office", Top: "10px", Left: "700px", Width: "300px", Height: "120px"},
	{Name: "Science Dept.", Top: "200px", Right: "50px", Width: "230px", Height: "230px"},
	{Name: "Student Lounge", Top: "200px", Right: "850px", Width: "180px", Height: "230px"},
}

var MapPins = []MapPin{
	{Label: "⚡", Top: "115px", Left: "215px"},
	{Label: "⚡", Top: "325px", Left: "285px"},
	{Label: "⚡", Top: "80px", Right: "350px"},
	{Label: "⚡", Top: "370px", Right: "320px"},
	{Label: "⚡", Top: "350px", Right: "805px"},
}

type TeamMember struct {
	Name string
	Role string
}

var Team = []TeamMember{
	{Name: "Ayush Kushwaha", Role: "Backend & Systems Architecture"},
	{Name: "Tanay Malvankar", Role: "Database & API Optimization"},
	{Name: "Dev Chand", Role: "UI/UX Design & Frontend Logic"},
}
