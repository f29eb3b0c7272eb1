package allocator

import (
	"github.com/handiism/osuap/internal/model"
)

// Root region names of the progression graph.
const (
	MenuRegion       = "Menu"
	SongSelectRegion = "Song Select"
)

// Exit connects a region to another. An empty Requires means the exit is
// always open.
type Exit struct {
	To       string `json:"to"`
	Requires string `json:"requires,omitempty"`
}

// Region is a node of the progression graph with the locations it owns.
type Region struct {
	Name      string           `json:"name"`
	Exits     []Exit           `json:"exits,omitempty"`
	Locations []model.Location `json:"locations,omitempty"`
}

// BuildRegions returns the graph Menu -> Song Select -> one region per slot.
//
// Slot regions are ordered starting slots first, then a shuffled copy of
// the included slots. Every slot region owns its first location; the first
// locationCount - len(slots) regions in that order also own a second one.
// Each slot region is entered from Song Select with the unlock item of the
// same name.
func BuildRegions(starting, included []string, locationCount int, rng Shuffler) ([]Region, error) {
	order := append([]string(nil), starting...)
	shuffled := append([]string(nil), included...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	order = append(order, shuffled...)

	doubles := locationCount - len(order)

	menu := Region{Name: MenuRegion, Exits: []Exit{{To: SongSelectRegion}}}
	hub := Region{Name: SongSelectRegion, Exits: make([]Exit, 0, len(order))}
	slots := make([]Region, 0, len(order))

	for i, name := range order {
		hub.Exits = append(hub.Exits, Exit{To: name, Requires: name})

		first, err := model.NewLocation(name, 1)
		if err != nil {
			return nil, err
		}
		region := Region{Name: name, Locations: []model.Location{first}}
		if i < doubles {
			second, err := model.NewLocation(name, 2)
			if err != nil {
				return nil, err
			}
			region.Locations = append(region.Locations, second)
		}
		slots = append(slots, region)
	}

	return append([]Region{menu, hub}, slots...), nil
}

// Locations flattens the locations of every region in graph order.
func Locations(regions []Region) []model.Location {
	var out []model.Location
	for _, r := range regions {
		out = append(out, r.Locations...)
	}
	return out
}

// Reachable returns the names of the regions reachable from Menu given the
// items held. It walks the exits breadth-first.
func Reachable(regions []Region, has func(item string) bool) []string {
	byName := make(map[string]Region, len(regions))
	for _, r := range regions {
		byName[r.Name] = r
	}

	seen := map[string]bool{MenuRegion: true}
	queue := []string{MenuRegion}
	var out []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		out = append(out, name)
		for _, exit := range byName[name].Exits {
			if seen[exit.To] {
				continue
			}
			if exit.Requires != "" && !has(exit.Requires) {
				continue
			}
			seen[exit.To] = true
			queue = append(queue, exit.To)
		}
	}
	return out
}
