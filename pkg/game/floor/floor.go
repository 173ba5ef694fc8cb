// Package floor defines the fixed floor count, the final floor, and the
// theme each dungeon floor is built around. Themes drive room naming and the
// flavour line shown with a generated map.
package floor

import (
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"
)

// Theme is the purpose a floor was dug for
type Theme int

const (
	Barracks  Theme = iota // Garrison, bunks, drill halls
	Library                // Archives, scriptoria, reading rooms
	Storehouse             // Larders, cellars, granaries
	Forge                  // Smithies, bellows, slag pits
	Catacombs              // Ossuaries, crypts, burial niches
	Sanctum                // Chapels, reliquaries, the inner seat
)

// themeCount is the number of themes (for cycling)
const themeCount = 6

// ThemeFor returns the theme of the given floor level (1-based). Themes cycle
// so consecutive floors differ.
func ThemeFor(level int) Theme {
	if level <= 0 {
		return Barracks
	}
	return Theme((level - 1) % themeCount)
}

func (t Theme) String() string {
	switch t {
	case Barracks:
		return "Barracks"
	case Library:
		return "Library"
	case Storehouse:
		return "Storehouse"
	case Forge:
		return "Forge"
	case Catacombs:
		return "Catacombs"
	case Sanctum:
		return "Sanctum"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// TotalFloors is the fixed depth of the dungeon
const TotalFloors = 10

// IsFinalFloor returns true if the given level (1-based) is the deepest floor
func IsFinalFloor(level int) bool {
	return level >= TotalFloors
}

// NextFloor returns the level below the given one, or 0 from the final floor
func NextFloor(level int) int {
	if level <= 0 || level >= TotalFloors {
		return 0
	}
	return level + 1
}

// FlavourKey returns the message key of the flavour line for a floor level.
// Deeper floors get grimmer lines.
func FlavourKey(level int) string {
	switch {
	case level <= 3:
		return "FLOOR_FLAVOUR_UPPER"
	case level <= 6:
		return "FLOOR_FLAVOUR_MIDDLE"
	case level < TotalFloors:
		return "FLOOR_FLAVOUR_DEEP"
	default:
		return "FLOOR_FLAVOUR_FINAL"
	}
}

// Translator looks up message keys. *gotext.Po satisfies it.
type Translator interface {
	Get(str string, vars ...interface{}) string
}

// FlavourText returns the translated flavour line for a floor level. A nil
// tr uses the global gotext catalogue. Keys are constants to satisfy vet.
func FlavourText(tr Translator, level int) string {
	get := gotext.Get
	if tr != nil {
		get = tr.Get
	}
	switch FlavourKey(level) {
	case "FLOOR_FLAVOUR_MIDDLE":
		return get("FLOOR_FLAVOUR_MIDDLE")
	case "FLOOR_FLAVOUR_DEEP":
		return get("FLOOR_FLAVOUR_DEEP")
	case "FLOOR_FLAVOUR_FINAL":
		return get("FLOOR_FLAVOUR_FINAL")
	default:
		return get("FLOOR_FLAVOUR_UPPER")
	}
}

// RoomNames returns thematic room base names and adjectives for a theme
func RoomNames(t Theme) (bases []string, adjectives []string) {
	adjectives = []string{
		"Collapsed", "Flooded", "Forgotten", "Sealed",
		"Smouldering", "Silent", "Crumbling", "Overgrown",
	}
	switch t {
	case Barracks:
		bases = []string{
			"Bunk Hall", "Drill Yard", "Mess", "Guardroom", "Quartermaster's Store",
			"Officers' Quarters", "Muster Hall", "Watch Post",
		}
	case Library:
		bases = []string{
			"Archive", "Scriptorium", "Reading Room", "Map Room", "Bindery",
			"Index Vault", "Lectern Hall", "Copyists' Cell",
		}
	case Storehouse:
		bases = []string{
			"Larder", "Wine Cellar", "Granary", "Cold Store", "Salt Room",
			"Cask Vault", "Root Cellar", "Loading Hall",
		}
	case Forge:
		bases = []string{
			"Smithy", "Bellows Room", "Slag Pit", "Anvil Hall", "Quench Pool",
			"Ore Store", "Casting Floor", "Charcoal Bunker",
		}
	case Catacombs:
		bases = []string{
			"Ossuary", "Crypt", "Burial Niche", "Embalming Room", "Bone Gallery",
			"Mourners' Hall", "Tomb", "Charnel Pit",
		}
	case Sanctum:
		bases = []string{
			"Chapel", "Reliquary", "Vestry", "Altar Hall", "Cloister",
			"Inner Sanctum", "Font Room", "Cantor's Gallery",
		}
	default:
		bases = []string{"Hall", "Chamber", "Cell", "Vault", "Gallery"}
	}
	return bases, adjectives
}

// RoomName draws "<adjective> <base>" for a theme
func RoomName(rng *rand.Rand, t Theme) string {
	bases, adjectives := RoomNames(t)
	return fmt.Sprintf("%s %s", adjectives[rng.Intn(len(adjectives))], bases[rng.Intn(len(bases))])
}
