package floor

import (
	"math/rand"
	"strings"
	"testing"
)

type catalogue map[string]string

func (c catalogue) Get(str string, vars ...interface{}) string {
	if s, ok := c[str]; ok {
		return s
	}
	return str
}

func TestThemeFor_Cycles(t *testing.T) {
	if ThemeFor(0) != Barracks || ThemeFor(1) != Barracks {
		t.Errorf("ThemeFor(0/1) = %v/%v, want Barracks", ThemeFor(0), ThemeFor(1))
	}
	if ThemeFor(6) != Sanctum {
		t.Errorf("ThemeFor(6) = %v, want Sanctum", ThemeFor(6))
	}
	if ThemeFor(7) != Barracks {
		t.Errorf("ThemeFor(7) = %v, want Barracks", ThemeFor(7))
	}
}

func TestFinalFloor(t *testing.T) {
	if !IsFinalFloor(TotalFloors) || IsFinalFloor(TotalFloors-1) {
		t.Error("IsFinalFloor does not single out the deepest floor")
	}
	if NextFloor(TotalFloors) != 0 || NextFloor(3) != 4 {
		t.Errorf("NextFloor = %d/%d, want 0/4", NextFloor(TotalFloors), NextFloor(3))
	}
}

func TestFlavourText_UsesTranslator(t *testing.T) {
	tr := catalogue{"FLOOR_FLAVOUR_FINAL": "The air stops moving."}
	if got := FlavourText(tr, TotalFloors); got != "The air stops moving." {
		t.Errorf("FlavourText(final) = %q", got)
	}
	if got := FlavourText(tr, 1); got != "FLOOR_FLAVOUR_UPPER" {
		t.Errorf("FlavourText(1) = %q, want the untranslated key", got)
	}
}

func TestRoomName_FromTheme(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bases, _ := RoomNames(Forge)
	for i := 0; i < 20; i++ {
		name := RoomName(rng, Forge)
		found := false
		for _, base := range bases {
			if strings.HasSuffix(name, base) {
				found = true
			}
		}
		if !found {
			t.Errorf("RoomName = %q, not built from a Forge base name", name)
		}
	}
}
