package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent while browsing floors.
type Action int

const (
	ActionNone Action = iota

	// Navigation between floors
	ActionNextSeed
	ActionLevelUp
	ActionLevelDown
	ActionSwitchGenerator

	// Meta / output
	ActionHelp
	ActionQuit
	ActionDump
	ActionScreenshot
	ActionShowcase
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "n", "arrow_up", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// NewRawInput stamps a code read from device with the current time
func NewRawInput(device Device, code string) RawInput {
	return RawInput{Device: device, Code: code, Timestamp: time.Now()}
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Key presses read in raw mode are already discrete, but the distinct type
// keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Another floor at the same level
	"n":           ActionNextSeed,
	"next":        ActionNextSeed,
	"enter":       ActionNextSeed,
	"arrow_right": ActionNextSeed,

	// Deeper / shallower floors
	"+":          ActionLevelUp,
	"=":          ActionLevelUp,
	"arrow_down": ActionLevelUp,
	"-":          ActionLevelDown,
	"arrow_up":   ActionLevelDown,

	"g":         ActionSwitchGenerator,
	"generator": ActionSwitchGenerator,

	// Help
	"?":    ActionHelp,
	"help": ActionHelp,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Output
	"d":          ActionDump,
	"dump":       ActionDump,
	"h":          ActionScreenshot,
	"screenshot": ActionScreenshot,
	"s":          ActionShowcase,
	"showcase":   ActionShowcase,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionNextSeed:
		return "Next Seed"
	case ActionLevelUp:
		return "Deeper Floor"
	case ActionLevelDown:
		return "Shallower Floor"
	case ActionSwitchGenerator:
		return "Switch Generator"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionDump:
		return "Dump Map"
	case ActionScreenshot:
		return "Save HTML"
	case ActionShowcase:
		return "Showcase"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// The quit bindings cannot be removed.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if a == ActionQuit && (c == "q" || c == "escape") {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && code != "q" && code != "escape" {
		bindings[code] = action
	}
}
