// Package devtools provides developer tools for inspecting generated maps.
package devtools

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
)

const mapDumpFilename = "map.txt"

// DumpMapToFile writes a full debug dump of a generated floor to path
// (map.txt when empty): metadata, legend, map, and room and corridor lists.
// Format is human- and LLM-readable (sections, key: value, consistent
// structure). Returns the absolute path written.
func DumpMapToFile(res *generator.Result, path string) (string, error) {
	if res == nil || res.Grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteMapDump(f, res)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteMapDump writes the dump DumpMapToFile produces to w
func WriteMapDump(w io.Writer, res *generator.Result) {
	grid := res.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (floor layout, rooms, corridors) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "generator: %s\n", res.Generator)
	fmt.Fprintf(w, "level: %d\n", res.Level)
	fmt.Fprintf(w, "level_seed: %d\n", res.Seed)
	fmt.Fprintf(w, "theme: %s\n", res.Theme)
	fmt.Fprintf(w, "grid_width: %d\n", grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=east, y=north; map top row is the highest y)\n")
	fmt.Fprintf(w, "rooms_placed: %d\n", res.Placed)
	fmt.Fprintf(w, "rooms_dropped: %d\n", res.Dropped)
	fmt.Fprintf(w, "connections: %d\n", res.Connections)
	fmt.Fprintf(w, "stitched_corridors: %d\n", res.Stitched)
	fmt.Fprintf(w, "carved_cells: %d\n", grid.CarvedCells())
	fmt.Fprintf(w, "dead_ends: %d\n", countDeadEnds(grid))
	fmt.Fprintf(w, "connected: %v\n", grid.IsConnected())
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (map symbols) ---")
	fmt.Fprintf(w, "%c = room floor  %c = corridor  %c = wall or rock  (each cell is followed by its east wall; every other line holds south walls)\n",
		IconRoom, IconCorridor, IconWall)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	fmt.Fprint(w, RenderASCII(grid))
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "Rooms:")
	if len(res.Rooms) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, r := range res.Rooms {
		cx, cy := r.Center()
		fmt.Fprintf(w, "  name: %q x: %d y: %d width: %d height: %d center: %d,%d\n", r.Data, r.MinX, r.MinY, r.Width, r.Height, cx, cy)
	}
	fmt.Fprintln(w, "")

	// --- Corridors by strategy ---
	fmt.Fprintln(w, "Corridors:")
	if len(res.Carved.Corridors) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, strategy := range slices.Sorted(maps.Keys(res.Carved.Corridors)) {
		fmt.Fprintf(w, "  rasterizer: %s count: %d\n", strategy, res.Carved.Corridors[strategy])
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// countDeadEnds counts carved cells with a single exit
func countDeadEnds(g *world.Grid) int {
	n := 0
	g.ForEachCell(func(x, y int, cell *world.Cell) {
		if cell.IsDeadEnd() {
			n++
		}
	})
	return n
}
