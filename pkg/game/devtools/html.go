package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"dungeonforge/pkg/game/generator"
)

// SaveMapHTML saves a generated floor as an HTML page. An empty path writes
// map-<timestamp>.html in the working directory. Returns the file name written.
func SaveMapHTML(res *generator.Result, path string) (string, error) {
	if res == nil || res.Grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = fmt.Sprintf("map-%s.html", time.Now().Format("20060102-150405"))
	}
	if err := os.WriteFile(path, []byte(MapHTML(res)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// MapHTML renders a generated floor as a standalone HTML page
func MapHTML(res *generator.Result) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon Floor</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .subtitle {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 14px;
        }
        .wall { color: #444; }
        .room { color: #ddd; font-weight: bold; }
        .corridor { color: #ffff00; }
        .rooms {
            margin-top: 20px;
            color: #888;
        }
        .room-name { color: #bb86fc; }
    </style>
</head>
<body>
`)

	// Header
	sb.WriteString(fmt.Sprintf(`    <div class="header">%s: Floor %d</div>`+"\n", html.EscapeString(res.Generator), res.Level))
	sb.WriteString(fmt.Sprintf(`    <div class="subtitle">Theme: %s, seed %d, %d rooms</div>`+"\n", res.Theme, res.Seed, len(res.Rooms)))

	// Map container
	sb.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range glyphs(res.Grid) {
		sb.WriteString(`        <div class="map-row">`)
		for start := 0; start < len(row); {
			end := start
			for end < len(row) && row[end] == row[start] {
				end++
			}
			sb.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, glyphClass(row[start]), html.EscapeString(string(row[start:end]))))
			start = end
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	// Room list
	sb.WriteString(`    <div class="rooms">Rooms: `)
	if len(res.Rooms) == 0 {
		sb.WriteString(`<span style="color:#666">(none)</span>`)
	}
	for i, r := range res.Rooms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf(`<span class="room-name">%s</span>`, html.EscapeString(r.Data)))
	}
	sb.WriteString(`</div>` + "\n")

	sb.WriteString(`</body>
</html>
`)
	return sb.String()
}

// glyphClass returns the CSS class for a map glyph
func glyphClass(r rune) string {
	switch r {
	case IconRoom:
		return "room"
	case IconCorridor:
		return "corridor"
	default:
		return "wall"
	}
}
