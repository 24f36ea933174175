package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/generator"
	gameworld "towergen/pkg/game/world"
)

// WriteScreenshotHTML renders the whole level as a coloured HTML page
func WriteScreenshotHTML(w io.Writer, lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return ErrNoLevel
	}
	g := lvl.Grid

	var page strings.Builder
	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>towergen - Level Snapshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .summary { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .legend { margin-top: 20px; color: #888; }
        .warnings { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .warning { color: #ffb000; margin: 5px 0; }
`)
	for _, info := range gameworld.All() {
		fmt.Fprintf(&page, "        .%s { color: #%02x%02x%02x; }\n",
			cssClass(info), info.Color.R, info.Color.G, info.Color.B)
	}
	page.WriteString(`    </style>
</head>
<body>
`)

	fmt.Fprintf(&page, `    <div class="header">Seed %d</div>`+"\n", g.Seed())
	fmt.Fprintf(&page, `    <div class="summary">%s</div>`+"\n", html.EscapeString(summaryLine(lvl)))

	page.WriteString(`    <div class="map-container">` + "\n")
	for z := 0; z < g.Height(); z++ {
		page.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Width(); x++ {
			icon, class := cellHTMLInfo(g.Type(world.Point{X: x, Z: z}))
			fmt.Fprintf(&page, `<span class="%s">%s</span>`, class, icon)
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString(`    <div class="legend">`)
	for i, info := range gameworld.All() {
		if i > 0 {
			page.WriteString(", ")
		}
		fmt.Fprintf(&page, `<span class="%s">%s</span> %s`, cssClass(info),
			html.EscapeString(info.Glyph), html.EscapeString(gameworld.DisplayName(info.Type)))
	}
	page.WriteString(`</div>` + "\n")

	if len(lvl.Warnings) > 0 {
		page.WriteString(`    <div class="warnings">` + "\n")
		for _, warn := range lvl.Warnings {
			fmt.Fprintf(&page, `        <div class="warning">%s</div>`+"\n", html.EscapeString(warn.Error()))
		}
		page.WriteString(`    </div>` + "\n")
	}

	page.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, page.String())
	return err
}

// SaveScreenshotHTML saves the level snapshot as screenshot-<timestamp>.html
func SaveScreenshotHTML(lvl *generator.Level) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, lvl); err != nil {
		return "", err
	}
	return filename, f.Close()
}

// cellHTMLInfo returns the icon and CSS class for a tile type
func cellHTMLInfo(t world.TileType) (string, string) {
	info, ok := gameworld.Info(t)
	if !ok {
		return "?", "unknown"
	}
	return html.EscapeString(info.Glyph), cssClass(info)
}

func cssClass(info gameworld.TileInfo) string {
	return "tile-" + strings.ToLower(strings.ReplaceAll(info.Name, "_", "-"))
}

func summaryLine(lvl *generator.Level) string {
	g := lvl.Grid
	return gameworld.T("LEVEL_SUMMARY", g.Seed(), g.Width(), g.Height(), len(lvl.Rooms),
		lvl.Spawn.X, lvl.Spawn.Z, lvl.Exit.X, lvl.Exit.Z, lvl.SpawnExitDistance, lvl.TargetDistance)
}
