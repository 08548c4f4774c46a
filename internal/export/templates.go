package export

import "html/template"

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageTemplate wraps one factsheet in a standalone page with region
// navigation.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Region}}{{.Region}} | {{end}}{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; display: flex; min-height: 100vh; }
    nav { width: 220px; padding: 1rem; background: #1d2733; color: #fff; }
    nav a { display: flex; align-items: center; gap: .5rem; color: inherit; text-decoration: none; padding: .25rem 0; }
    nav .swatch { width: 12px; height: 12px; border-radius: 2px; display: inline-block; }
    nav img { width: 100%; margin-top: 1rem; }
    main { flex: 1; padding: 1.5rem; max-width: 720px; }
    .kpi-grid { display: grid; grid-template-columns: 1fr 1fr; gap: .5rem; }
    .kpi-tile { border: 1px solid #ddd; border-radius: 6px; padding: .5rem; }
    .kpi-tile.full-width { grid-column: 1 / -1; }
    .collapsed { display: none; }
    .pinned-badge { background: #F5C518; border-radius: 4px; padding: 0 .3rem; }
  </style>
</head>
<body{{if .Color}} style="border-top: 4px solid {{.Color}}"{{end}}>
  <nav>
    <h2><a href="index.html">{{.Title}}</a></h2>
    {{range .Regions}}
    <a href="{{.File}}"><span class="swatch" style="background: {{.Color}}"></span>{{.Name}}</a>
    {{end}}
    {{if .HasMap}}<img src="map.svg" alt="Map of the regions">{{end}}
  </nav>
  <main>
    {{.Factsheet}}
  </main>
</body>
</html>`
