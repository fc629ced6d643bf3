// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Rights Dashboard</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --muted: #adb5bd; --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.filters { display: flex; flex-wrap: wrap; gap: 1rem; margin-bottom: 1.5rem; align-items: center; }
.filters select { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; max-width: 100%; }
.filters label { font-size: .8125rem; margin-right: .5rem; }
.charts { display: grid; grid-template-columns: 3fr 2fr; gap: 1rem; }
@media (max-width: 900px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.legend { display: flex; flex-wrap: wrap; gap: .75rem; font-size: .75rem; margin-top: .5rem; }
.empty { color: var(--muted); font-size: .875rem; }
svg text { fill: currentColor; font-size: 11px; }
</style>
</head>
<body>
<header>
  <h1>LGBT+ Rights by Continent</h1>
  <p>Generated {{.GeneratedAt}} &middot; {{.Selection.Field}}</p>
</header>

{{if .FormAction}}
<form class="filters" id="filters" method="get" action="{{.FormAction}}">
  <select name="field" onchange="this.form.submit()">
    {{range .Fields}}<option value="{{.}}"{{if eq . $.Selection.Field}} selected{{end}}>{{.}}</option>{{end}}
  </select>
  <div>
    {{range .Continents}}<label><input type="radio" name="continent" value="{{.}}"{{if eq . $.Selection.Continent}} checked{{end}} onchange="this.form.submit()"> {{.}}</label>{{end}}
  </div>
  <noscript><button type="submit">Show</button></noscript>
</form>
{{end}}

<section class="charts" id="charts">
{{with .Bar}}
  <div class="chart-box" id="bar-chart">
    <h3>{{.Title}}</h3>
    {{if .Empty}}<p class="empty">No data.</p>{{else}}
    <svg width="100%" viewBox="0 0 {{.Width}} {{.Height}}" role="img">
      {{range .Rects}}<rect class="bar" x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{.Fill}}"><title>{{.Tip}}</title></rect>
      {{end}}
      {{range .Labels}}<text x="{{.X}}" y="{{.Y}}" text-anchor="middle">{{.Text}}</text>
      {{end}}
      {{range .Ticks}}<text x="{{.X}}" y="{{.Y}}" text-anchor="end">{{.Text}}</text>
      {{end}}
    </svg>
    {{end}}
    <div class="legend">{{range .Legend}}<span><svg width="10" height="10"><rect width="10" height="10" fill="{{.Color}}"/></svg> {{.Name}}</span>{{end}}</div>
  </div>
{{end}}
{{with .Waffle}}
  <div class="chart-box" id="waffle-chart">
    <h3>{{.Title}}</h3>
    {{if .Empty}}<p class="empty">No data.</p>{{else}}
    <svg width="100%" viewBox="0 0 {{.Width}} {{.Height}}" role="img">
      {{range .Cells}}<rect class="cell" x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{.Fill}}"><title>{{.Tip}}</title></rect>
      {{end}}
    </svg>
    {{end}}
    <div class="legend">{{range .Legend}}<span><svg width="10" height="10"><rect width="10" height="10" fill="{{.Color}}"/></svg> {{.Name}}</span>{{end}}</div>
  </div>
{{end}}
</section>

<script>
var view = {{json .View}};
</script>
</body>
</html>
`
