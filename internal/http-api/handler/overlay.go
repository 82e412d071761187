package handler

import (
	"html/template"
	"io"
	"time"

	"animevote/internal/http-api/dto"
)

// The overlay pages are meant to be loaded as OBS browser sources: dark
// background, no scrollbars, self-reloading. They show exactly the data
// the JSON leaderboard endpoint returns.

type overlayData struct {
	Animes      []dto.RankedAnime
	GeneratedAt time.Time
}

type overlayRenderer interface {
	Execute(w io.Writer, data any) error
}

var overlayFuncs = template.FuncMap{
	"rankIcon": func(rank int) string {
		switch rank {
		case 1:
			return "👑"
		case 2:
			return "🥈"
		case 3:
			return "🥉"
		}
		return "🏆"
	},
	"rankColor": func(rank int) string {
		switch rank {
		case 1:
			return "#fbbf24"
		case 2:
			return "#d1d5db"
		case 3:
			return "#d97706"
		}
		return "#22d3ee"
	},
	"statusText": func(status string) string {
		switch status {
		case "watching":
			return "Watching"
		case "completed":
			return "Completed"
		case "paused":
			return "Paused"
		}
		return "Planned"
	},
}

var overlayTemplate = template.Must(template.New("overlay").Funcs(overlayFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Top 3 Animes</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Inter', sans-serif;
            background: linear-gradient(135deg, #0f172a 0%, #1e293b 50%, #0f172a 100%);
            color: #e2e8f0;
            min-height: 100vh;
            overflow: hidden;
        }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 30px; }
        .header h1 {
            font-size: 2.5rem;
            font-weight: 800;
            color: #ffffff;
            text-shadow: 0 0 20px rgba(34, 211, 238, 0.5);
        }
        .anime-card {
            display: flex;
            align-items: center;
            gap: 20px;
            background: rgba(30, 41, 59, 0.8);
            border: 1px solid rgba(148, 163, 184, 0.2);
            border-radius: 16px;
            padding: 20px;
            margin-bottom: 16px;
        }
        .rank { font-size: 2rem; min-width: 70px; text-align: center; }
        .title { font-size: 1.4rem; font-weight: 700; }
        .meta { color: #94a3b8; font-size: 0.9rem; margin-top: 4px; }
        .votes { margin-left: auto; font-size: 1.6rem; font-weight: 800; color: #22d3ee; }
        .empty { text-align: center; color: #94a3b8; padding: 40px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>🏆 Top 3 Animes</h1></div>
        {{if .Animes}}
        {{range .Animes}}
        <div class="anime-card">
            <div class="rank" style="color: {{rankColor .Rank}}">{{rankIcon .Rank}} #{{.Rank}}</div>
            <div>
                <div class="title">{{.Title}}</div>
                <div class="meta">
                    {{statusText .Status}} · Ep. {{.CurrentEpisode}}{{if .TotalEpisodes}}/{{.TotalEpisodes}}{{end}}
                </div>
            </div>
            <div class="votes">{{.Votes}} votes</div>
        </div>
        {{end}}
        {{else}}
        <div class="empty">No animes yet — add some and start voting!</div>
        {{end}}
    </div>
    <script>setTimeout(function () { location.reload(); }, 30000);</script>
</body>
</html>
`))

var overlayCompactTemplate = template.Must(template.New("overlay-compact").Funcs(overlayFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Top 3 Animes (compact)</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Inter', sans-serif;
            background: transparent;
            color: #e2e8f0;
            overflow: hidden;
        }
        .row {
            display: flex;
            align-items: center;
            gap: 10px;
            background: rgba(15, 23, 42, 0.85);
            border-radius: 8px;
            padding: 6px 12px;
            margin-bottom: 6px;
            font-size: 0.95rem;
        }
        .rank { min-width: 40px; font-weight: 800; }
        .votes { margin-left: auto; font-weight: 700; color: #22d3ee; }
    </style>
</head>
<body>
    {{range .Animes}}
    <div class="row">
        <span class="rank" style="color: {{rankColor .Rank}}">{{rankIcon .Rank}}{{.Rank}}</span>
        <span>{{.Title}}</span>
        <span class="votes">{{.Votes}}</span>
    </div>
    {{end}}
    <script>setTimeout(function () { location.reload(); }, 30000);</script>
</body>
</html>
`))

const overlayErrorHTML = `<html>
  <head>
    <title>Error - Top Animes</title>
    <style>
      body {
        background: #0f172a;
        color: #e2e8f0;
        font-family: 'Inter', sans-serif;
        display: flex;
        align-items: center;
        justify-content: center;
        height: 100vh;
        margin: 0;
      }
      .error { text-align: center; }
    </style>
  </head>
  <body>
    <div class="error">
      <h1>Failed to load data</h1>
      <p>Could not fetch the animes</p>
    </div>
  </body>
</html>`
