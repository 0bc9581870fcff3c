package statsnba

import "time"

const (
	providerName       = "statsnba"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second
	defaultSeason      = "2025-26"
	defaultSeasonType  = "Regular Season"
	leagueID           = "00"

	// stats.nba.com rejects requests that do not look like they come from a browser.
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptLanguage = "en-US,en;q=0.9"
	referer        = "https://www.nba.com/"
	origin         = "https://www.nba.com"
)

// Result set names selected from each endpoint.
const (
	resultSetGameLog       = "PlayerGameLog"
	resultSetPlayerInfo    = "CommonPlayerInfo"
	resultSetShotLocations = "ShotLocations"
	resultSetGameHeader    = "GameHeader"
	resultSetAllPlayers    = "CommonAllPlayers"
)
