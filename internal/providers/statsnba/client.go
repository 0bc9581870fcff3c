package statsnba

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/timeutil"
)

// maxErrorBody caps how much of a failed response is kept on the error.
const maxErrorBody = 512

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	Season     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches result sets from stats.nba.com. It performs one request per
// call and never retries.
type Client struct {
	baseURL    string
	season     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	season := cfg.Season
	if season == "" {
		season = defaultSeason
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		season:     season,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchGameLog retrieves the player's regular season game log, most recent game first.
func (c *Client) FetchGameLog(ctx context.Context, playerID int) (tabular.Table, error) {
	q := url.Values{}
	q.Set("PlayerID", strconv.Itoa(playerID))
	q.Set("Season", c.season)
	q.Set("SeasonType", defaultSeasonType)
	q.Set("LeagueID", leagueID)
	q.Set("DateFrom", "")
	q.Set("DateTo", "")
	return c.fetch(ctx, providers.EndpointGameLog, q, resultSetGameLog)
}

// FetchPlayerInfo retrieves the player's biographical row.
func (c *Client) FetchPlayerInfo(ctx context.Context, playerID int) (tabular.Table, error) {
	q := url.Values{}
	q.Set("PlayerID", strconv.Itoa(playerID))
	q.Set("LeagueID", "")
	return c.fetch(ctx, providers.EndpointPlayerInfo, q, resultSetPlayerInfo)
}

// FetchPlayerShotLocations retrieves per-game shooting by zone for every player.
func (c *Client) FetchPlayerShotLocations(ctx context.Context) (tabular.Table, error) {
	q := c.dashboardQuery("Base")
	return c.fetch(ctx, providers.EndpointPlayerShotLocations, q, resultSetShotLocations)
}

// FetchScoreboard retrieves the game headers for the given calendar day.
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) (tabular.Table, error) {
	q := url.Values{}
	q.Set("GameDate", timeutil.FormatDate(date))
	q.Set("LeagueID", leagueID)
	q.Set("DayOffset", "0")
	return c.fetch(ctx, providers.EndpointScoreboard, q, resultSetGameHeader)
}

// FetchRoster retrieves every player on a current-season roster.
func (c *Client) FetchRoster(ctx context.Context) (tabular.Table, error) {
	q := url.Values{}
	q.Set("IsOnlyCurrentSeason", "1")
	q.Set("LeagueID", leagueID)
	q.Set("Season", c.season)
	return c.fetch(ctx, providers.EndpointRoster, q, resultSetAllPlayers)
}

// FetchOpponentShotLocations retrieves per-game opponent shooting by zone for every team.
func (c *Client) FetchOpponentShotLocations(ctx context.Context) (tabular.Table, error) {
	q := c.dashboardQuery("Opponent")
	return c.fetch(ctx, providers.EndpointOpponentShotLocations, q, resultSetShotLocations)
}

// dashboardQuery builds the league dashboard parameter set; the endpoint
// rejects requests that omit any of the filters, even when blank.
func (c *Client) dashboardQuery(measureType string) url.Values {
	q := url.Values{}
	q.Set("Season", c.season)
	q.Set("SeasonType", defaultSeasonType)
	q.Set("LeagueID", leagueID)
	q.Set("MeasureType", measureType)
	q.Set("PerMode", "PerGame")
	q.Set("DistanceRange", "By Zone")
	q.Set("PlusMinus", "N")
	q.Set("PaceAdjust", "N")
	q.Set("Rank", "N")
	q.Set("LastNGames", "0")
	q.Set("Month", "0")
	q.Set("OpponentTeamID", "0")
	q.Set("Period", "0")
	for _, blank := range []string{
		"College", "Conference", "Country", "DateFrom", "DateTo", "Division",
		"DraftPick", "DraftYear", "GameScope", "GameSegment", "Height", "Location",
		"Outcome", "PORound", "PlayerExperience", "PlayerPosition", "SeasonSegment",
		"ShotClockRange", "StarterBench", "TeamID", "VsConference", "VsDivision", "Weight",
	} {
		q.Set(blank, "")
	}
	return q
}

func (c *Client) fetch(ctx context.Context, endpoint string, q url.Values, resultSet string) (tabular.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return tabular.Table{}, err
	}
	req.URL.RawQuery = q.Encode()
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("statsnba %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return tabular.Table{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "statsnba " + endpoint + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return tabular.Table{}, &providers.StatusError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("statsnba %s: read body: %w", endpoint, err)
	}
	tables, err := decodeTables(body)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("statsnba %s: %w", endpoint, err)
	}
	return selectTable(tables, resultSet)
}
