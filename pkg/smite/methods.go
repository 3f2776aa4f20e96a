package smite

import (
	"context"
	"encoding/json"
	"strconv"
)

// Ping checks connectivity to the selected API root. It needs neither
// credentials nor a session and does not count against daily API limits.
func (c *Client) Ping(ctx context.Context) (json.RawMessage, error) {
	c.mu.Lock()
	base := c.endpoint.BaseURL()
	c.mu.Unlock()
	return c.fetch(ctx, "ping", base+"ping"+responseFormat)
}

// GetDataUsed returns daily usage limits and the stats against those
// limits. Calling it does itself contribute to the daily limits.
func (c *Client) GetDataUsed(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, "getdataused")
}

// GetDemoDetails returns information regarding a match. Prefer
// GetMatchDetails.
func (c *Client) GetDemoDetails(ctx context.Context, matchID int) (json.RawMessage, error) {
	return c.Request(ctx, "getdemodetails", strconv.Itoa(matchID))
}

// GetGods returns all Smite gods and their various attributes, localized to
// the client's language code.
func (c *Client) GetGods(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, "getgods", strconv.Itoa(c.lang))
}

// GetGodSkins returns all skin information for a particular god. God IDs
// come from GetGods.
func (c *Client) GetGodSkins(ctx context.Context, godID int) (json.RawMessage, error) {
	return c.Request(ctx, "getgodskins", strconv.Itoa(godID))
}

// GetItems returns all Smite items and their various attributes, localized
// to the client's language code.
func (c *Client) GetItems(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, "getitems", strconv.Itoa(c.lang))
}

// GetGodRecommendedItems returns the recommended items for a particular god.
func (c *Client) GetGodRecommendedItems(ctx context.Context, godID int) (json.RawMessage, error) {
	return c.Request(ctx, "getgodrecommendeditems", strconv.Itoa(godID))
}

// GetEsportsProLeagueDetails returns the matchup information for each
// matchup of the current eSports pro league session.
func (c *Client) GetEsportsProLeagueDetails(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, "getesportsproleaguedetails")
}

// GetTopMatches returns the 50 most watched or most recent recorded matches.
func (c *Client) GetTopMatches(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, "gettopmatches")
}

// GetMatchDetails returns a match and its attributes.
func (c *Client) GetMatchDetails(ctx context.Context, matchID int) (json.RawMessage, error) {
	return c.Request(ctx, "getmatchdetails", strconv.Itoa(matchID))
}

// GetMatchIDsByQueue returns all match IDs for a match queue in the given
// time frame. date is formatted yyyyMMdd; hour ranges 0-23 with -1 meaning
// the whole day.
func (c *Client) GetMatchIDsByQueue(ctx context.Context, queue int, date string, hour int) (json.RawMessage, error) {
	return c.Request(ctx, "getmatchidsbyqueue", strconv.Itoa(queue), date, strconv.Itoa(hour))
}

// GetLeagueLeaderboard returns the top players for a particular league.
func (c *Client) GetLeagueLeaderboard(ctx context.Context, queue, tier, season int) (json.RawMessage, error) {
	return c.Request(ctx, "getleagueleaderboard", strconv.Itoa(queue), strconv.Itoa(tier), strconv.Itoa(season))
}

// GetLeagueSeasons returns the seasons for a match queue.
func (c *Client) GetLeagueSeasons(ctx context.Context, queue int) (json.RawMessage, error) {
	return c.Request(ctx, "getleagueseasons", strconv.Itoa(queue))
}

// GetTeamDetails returns the details of a clan.
func (c *Client) GetTeamDetails(ctx context.Context, clanID int) (json.RawMessage, error) {
	return c.Request(ctx, "getteamdetails", strconv.Itoa(clanID))
}

// GetTeamMatchHistory returns a history of matches from the given clan.
//
// Deprecated: the remote service returns a null dataset for this method.
func (c *Client) GetTeamMatchHistory(ctx context.Context, clanID int) (json.RawMessage, error) {
	return c.Request(ctx, "getteammatchhistory", strconv.Itoa(clanID))
}

// GetTeamPlayers returns the players of the given clan.
func (c *Client) GetTeamPlayers(ctx context.Context, clanID int) (json.RawMessage, error) {
	return c.Request(ctx, "getteamplayers", strconv.Itoa(clanID))
}

// SearchTeams returns high level information for clan names containing the
// search term.
func (c *Client) SearchTeams(ctx context.Context, term string) (json.RawMessage, error) {
	return c.Request(ctx, "searchteams", term)
}

// GetPlayer returns league and non-league high level data for a player name.
func (c *Client) GetPlayer(ctx context.Context, playerName string) (json.RawMessage, error) {
	return c.Request(ctx, "getplayer", playerName)
}

// GetPlayerAchievements returns achievement totals for the given player ID.
func (c *Client) GetPlayerAchievements(ctx context.Context, playerID int) (json.RawMessage, error) {
	return c.Request(ctx, "getplayerachievements", strconv.Itoa(playerID))
}

// GetPlayerStatus returns the current online status of a player.
func (c *Client) GetPlayerStatus(ctx context.Context, playerName string) (json.RawMessage, error) {
	return c.Request(ctx, "getplayerstatus", playerName)
}

// GetFriends returns the friends of a player, given a player name or ID.
func (c *Client) GetFriends(ctx context.Context, player string) (json.RawMessage, error) {
	return c.Request(ctx, "getfriends", player)
}

// GetGodRanks returns the rank and worshippers value for each god the
// player has played.
func (c *Client) GetGodRanks(ctx context.Context, player string) (json.RawMessage, error) {
	return c.Request(ctx, "getgodranks", player)
}

// GetMatchHistory returns the recent matches and high level match
// statistics for a player.
func (c *Client) GetMatchHistory(ctx context.Context, player string) (json.RawMessage, error) {
	return c.Request(ctx, "getmatchhistory", player)
}

// GetMatchPlayerDetails returns player information for a live match.
func (c *Client) GetMatchPlayerDetails(ctx context.Context, matchID int) (json.RawMessage, error) {
	return c.Request(ctx, "getmatchplayerdetails", strconv.Itoa(matchID))
}

// GetMOTD returns information about the most recent Match of the Days.
func (c *Client) GetMOTD(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, "getmotd")
}

// GetQueueStats returns match summary statistics for a player and game
// mode.
func (c *Client) GetQueueStats(ctx context.Context, player string, queue int) (json.RawMessage, error) {
	return c.Request(ctx, "getqueuestats", player, strconv.Itoa(queue))
}
