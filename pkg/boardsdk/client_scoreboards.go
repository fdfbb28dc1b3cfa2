package boardsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListScoreboards lists the active scoreboards of gameID.
func (c *SDKClient) ListScoreboards(ctx context.Context, gameID string) (*ScoreboardListResponse, error) {
	return call[ScoreboardListResponse](ctx, c, http.MethodGet, gamePath(gameID, "scoreboards"), nil, nil)
}

// GetScoreboard returns up to limit ranked entries. limit <= 0 uses the
// gateway default.
func (c *SDKClient) GetScoreboard(ctx context.Context, gameID, scoreboardID string, limit int) (*ScoreboardResponse, error) {
	path := gamePath(gameID, "scoreboards", scoreboardID) + query("limit", limit)
	return call[ScoreboardResponse](ctx, c, http.MethodGet, path, nil, nil)
}

// ListArchives lists the archived periods of a scoreboard. Zero bounds are
// omitted.
func (c *SDKClient) ListArchives(ctx context.Context, gameID, scoreboardID string, after, before int64) (*ArchiveListResponse, error) {
	q := url.Values{}
	if after > 0 {
		q.Set("after", strconv.FormatInt(after, 10))
	}
	if before > 0 {
		q.Set("before", strconv.FormatInt(before, 10))
	}
	path := gamePath(gameID, "scoreboards", scoreboardID, "archives")
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return call[ArchiveListResponse](ctx, c, http.MethodGet, path, nil, nil)
}

// GetLatestArchive returns the most recent archive of a scoreboard.
func (c *SDKClient) GetLatestArchive(ctx context.Context, gameID, scoreboardID string, limit int) (*ArchiveResponse, error) {
	path := gamePath(gameID, "scoreboards", scoreboardID, "archives", "latest") + query("limit", limit)
	return call[ArchiveResponse](ctx, c, http.MethodGet, path, nil, nil)
}

// GetArchive fetches an archive by id. Archive ids contain slashes and are
// sent unescaped.
func (c *SDKClient) GetArchive(ctx context.Context, archiveID string, limit int) (*ArchiveResponse, error) {
	path := "/archives/" + strings.TrimPrefix(archiveID, "/") + query("limit", limit)
	return call[ArchiveResponse](ctx, c, http.MethodGet, path, nil, nil)
}

// GetArchiveStats counts archives per scoreboard of gameID.
func (c *SDKClient) GetArchiveStats(ctx context.Context, gameID string) (*ArchiveStatsResponse, error) {
	return call[ArchiveStatsResponse](ctx, c, http.MethodGet, gamePath(gameID, "archives", "stats"), nil, nil)
}

func escape(segment string) string {
	return url.PathEscape(segment)
}

func gamePath(gameID string, segments ...string) string {
	var b strings.Builder
	b.WriteString("/games/")
	b.WriteString(escape(gameID))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(escape(s))
	}
	return b.String()
}

func query(key string, n int) string {
	if n <= 0 {
		return ""
	}
	return "?" + key + "=" + strconv.Itoa(n)
}
