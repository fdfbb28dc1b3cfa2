package http

import (
	"context"
	"strconv"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
)

// handleListArchives godoc
//
//	@Summary		List a scoreboard's archives
//	@Description	With both after and before set, only archives whose period falls in the range are returned.
//	@Tags			Archives
//	@Produce		json
//	@Param			gameId			path		string	true	"Game id"
//	@Param			scoreboardId	path		string	true	"Scoreboard id"
//	@Param			after			query		int		false	"Range start"
//	@Param			before			query		int		false	"Range end"
//	@Success		200				{object}	httpx.Envelope{data=boardsdk.ArchiveListResponse}
//	@Failure		400				{object}	httpx.Envelope
//	@Router			/games/{gameId}/scoreboards/{scoreboardId}/archives [get].
func (r *Router) handleListArchives(ctx context.Context, c *Call) (any, error) {
	id := c.Path("scoreboardId")

	var within *backend.TimeRange
	if after, before := c.Query("after"), c.Query("before"); after != "" && before != "" {
		a, errA := strconv.ParseInt(after, 10, 64)
		b, errB := strconv.ParseInt(before, 10, 64)
		if errA != nil || errB != nil {
			return nil, domain.Validation("after and before must be integers")
		}
		within = &backend.TimeRange{After: a, Before: b}
	}

	archives, err := c.Backend.ListArchives(ctx, c.GameID, id, within)
	if err != nil {
		return nil, backendFailure(err, "Failed to fetch archives")
	}

	out := make([]boardsdk.ArchiveSummary, 0, len(archives))
	for _, a := range archives {
		out = append(out, boardsdk.ArchiveSummary{
			ArchiveID:    a.ArchiveID,
			ScoreboardID: a.ScoreboardID,
			PeriodStart:  a.PeriodStart,
			PeriodEnd:    a.PeriodEnd,
			EntryCount:   a.EntryCount,
			TopPlayer:    a.TopPlayer,
			TopScore:     a.TopScore,
		})
	}
	return boardsdk.ArchiveListResponse{GameID: c.GameID, ScoreboardID: id, Archives: out}, nil
}

// handleLatestArchive godoc
//
//	@Summary		Most recent archive of a scoreboard
//	@Tags			Archives
//	@Produce		json
//	@Param			gameId			path		string	true	"Game id"
//	@Param			scoreboardId	path		string	true	"Scoreboard id"
//	@Param			limit			query		int		false	"1-1000, default 100"
//	@Success		200				{object}	httpx.Envelope{data=boardsdk.ArchiveResponse}
//	@Failure		404				{object}	httpx.Envelope
//	@Router			/games/{gameId}/scoreboards/{scoreboardId}/archives/latest [get].
func (r *Router) handleLatestArchive(ctx context.Context, c *Call) (any, error) {
	res, err := c.Backend.GetLatestArchive(ctx, c.GameID, c.Path("scoreboardId"), parseLimit(c.Query("limit")))
	view, err := settle(res, err, domain.KindNotFound, "Failed to fetch last archive")
	if err != nil {
		return nil, err
	}
	return archiveResponse(view.ArchiveID, view), nil
}

// handleGetArchive godoc
//
//	@Summary		Archive by id
//	@Tags			Archives
//	@Produce		json
//	@Param			archiveId	path		string	true	"Archive id; may contain slashes"
//	@Param			limit		query		int		false	"1-1000, default 100"
//	@Success		200			{object}	httpx.Envelope{data=boardsdk.ArchiveResponse}
//	@Failure		404			{object}	httpx.Envelope
//	@Router			/archives/{archiveId} [get].
func (r *Router) handleGetArchive(ctx context.Context, c *Call) (any, error) {
	id := c.Path("archiveId")
	res, err := c.Backend.GetArchive(ctx, id, parseLimit(c.Query("limit")))
	view, err := settle(res, err, domain.KindNotFound, "Failed to fetch archive")
	if err != nil {
		return nil, err
	}
	return archiveResponse(id, view), nil
}

// handleArchiveStats godoc
//
//	@Summary		Archive counts for a game
//	@Tags			Archives
//	@Produce		json
//	@Param			gameId	path		string	true	"Game id"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.ArchiveStatsResponse}
//	@Router			/games/{gameId}/archives/stats [get].
func (r *Router) handleArchiveStats(ctx context.Context, c *Call) (any, error) {
	stats, err := c.Backend.GetArchiveStats(ctx, c.GameID)
	if err != nil {
		return nil, backendFailure(err, "Failed to fetch archive stats")
	}

	by := make([]boardsdk.ArchiveCount, 0, len(stats.ByScoreboard))
	for _, s := range stats.ByScoreboard {
		by = append(by, boardsdk.ArchiveCount{ScoreboardID: s.ScoreboardID, Count: s.Count})
	}
	return boardsdk.ArchiveStatsResponse{GameID: c.GameID, TotalArchives: stats.TotalArchives, ByScoreboard: by}, nil
}

func archiveResponse(id string, v backend.ArchiveView) boardsdk.ArchiveResponse {
	entries := rankedEntries(v.Entries)
	return boardsdk.ArchiveResponse{
		ArchiveID: id,
		Config: boardsdk.ArchiveConfig{
			Name:        v.Config.Name,
			Period:      v.Config.Period,
			SortBy:      v.Config.SortBy,
			PeriodStart: v.Config.PeriodStart,
			PeriodEnd:   v.Config.PeriodEnd,
		},
		Entries:      entries,
		TotalEntries: len(entries),
	}
}
