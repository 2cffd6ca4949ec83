package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/region"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
)

const (
	taskSummonerSync       = "summoner.sync"
	taskSummonerDownstream = "summoner.downstream"
)

func (h *Handler) ListSummoners(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListSummoners")
	defer span.End()

	if h.summoners == nil {
		writeError(w, unavailable("summoner service"))
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.summoners.List(ctx, summoner.Filter{
		Region: strings.TrimSpace(r.URL.Query().Get("region")),
		Page:   page,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list summoners failed", "error", err)
		writeError(w, err)
		return
	}

	out := make([]summonerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, summonerToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetSummoner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetSummoner")
	defer span.End()

	if h.summoners == nil {
		writeError(w, unavailable("summoner service"))
		return
	}
	params, err := h.summonerPathParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.summoners.Get(ctx, params.Region, params.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, summonerToDTO(item))
}

// ResolveSummoner runs the identity cache lookup. A refreshed identity also
// queues the downstream sync, whose task id is returned alongside.
func (h *Handler) ResolveSummoner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ResolveSummoner")
	defer span.End()

	if h.summoners == nil {
		writeError(w, unavailable("summoner service"))
		return
	}
	params, err := h.summonerPathParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.summoners.Resolve(ctx, params.Name, params.Region)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve summoner failed", "region", params.Region, "name", params.Name, "error", err)
		writeError(w, err)
		return
	}

	taskID := ""
	if result.Outcome.Refreshed() && h.syncer != nil && h.tasks != nil {
		item := result.Summoner
		queued, err := h.tasks.Submit(ctx, taskSummonerDownstream, summonerTaskPayload(item.Region, item.Name),
			func(ctx context.Context) (map[string]any, error) {
				report, err := h.syncer.SyncDownstream(ctx, item)
				return report.Summary(), err
			})
		if err != nil {
			h.logger.WarnContext(ctx, "queue downstream sync failed", "summoner_id", item.SummonerID, "error", err)
		} else {
			taskID = queued.ID
		}
	}

	writeSuccess(w, http.StatusOK, resolveToDTO(result, taskID))
}

func (h *Handler) SyncSummoner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SyncSummoner")
	defer span.End()

	if h.syncer == nil || h.tasks == nil {
		writeError(w, unavailable("summoner sync"))
		return
	}
	params, err := h.summonerPathParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	queued, err := h.tasks.Submit(ctx, taskSummonerSync, summonerTaskPayload(params.Region, params.Name),
		func(ctx context.Context) (map[string]any, error) {
			report, err := h.syncer.Sync(ctx, params.Name, params.Region)
			return report.Summary(), err
		})
	if err != nil {
		h.logger.ErrorContext(ctx, "queue summoner sync failed", "region", params.Region, "name", params.Name, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusAccepted, taskAcceptedDTO{TaskID: queued.ID, State: string(queued.State)})
}

func summonerTaskPayload(reg region.Region, name string) map[string]any {
	return map[string]any{"region": reg, "name": name}
}
