package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListLeagues")
	defer span.End()

	if h.leagues == nil {
		writeError(w, unavailable("league service"))
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	items, err := h.leagues.List(ctx, league.Filter{
		Region: strings.TrimSpace(query.Get("region")),
		Queue:  query.Get("queue"),
		Tier:   query.Get("tier"),
		Page:   page,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leagueToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetLeague")
	defer span.End()

	if h.leagues == nil {
		writeError(w, unavailable("league service"))
		return
	}

	snapshot, err := h.leagues.Get(ctx,
		r.PathValue("region"),
		r.PathValue("queue"),
		r.PathValue("tier"),
		r.PathValue("name"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, leagueSnapshotToDTO(snapshot))
}

func (h *Handler) ListLeagueEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListLeagueEntries")
	defer span.End()

	if h.leagues == nil {
		writeError(w, unavailable("league service"))
		return
	}

	entries, err := h.leagues.ListEntriesByParticipant(ctx, r.PathValue("region"), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]leagueEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, leagueEntryToDTO(e))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	if h.teams == nil {
		writeError(w, unavailable("team service"))
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	items, err := h.teams.List(ctx, usecase.TeamFilter{
		Region:     strings.TrimSpace(query.Get("region")),
		MemberName: query.Get("member"),
		Page:       page,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeam")
	defer span.End()

	if h.teams == nil {
		writeError(w, unavailable("team service"))
		return
	}

	snapshot, err := h.teams.Get(ctx, r.PathValue("region"), r.PathValue("fullID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, teamSnapshotToDTO(snapshot))
}
