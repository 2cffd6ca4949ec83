package httpapi

import (
	"net/http"
)

func (h *Handler) ListGamesBySummoner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListGamesBySummoner")
	defer span.End()

	if h.matches == nil {
		writeError(w, unavailable("match service"))
		return
	}
	params, err := h.summonerPathParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	details, err := h.matches.ListGamesBySummoner(ctx, params.Region, params.Name, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list games by summoner failed", "region", params.Region, "name", params.Name, "error", err)
		writeError(w, err)
		return
	}

	out := make([]gameDTO, 0, len(details))
	for _, d := range details {
		out = append(out, gameDetailToDTO(d))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) ListGamesByGameID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListGamesByGameID")
	defer span.End()

	if h.matches == nil {
		writeError(w, unavailable("match service"))
		return
	}
	params, err := h.gamePathParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	details, err := h.matches.ListGamesByGameID(ctx, params.Region, params.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]gameDTO, 0, len(details))
	for _, d := range details {
		out = append(out, gameDetailToDTO(d))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetRawStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetRawStat")
	defer span.End()

	if h.matches == nil {
		writeError(w, unavailable("match service"))
		return
	}
	params, err := h.gamePathParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	stat, err := h.matches.GetRawStat(ctx, params.Region, params.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, rawStatDTO(stat))
}
