package httpapi

import (
	"net/http"
)

func (h *Handler) ListChampions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListChampions")
	defer span.End()

	if h.catalog == nil {
		writeError(w, unavailable("catalog service"))
		return
	}
	items, err := h.catalog.ListChampions(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]championDTO, 0, len(items))
	for _, item := range items {
		out = append(out, championToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetChampion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetChampion")
	defer span.End()

	if h.catalog == nil {
		writeError(w, unavailable("catalog service"))
		return
	}
	item, err := h.catalog.GetChampionByName(ctx, r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, championToDTO(item))
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListItems")
	defer span.End()

	if h.catalog == nil {
		writeError(w, unavailable("catalog service"))
		return
	}
	items, err := h.catalog.ListItems(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]itemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, itemToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetItem")
	defer span.End()

	if h.catalog == nil {
		writeError(w, unavailable("catalog service"))
		return
	}
	item, err := h.catalog.GetItemByName(ctx, r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, itemToDTO(item))
}

func (h *Handler) ListSummonerSpells(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListSummonerSpells")
	defer span.End()

	if h.catalog == nil {
		writeError(w, unavailable("catalog service"))
		return
	}
	items, err := h.catalog.ListSummonerSpells(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]summonerSpellDTO, 0, len(items))
	for _, item := range items {
		out = append(out, summonerSpellToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetSummonerSpell(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetSummonerSpell")
	defer span.End()

	if h.catalog == nil {
		writeError(w, unavailable("catalog service"))
		return
	}
	item, err := h.catalog.GetSummonerSpellByName(ctx, r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, summonerSpellToDTO(item))
}
