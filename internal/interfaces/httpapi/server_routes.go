package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.Handle("GET /metrics", handler.MetricsHandler())
}

func registerSummonerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/summoners", handler.ListSummoners)
	mux.HandleFunc("GET /v1/summoners/{region}/{name}", handler.GetSummoner)
	mux.HandleFunc("GET /v1/summoners/{region}/{name}/resolve", handler.ResolveSummoner)
	mux.HandleFunc("POST /v1/summoners/{region}/{name}/sync", handler.SyncSummoner)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/champions", handler.ListChampions)
	mux.HandleFunc("GET /v1/champions/{name}", handler.GetChampion)
	mux.HandleFunc("GET /v1/items", handler.ListItems)
	mux.HandleFunc("GET /v1/items/{name}", handler.GetItem)
	mux.HandleFunc("GET /v1/spells", handler.ListSummonerSpells)
	mux.HandleFunc("GET /v1/spells/{name}", handler.GetSummonerSpell)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/games/{region}/by-summoner/{name}", handler.ListGamesBySummoner)
	mux.HandleFunc("GET /v1/games/{region}/by-game-id/{gameID}", handler.ListGamesByGameID)
	mux.HandleFunc("GET /v1/stats/{region}/{gameID}", handler.GetRawStat)
}

func registerLeagueTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{region}/{queue}/{tier}/{name}", handler.GetLeague)
	mux.HandleFunc("GET /v1/league-entries/{region}/{id}", handler.ListLeagueEntries)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{region}/{fullID}", handler.GetTeam)
}

func registerTaskRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tasks/{taskID}", handler.GetTask)
	mux.HandleFunc("POST /v1/task-state", handler.GetTaskState)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/catalog/refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RefreshCatalog)))
	mux.Handle("POST /v1/internal/reset/{scope}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.Reset)))
}
