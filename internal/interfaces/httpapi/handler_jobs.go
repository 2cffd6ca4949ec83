package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

const (
	taskCatalogRefresh = "catalog.refresh"
	maxTaskStateBody   = 4 << 10
)

type taskStateRequest struct {
	TaskID string `json:"task_id" validate:"required,uuid"`
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTask")
	defer span.End()

	if h.tasks == nil {
		writeError(w, unavailable("task service"))
		return
	}
	params := taskPath{TaskID: strings.TrimSpace(r.PathValue("taskID"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.tasks.Get(ctx, params.TaskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, taskToDTO(item))
}

// GetTaskState answers the legacy polling call: the body names a task and the
// response data is the bare state string.
func (h *Handler) GetTaskState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTaskState")
	defer span.End()

	if h.tasks == nil {
		writeError(w, unavailable("task service"))
		return
	}
	req, err := decodeTaskStateRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.tasks.Get(ctx, req.TaskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, string(item.State))
}

func decodeTaskStateRequest(r *http.Request) (taskStateRequest, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxTaskStateBody))
	if err != nil {
		return taskStateRequest{}, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}

	var req taskStateRequest
	if err := sonic.ConfigDefault.Unmarshal(raw, &req); err != nil {
		return taskStateRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	// Old clients send the id JSON-encoded twice.
	req.TaskID = strings.Trim(strings.TrimSpace(req.TaskID), `"`)
	return req, nil
}

func (h *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RefreshCatalog")
	defer span.End()

	if h.catalog == nil || h.tasks == nil {
		writeError(w, unavailable("catalog refresh"))
		return
	}

	queued, err := h.tasks.Submit(ctx, taskCatalogRefresh, nil, func(ctx context.Context) (map[string]any, error) {
		result, err := h.catalog.RefreshAll(ctx)
		return map[string]any{
			"champions":       result.Champions,
			"items":           result.Items,
			"summoner_spells": result.SummonerSpells,
		}, err
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "queue catalog refresh failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusAccepted, taskAcceptedDTO{TaskID: queued.ID, State: string(queued.State)})
}

// Reset wipes one cached scope so the next sync rebuilds it from upstream.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Reset")
	defer span.End()

	scope := strings.ToLower(strings.TrimSpace(r.PathValue("scope")))
	var err error
	switch scope {
	case "recent":
		if h.matches == nil {
			err = unavailable("match service")
			break
		}
		err = h.matches.ResetRecent(ctx)
	case "leagues":
		if h.leagues == nil {
			err = unavailable("league service")
			break
		}
		err = h.leagues.Reset(ctx)
	case "teams":
		if h.teams == nil {
			err = unavailable("team service")
			break
		}
		err = h.teams.Reset(ctx)
	default:
		err = fmt.Errorf("%w: unknown reset scope %q", usecase.ErrInvalidInput, scope)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "reset failed", "scope", scope, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"scope": scope, "status": "reset"})
}
