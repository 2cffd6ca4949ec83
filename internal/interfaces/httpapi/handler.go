package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/region"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

// Services groups what the handler serves. Any of them may be nil; the
// routes backed by a nil service answer 503.
type Services struct {
	Summoners *usecase.SummonerService
	Syncer    *usecase.SummonerSyncService
	Matches   *usecase.MatchIngestionService
	Leagues   *usecase.LeagueSyncService
	Teams     *usecase.TeamSyncService
	Catalog   *usecase.CatalogService
	Tasks     *usecase.TaskService
}

type Handler struct {
	summoners *usecase.SummonerService
	syncer    *usecase.SummonerSyncService
	matches   *usecase.MatchIngestionService
	leagues   *usecase.LeagueSyncService
	teams     *usecase.TeamSyncService
	catalog   *usecase.CatalogService
	tasks     *usecase.TaskService
	metrics   *metrics.Metrics
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(services Services, m *metrics.Metrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		summoners: services.Summoners,
		syncer:    services.Syncer,
		matches:   services.Matches,
		leagues:   services.Leagues,
		teams:     services.Teams,
		catalog:   services.Catalog,
		tasks:     services.Tasks,
		metrics:   m,
		logger:    logger,
		validator: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("lolregion", func(fl validator.FieldLevel) bool {
		_, err := region.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) MetricsHandler() http.Handler {
	return h.metrics.Handler()
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type summonerPath struct {
	Region string `validate:"required,lolregion"`
	Name   string `validate:"required,max=64"`
}

type gamePath struct {
	Region string `validate:"required,lolregion"`
	GameID int64  `validate:"gt=0"`
}

type taskPath struct {
	TaskID string `validate:"required,uuid"`
}

func (h *Handler) summonerPathParams(r *http.Request) (summonerPath, error) {
	params := summonerPath{
		Region: strings.ToLower(strings.TrimSpace(r.PathValue("region"))),
		Name:   strings.TrimSpace(r.PathValue("name")),
	}
	if err := h.validateRequest(r.Context(), params); err != nil {
		return summonerPath{}, err
	}
	return params, nil
}

func (h *Handler) gamePathParams(r *http.Request) (gamePath, error) {
	rawGameID := strings.TrimSpace(r.PathValue("gameID"))
	gameID, err := strconv.ParseInt(rawGameID, 10, 64)
	if err != nil {
		return gamePath{}, fmt.Errorf("%w: game id must be numeric: %q", usecase.ErrInvalidInput, rawGameID)
	}

	params := gamePath{
		Region: strings.ToLower(strings.TrimSpace(r.PathValue("region"))),
		GameID: gameID,
	}
	if err := h.validateRequest(r.Context(), params); err != nil {
		return gamePath{}, err
	}
	return params, nil
}

// parsePage reads the 1-based page query parameter; absent means 1.
func parsePage(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: page must be a positive integer: %q", usecase.ErrInvalidInput, raw)
	}
	return page, nil
}

func unavailable(component string) error {
	return fmt.Errorf("%w: %s is not configured", usecase.ErrDependencyUnavailable, component)
}
