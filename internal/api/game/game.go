package game

import (
	"net/http"
	"strconv"

	dto "slot_client/internal/api/dto/game"
	"slot_client/internal/converter"
	"slot_client/internal/service"
	"slot_client/internal/state"
	"slot_client/pkg/req"
	"slot_client/pkg/resp"
)

type HandlerDeps struct {
	Engine    service.GameEngineService
	Audit     service.AuditService
	Games     *state.GameStore
	Rounds    *state.RoundStore
	SessionID string
}

type Handler struct {
	engine    service.GameEngineService
	audit     service.AuditService
	games     *state.GameStore
	rounds    *state.RoundStore
	sessionID string
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		engine:    deps.Engine,
		audit:     deps.Audit,
		games:     deps.Games,
		rounds:    deps.Rounds,
		sessionID: deps.SessionID,
	}
}

// Init устанавливает сессию с RGS. Отказ аутентификации отдается хосту,
// чтобы тот мог показать экран повтора
func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Initialize(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.writeState(w)
}

// Spin запускает один раунд. Отклоненный воротами или брошенный раунд не
// является ошибкой HTTP: результат и поле error читаются из снимка состояния
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if payload.Bet > 0 {
		h.rounds.SetBetAmount(payload.Bet)
	}
	betAmount := h.rounds.Snapshot().CurrentBetAmount

	h.engine.Spin(r.Context(), betAmount, payload.Mode)

	h.writeState(w)
}

func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	h.writeState(w)
}

func (h *Handler) IncreaseBet(w http.ResponseWriter, _ *http.Request) {
	h.rounds.IncreaseBet()
	h.writeState(w)
}

func (h *Handler) DecreaseBet(w http.ResponseWriter, _ *http.Request) {
	h.rounds.DecreaseBet()
	h.writeState(w)
}

// History возвращает последние раунды сессии из аудита
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.audit.RoundHistory(r.Context(), h.sessionID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

func (h *Handler) writeState(w http.ResponseWriter) {
	response := converter.ToStateResponse(h.games.Snapshot(), h.rounds.Snapshot())
	resp.WriteJSONResponse(w, http.StatusOK, response)
}
