package auth

import (
	"errors"
	"net/http"

	dto "slot_client/internal/api/dto/auth"
	authserv "slot_client/internal/service/auth"

	"slot_client/internal/service"
	"slot_client/pkg/req"
	"slot_client/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.serv.Login(r.Context(), payload.Login, payload.Password)
	if err != nil {
		if errors.Is(err, authserv.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{AccessToken: data.AccessToken})
}
