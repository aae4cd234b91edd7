package engine

import (
	"slot_client/internal/emitter"
	"slot_client/internal/rgs"
	"slot_client/internal/service"
	"slot_client/internal/state"
)

type serv struct {
	rgsClient rgs.Client
	book      service.BookService
	audit     service.AuditService
	em        *emitter.Emitter
	games     *state.GameStore
	rounds    *state.RoundStore
	sessionID string
}

func NewGameEngineService(
	rgsClient rgs.Client,
	book service.BookService,
	audit service.AuditService,
	em *emitter.Emitter,
	games *state.GameStore,
	rounds *state.RoundStore,
	sessionID string,
) service.GameEngineService {
	return &serv{
		rgsClient: rgsClient,
		book:      book,
		audit:     audit,
		em:        em,
		games:     games,
		rounds:    rounds,
		sessionID: sessionID,
	}
}

func (s *serv) IsProcessing() bool {
	return s.book.IsProcessing()
}
