package app

import (
	"context"
	"net/http"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	authAPI "slot_client/internal/api/auth"
	gameAPI "slot_client/internal/api/game"
	apimw "slot_client/internal/api/middleware"
	"slot_client/internal/config"
	"slot_client/internal/config/env"
	"slot_client/internal/emitter"
	"slot_client/internal/repository"
	"slot_client/internal/repository/error_repo"
	"slot_client/internal/repository/round_repo"
	"slot_client/internal/repository/session_repo"
	"slot_client/internal/rgs"
	"slot_client/internal/service"
	"slot_client/internal/service/audit"
	authserv "slot_client/internal/service/auth"
	"slot_client/internal/service/book"
	"slot_client/internal/service/engine"
	"slot_client/internal/state"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Audit bits
	sessionRepo repository.SessionRepository
	roundRepo   repository.RoundRepository
	errorRepo   repository.ErrorLogRepository
	auditServ   service.AuditService

	// Auth bits
	jwtCfg   config.JWTConfig
	opCfg    config.OperatorConfig
	authServ service.AuthService
	authHand *authAPI.Handler

	// Engine bits
	rgsCfg     config.RGSConfig
	gameCfg    config.GameConfig
	em         *emitter.Emitter
	gameStore  *state.GameStore
	roundStore *state.RoundStore
	rgsClient  rgs.Client
	bookServ   service.BookService
	engineServ service.GameEngineService
	gameHand   *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) SessionRepository(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) ErrorLogRepository(ctx context.Context) repository.ErrorLogRepository {
	if sp.errorRepo == nil {
		sp.errorRepo = error_repo.NewErrorLogRepository(sp.DBClient(ctx))
	}
	return sp.errorRepo
}

func (sp *ServiceProvider) AuditService(ctx context.Context) service.AuditService {
	if sp.auditServ == nil {
		sp.auditServ = audit.NewAuditService(
			sp.TXManager(ctx),
			sp.SessionRepository(ctx),
			sp.RoundRepository(ctx),
			sp.ErrorLogRepository(ctx))
	}
	return sp.auditServ
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) OperatorCfg() config.OperatorConfig {
	if sp.opCfg == nil {
		cfg, err := env.NewOperatorConfig()
		if err != nil {
			panic("failed to get operator config: " + err.Error())
		}
		sp.opCfg = cfg
	}
	return sp.opCfg
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authserv.NewAuthService(sp.JWTCfg(), sp.OperatorCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService()})
	}
	return sp.authHand
}

func (sp *ServiceProvider) RGSCfg() config.RGSConfig {
	if sp.rgsCfg == nil {
		cfg, err := env.NewRGSConfig()
		if err != nil {
			panic("failed to get rgs config: " + err.Error())
		}
		sp.rgsCfg = cfg
	}
	return sp.rgsCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Emitter() *emitter.Emitter {
	if sp.em == nil {
		sp.em = emitter.New()
	}
	return sp.em
}

func (sp *ServiceProvider) GameStore() *state.GameStore {
	if sp.gameStore == nil {
		cfg := sp.GameCfg()
		sp.gameStore = state.NewGameStore(cfg.Reels(), cfg.Rows(), cfg.DefaultSymbol())
	}
	return sp.gameStore
}

func (sp *ServiceProvider) RoundStore() *state.RoundStore {
	if sp.roundStore == nil {
		cfg := sp.GameCfg()
		sp.roundStore = state.NewRoundStore(cfg.BetLevels(), cfg.DefaultBetLevelIndex(), sp.RGSCfg().Currency())
	}
	return sp.roundStore
}

func (sp *ServiceProvider) RGSClient() rgs.Client {
	if sp.rgsClient == nil {
		cfg := sp.RGSCfg()
		sp.rgsClient = rgs.NewClient(
			&http.Client{Timeout: 15 * time.Second},
			cfg.BaseURL(),
			cfg.SessionID(),
			cfg.Language(),
			cfg.Currency())
	}
	return sp.rgsClient
}

func (sp *ServiceProvider) BookService() service.BookService {
	if sp.bookServ == nil {
		sp.bookServ = book.NewBookService(sp.Emitter(), sp.GameStore())
	}
	return sp.bookServ
}

func (sp *ServiceProvider) EngineService(ctx context.Context) service.GameEngineService {
	if sp.engineServ == nil {
		sp.engineServ = engine.NewGameEngineService(
			sp.RGSClient(),
			sp.BookService(),
			sp.AuditService(ctx),
			sp.Emitter(),
			sp.GameStore(),
			sp.RoundStore(),
			sp.RGSCfg().SessionID())
	}
	return sp.engineServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Engine:    sp.EngineService(ctx),
			Audit:     sp.AuditService(ctx),
			Games:     sp.GameStore(),
			Rounds:    sp.RoundStore(),
			SessionID: sp.RGSCfg().SessionID(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler()
		r.Post("/auth/login", authHandler.Login)

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Use(apimw.Auth(sp.JWTCfg()))
			rr.Post("/init", gameHandler.Init)
			rr.Post("/spin", gameHandler.Spin)
			rr.Post("/bet/increase", gameHandler.IncreaseBet)
			rr.Post("/bet/decrease", gameHandler.DecreaseBet)
			rr.Get("/state", gameHandler.State)
			rr.Get("/history", gameHandler.History)
		})

		sp.router = r
	}

	return sp.router
}
