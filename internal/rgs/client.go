package rgs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"slot_client/internal/model"
	"slot_client/pkg/token"
)

const (
	pathAuthenticate = "/wallet/authenticate"
	pathPlay         = "/wallet/play"
	pathEndRound     = "/wallet/end-round"
)

// Client — протокольный клиент кошелька RGS: аутентификация, ставка,
// закрытие раунда. Состояние игры он не трогает, только возвращает данные
type Client interface {
	Authenticate(ctx context.Context) (*AuthResult, error)
	Play(ctx context.Context, amount float64, mode string) (*PlayResult, error)
	EndRound(ctx context.Context) error

	IsAuthenticated() bool
	HasActiveRound() bool
}

type client struct {
	httpClient *http.Client
	baseURL    string
	sessionID  string
	language   string
	currency   string

	mu             sync.Mutex
	authenticated  bool
	sessionExpiry  time.Time
	currentRoundID string
}

// NewClient — создает клиент кошелька. baseURL без завершающего слеша
func NewClient(httpClient *http.Client, baseURL, sessionID, language, currency string) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sessionID:  sessionID,
		language:   language,
		currency:   currency,
	}
}

// Authenticate устанавливает сессию. До ее успеха Play запрещен
func (c *client) Authenticate(ctx context.Context) (*AuthResult, error) {
	var resp authenticateResponse
	status, err := c.post(ctx, pathAuthenticate, authenticateRequest{
		SessionID: c.sessionID,
		Language:  c.language,
	}, &resp)
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	if status != http.StatusOK || len(resp.Error) > 0 {
		return nil, &AuthError{Err: fmt.Errorf("server rejected session: status %d, payload %s", status, resp.Error)}
	}
	if resp.Balance == nil {
		return nil, &AuthError{Err: fmt.Errorf("authenticate response without balance")}
	}

	result := &AuthResult{
		Balance:  fromWire(resp.Balance.Amount),
		Currency: resp.Balance.Currency,
	}
	if resp.Config != nil {
		result.MinBet = fromWire(resp.Config.MinBet)
		result.MaxBet = fromWire(resp.Config.MaxBet)
		result.BetLevels = make([]float64, 0, len(resp.Config.BetLevels))
		for _, lvl := range resp.Config.BetLevels {
			result.BetLevels = append(result.BetLevels, fromWire(lvl))
		}
	}

	c.mu.Lock()
	c.authenticated = true
	c.sessionExpiry = time.Time{}
	if resp.Token != "" {
		// Срок действия сессии берем из токена; без exp играем до отказа сервера
		expiry, expErr := token.SessionExpiry(resp.Token)
		if expErr != nil {
			log.Printf("[rgs] session token without usable expiry: %v", expErr)
		} else {
			c.sessionExpiry = expiry
		}
	}
	// Сервер мог вернуть незакрытый раунд с прошлой сессии
	if resp.Round != nil && resp.Round.Active {
		c.currentRoundID = strconv.Itoa(resp.Round.BetID)
		result.Resumed = c.toPlayResult(resp.Balance, resp.Round)
	}
	c.mu.Unlock()

	log.Printf("[rgs] authenticated, balance %.2f %s", result.Balance, result.Currency)
	return result, nil
}

// Play размещает ставку. Сумма задается в единицах валюты и округляется
// (не усекается) при переводе в формат протокола
func (c *client) Play(ctx context.Context, amount float64, mode string) (*PlayResult, error) {
	c.mu.Lock()
	if !c.authenticated {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	if !c.sessionExpiry.IsZero() && time.Now().After(c.sessionExpiry) {
		c.authenticated = false
		c.mu.Unlock()
		return nil, fmt.Errorf("session token expired: %w", ErrNotAuthenticated)
	}
	c.mu.Unlock()

	var resp playResponse
	status, err := c.post(ctx, pathPlay, playRequest{
		SessionID: c.sessionID,
		Currency:  c.currency,
		Amount:    toWire(amount),
		Mode:      mode,
	}, &resp)
	if err != nil {
		return nil, &BetRequestError{Err: err}
	}
	if status != http.StatusOK || len(resp.Error) > 0 {
		return nil, &BetRequestError{Status: status, Payload: resp.Error}
	}
	if resp.Balance == nil || resp.Round == nil {
		return nil, &BetRequestError{Status: status, Err: fmt.Errorf("incomplete play response")}
	}

	c.mu.Lock()
	c.currentRoundID = strconv.Itoa(resp.Round.BetID)
	c.mu.Unlock()

	result := c.toPlayResult(resp.Balance, resp.Round)
	log.Printf("[rgs] play accepted, round %s, payout %.2f", result.RoundID, result.Payout)
	return result, nil
}

// EndRound закрывает текущий раунд. Если активного раунда нет — тихо
// выходит; сам факт закрытия для клиента необязателен
func (c *client) EndRound(ctx context.Context) error {
	c.mu.Lock()
	roundID := c.currentRoundID
	c.mu.Unlock()

	if roundID == "" {
		log.Printf("[rgs] no active round to end")
		return nil
	}

	var resp endRoundResponse
	status, err := c.post(ctx, pathEndRound, endRoundRequest{SessionID: c.sessionID}, &resp)
	if err != nil {
		return fmt.Errorf("end round: %w", err)
	}
	if status != http.StatusOK || len(resp.Error) > 0 {
		return fmt.Errorf("end round rejected: status %d, payload %s", status, resp.Error)
	}

	c.mu.Lock()
	c.currentRoundID = ""
	c.mu.Unlock()

	log.Printf("[rgs] round %s ended", roundID)
	return nil
}

func (c *client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

func (c *client) HasActiveRound() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentRoundID != ""
}

func (c *client) toPlayResult(balance *walletBalance, round *walletRound) *PlayResult {
	return &PlayResult{
		Balance:  fromWire(balance.Amount),
		Currency: balance.Currency,
		RoundID:  strconv.Itoa(round.BetID),
		Payout:   fromWire(round.Payout),
		Book: &model.Book{
			ID:               round.BetID,
			PayoutMultiplier: round.PayoutMultiplier,
			Events:           round.State,
		},
	}
}

func (c *client) post(ctx context.Context, path string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

func toWire(amount float64) int64 {
	return int64(math.Round(amount * apiAmountMultiplier))
}

func fromWire(amount int64) float64 {
	return float64(amount) / apiAmountMultiplier
}
