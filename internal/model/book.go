package model

// GameType — текущий режим игры
type GameType string

const (
	GameTypeBase GameType = "basegame"
	GameTypeFree GameType = "freegame"
)

// BookEventType — тип события книги. Закрытый набор, сервер других не присылает,
// но неизвестные типы обязаны пропускаться без прерывания книги
type BookEventType string

const (
	BookEventReveal         BookEventType = "reveal"
	BookEventWinInfo        BookEventType = "winInfo"
	BookEventSetWin         BookEventType = "setWin"
	BookEventSetTotalWin    BookEventType = "setTotalWin"
	BookEventFinalWin       BookEventType = "finalWin"
	BookEventStartFreeSpin  BookEventType = "startFreeSpin"
	BookEventUpdateFreeSpin BookEventType = "updateFreeSpin"
	BookEventEndFreeSpin    BookEventType = "endFreeSpin"
)

// Symbol — логический символ на доске (ID из закрытого алфавита)
type Symbol struct {
	Name string `json:"name"`
}

// Position — позиция символа на доске
type Position struct {
	Reel int `json:"reel"`
	Row  int `json:"row"`
}

// WinInfo — одна выигрышная комбинация из события winInfo
type WinInfo struct {
	Symbol    string         `json:"symbol"`
	Kind      int            `json:"kind"`
	Win       float64        `json:"win"`
	Positions []Position     `json:"positions"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// BookEvent — одно семантическое событие книги. Полезная нагрузка зависит от Type,
// незадействованные поля остаются нулевыми
type BookEvent struct {
	Index            int           `json:"index"`
	Type             BookEventType `json:"type"`
	Board            [][]Symbol    `json:"board,omitempty"`            // reveal
	PaddingPositions []int         `json:"paddingPositions,omitempty"` // reveal
	GameType         GameType      `json:"gameType,omitempty"`         // reveal
	Anticipation     []int         `json:"anticipation,omitempty"`     // reveal
	TotalWin         float64       `json:"totalWin,omitempty"`         // winInfo
	Wins             []WinInfo     `json:"wins,omitempty"`             // winInfo
	Amount           float64       `json:"amount,omitempty"`           // setWin, setTotalWin, finalWin, updateFreeSpin
	WinLevel         int           `json:"winLevel,omitempty"`         // setWin
	Total            int           `json:"total,omitempty"`            // updateFreeSpin
	TotalFS          int           `json:"totalFs,omitempty"`          // startFreeSpin
}

// Book — результат одного раунда: упорядоченная последовательность событий.
// Порядок событий значим и должен сохраняться при обработке
type Book struct {
	ID               int         `json:"id"`
	PayoutMultiplier float64     `json:"payoutMultiplier"`
	Events           []BookEvent `json:"events"`
	Criteria         string      `json:"criteria"`
	BaseGameWins     float64     `json:"baseGameWins"`
	FreeGameWins     float64     `json:"freeGameWins"`
}
