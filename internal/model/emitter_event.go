package model

// EmitterEventType — тип события для презентационного слоя
type EmitterEventType string

const (
	EmitterBoardShow   EmitterEventType = "boardShow"
	EmitterBoardHide   EmitterEventType = "boardHide"
	EmitterBoardReveal EmitterEventType = "boardReveal"
	EmitterBoardSpin   EmitterEventType = "boardSpin"
	EmitterBoardSettle EmitterEventType = "boardSettle"

	EmitterWinShow         EmitterEventType = "winShow"
	EmitterWinHide         EmitterEventType = "winHide"
	EmitterWinAmountUpdate EmitterEventType = "winAmountUpdate"

	EmitterFreeSpinCounterShow   EmitterEventType = "freeSpinCounterShow"
	EmitterFreeSpinCounterHide   EmitterEventType = "freeSpinCounterHide"
	EmitterFreeSpinCounterUpdate EmitterEventType = "freeSpinCounterUpdate"
	EmitterFreeSpinIntroShow     EmitterEventType = "freeSpinIntroShow"
	EmitterFreeSpinIntroHide     EmitterEventType = "freeSpinIntroHide"

	EmitterUIShow EmitterEventType = "uiShow"
	EmitterUIHide EmitterEventType = "uiHide"

	EmitterSoundOnce  EmitterEventType = "soundOnce"
	EmitterSoundMusic EmitterEventType = "soundMusic"
	EmitterSoundLoop  EmitterEventType = "soundLoop"
	EmitterSoundStop  EmitterEventType = "soundStop"
)

// Имена звуковых сигналов, которые уходят презентации вместе с sound-событиями
const (
	SoundSpin      = "sfx_spin"
	SoundScatter   = "sfx_scatter"
	SoundWinSmall  = "sfx_win_small"
	SoundWinMedium = "sfx_win_medium"
	SoundWinBig    = "sfx_win_big"
	SoundWinMax    = "sfx_win_max"
	SoundMusicMain = "bgm_main"
	SoundMusicFree = "bgm_freespin"
)

// EmitterEvent — сообщение презентационному слою. Интерпретатор книги только
// публикует такие события, обратного потока нет
type EmitterEvent struct {
	Type             EmitterEventType `json:"type"`
	Board            [][]Symbol       `json:"board,omitempty"`
	PaddingPositions []int            `json:"paddingPositions,omitempty"`
	Anticipation     []int            `json:"anticipation,omitempty"`
	Wins             []WinInfo        `json:"wins,omitempty"`
	Amount           float64          `json:"amount,omitempty"`
	Current          int              `json:"current,omitempty"`
	Total            int              `json:"total,omitempty"`
	Sound            string           `json:"sound,omitempty"`
	FadeMS           int              `json:"fadeMs,omitempty"`
}
