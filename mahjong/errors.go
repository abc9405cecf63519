package mahjong

import "errors"

var (
	// ErrInvalidMeld 面子结构不成立，试探性检查的预期结果
	ErrInvalidMeld = errors.New("invalid meld")
	// ErrNotWinningHand 无法拆解为胡牌，也非十三幺
	ErrNotWinningHand = errors.New("not a winning hand")
	// ErrInvalidTransition 状态机调用违约，应视为致命错误
	ErrInvalidTransition = errors.New("invalid transition")
)
