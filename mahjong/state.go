package mahjong

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// IState 状态机节点，进入时推进或挂起等待回应
type IState interface {
	OnEnter()
	OnAnswer(answer Answer) error
}

// Hand 单局引擎：状态推进到挂起点后由外部喂Answer
//
// 协程式的轮转在这里摊平成显式状态，每次Answer至多推进到下一个挂起点
type Hand struct {
	play      *Play
	curState  IState
	nextState IState
	pending   Request
	result    HandEnding
}

func NewHand(rule *Rule, prevailing, banker int32) *Hand {
	return &Hand{
		play: NewPlay(rule, prevailing, banker),
	}
}

func (h *Hand) GetPlay() *Play {
	return h.play
}

// Start 发牌并推进到第一个挂起点
func (h *Hand) Start() {
	h.play.Deal()
	h.run()
}

// StartWithWall 用预置牌墙开局，复盘用
func (h *Hand) StartWithWall(wall []Tile) {
	h.play.DealWall(wall)
	h.run()
}

func (h *Hand) run() {
	h.SetNextState(newStateTurn(h, HandStart{Seat: h.play.GetBanker()}))
	h.enterNextState()
}

// Pending 当前挂起的请求，nil表示已结束或未开始
func (h *Hand) Pending() Request {
	return h.pending
}

// Result 非nil表示本局已出结果
func (h *Hand) Result() HandEnding {
	return h.result
}

// OnAnswer 喂入挂起请求的回应并推进状态机
func (h *Hand) OnAnswer(seat int32, answer Answer) error {
	if h.result != nil {
		return fmt.Errorf("%w: hand already ended", ErrInvalidTransition)
	}
	if h.pending == nil {
		return fmt.Errorf("%w: no pending request", ErrInvalidTransition)
	}
	if h.pending.GetSeat() != seat {
		return fmt.Errorf("%w: seat %d answered but waiting for %d", ErrInvalidTransition, seat, h.pending.GetSeat())
	}
	req := h.pending
	h.pending = nil
	if err := h.curState.OnAnswer(answer); err != nil {
		logrus.Errorf("seat %d answer rejected: %v", seat, err)
		h.pending = req // 回应无效，原请求继续挂起
		return err
	}
	h.enterNextState()
	return nil
}

func (h *Hand) SetNextState(state IState) {
	h.nextState = state
}

func (h *Hand) enterNextState() {
	for h.nextState != nil && h.pending == nil && h.result == nil {
		h.curState = h.nextState
		h.nextState = nil
		logger.Log.Debugf("enter state %T", h.curState)
		h.curState.OnEnter()
	}
}

// suspend 挂起等待req.GetSeat()的回应
func (h *Hand) suspend(req Request) {
	h.pending = req
}

func (h *Hand) finish(ending HandEnding) {
	h.result = ending
}
