package mahjong

import (
	"fmt"
	"slices"
)

// stateTurn 接住上一轮的去向并路由到下一个状态
type stateTurn struct {
	hand   *Hand
	ending TurnEnding
}

func newStateTurn(hand *Hand, ending TurnEnding) *stateTurn {
	return &stateTurn{hand: hand, ending: ending}
}

func (s *stateTurn) OnEnter() {
	play := s.hand.GetPlay()
	switch e := s.ending.(type) {
	case HandStart:
		s.hand.SetNextState(newStateDraw(s.hand, e.Seat, 0))
	case NextSeat:
		play.NextTurn()
		s.hand.SetNextState(newStateDraw(s.hand, e.Seat, 0))
	case JumpSeat:
		play.NextTurn()
		play.SetCurSeat(e.Seat)
		play.ApplyClaim(e.Seat, e.JumpedWith, e.PrevSeat)
		if e.JumpedWith.Type == MeldKong {
			// 杠上补牌从1记起，杠上开花由此成立
			s.hand.SetNextState(newStateDraw(s.hand, e.Seat, 1))
		} else {
			s.hand.SetNextState(newStateDiscard(s.hand, e.Seat))
		}
	case TurnTied:
		s.hand.finish(GoulashEnding{})
	case TurnWon:
		s.hand.SetNextState(newStateFinish(s.hand, e.Winner, e.Wu))
	}
}

func (s *stateTurn) OnAnswer(Answer) error {
	return fmt.Errorf("%w: turn state expects no answer", ErrInvalidTransition)
}

// stateDraw 摸牌：花牌补张在Play里完成，摸空即流局
//
// tries为本次行动前连续开杠的次数，0为普通摸牌
type stateDraw struct {
	hand  *Hand
	seat  int32
	tries int
}

func newStateDraw(hand *Hand, seat int32, tries int) *stateDraw {
	return &stateDraw{hand: hand, seat: seat, tries: tries}
}

func (s *stateDraw) OnEnter() {
	play := s.hand.GetPlay()
	play.SetCurSeat(s.seat)
	tile := play.DrawFor(s.seat)
	if tile == TileNull {
		s.hand.SetNextState(newStateTurn(s.hand, TurnTied{}))
		return
	}

	flags := FlagSelfDraw
	// 连杠时只记连杠开花，不叠加杠上开花
	if s.tries == 1 {
		flags |= FlagByKong
	} else if s.tries > 1 {
		flags |= FlagDoubleKong
	}
	data := play.GetPlayData(s.seat)
	if s.tries == 0 && s.seat == play.GetBanker() &&
		play.GetDiscardTotal() == 0 && len(data.GetMelds()) == 0 {
		flags |= FlagHeavenly
	}
	if play.GetDealer().GetRestCount() == 0 {
		flags |= FlagLastCatch
	}

	wu, err := NewWu(data.GetHandTiles(), data.GetMelds(), tile, SeatNull, flags)
	if err == nil {
		s.hand.SetNextState(newStateSelfDraw(s.hand, s.seat, s.tries, wu))
		return
	}
	s.hand.SetNextState(newStateKongCheck(s.hand, s.seat, s.tries))
}

func (s *stateDraw) OnAnswer(Answer) error {
	return fmt.Errorf("%w: draw state expects no answer", ErrInvalidTransition)
}

// stateSelfDraw 可自摸，问胡不胡
type stateSelfDraw struct {
	hand  *Hand
	seat  int32
	tries int
	wu    *Wu
}

func newStateSelfDraw(hand *Hand, seat int32, tries int, wu *Wu) *stateSelfDraw {
	return &stateSelfDraw{hand: hand, seat: seat, tries: tries, wu: wu}
}

func (s *stateSelfDraw) OnEnter() {
	s.hand.suspend(SelfDrawReq{baseReq: baseReq{Seat: s.seat}, Wu: s.wu})
}

func (s *stateSelfDraw) OnAnswer(answer Answer) error {
	a, ok := answer.(BoolAnswer)
	if !ok {
		return fmt.Errorf("%w: want BoolAnswer, got %T", ErrInvalidTransition, answer)
	}
	if a.Yes {
		s.hand.SetNextState(newStateTurn(s.hand, TurnWon{Winner: s.seat, Wu: s.wu}))
	} else {
		s.hand.SetNextState(newStateKongCheck(s.hand, s.seat, s.tries))
	}
	return nil
}

// stateKongCheck 摸牌后可开的暗杠与补杠
type stateKongCheck struct {
	hand  *Hand
	seat  int32
	tries int
	melds []*Meld
}

func newStateKongCheck(hand *Hand, seat int32, tries int) *stateKongCheck {
	return &stateKongCheck{hand: hand, seat: seat, tries: tries}
}

func (s *stateKongCheck) OnEnter() {
	play := s.hand.GetPlay()
	data := play.GetPlayData(s.seat)
	s.melds = append(data.ConcealedKongs(), data.PongPromotions()...)
	if len(s.melds) == 0 {
		// 一摸未再开杠，杠链终止
		play.ClearGaveKong(s.seat)
		s.hand.SetNextState(newStateDiscard(s.hand, s.seat))
		return
	}
	s.hand.suspend(KongReq{baseReq: baseReq{Seat: s.seat}, Melds: s.melds})
}

func (s *stateKongCheck) OnAnswer(answer Answer) error {
	a, ok := answer.(MeldAnswer)
	if !ok {
		return fmt.Errorf("%w: want MeldAnswer, got %T", ErrInvalidTransition, answer)
	}
	play := s.hand.GetPlay()
	if a.Meld == nil {
		play.ClearGaveKong(s.seat)
		s.hand.SetNextState(newStateDiscard(s.hand, s.seat))
		return nil
	}
	meld := findMeld(s.melds, a.Meld)
	if meld == nil {
		return fmt.Errorf("%w: kong %s not offered", ErrInvalidTransition, a.Meld)
	}
	// 暗杠补杠都先过抢杠这一关
	s.hand.SetNextState(newStateRobKong(s.hand, s.seat, meld, s.tries))
	return nil
}

// stateRobKong 开杠宣告后按座位顺序逐家问抢杠，无人抢才成杠
type stateRobKong struct {
	hand     *Hand
	declarer int32
	meld     *Meld
	tries    int
	order    []int32
	idx      int
	wu       *Wu
}

func newStateRobKong(hand *Hand, declarer int32, meld *Meld, tries int) *stateRobKong {
	return &stateRobKong{hand: hand, declarer: declarer, meld: meld, tries: tries}
}

func (s *stateRobKong) OnEnter() {
	for step := int32(1); step < SeatCount; step++ {
		s.order = append(s.order, GetNextSeat(s.declarer, step, SeatCount))
	}
	s.advance()
}

func (s *stateRobKong) advance() {
	play := s.hand.GetPlay()
	tile := s.meld.Tiles[0]
	for ; s.idx < len(s.order); s.idx++ {
		seat := s.order[s.idx]
		data := play.GetPlayData(seat)
		concealed := append(slices.Clone(data.GetHandTiles()), tile)
		wu, err := NewWu(concealed, data.GetMelds(), tile, s.declarer, FlagRobbingKong)
		if err != nil {
			continue
		}
		s.wu = wu
		s.hand.suspend(RobKongReq{baseReq: baseReq{Seat: seat}, Arrived: tile, Wu: wu})
		return
	}
	// 无人抢，杠成立
	if !play.DeclareKong(s.declarer, s.meld) {
		s.hand.SetNextState(newStateDiscard(s.hand, s.declarer))
		return
	}
	s.hand.SetNextState(newStateDraw(s.hand, s.declarer, s.tries+1))
}

func (s *stateRobKong) OnAnswer(answer Answer) error {
	a, ok := answer.(BoolAnswer)
	if !ok {
		return fmt.Errorf("%w: want BoolAnswer, got %T", ErrInvalidTransition, answer)
	}
	if a.Yes {
		play := s.hand.GetPlay()
		play.GetPlayData(s.declarer).RemoveHandTile(s.meld.Tiles[0], 1)
		s.hand.SetNextState(newStateTurn(s.hand, TurnWon{Winner: s.order[s.idx], Wu: s.wu}))
		return nil
	}
	s.idx++
	s.advance()
	return nil
}

// stateDiscard 等当前座位出牌
type stateDiscard struct {
	hand *Hand
	seat int32
}

func newStateDiscard(hand *Hand, seat int32) *stateDiscard {
	return &stateDiscard{hand: hand, seat: seat}
}

func (s *stateDiscard) OnEnter() {
	s.hand.suspend(DiscardReq{baseReq: baseReq{Seat: s.seat}})
}

func (s *stateDiscard) OnAnswer(answer Answer) error {
	a, ok := answer.(TileAnswer)
	if !ok {
		return fmt.Errorf("%w: want TileAnswer, got %T", ErrInvalidTransition, answer)
	}
	if !s.hand.GetPlay().Discard(s.seat, a.Tile) {
		return fmt.Errorf("%w: seat %d holds no %s", ErrInvalidTransition, s.seat, a.Tile)
	}
	s.hand.SetNextState(newStateWaitClaims(s.hand, s.seat, a.Tile))
	return nil
}

type claimant struct {
	seat  int32
	wu    *Wu
	melds []*Meld
}

// rank 该座位最强的claim等级，胡占0
func (c *claimant) rank() int {
	if c.wu != nil {
		return 0
	}
	best := 5
	for _, m := range c.melds {
		if r := m.claimRank(); r < best {
			best = r
		}
	}
	return best
}

// stateWaitClaims 弃牌仲裁：按胡>杠>碰>吃、同级近者优先排出征询序，
// 逐家征询，先应者得，高序位全弃权才轮到低序位
type stateWaitClaims struct {
	hand      *Hand
	discarder int32
	tile      Tile
	claimants []*claimant
	idx       int
}

func newStateWaitClaims(hand *Hand, discarder int32, tile Tile) *stateWaitClaims {
	return &stateWaitClaims{hand: hand, discarder: discarder, tile: tile}
}

func (s *stateWaitClaims) OnEnter() {
	play := s.hand.GetPlay()
	earthly := play.IsFirstDiscard()
	for step := int32(1); step < SeatCount; step++ {
		seat := GetNextSeat(s.discarder, step, SeatCount)
		data := play.GetPlayData(seat)
		melds := data.ClaimMelds(s.tile, step == 1)
		var flags WuFlag
		if earthly {
			flags |= FlagEarthly
		}
		concealed := append(slices.Clone(data.GetHandTiles()), s.tile)
		wu, err := NewWu(concealed, data.GetMelds(), s.tile, s.discarder, flags)
		if err != nil {
			wu = nil
		}
		if wu == nil && len(melds) == 0 {
			continue
		}
		s.claimants = append(s.claimants, &claimant{seat: seat, wu: wu, melds: melds})
	}
	if len(s.claimants) == 0 {
		s.pass()
		return
	}
	// 座位本按距离升序收集，稳定排序保住同级近者优先
	slices.SortStableFunc(s.claimants, func(a, b *claimant) int {
		return a.rank() - b.rank()
	})
	s.offer()
}

func (s *stateWaitClaims) offer() {
	c := s.claimants[s.idx]
	s.hand.suspend(ClaimReq{baseReq: baseReq{Seat: c.seat}, Arrived: s.tile, Melds: c.melds, Wu: c.wu})
}

func (s *stateWaitClaims) OnAnswer(answer Answer) error {
	a, ok := answer.(ClaimAnswer)
	if !ok {
		return fmt.Errorf("%w: want ClaimAnswer, got %T", ErrInvalidTransition, answer)
	}
	c := s.claimants[s.idx]
	if a.Win {
		if c.wu == nil {
			return fmt.Errorf("%w: seat %d cannot win on %s", ErrInvalidTransition, c.seat, s.tile)
		}
		s.hand.GetPlay().RetractDiscard()
		s.hand.SetNextState(newStateTurn(s.hand, TurnWon{Winner: c.seat, Wu: c.wu}))
		return nil
	}
	if a.Meld != nil {
		offered := findMeld(c.melds, a.Meld)
		if offered == nil {
			return fmt.Errorf("%w: claim %s not offered", ErrInvalidTransition, a.Meld)
		}
		s.hand.SetNextState(newStateTurn(s.hand, JumpSeat{
			Discard:    s.tile,
			Seat:       c.seat,
			PrevSeat:   s.discarder,
			JumpedWith: offered,
		}))
		return nil
	}
	s.idx++
	if s.idx < len(s.claimants) {
		s.offer()
		return nil
	}
	s.pass()
	return nil
}

func (s *stateWaitClaims) pass() {
	s.hand.SetNextState(newStateTurn(s.hand, NextSeat{
		Discard:  s.tile,
		Seat:     GetNextSeat(s.discarder, 1, SeatCount),
		PrevSeat: s.discarder,
		Offered:  true,
	}))
}

// stateFinish 收局：并花牌番、定包牌买单方、多拆解让胡家挑
type stateFinish struct {
	hand      *Hand
	winner    int32
	wu        *Wu
	penalized bool
}

func newStateFinish(hand *Hand, winner int32, wu *Wu) *stateFinish {
	return &stateFinish{hand: hand, winner: winner, wu: wu}
}

func (s *stateFinish) OnEnter() {
	play := s.hand.GetPlay()
	s.wu.BaseFlags |= play.GetPlayData(s.winner).BonusFlags()
	if play.GetDealer().GetRestCount() == 0 {
		s.wu.BaseFlags |= FlagLastCatch
	}

	// 包牌番可叠加，买单方按 十二张 > 包三元 > 包杠 定谁
	selfDraw := s.wu.Discarder == SeatNull
	if selfDraw {
		if from, ok := play.GaveKong(s.winner); ok {
			s.wu.BaseFlags |= FlagGaveKong
			s.wu.Discarder = from
			s.penalized = true
		}
	}
	if from, ok := play.GaveDragon(s.winner); ok {
		s.wu.BaseFlags |= FlagGaveDragon
		s.wu.Discarder = from
		s.penalized = true
	}
	if selfDraw {
		if from, ok := play.TwelvePiece(s.winner); ok {
			s.wu.BaseFlags |= FlagTwelvePiece
			s.wu.Discarder = from
			s.penalized = true
		}
	}

	if len(s.wu.Decompositions()) > 1 {
		s.hand.suspend(ChooseWuReq{baseReq: baseReq{Seat: s.winner}, Wu: s.wu})
		return
	}
	s.finishWith(0)
}

func (s *stateFinish) OnAnswer(answer Answer) error {
	a, ok := answer.(ChoiceAnswer)
	if !ok {
		return fmt.Errorf("%w: want ChoiceAnswer, got %T", ErrInvalidTransition, answer)
	}
	if a.Index < 0 || a.Index >= len(s.wu.Decompositions()) {
		return fmt.Errorf("%w: combo index %d out of range", ErrInvalidTransition, a.Index)
	}
	s.finishWith(a.Index)
	return nil
}

func (s *stateFinish) finishWith(index int) {
	play := s.hand.GetPlay()
	ending := NormalEnding{
		Winner:     s.winner,
		Wu:         s.wu,
		Choice:     s.wu.Decompositions()[index],
		SeatWind:   SeatDistance(play.GetBanker(), s.winner),
		Prevailing: play.GetPrevailing(),
		Penalized:  s.penalized,
	}
	if s.winner == play.GetBanker() {
		s.hand.finish(&DealerEnding{NormalEnding: ending})
	} else {
		s.hand.finish(&ending)
	}
}

func findMeld(offered []*Meld, want *Meld) *Meld {
	for _, m := range offered {
		if m.Key() == want.Key() {
			return m
		}
	}
	return nil
}
