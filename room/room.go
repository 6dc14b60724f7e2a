package room

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"handpong/commentary"
	"handpong/game"
	"handpong/protocol"
)

const (
	SeatLeft      = "left"
	SeatRight     = "right"
	SeatSpectator = "spectator"
)

// Room runs one match: a single goroutine owns the game state and drives
// the frame loop; everything else reaches it through Inbox.
type Room struct {
	Inbox chan any

	frameHz        int
	broadcastEvery int
	state          *game.State
	phase          game.Phase
	clients        map[Conn]string // conn -> seat
	seatTaken      map[string]bool
	rng            *rand.Rand
	frame          int
	served         bool

	latestHands   []game.DetectedHand
	handsPending  bool
	lastPoseApply time.Time

	announcer *commentary.Announcer
	// At most one commentary request may be outstanding; scoring events
	// while this is set are silently skipped.
	commentaryPending bool
	lastCommentary    *commentary.Event

	numClients int32
	quit       chan struct{}

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when last client leaves
}

func New(gen commentary.Generator) *Room {
	broadcastEvery := protocol.FrameHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		frameHz:        protocol.FrameHz,
		broadcastEvery: broadcastEvery,
		state:          game.NewState(),
		phase:          game.PhaseLoading,
		clients:        make(map[Conn]string),
		seatTaken:      make(map[string]bool),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		announcer:      commentary.NewAnnouncer(gen),
		quit:           make(chan struct{}),
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumClients returns the current number of connected clients.
func (r *Room) NumClients() int {
	return int(atomic.LoadInt32(&r.numClients))
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.frameHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.tick()
		}
	}
}

// tick is one frame: rate-limited pose sampling, then one physics step
// when Playing, then the snapshot broadcast.
func (r *Room) tick() {
	r.frame++

	if r.phase == game.PhaseMenu || r.phase == game.PhasePlaying {
		if r.handsPending && time.Since(r.lastPoseApply) >= protocol.PoseSampleMinMs*time.Millisecond {
			game.ApplyHands(r.state, r.latestHands)
			r.latestHands = nil
			r.handsPending = false
			r.lastPoseApply = time.Now()
		}
	}

	if r.phase == game.PhasePlaying {
		if ev := game.Step(r.state, r.rng); ev != nil {
			kind := commentary.KindScoreForLeft
			if ev.Scorer == game.SideRight {
				kind = commentary.KindScoreForRight
			}
			r.requestCommentary(kind)
		}
	}

	if r.frame%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		seat := SeatSpectator
		switch {
		case !r.seatTaken[SeatLeft]:
			seat = SeatLeft
			r.seatTaken[SeatLeft] = true
			if c.Name != "" {
				r.state.Left.Name = c.Name
			}
		case !r.seatTaken[SeatRight]:
			seat = SeatRight
			r.seatTaken[SeatRight] = true
			if c.Name != "" {
				r.state.Right.Name = c.Name
			}
		}
		r.clients[c.Conn] = seat
		atomic.StoreInt32(&r.numClients, int32(len(r.clients)))
		c.Reply <- JoinResult{Seat: seat}
		r.sendStateTo(c.Conn)
	case Hands:
		r.latestHands = c.Hands
		r.handsPending = true
	case SetPhase:
		r.setPhase(c.Phase)
	case Restart:
		r.state.ResetScores()
		r.serveInitial()
		r.lastCommentary = nil
	case Leave:
		r.handleLeave(c.Conn)
	case commentaryDone:
		r.commentaryPending = false
		ev := c.event
		r.lastCommentary = &ev
		if b, err := protocol.Encode(protocol.MsgCommentary, protocol.CommentarySnapshot{
			Text: ev.Text, Kind: ev.Kind, Ts: ev.Timestamp,
		}); err == nil {
			r.broadcast(b)
		}
	}
}

func (r *Room) setPhase(p game.Phase) {
	if p == r.phase {
		return
	}
	prev := r.phase
	r.phase = p
	switch p {
	case game.PhasePlaying:
		if !r.served {
			r.serveInitial()
		}
		if prev == game.PhaseLoading || prev == game.PhaseMenu {
			r.requestCommentary(commentary.KindIntro)
		}
	case game.PhaseGameOver:
		r.requestCommentary(commentary.KindGameOver)
	}
}

// serveInitial serves toward a random side; scored points serve through
// game.Step instead.
func (r *Room) serveInitial() {
	side := game.SideLeft
	if r.rng.Intn(2) == 1 {
		side = game.SideRight
	}
	game.Serve(r.state, side, r.rng)
	r.served = true
}

// requestCommentary fires the external generator without blocking the
// loop. The result re-enters through Inbox; the pending flag is only
// touched by the room goroutine, so no lock is needed.
func (r *Room) requestCommentary(kind commentary.Kind) {
	if r.commentaryPending {
		return
	}
	r.commentaryPending = true
	req := commentary.Request{
		Kind:       kind,
		ScoreLeft:  r.state.Left.Score,
		ScoreRight: r.state.Right.Score,
	}
	go func() {
		ev := r.announcer.Announce(context.Background(), req)
		select {
		case r.Inbox <- commentaryDone{event: ev}:
		case <-r.quit:
			// Room torn down mid-request: drop the result.
		}
	}()
}

func (r *Room) handleLeave(conn Conn) {
	seat, ok := r.clients[conn]
	if !ok {
		return
	}
	delete(r.clients, conn)
	atomic.StoreInt32(&r.numClients, int32(len(r.clients)))
	if seat == SeatLeft || seat == SeatRight {
		r.seatTaken[seat] = false
	}
	_ = conn.Close()
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removeClient(conn Conn) {
	if seat, ok := r.clients[conn]; ok {
		if seat == SeatLeft || seat == SeatRight {
			r.seatTaken[seat] = false
		}
		_ = conn.Close()
		delete(r.clients, conn)
		atomic.StoreInt32(&r.numClients, int32(len(r.clients)))
	}
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	r.broadcast(b)
}

func (r *Room) broadcast(b []byte) {
	var failed []Conn
	for c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, c)
		}
	}
	for _, c := range failed {
		r.removeClient(c)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	snap := protocol.State{
		Tick:  r.state.Tick,
		Phase: PhaseName(r.phase),
		Ball: protocol.BallSnapshot{
			X:  r.state.Ball.X,
			Y:  r.state.Ball.Y,
			VX: r.state.Ball.VX,
			VY: r.state.Ball.VY,
		},
		ScorePop: r.state.ScorePop,
	}
	for i, p := range []*game.Player{r.state.Left, r.state.Right} {
		snap.Players[i] = protocol.PlayerSnapshot{
			Side:  p.Side.String(),
			Name:  p.Name,
			Color: p.Color,
			Score: p.Score,
			Y:     p.Y,
		}
	}
	if r.lastCommentary != nil {
		snap.Commentary = &protocol.CommentarySnapshot{
			Text: r.lastCommentary.Text,
			Kind: r.lastCommentary.Kind,
			Ts:   r.lastCommentary.Timestamp,
		}
	}
	return snap
}
