package frontend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"golang.org/x/time/rate"
	"k8s.io/klog/v2"

	"github.com/budallas/webclient/internal/game"
	"github.com/budallas/webclient/internal/session"
)

// ChatLine is one received chat message. The log is a plain local
// echo of broadcast events: append-only, never reconciled.
type ChatLine struct {
	Name    string
	Message string
}

// ClientState manages the backend connection, the session state
// machine, and the chat log. All inbound events funnel through
// handleMessage; components re-render via the listener map.
type ClientState struct {
	Session *session.Session
	Chat    []ChatLine

	// Hint is the local "what to select" message after a rejected
	// action; ErrorMessage is the last server-reported error.
	Hint         string
	ErrorMessage string

	Conn      *websocket.Conn
	chatLimit *rate.Limiter

	// Login form state (persistent across re-renders)
	PendingName string
	PendingRoom string

	// Listeners for state updates
	Listeners map[string]func()
}

var State *ClientState

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		identity := session.NewIdentity(newBrowserKV())
		State = &ClientState{
			Session:   session.New(identity.GetOrCreateID()),
			Listeners: make(map[string]func()),
			chatLimit: rate.NewLimiter(rate.Every(500*time.Millisecond), 3),
		}
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

func (s *ClientState) Notify() {
	klog.V(1).Infof("ClientState: notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

// backendURL returns the websocket endpoint of the game backend: the
// value advertised by the shell server, or the shell's own host.
func backendURL() string {
	if url := app.Getenv("BUDALLAS_BACKEND_WS"); url != "" {
		return url
	}
	return fmt.Sprintf("ws://%s/ws", app.Window().URL().Host)
}

// Join runs the login transition and, on success, connects to the
// backend and sends the join_game request.
func (s *ClientState) Join(name, room string) error {
	if err := s.Session.Join(name, room); err != nil {
		return err
	}
	if err := s.connect(); err != nil {
		s.Session.Leave()
		return err
	}
	s.Notify()
	return nil
}

func (s *ClientState) connect() error {
	if s.Conn != nil {
		klog.Infof("connect: closing existing connection")
		s.Conn.CloseNow()
		s.Conn = nil
	}

	wsURL := backendURL()
	klog.Infof("connect: dialing %s (room %q)", wsURL, s.Session.Room)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		klog.Errorf("connect: dial failed: %v", err)
		return fmt.Errorf("dial failed: %w", err)
	}
	s.Conn = conn

	joinMsg, err := game.NewMessage(game.MsgTypeJoinGame, s.Session.JoinPayload())
	if err != nil {
		klog.Errorf("connect: failed to create join message: %v", err)
		return fmt.Errorf("failed to create join message: %w", err)
	}
	if err := wsjson.Write(ctx, conn, joinMsg); err != nil {
		klog.Errorf("connect: failed to send join: %v", err)
		return fmt.Errorf("failed to send join: %w", err)
	}

	klog.Infof("connect: joined, starting read loop")
	go s.readLoop(conn)
	return nil
}

func (s *ClientState) readLoop(conn *websocket.Conn) {
	ctx := context.Background()
	for {
		var msg game.Message
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			klog.Errorf("readLoop: read error: %v", err)
			break
		}
		klog.V(1).Infof("readLoop: received %s", msg.Type)
		s.handleMessage(msg)
	}
}

// handleMessage applies one inbound event. Snapshots are applied in
// receipt order and replace the previous state in full before any
// listener renders.
func (s *ClientState) handleMessage(msg game.Message) {
	p, err := msg.Parse()
	if err != nil {
		klog.Errorf("handleMessage: failed to parse %s payload: %v", msg.Type, err)
		return
	}

	switch msg.Type {
	case game.MsgTypeLobbyUpdate:
		lobby := p.(*game.LobbyUpdatePayload)
		s.Session.ApplyLobby(lobby.Players)
		s.Notify()

	case game.MsgTypeGameUpdate:
		snap := p.(*game.Snapshot)
		klog.V(1).Infof("handleMessage: snapshot with %d players, %d attacks", len(snap.Players), len(snap.TableAttack))
		s.Session.ApplySnapshot(snap)
		s.ErrorMessage = ""
		s.Hint = ""
		s.Notify()

	case game.MsgTypeGameOver:
		over := p.(*game.GameOverPayload)
		s.Session.GameOver(over.Message, func() {
			s.Session.ReturnToLobby()
			s.Notify()
		})
		s.Notify()

	case game.MsgTypeReceiveChat:
		line := p.(*game.ChatEventPayload)
		s.Chat = append(s.Chat, ChatLine{Name: line.Name, Message: line.Message})
		s.Notify()

	case game.MsgTypeError:
		serverErr := p.(*game.ErrorPayload)
		klog.Errorf("handleMessage: server error: %s", serverErr.Message)
		s.ErrorMessage = serverErr.Message
		s.Notify()

	default:
		klog.Warningf("handleMessage: unhandled message type %s", msg.Type)
	}
}

// Send implements session.Sender over the websocket. Every outbound
// request is fire-and-forget; effects arrive as later events.
func (s *ClientState) Send(msgType game.MessageType, payload any) error {
	if s.Conn == nil {
		return errors.New("not connected")
	}
	msg, err := game.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()
	return wsjson.Write(ctx, s.Conn, msg)
}

// DoAction dispatches one of the five game actions. A local
// precondition failure becomes the on-screen hint and sends nothing.
func (s *ClientState) DoAction(kind session.ActionKind) {
	if err := s.Session.Dispatch(kind, s); err != nil {
		klog.V(1).Infof("DoAction: %s rejected: %v", kind, err)
		s.Hint = err.Error()
	} else {
		s.Hint = ""
	}
	s.Notify()
}

// SendStart asks the server to start the round.
func (s *ClientState) SendStart() {
	if err := s.Send(game.MsgTypeStartGame, nil); err != nil {
		klog.Errorf("SendStart: %v", err)
	}
}

// SendRestart asks the server to restart the room. The client state
// does not change until the next snapshot arrives.
func (s *ClientState) SendRestart() {
	if err := s.Send(game.MsgTypeRestartGame, nil); err != nil {
		klog.Errorf("SendRestart: %v", err)
	}
}

// SendChat sends one chat line. Floods are dropped client-side.
func (s *ClientState) SendChat(text string) {
	if text == "" {
		return
	}
	if !s.chatLimit.Allow() {
		klog.V(1).Infof("SendChat: rate limited, dropping")
		return
	}
	err := s.Send(game.MsgTypeSendChat, game.ChatPayload{
		Message: text,
		Name:    s.Session.Name,
		Room:    s.Session.Room,
	})
	if err != nil {
		klog.Errorf("SendChat: %v", err)
	}
}

// Leave notifies the server, tears down the connection, and clears all
// session-scoped state including the chat log.
func (s *ClientState) Leave() {
	if s.Conn != nil {
		if err := s.Send(game.MsgTypeLeaveGame, nil); err != nil {
			klog.Errorf("Leave: failed to notify server: %v", err)
		}
		s.Conn.CloseNow()
		s.Conn = nil
	}
	s.Session.Leave()
	s.Chat = nil
	s.Hint = ""
	s.ErrorMessage = ""
	s.Notify()
}

// View projects the current snapshot for rendering.
func (s *ClientState) View() session.View {
	return session.Project(s.Session.Snapshot, s.Session.Name, s.Session.Selection)
}
