package comm

import (
	"bufio"
	"encoding/json"
	"net"
	"sync"

	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// SessionInfo is sent to every remote policy in its handshake ack.
type SessionInfo struct {
	Agents          [2]int
	ObservationSize int
}

type CommServer struct {
	address  string
	info     SessionInfo
	listener net.Listener

	remotes [2]*RemotePolicy
	events  chan interface{}

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

// Creates new tcp server instance
func NewCommServer(address string, info SessionInfo) *CommServer {
	return &CommServer{
		address: address,
		info:    info,

		remotes: [2]*RemotePolicy{
			newRemotePolicy(arena.Noxus),
			newRemotePolicy(arena.Ionia),
		},
		events: make(chan interface{}, 64),
		conns:  make(map[net.Conn]struct{}),
	}
}

func (s *CommServer) Policy(team arena.Team) *RemotePolicy {
	return s.remotes[team]
}

// Events never blocks the server; events are dropped when nobody listens.
func (s *CommServer) Events() <-chan interface{} {
	return s.events
}

func (s *CommServer) emit(event interface{}) {
	select {
	case s.events <- event:
	default:
	}
}

func (s *CommServer) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

func (s *CommServer) Listen() error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return errors.Wrapf(err, "comm server could not listen on %s", s.address)
	}

	s.listener = ln
	utils.Debug("comm", "listening on "+ln.Addr().String())

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if s.isClosed() {
					return
				}

				s.emit(EventWarn{Err: errors.Wrap(err, "could not accept connection")})
				continue
			}

			go s.handle(conn)
		}
	}()

	return nil
}

func (s *CommServer) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *CommServer) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	s.conns[conn] = struct{}{}
	return true
}

func (s *CommServer) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func reject(conn net.Conn, reason string) {
	json.NewEncoder(conn).Encode(protocol.HandshakeAck{Error: reason})
}

func (s *CommServer) handle(conn net.Conn) {
	defer conn.Close()

	if !s.track(conn) {
		return
	}

	defer s.untrack(conn)

	reader := bufio.NewReader(conn)

	line, err := utils.ReadFullLine(reader)
	if err != nil {
		s.emit(EventLog{Value: "connection closed before handshake; " + err.Error()})
		return
	}

	var handshake protocol.Handshake
	if err := json.Unmarshal([]byte(line), &handshake); err != nil {
		reject(conn, "malformed handshake")
		s.emit(EventWarn{Err: errors.Wrapf(err, "malformed handshake %q", line)})
		return
	}

	team, err := arena.ParseTeam(handshake.Team)
	if err != nil {
		reject(conn, err.Error())
		return
	}

	codec, err := protocol.GetCodec(handshake.Codec)
	if err != nil {
		reject(conn, err.Error())
		return
	}

	rc := &remoteConn{
		conn:    conn,
		session: uuid.NewV4().String(),
		encoder: codec.NewEncoder(conn),
		replies: make(chan protocol.ActionBatch, repliesBuffer),
		done:    make(chan struct{}),
	}

	// the ack must be the first thing written once the policy is attached
	rc.writeMu.Lock()

	remote := s.remotes[team]
	if !remote.attach(rc) {
		rc.writeMu.Unlock()
		reject(conn, "a policy is already connected for "+team.String())
		return
	}

	err = json.NewEncoder(conn).Encode(protocol.HandshakeAck{
		Session:         rc.session,
		Team:            team.String(),
		Agents:          s.info.Agents[team],
		ObservationSize: s.info.ObservationSize,
	})
	rc.writeMu.Unlock()

	if err != nil {
		remote.detach(rc)
		return
	}

	utils.Debug("comm", "policy for "+team.String()+" connected; it said \""+handshake.Greetings+"\"")
	s.emit(EventConnConnected{Team: team, Session: rc.session})

	decoder := codec.NewDecoder(reader)
	for {
		var batch protocol.ActionBatch
		if err := decoder.Decode(&batch); err != nil {
			remote.detach(rc)
			s.emit(EventConnDisconnected{Team: team, Session: rc.session, Err: err})
			return
		}

		rc.push(batch)
	}
}

func (s *CommServer) Close() error {
	s.mu.Lock()
	s.closed = true
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Close()
}
