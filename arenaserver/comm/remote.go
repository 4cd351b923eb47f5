package comm

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
)

var (
	ErrNotConnected = errors.New("no remote policy connected")
	ErrDisconnected = errors.New("remote policy disconnected")
)

const repliesBuffer = 16

type remoteConn struct {
	conn    net.Conn
	session string

	writeMu sync.Mutex
	encoder protocol.Encoder

	replies chan protocol.ActionBatch
	done    chan struct{}
}

func (rc *remoteConn) push(batch protocol.ActionBatch) {
	for {
		select {
		case rc.replies <- batch:
			return
		default:
		}

		// buffer full: the oldest reply is stale anyway
		select {
		case <-rc.replies:
		default:
		}
	}
}

// RemotePolicy forwards perception batches to the policy connected for
// its team and waits for the matching action batch.
type RemotePolicy struct {
	team arena.Team

	mu        sync.Mutex
	current   *remoteConn
	connected chan struct{} // closed while a policy is connected
}

func newRemotePolicy(team arena.Team) *RemotePolicy {
	return &RemotePolicy{
		team:      team,
		connected: make(chan struct{}),
	}
}

func (p *RemotePolicy) GetTeam() arena.Team {
	return p.team
}

func (p *RemotePolicy) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current != nil
}

func (p *RemotePolicy) attach(rc *remoteConn) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		return false
	}

	p.current = rc
	close(p.connected)

	return true
}

func (p *RemotePolicy) detach(rc *remoteConn) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != rc {
		return
	}

	p.current = nil
	p.connected = make(chan struct{})
	close(rc.done)
}

func (p *RemotePolicy) connection() (*remoteConn, chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current, p.connected
}

// WaitConnected blocks until a remote policy is connected or ctx is done.
func (p *RemotePolicy) WaitConnected(ctx context.Context) error {
	_, connected := p.connection()

	select {
	case <-connected:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "waiting for the %s policy", p.team.String())
	}
}

func (p *RemotePolicy) Act(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error) {
	rc, _ := p.connection()
	if rc == nil {
		return protocol.ActionBatch{}, ErrNotConnected
	}

	rc.writeMu.Lock()
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}

	rc.conn.SetWriteDeadline(deadline)
	err := rc.encoder.Encode(batch)
	rc.writeMu.Unlock()

	if err != nil {
		return protocol.ActionBatch{}, errors.Wrapf(err, "could not send perceptions of tick %d", batch.Tick)
	}

	for {
		select {
		case reply := <-rc.replies:
			if reply.Tick < batch.Tick {
				// answer to a tick that already timed out
				continue
			}

			if reply.Tick > batch.Tick {
				return reply, errors.Errorf("reply for unknown tick %d", reply.Tick)
			}

			return reply, nil

		case <-rc.done:
			return protocol.ActionBatch{}, ErrDisconnected

		case <-ctx.Done():
			return protocol.ActionBatch{}, ctx.Err()
		}
	}
}
