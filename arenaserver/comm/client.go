package comm

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
)

// Client is the policy side of the connection.
type Client struct {
	address   string
	team      arena.Team
	codec     protocol.Codec
	Greetings string

	// MaxElapsedTime bounds the connection retries; 0 retries until ctx is done.
	MaxElapsedTime time.Duration

	conn    net.Conn
	reader  *bufio.Reader
	encoder protocol.Encoder
	decoder protocol.Decoder
	ack     protocol.HandshakeAck
}

func NewClient(address string, team arena.Team, codecName string) (*Client, error) {
	codec, err := protocol.GetCodec(codecName)
	if err != nil {
		return nil, err
	}

	return &Client{
		address:        address,
		team:           team,
		codec:          codec,
		MaxElapsedTime: 30 * time.Second,
	}, nil
}

func (c *Client) GetAck() protocol.HandshakeAck {
	return c.ack
}

// Connect dials the server with exponential backoff, then handshakes.
func (c *Client) Connect(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxElapsedTime = c.MaxElapsedTime

	var dialer net.Dialer

	err := backoff.Retry(func() error {
		conn, err := dialer.DialContext(ctx, "tcp", c.address)
		if err != nil {
			utils.Debug("comm-client", "could not connect to "+c.address+"; retrying")
			return err
		}

		c.conn = conn
		return nil
	}, backoff.WithContext(b, ctx))

	if err != nil {
		return errors.Wrapf(err, "could not connect to %s", c.address)
	}

	return c.handshake()
}

func (c *Client) handshake() error {
	err := json.NewEncoder(c.conn).Encode(protocol.Handshake{
		Team:      c.team.String(),
		Codec:     c.codec.Name(),
		Greetings: c.Greetings,
	})
	if err != nil {
		c.conn.Close()
		return errors.Wrap(err, "could not send handshake")
	}

	c.reader = bufio.NewReader(c.conn)

	line, err := utils.ReadFullLine(c.reader)
	if err != nil {
		c.conn.Close()
		return errors.Wrap(err, "could not read handshake ack")
	}

	if err := json.Unmarshal([]byte(line), &c.ack); err != nil {
		c.conn.Close()
		return errors.Wrapf(err, "malformed handshake ack %q", line)
	}

	if c.ack.Error != "" {
		c.conn.Close()
		return errors.Errorf("handshake refused: %s", c.ack.Error)
	}

	c.encoder = c.codec.NewEncoder(c.conn)
	c.decoder = c.codec.NewDecoder(c.reader)

	return nil
}

// Serve answers every perception batch with decide until the server
// closes the connection or ctx is done.
func (c *Client) Serve(ctx context.Context, decide func(protocol.PerceptionBatch) protocol.ActionBatch) error {
	if c.decoder == nil {
		return errors.New("client is not connected")
	}

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			c.conn.Close()
		case <-stop:
		}
	}()

	for {
		var batch protocol.PerceptionBatch
		if err := c.decoder.Decode(&batch); err != nil {
			if ctx.Err() != nil || errors.Cause(err) == io.EOF {
				return nil
			}

			return errors.Wrap(err, "could not read perceptions")
		}

		reply := decide(batch)
		reply.Tick = batch.Tick

		if err := c.encoder.Encode(reply); err != nil {
			return errors.Wrapf(err, "could not send actions of tick %d", batch.Tick)
		}
	}
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	return c.conn.Close()
}
