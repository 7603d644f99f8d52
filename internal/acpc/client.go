// Package acpc connects an equilibrium player to an ACPC dealer over TCP.
// The dealer protocol is line oriented: the client announces its protocol
// version, the dealer streams MATCHSTATE lines, and the client answers the
// ones where it is due to act by echoing the line with its action appended.
package acpc

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lox/kuhnbot/internal/equilibrium"
	"github.com/lox/kuhnbot/internal/kuhn"
)

// Version is the dealer protocol version announced on connect.
const Version = "VERSION:2.0.0"

// Client runs one player against a dealer connection.
type Client struct {
	addr   string
	player *equilibrium.Player
	logger zerolog.Logger
}

// NewClient creates a client that will connect to addr and play with the
// supplied player.
func NewClient(addr string, player *equilibrium.Player, logger zerolog.Logger) *Client {
	return &Client{
		addr:   addr,
		player: player,
		logger: logger.With().Str("component", "acpc").Logger(),
	}
}

// Run connects to the dealer and plays until the dealer closes the
// connection or the context is cancelled.
func (c *Client) Run(ctx context.Context) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to dealer: %w", err)
	}
	defer conn.Close()

	// Unblock the read loop when the context is cancelled.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c.logger.Info().Str("addr", c.addr).Msg("connected to dealer")

	if _, err := fmt.Fprintf(conn, "%s\r\n", Version); err != nil {
		return fmt.Errorf("failed to send version: %w", err)
	}

	if err := c.play(conn); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return ctx.Err()
}

func (c *Client) play(conn net.Conn) error {
	scanner := bufio.NewScanner(conn)
	hands := 0

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		view, err := kuhn.ParseMatchState(line)
		if err != nil {
			return fmt.Errorf("bad matchstate from dealer: %w", err)
		}
		if view.Hand >= hands {
			hands = view.Hand + 1
		}
		if !view.OurTurn() {
			continue
		}

		act := c.player.Act(view)
		c.logger.Debug().
			Int("hand", view.Hand).
			Int("seat", view.Viewer).
			Str("card", view.Card.String()).
			Str("action", act.Type.String()).
			Msg("acting")

		if _, err := fmt.Fprintf(conn, "%s:%s\r\n", line, act.Type.Wire()); err != nil {
			return fmt.Errorf("failed to send action: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("dealer connection: %w", err)
	}

	c.logger.Info().Int("hands", hands).Msg("dealer closed connection")
	return nil
}
