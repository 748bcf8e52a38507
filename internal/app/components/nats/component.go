package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

func NewConnection(dsn string) (*nats.Conn, error) {
	nc, err := nats.Connect(dsn, nats.Name("pager-gateway"))
	if err != nil {
		return nil, err
	}

	if err := nc.FlushTimeout(1 * time.Second); err != nil {
		nc.Close()
		return nil, errors.New("not connected")
	}

	return nc, nil
}

// NewJetStream connects to dsn and returns the connection with a JetStream
// handle on top of it. The caller owns the connection.
func NewJetStream(dsn string) (*nats.Conn, jetstream.JetStream, error) {
	conn, err := NewConnection(dsn)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("create jetstream: %w", err)
	}

	return conn, js, nil
}
