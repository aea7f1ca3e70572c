package maintenance

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/linesmerrill/campus-rides/config"
	"github.com/linesmerrill/campus-rides/databases"
)

// State is a step of a maintenance run's connection lifecycle
type State int

// Connection lifecycle states. Every run that leaves NotConnected ends in Disconnected.
const (
	NotConnected State = iota
	Connected
	WorkDone
	WorkFailed
	Disconnected
)

func (s State) String() string {
	switch s {
	case NotConnected:
		return "NOT_CONNECTED"
	case Connected:
		return "CONNECTED"
	case WorkDone:
		return "WORK_DONE"
	case WorkFailed:
		return "WORK_FAILED"
	case Disconnected:
		return "DISCONNECTED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrLifecycleUsed is returned when Run is called on a lifecycle that already ran
var ErrLifecycleUsed = errors.New("connection lifecycle already used")

// Connector returns a client that is already connected to the store named in conf
type Connector func(ctx context.Context, conf *config.Config) (databases.ClientHelper, error)

// Work is the body of a maintenance run
type Work func(ctx context.Context, db databases.DatabaseHelper) error

// Connect is the default Connector backed by the mongo driver
func Connect(ctx context.Context, conf *config.Config) (databases.ClientHelper, error) {
	client, err := databases.NewClient(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	return Dial(ctx, client)
}

// Dial connects client and pings the primary. Connecting alone does not reach the
// server, so an unreachable store only shows up on the ping. A client that fails
// the ping is disconnected before returning.
func Dial(ctx context.Context, client databases.ClientHelper) (databases.ClientHelper, error) {
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		if derr := client.Disconnect(context.WithoutCancel(ctx)); derr != nil {
			err = errors.Join(err, derr)
		}
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	return client, nil
}

// Lifecycle owns one store connection for the length of a single run
type Lifecycle struct {
	conf    *config.Config
	connect Connector
	client  databases.ClientHelper
	state   State
}

// NewLifecycle prepares a lifecycle; nothing is dialed until Run
func NewLifecycle(conf *config.Config, connect Connector) *Lifecycle {
	return &Lifecycle{
		conf:    conf,
		connect: connect,
		state:   NotConnected,
	}
}

// State reports where the lifecycle currently is
func (l *Lifecycle) State() State {
	return l.state
}

// Run connects, hands the database to work and disconnects on every exit path,
// panics included. Errors from work and from disconnecting are both returned.
func (l *Lifecycle) Run(ctx context.Context, work Work) (err error) {
	if l.state != NotConnected {
		return ErrLifecycleUsed
	}

	client, err := l.connect(ctx, l.conf)
	if err != nil {
		l.transition(Disconnected)
		return err
	}
	l.client = client
	l.transition(Connected)

	defer func() {
		if derr := l.release(ctx); derr != nil {
			err = errors.Join(err, derr)
		}
	}()

	if err = work(ctx, client.Database(l.conf.DatabaseName)); err != nil {
		l.transition(WorkFailed)
		return err
	}
	l.transition(WorkDone)
	return nil
}

func (l *Lifecycle) release(ctx context.Context) error {
	if l.state == Disconnected || l.client == nil {
		return nil
	}
	err := l.client.Disconnect(context.WithoutCancel(ctx))
	l.transition(Disconnected)
	if err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	return nil
}

func (l *Lifecycle) transition(to State) {
	zap.S().Debugw("connection lifecycle", "from", l.state.String(), "to", to.String())
	l.state = to
}

// WithConnection runs work inside a fresh Lifecycle
func WithConnection(ctx context.Context, conf *config.Config, connect Connector, work Work) error {
	return NewLifecycle(conf, connect).Run(ctx, work)
}
