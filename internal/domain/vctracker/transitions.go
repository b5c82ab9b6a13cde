package vctracker

import "github.com/disgoorg/snowflake/v2"

// Transition is the edge a voice state update represents.
type Transition int

const (
	NoTransition Transition = iota
	Connect
	Disconnect
	Move
)

func (t Transition) String() string {
	switch t {
	case Connect:
		return "connect"
	case Disconnect:
		return "disconnect"
	case Move:
		return "move"
	}
	return "none"
}

func Classify(oldChannel, newChannel *snowflake.ID) Transition {
	switch {
	case oldChannel == nil && newChannel != nil:
		return Connect
	case oldChannel != nil && newChannel == nil:
		return Disconnect
	case oldChannel != nil && newChannel != nil && *oldChannel != *newChannel:
		return Move
	}
	return NoTransition
}

// Action is what the ledger does in response to a transition.
type Action int

const (
	Noop Action = iota
	Join
	Flush
)

func (a Action) String() string {
	switch a {
	case Join:
		return "join"
	case Flush:
		return "flush"
	}
	return "noop"
}

// Decide maps a transition to a ledger action. ignored is 0 when the guild
// has no ignored channel.
func Decide(t Transition, oldChannel, newChannel *snowflake.ID, ignored snowflake.ID) Action {
	tracked := func(c *snowflake.ID) bool {
		return c != nil && (ignored == 0 || *c != ignored)
	}

	switch t {
	case Connect:
		if tracked(newChannel) {
			return Join
		}
	case Disconnect:
		if tracked(oldChannel) {
			return Flush
		}
	case Move:
		switch {
		case tracked(oldChannel) && !tracked(newChannel):
			return Flush
		case !tracked(oldChannel) && tracked(newChannel):
			return Join
		}
	}
	return Noop
}
