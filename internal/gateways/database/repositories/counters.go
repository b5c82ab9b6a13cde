package repositories

// Counter is a monotonically increasing column on the users table.
type Counter string

const (
	CookieSent     Counter = "cookie_sent"
	CookieReceived Counter = "cookie_received"
	CakeSent       Counter = "cake_sent"
	CakeReceived   Counter = "cake_received"
	CakeGlados     Counter = "cake_glados"
	SlapSent       Counter = "slap_sent"
	SlapReceived   Counter = "slap_received"
	TeaSent        Counter = "tea_sent"
	TeaReceived    Counter = "tea_received"
	HugSent        Counter = "hug_sent"
	HugReceived    Counter = "hug_received"
	BombSent       Counter = "bomb_sent"
	BombDefused    Counter = "bomb_defused"
	BombFailed     Counter = "bomb_failed"
	RPSWin         Counter = "rps_win"
	RPSLoss        Counter = "rps_loss"
	RPSTie         Counter = "rps_tie"
	RouletteDeaths Counter = "roulette_deaths"
)

var counters = map[Counter]struct{}{
	CookieSent: {}, CookieReceived: {},
	CakeSent: {}, CakeReceived: {}, CakeGlados: {},
	SlapSent: {}, SlapReceived: {},
	TeaSent: {}, TeaReceived: {},
	HugSent: {}, HugReceived: {},
	BombSent: {}, BombDefused: {}, BombFailed: {},
	RPSWin: {}, RPSLoss: {}, RPSTie: {},
	RouletteDeaths: {},
}

func (c Counter) Valid() bool {
	_, ok := counters[c]
	return ok
}
