package core

// PlayerObserver is notified after an input-driven player move.
// Observers must not mutate the player.
type PlayerObserver interface {
	OnPlayerMove(pos Position)
}

// ObserverFunc adapts a plain function to PlayerObserver.
type ObserverFunc func(pos Position)

// OnPlayerMove calls f(pos).
func (f ObserverFunc) OnPlayerMove(pos Position) {
	f(pos)
}

// Observers is an ordered list of player observers.
// The zero value is ready to use.
type Observers struct {
	list []PlayerObserver
}

// Add registers an observer. Nil observers are ignored.
func (o *Observers) Add(obs PlayerObserver) {
	if obs == nil {
		return
	}
	o.list = append(o.list, obs)
}

// Len returns the number of registered observers.
func (o *Observers) Len() int {
	return len(o.list)
}

// Notify calls every observer synchronously in registration order.
func (o *Observers) Notify(pos Position) {
	for _, obs := range o.list {
		obs.OnPlayerMove(pos)
	}
}
