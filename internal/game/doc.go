// Package game implements the four-seat Texas Hold'em round engine.
//
// The main type is Game, a tick-driven state machine that cycles through
// Dealing, Round, Resolving and Collecting. Each call to Update performs at
// most one state transition and never blocks: when the seat to act has not
// decided yet, Update simply returns and the same seat is polled again on
// the next tick.
//
// # Basic Usage
//
//	in := controls.New(quartz.NewReal())
//	g, err := game.New(seats, actors, game.WithRNG(rng), game.WithBlinds(2, 5))
//	for {
//	    if err := g.Update(in); err != nil {
//	        return err // a broken invariant; the hand cannot continue
//	    }
//	    in.ReleaseAll()
//	}
//
// # Decision Makers
//
// Every seat is driven by an Actor. The engine only talks to the Actor
// interface and hands it an Info snapshot, never a live reference to its
// own state. Blind postings call Done with forced set so an actor can
// acknowledge without choosing.
//
// # Settlement
//
// At showdown every non-folded hand is evaluated and Settle splits the
// contributions into layered side pots. Settle is a pure function and can
// be used on its own.
package game
