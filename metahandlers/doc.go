// Package metahandlers provides ready-made core.Generator implementations
// for the common leaf domains: bounded integers and floats, sized lists,
// categorical choices, and bounded strings over an alphabet.
//
// A metahandler owns value production for the field it annotates: the
// synthesizer hands it the random source, the grammar, its own recursive
// expansion capability, the remaining depth budget and the already-bound
// sibling fields, and accepts whatever complete value comes back.
//
//	Expr := core.Abstract("Expr")
//	Lit  := core.Concrete("Lit", core.Extends("Expr"),
//	    core.WithField("Value", core.Annotated(core.Int(0, 0), metahandlers.IntRange{Min: 3, Max: 10})))
//
// All handlers here are pure over (inputs, random source) and therefore
// deterministic under a fixed seed. Misconfigured handlers (inverted
// ranges, empty option sets) fail loudly with ErrBadHandler at generation
// time; they never silently clamp.
package metahandlers
