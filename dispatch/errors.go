package dispatch

import "fmt"

// ErrNoActiveSketch is returned by AddSketchEntity/FinishSketch when no
// BeginSketch is in progress.
var ErrNoActiveSketch = fmt.Errorf("dispatch: no active sketch")

// ErrUnknownRequestKind is returned when a Request carries a Kind outside
// the dispatch surface's defined range.
var ErrUnknownRequestKind = fmt.Errorf("dispatch: unknown request kind")
