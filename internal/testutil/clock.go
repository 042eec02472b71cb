package testutil

import "time"

// FixedClock always reports the same instant. Used to pin document
// emission dates in tests.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// StaticProtocolGenerator always returns the same protocol number.
type StaticProtocolGenerator struct {
	Protocol string
}

func (g StaticProtocolGenerator) Next() string { return g.Protocol }
