package ports

// WorkToken is a handle for a unit of long-running work that must be
// released exactly once. Tokens are opaque to callers.
type WorkToken interface {
	// ID returns the token's identifier, used in diagnostics.
	ID() uint64
}

// WorkSession hands out long-running-work tokens. A flow that must survive
// loss of foreground focus acquires a token before starting and releases it
// on every exit path, including cancellation.
//
//go:generate mockgen -source=work.go -destination=mocks/mock_work.go -package=mocks
type WorkSession interface {
	// Begin acquires a new work token.
	Begin(name string) WorkToken

	// End releases the token. Ending a token twice is a logged no-op,
	// never a double release.
	End(token WorkToken)
}
