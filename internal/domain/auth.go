package domain

// Pool differentiates the three independent identity pools. Each pool has
// its own session cookie; authenticating in one pool never affects another.
type Pool string

const (
	PoolAdmin  Pool = "ADMIN"
	PoolMember Pool = "MEMBER"
	PoolUser   Pool = "USER"
)
