package i

import (
	"time"
)

// Scope granting permission to regenerate and delete cached mazes.
const ScopeMazeWrite = "maze:write"

// Tokenizer issues and checks bearer tokens for operators.
type Tokenizer interface {
	// Issue creates a token for subject carrying scopes, valid for ttl.
	Issue(subject string, scopes []string, ttl time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
