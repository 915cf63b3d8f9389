package id

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once

	ErrInvalid = errors.New("invalid id")
)

// Init sets up the Snowflake node for this process. Calls after the first are no-ops.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered int64 id. Init must have been called.
func New() int64 {
	return node.Generate().Int64()
}

// Parse converts the decimal string form used in URLs and JSON back into an id.
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalid
	}
	sf, err := snowflake.ParseString(s)
	if err != nil || sf.Int64() <= 0 {
		return 0, ErrInvalid
	}
	return sf.Int64(), nil
}

// ParseOptional is Parse for optional query values; an empty string yields nil.
func ParseOptional(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
