package trygap

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned by ParseStrategy for a name it does not know.
var ErrUnknownStrategy = errors.New("unknown gap strategy")

// Strategy is how a matching try block gets its gap.
type Strategy uint8

const (
	// StrategyRebuild prints the block again from its statements.
	StrategyRebuild Strategy = iota
	// StrategySplice inserts the gap into the delegate's doc.
	StrategySplice
)

var strategyNames = [...]string{
	StrategyRebuild: "rebuild",
	StrategySplice:  "splice",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// ParseStrategy accepts "rebuild" and "splice"; the empty string means
// rebuild.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "rebuild":
		return StrategyRebuild, nil
	case "splice":
		return StrategySplice, nil
	}
	return StrategyRebuild, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
