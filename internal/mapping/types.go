package mapping

import (
	"fmt"
	"strconv"
	"strings"
)

// Type classifies how an animation layer is applied by the rig tool.
type Type int

const (
	TypeNormal      Type = 0
	TypeAdditive    Type = 1
	TypeGesture     Type = 2
	TypeGesturePose Type = 3
)

var typeNames = map[Type]string{
	TypeNormal:      "normal",
	TypeAdditive:    "additive",
	TypeGesture:     "gesture",
	TypeGesturePose: "gesture_pose",
}

// String returns the lowercase name of the type, or its numeric code when
// the value is outside the known set.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// Valid reports whether the type is one of the four known codes.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType converts a numeric token from a rule line into a Type.
func ParseType(token string) (Type, error) {
	code, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, token)
	}
	t := Type(code)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, token)
	}
	return t, nil
}

// Rule is one parsed mapping line.
type Rule struct {
	// SourceKeys holds the trimmed key fragments, in line order.
	SourceKeys []string
	// OutputBase is the output name fragment before prefixing.
	OutputBase string
	// Type is the animation type shared by every layer the rule produces.
	Type Type
}

// Binding is the expansion of one Rule under an asset prefix. It is handed to
// the project writer and not retained.
type Binding struct {
	SourceNames []string
	OutputName  string
	Type        Type
}
