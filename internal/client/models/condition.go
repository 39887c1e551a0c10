package models

// Condition describes the physical state of a listed product.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like_new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

// Conditions lists every valid condition in display order.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor}
}

// Valid reports whether c is a member of the condition enumeration.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// Label returns the human-readable form of the condition. Unknown values
// are returned unchanged.
func (c Condition) Label() string {
	switch c {
	case ConditionNew:
		return "New"
	case ConditionLikeNew:
		return "Like New"
	case ConditionGood:
		return "Good"
	case ConditionFair:
		return "Fair"
	case ConditionPoor:
		return "Poor"
	}
	return string(c)
}
