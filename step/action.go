package step

// Action is the closed tag classifying a Step's semantic role.
type Action string

// Shared actions.
const (
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCompare  Action = "compare"
	ActionWarning  Action = "warning"
)

// Sorting actions.
const (
	ActionOuterLoop  Action = "outer-loop"
	ActionSwap       Action = "swap"
	ActionNoSwap     Action = "no-swap"
	ActionNewMin     Action = "new-min"
	ActionKey        Action = "key"
	ActionShift      Action = "shift"
	ActionInsert     Action = "insert"
	ActionDivide     Action = "divide"
	ActionSubarrays  Action = "subarrays"
	ActionPlace      Action = "place"
	ActionMerge      Action = "merge"
	ActionPivot      Action = "pivot"
	ActionPlacePivot Action = "place-pivot"
	ActionPartition  Action = "partition"
)

// Searching actions.
const (
	ActionMidpoint    Action = "midpoint"
	ActionPosition    Action = "position"
	ActionContinue    Action = "continue"
	ActionFound       Action = "found"
	ActionNotFound    Action = "not-found"
	ActionNarrowLeft  Action = "narrow-left"
	ActionNarrowRight Action = "narrow-right"
	ActionJump        Action = "jump"
	ActionLinearScan  Action = "linear-scan"
	ActionBoundCheck  Action = "bound-check"
	ActionDouble      Action = "double"
	ActionSetRange    Action = "set-range"
)

// Graph actions.
const (
	ActionProcess   Action = "process"
	ActionDiscover  Action = "discover"
	ActionSkip      Action = "skip"
	ActionVisit     Action = "visit"
	ActionExplore   Action = "explore"
	ActionBacktrack Action = "backtrack"
	ActionExamine   Action = "examine"
	ActionUpdate    Action = "update"
	ActionAdd       Action = "add"
	ActionProgress  Action = "progress"
)

var vocabulary = map[Action]struct{}{
	ActionStart: {}, ActionComplete: {}, ActionCompare: {}, ActionWarning: {},

	ActionOuterLoop: {}, ActionSwap: {}, ActionNoSwap: {}, ActionNewMin: {},
	ActionKey: {}, ActionShift: {}, ActionInsert: {}, ActionDivide: {},
	ActionSubarrays: {}, ActionPlace: {}, ActionMerge: {}, ActionPivot: {},
	ActionPlacePivot: {}, ActionPartition: {},

	ActionMidpoint: {}, ActionPosition: {}, ActionContinue: {}, ActionFound: {},
	ActionNotFound: {}, ActionNarrowLeft: {}, ActionNarrowRight: {}, ActionJump: {},
	ActionLinearScan: {}, ActionBoundCheck: {}, ActionDouble: {}, ActionSetRange: {},

	ActionProcess: {}, ActionDiscover: {}, ActionSkip: {}, ActionVisit: {},
	ActionExplore: {}, ActionBacktrack: {}, ActionExamine: {}, ActionUpdate: {},
	ActionAdd: {}, ActionProgress: {},
}

// Valid reports whether a is part of the action vocabulary.
func (a Action) Valid() bool {
	_, ok := vocabulary[a]
	return ok
}

// Terminal reports whether a marks the end of a trace.
func (a Action) Terminal() bool { return a == ActionComplete }

// String implements fmt.Stringer.
func (a Action) String() string { return string(a) }
