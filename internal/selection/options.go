package selection

import (
	"fmt"
	"strings"

	"typeahead/internal/rank"
)

// HighlightReset selects the value the highlight returns to whenever the box is rebuilt.
type HighlightReset int

const (
	// HighlightNone resets to -1: nothing is highlighted until the first arrow key.
	HighlightNone HighlightReset = iota
	// HighlightFirst resets to 0: the top row is highlighted immediately.
	HighlightFirst
)

func (h HighlightReset) floor() int {
	if h == HighlightFirst {
		return 0
	}
	return -1
}

func (h HighlightReset) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightFirst:
		return "first"
	default:
		return "unknown"
	}
}

// BackspaceRemove selects when backspace on an empty query drops the last selection.
type BackspaceRemove int

const (
	// RemoveOnEmptyQuery removes in any focused mode as long as the query is empty.
	RemoveOnEmptyQuery BackspaceRemove = iota
	// RemoveInIdleOnly removes only after the query was cleared by editing.
	RemoveInIdleOnly
	// RemoveNever leaves backspace to text editing.
	RemoveNever
)

func (b BackspaceRemove) String() string {
	switch b {
	case RemoveOnEmptyQuery:
		return "empty-query"
	case RemoveInIdleOnly:
		return "idle-only"
	case RemoveNever:
		return "never"
	default:
		return "unknown"
	}
}

// CommitBox selects what the box shows right after a commit.
type CommitBox int

const (
	// CommitBoxDefaults shows the leading unselected items, as before any typing.
	CommitBoxDefaults CommitBox = iota
	// CommitBoxEmpty hides the box until the next text change.
	CommitBoxEmpty
)

func (c CommitBox) String() string {
	switch c {
	case CommitBoxDefaults:
		return "defaults"
	case CommitBoxEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Options configures a picker for its whole lifetime.
//
// The zero value is not usable: start from DefaultOptions, which also enables
// SwallowEnterAfterCommit.
type Options struct {
	MaxItems  int       // Most items that can be selected (>= 1)
	BoxLength int       // Most rows shown in the box (>= 1)
	Rank      rank.Func // Ranking used while editing; nil means rank.Rank

	HighlightReset  HighlightReset
	BackspaceRemove BackspaceRemove
	CommitBox       CommitBox

	// SwallowEnterAfterCommit ignores one Enter directly after a commit so a repeated
	// key event cannot add a second item.
	SwallowEnterAfterCommit bool
}

// DefaultOptions returns the documented defaults: five selections, eight rows, no
// highlight until an arrow key, backspace removal on any empty query, the leading
// unselected items after a commit and the Enter debounce on.
func DefaultOptions() Options {
	return Options{
		MaxItems:                5,
		BoxLength:               8,
		Rank:                    rank.Rank,
		HighlightReset:          HighlightNone,
		BackspaceRemove:         RemoveOnEmptyQuery,
		CommitBox:               CommitBoxDefaults,
		SwallowEnterAfterCommit: true,
	}
}

func (o Options) validate() error {
	if o.MaxItems < 1 {
		return configError(fmt.Sprintf("max items must be at least 1, got %d", o.MaxItems))
	}
	if o.BoxLength < 1 {
		return configError(fmt.Sprintf("box length must be at least 1, got %d", o.BoxLength))
	}
	if o.HighlightReset < HighlightNone || o.HighlightReset > HighlightFirst {
		return configError(fmt.Sprintf("unknown highlight reset %d", o.HighlightReset))
	}
	if o.BackspaceRemove < RemoveOnEmptyQuery || o.BackspaceRemove > RemoveNever {
		return configError(fmt.Sprintf("unknown backspace policy %d", o.BackspaceRemove))
	}
	if o.CommitBox < CommitBoxDefaults || o.CommitBox > CommitBoxEmpty {
		return configError(fmt.Sprintf("unknown commit box %d", o.CommitBox))
	}
	return nil
}

// ParseHighlightReset accepts "none" or "first".
func ParseHighlightReset(s string) (HighlightReset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return HighlightNone, nil
	case "first":
		return HighlightFirst, nil
	}
	return 0, configError(fmt.Sprintf("invalid highlight reset %q (want none or first)", s))
}

// ParseBackspaceRemove accepts "empty-query", "idle-only" or "never".
func ParseBackspaceRemove(s string) (BackspaceRemove, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "empty-query":
		return RemoveOnEmptyQuery, nil
	case "idle-only":
		return RemoveInIdleOnly, nil
	case "never":
		return RemoveNever, nil
	}
	return 0, configError(fmt.Sprintf("invalid backspace policy %q (want empty-query, idle-only or never)", s))
}

// ParseCommitBox accepts "defaults" or "empty".
func ParseCommitBox(s string) (CommitBox, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "defaults":
		return CommitBoxDefaults, nil
	case "empty":
		return CommitBoxEmpty, nil
	}
	return 0, configError(fmt.Sprintf("invalid commit box %q (want defaults or empty)", s))
}
