package selection

// EffectKind names an outward notification for the host.
type EffectKind int

const (
	ItemAdded EffectKind = iota + 1
	ItemRemoved
	FocusAcknowledged
	BlurAcknowledged
)

func (k EffectKind) String() string {
	switch k {
	case ItemAdded:
		return "item-added"
	case ItemRemoved:
		return "item-removed"
	case FocusAcknowledged:
		return "focus"
	case BlurAcknowledged:
		return "blur"
	default:
		return "unknown"
	}
}

// Effect is one notification. ID is set for ItemAdded and ItemRemoved.
type Effect struct {
	Kind EffectKind
	ID   string
}

// Effects are returned in the order they happened.
type Effects []Effect

// Has reports whether any effect has the given kind.
func (e Effects) Has(kind EffectKind) bool {
	for _, eff := range e {
		if eff.Kind == kind {
			return true
		}
	}
	return false
}

func added(id string) Effects   { return Effects{{Kind: ItemAdded, ID: id}} }
func removed(id string) Effects { return Effects{{Kind: ItemRemoved, ID: id}} }
