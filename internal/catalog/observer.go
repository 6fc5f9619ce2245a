package catalog

// ChangeKind identifies which input of the view changed
type ChangeKind int

const (
	ChangeCatalog ChangeKind = iota
	ChangeFilter
	ChangeSort
	ChangeSelection
)

// String returns a human-readable name for the change kind
func (c ChangeKind) String() string {
	switch c {
	case ChangeCatalog:
		return "catalog"
	case ChangeFilter:
		return "filter"
	case ChangeSort:
		return "sort"
	case ChangeSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// Change reports a state mutation to observers.
type Change struct {
	Kind ChangeKind
}

// Observer receives change notifications. Derived views should be
// recomputed on every notification.
type Observer interface {
	OnChange(change Change)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Change)

func (f ObserverFunc) OnChange(c Change) { f(c) }

// NoOpObserver discards change notifications.
type NoOpObserver struct{}

func (NoOpObserver) OnChange(Change) {}

// observers is a list of subscribers shared by Store and Selection
type observers []Observer

func (o observers) notify(c Change) {
	for _, obs := range o {
		obs.OnChange(c)
	}
}
