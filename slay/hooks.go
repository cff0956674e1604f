package slay

// hooks associate arbitrary state with the current container, the way a
// component keeps local state across frames

type HookEntryKey struct {
	Data    any // container id
	ItemKey any
}

// any hook key that is not used this frame will be removed to avoid the accumulation of garbage

var hooksMap = make(map[HookEntryKey]any)
var hooksMapNext = make(map[HookEntryKey]any)

func Use[T any](itemKey any) *T {
	return UseWithInit[T](itemKey, nil)
}

// UseWithInit returns the state stored under itemKey for the current
// container, creating it with initFn (or the zero value) on first use.
func UseWithInit[T any](itemKey any, initFn func() *T) *T {
	var key = HookEntryKey{Data: CurrentId(), ItemKey: itemKey}
	if value, found := hooksMap[key]; found {
		hooksMapNext[key] = value
		return value.(*T)
	}

	var value *T
	if initFn != nil {
		value = initFn()
	} else {
		value = new(T)
	}
	hooksMap[key] = value
	hooksMapNext[key] = value
	return value
}
