//go:build !fiberdev

package internal

// propsSnapshot records nothing outside of development builds.
type propsSnapshot struct{}

func snapshotProps(any) propsSnapshot { return propsSnapshot{} }

func (propsSnapshot) verify(string, any) {}
