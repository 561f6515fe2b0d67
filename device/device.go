// Package device is the contract with the host toolkit: commit render
// graphs to a display and scope keyboard focus. Input arrives
// separately, as normalized events pushed into component mailboxes.
package device

import "scrollkit/graph"

// Focus captures and releases keyboard focus for a component id. Key
// events only; pointer routing is unaffected.
type Focus interface {
	CaptureKeyboard(id string)
	ReleaseKeyboard(id string)
}

type Device interface {
	graph.Pusher
	Focus

	// Size is the display size in display units.
	Size() (width, height int)

	Stop()
}

// NopFocus satisfies Focus for hosts without a focus concept.
type NopFocus struct{}

func (NopFocus) CaptureKeyboard(string) {}
func (NopFocus) ReleaseKeyboard(string) {}
