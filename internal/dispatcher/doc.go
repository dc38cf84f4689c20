// Package dispatcher turns decoded key events into editor operations.
//
// A Keymap maps key specifications to action names and a Registry maps
// action names to handlers. Dispatch looks up the action for an event,
// runs its handler against the buffer and viewport, and then calls the
// post-dispatch hooks.
//
// The dispatcher is a small state machine:
//
//	Running ──quit (dirty)──▶ ConfirmQuit ──quit × N──▶ Terminated
//	   ▲                          │
//	   └────────any other key─────┘
//	Running ──find──▶ Prompt ──Enter/Esc──▶ Running
//
// Quitting a clean buffer terminates at once. Quitting a dirty buffer warns
// and counts down the configured number of extra presses; any other key
// resets the count.
//
// Usage:
//
//	d, err := dispatcher.New(buf, view, msg, dispatcher.Options{QuitTimes: 2})
//	if err != nil {
//	    return err
//	}
//	d.AddPostHook(func(action string, res dispatcher.Result) { ... })
//	d.Dispatch(ev)
//	if d.Terminated() {
//	    return nil
//	}
package dispatcher
