// Package ui contains the Bubble Tea program that renders the navigation
// menu. The Model is the presentation surface for nav.Controller: the
// controller decides state, and the Model only stores the flags it is handed
// and draws them.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, one at a time.
//     This is the single event loop that owns the controller.
//   - Messages are routed through a typed handler registry. Key presses are
//     translated into nav events (toggle, link, escape) or local actions
//     (focus, cursor, page scroll, quick-jump).
//   - Timers requested by the controller become tea.Tick commands tagged with
//     their timer id. When a tick arrives for a timer that has since been
//     cancelled it is dropped, so only the latest timeline can advance state.
//
// Surface ownership:
//   - SetVisuallyOpen, SetExpanded, SetScrollLocked and SetEscapeListener are
//     called only by the controller. The escape key reaches the controller
//     only while the listener flag is set.
//   - Scrolling the page body is refused while scroll lock is active; link
//     navigation still moves the page because it is not user scrolling.
//
// Link navigation runs through internal/ui/command so the section lookup is
// traced like any other asynchronous action, and links can be reloaded from
// disk by internal/backend while the program runs.
package ui
