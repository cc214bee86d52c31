// Package tui is the terminal status view of the sync client: the sync
// indicator, the list of queued requests, and the send, cancel and force
// sync commands.
package tui
