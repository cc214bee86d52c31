// Package stubserver implements a development backend that speaks the
// matrimony REST contract used by the sync client.
//
// State lives in memory. The [Mode] can be switched at runtime to simulate
// the outages the client is built to survive: [ModeDown] answers 503 on
// every route and [ModeLegacy] answers 404 on routes older deployments do
// not serve.
package stubserver
