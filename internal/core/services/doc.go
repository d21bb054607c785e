// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services validate input before calling out, so adapters only ever
// see well-formed requests.
package services
