// SPDX-License-Identifier: MIT
// Package flowmatch: execution device identifiers.
//
// The matcher's math is pure Go and always executes on the CPU; the
// device field exists so configurations carried over from upstream
// training setups fail loudly at construction on an accelerator id
// instead of silently running on the wrong target.

package flowmatch

// Device identifies the execution target declared at construction.
// All tensors for a given call are assumed resident on this device.
type Device string

// DeviceCPU is the only execution target this build knows.
const DeviceCPU Device = "cpu"

// Validate reports whether the device identifier is known.
// Returns ErrUnknownDevice otherwise.
// Complexity: O(1).
func (d Device) Validate() error {
	if d != DeviceCPU {
		return ErrUnknownDevice
	}

	return nil
}
