// Package clock provides the time source backing frametick's frame
// measurements. Exactly one Timestamp implementation is compiled into a
// build, selected with build tags:
//
//   - default: the runtime monotonic clock (time.Now)
//   - clock_tsc: hardware cycle counter with process-wide calibration
//   - clock_tscanchor: hardware cycle counter with a per-timestamp anchor,
//     falling back to the OS clock on platforms without a usable counter
//
// All variants expose the same surface: Now, DurationSince and Nanos.
// Nanos values are meaningful only relative to other Nanos values from the
// same build; they carry no wall-clock meaning.
package clock
