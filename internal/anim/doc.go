// Package anim provides the displacement animation controller.
//
// A [Controller] owns a single scalar displacement in [0, MaxDisplacement].
// The value is advanced either by an eased, time-driven animation or by
// direct assignment from a slider:
//
//   - [Controller.Play]: start (or resume) easing toward the maximum
//   - [Controller.Pause]: stop and keep the current value
//   - [Controller.Reset]: stop and return to zero
//   - [Controller.SetDisplacement]: stop and assign a clamped value
//   - [Controller.Tick]: advance by one frame at a host timestamp
//
// # Scheduling
//
// The controller never sleeps or spawns goroutines. While playing it asks an
// injected [Scheduler] for the next frame, and the host invokes the returned
// callback with a millisecond timestamp. [FrameQueue] is a deterministic
// scheduler for tests and headless playback.
//
// Every frame request is stamped with the controller generation. Pause,
// Reset, SetDisplacement and Close bump the generation, so a callback that
// was already queued becomes a no-op even if the host fires it late.
//
// # Thread Safety
//
// A Controller is meant to have one owner. State mutation is serialized with
// a mutex so that hosts calling back from timer goroutines still observe
// strictly sequential ticks.
package anim
