// Package viz is the terminal host for the fault animations.
//
// A [Board] holds one or more [Panel]s side by side. Each panel owns an
// animation controller whose frame callbacks queue on an anim.FrameQueue;
// the board's single tea.Tick loop drains every queue with the elapsed
// milliseconds since the board started. Frames are stroked onto a Braille
// [Canvas].
//
// # Key Bindings
//
//	Space      - Play/Pause the focused panel
//	R          - Reset to rest
//	Left/Right - Move the slider (stops playback)
//	Tab        - Focus next panel
//	T          - Cycle color themes
//	?          - Show help
//	Esc        - Back to the menu
//	Q          - Quit
package viz
