// Package dashboard implements the yoinky terminal dashboard.
//
// The dashboard samples local metrics on a fixed interval and draws them as
// four bordered panels (CPU, RAM, GPU, DISK) between a title and a footer.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: Holds the sampler, tick clock, terminal size and last painted screen
//   - Update: Processes ticks, key presses and resizes
//   - View: Returns the screen painted on the last tick
//
// # Key Components
//
//	Model      - The Bubble Tea model driving the refresh cycle
//	TickClock  - Tracks when the last tick started and how long to wait
//	Compose    - Builds the panel tree for a Frame and a terminal size
//	Paint      - Renders a panel tree to exactly width x height cells
//
// # Refresh Cycle
//
//  1. tickMsg arrives; if the interval hasn't elapsed yet it is re-scheduled
//  2. The clock is reset and the sampler produces a metrics.Frame
//  3. Compose and Paint turn the frame into the screen returned by View
//  4. The next tick is scheduled for whatever is left of the interval
//
// Sampling runs inside Update, so keys are handled between ticks. A slow tick
// delays the quit key by at most one sampling pass.
package dashboard
