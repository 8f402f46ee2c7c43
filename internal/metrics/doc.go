// Package metrics samples local host resources for the dashboard.
//
// Every metric family has its own accessor on Source. Each accessor does one
// synchronous read of a kernel counter file or spawns one external command,
// and reports a value plus an ok flag. A false flag means the metric is
// absent this tick; the cause is logged at debug level and never surfaced as
// an error. The one exception is CPUCount, whose failure is fatal at startup.
//
// # Key Components
//
//	Source   - Accessors for CPU, RAM, disk and GPU readings
//	Vendor   - GPU vendor tag, classified by ClassifyGPU
//	Frame    - One tick's worth of readings, absent metrics are nil
//	Sampler  - Calls every accessor once per tick and builds a Frame
//
// All paths are resolved under configurable proc and sys roots, so tests run
// against fixture trees built in a temp dir.
package metrics
