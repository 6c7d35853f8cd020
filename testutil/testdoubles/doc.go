// Package testdoubles provides test doubles (spies) for the model's
// observable surfaces:
//   - LoggerSpy: captures logging calls for verification
//   - SignalRecorder: captures stream emissions into one ordered trace
//
// These test doubles enable assertions on diagnostics and on the fixed
// broadcast ordering of the model without wiring real backends.
package testdoubles
