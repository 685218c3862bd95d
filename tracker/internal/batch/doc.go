// Package batch runs an ordered list of sensor packages through the workout
// dispatcher and calculators.
//
// Processor.Run never stops at the first failure: every package yields a
// Result, either with a Summary or with the error that prevented one. The
// order of results matches the order of the input packages.
package batch
