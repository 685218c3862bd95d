// Package workout computes distance, mean speed and calories burned for a
// single workout from raw sensor readings.
//
// Calculator is the capability interface implemented by the three variants:
// Running (code RUN), Walking (WLK) and Swimming (SWM). Each variant embeds
// Training, which carries the shared readings (action count, duration in
// hours, weight in kg) and the default distance and mean-speed formulas.
// Training on its own is a valid Calculator whose Calories method fails with
// ErrUnimplemented.
//
// Create(code, params) is the dispatcher: it maps a type code to a variant
// and builds it from a positional parameter list. It never returns a nil
// Calculator together with a nil error.
//
// Summarize(c) evaluates a Calculator once and returns an immutable
// types.Summary. Calculators hold no mutable state, so repeated calls return
// identical summaries.
//
// Formulas:
//
//	distance  = action * step / 1000                    (step 0.65 m; 1.38 m for swimming)
//	speed     = distance / hours                        (swimming: pool_len * laps / 1000 / hours)
//	running   = (18 * speed + 1.79) * weight / 1000 * hours * 60
//	walking   = (0.035 * weight + ((speed*0.278)^2 / (height/100)) * 0.029 * weight) * hours * 60
//	swimming  = (speed + 1.1) * 2 * weight * hours
package workout
