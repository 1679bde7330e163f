// Package curve derives volume-time and flow-time curves from trimmed
// spirometry blow series and adjusts them to a fixed model-input length.
//
// The derivation order matters: flow is the discrete derivative of the
// unpadded volume curve, and only afterwards are both curves right-padded or
// truncated to the target length. See [Derive] and [RightPad].
package curve
