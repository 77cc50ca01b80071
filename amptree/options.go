// SPDX-License-Identifier: MIT

// Package amptree: functional configuration for RotationSequence.
// Defaults produce an ungated preparation sequence; the WithControl*
// options gate every emitted instruction on an external register.
package amptree

import "github.com/katalvlaran/qsve/circuit"

// controlKeyNone marks "no integer key supplied" in options resolution.
const controlKeyNone = -1

// Option mutates rotation-sequence options. Applied in order,
// last-writer-wins; validation happens inside RotationSequence so that
// malformed user input surfaces as ErrInvalidControlKey, not a panic.
type Option func(*options)

type options struct {
	control    circuit.Register // external control register; nil = ungated
	pattern    string           // 0/1 pattern, one character per control qubit
	keyValue   int              // integer key; controlKeyNone when unset
	hasControl bool
}

// WithControlPattern gates the sequence on ctrl using a 0/1 pattern with
// one character per control qubit. A pattern bit of 1 is an anti-control:
// the gate set fires when that qubit is 0. Against a zeroed control
// register the "all active" key is therefore the all-ones pattern.
func WithControlPattern(ctrl circuit.Register, pattern string) Option {
	return func(o *options) {
		o.control = ctrl
		o.pattern = pattern
		o.keyValue = controlKeyNone
		o.hasControl = true
	}
}

// WithControlValue gates the sequence on ctrl using an integer key in
// [0, 2^len(ctrl)), interpreted as the big-endian bit pattern of
// WithControlPattern.
func WithControlValue(ctrl circuit.Register, key int) Option {
	return func(o *options) {
		o.control = ctrl
		o.pattern = ""
		o.keyValue = key
		o.hasControl = true
	}
}

func gatherOptions(opts ...Option) options {
	o := options{keyValue: controlKeyNone}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// resolveControlKey validates the control options and normalizes the key
// to a 0/1 string with one character per control qubit.
func (o *options) resolveControlKey() (string, error) {
	if !o.hasControl {
		return "", nil
	}
	n := len(o.control)
	if n == 0 {
		return "", ErrInvalidControlKey
	}

	if o.keyValue != controlKeyNone {
		if o.keyValue < 0 || o.keyValue >= 1<<n {
			return "", ErrInvalidControlKey
		}
		bits := make([]byte, n)
		for i := 0; i < n; i++ {
			if o.keyValue&(1<<(n-1-i)) != 0 {
				bits[i] = '1'
			} else {
				bits[i] = '0'
			}
		}

		return string(bits), nil
	}

	if len(o.pattern) != n {
		return "", ErrInvalidControlKey
	}
	for _, c := range o.pattern {
		if c != '0' && c != '1' {
			return "", ErrInvalidControlKey
		}
	}

	return o.pattern, nil
}
