// Package cci implements the camera's command and control interface:
// composing command codes, the busy-bit polling state machine, and the
// GET/SET data transfers over a word-level bus.
package cci
