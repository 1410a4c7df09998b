// Package bus implements the byte and word level transport to the
// camera over the register-oriented serial bus. The Transport owns all
// transaction sequencing and the bounded per-byte waits; the Controller
// interface is the thin flag-level surface of the bus peripheral.
package bus
