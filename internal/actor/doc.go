// Package actor provides the decision makers that sit in a seat: Human
// reads the caller-owned controls, Simple always calls and AdHoc plays an
// equity driven raise, call or fold policy.
package actor
