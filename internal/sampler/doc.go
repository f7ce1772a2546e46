// Package sampler picks symbols uniformly at random from an alphabet using a
// byte oriented entropy source. Draws that would introduce modulo bias are
// rejected and retried, up to a fixed bound.
package sampler
