// Package main provides the entry point of tinygenkey, a command line tool
// that generates random keys from preset or custom alphabets using unbiased
// rejection sampling over crypto/rand, and validates keys against charset,
// length and prefix/suffix constraints with a structured report.
package main
