// Package app wires the configuration, transport, Steam client and services
// together and runs the command-line operations: logging in, printing
// two-factor codes, placing buy orders and reading price histories.
package app
