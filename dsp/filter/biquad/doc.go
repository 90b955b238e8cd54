// Package biquad implements second-order IIR filter sections and cascades.
//
// A Section processes samples in Direct Form II Transposed. Higher-order
// filters are built as a Chain of sections designed by the design package.
package biquad
