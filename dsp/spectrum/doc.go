// Package spectrum computes one-sided magnitude spectra of real segments.
//
// A segment of n samples is zero-padded to the next power of two P and
// transformed with a radix-2 FFT. Only bins [0, P/2) are reported; bin k
// sits at k*Fs/P Hz. The default backend is the package's own recursive
// decimation-in-time FFT; the algo-fft, gonum and go-dsp transforms can be
// selected instead and produce the same bins within rounding error.
package spectrum
