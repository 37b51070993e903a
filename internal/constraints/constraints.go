// Package constraints provides generic type constraints.
package constraints

// Byteseq represents raw URI text given either as a string or as a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
