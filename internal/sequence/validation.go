package sequence

// SequenceError is implemented by every input validation failure raised by
// biolib: invalid symbols, incomplete codons and length mismatches.
type SequenceError interface {
	error
	IsSequenceError()
}
