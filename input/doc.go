// Package input turns user supplied data into validated inputs for the
// karatsuba and closestpair engines.
//
// What:
//
//   - NormalizeOperand accepts typed integers ("1234", "+1234", "1.2e3")
//     and returns a plain digit string, rejecting signs and fractions.
//   - ParseMultiplicationFile reads an uploaded {"x": n, "y": n} file whose
//     name starts with MultiplicationFilePrefix.
//   - ParsePoints reads an uploaded [[x, y], ...] file.
//   - RandomPoints, RandomIntPoints and RandomOperands generate demo inputs
//     from a seed; WriteSamples stores a batch of them as upload files.
//
// Every rejection wraps ErrInvalidInput, so callers can classify with a
// single errors.Is check and still report the specific cause.
//
// Uploads are JSON regardless of the .txt extension the sample files use.
package input
