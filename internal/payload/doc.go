// Package payload encodes and decodes the QR payload formats.
//
// # Formats
//
//   - Text:   an opaque string.
//   - Smart:  ID,PART,PREFIX-YYMMDD,QTY (always four comma-separated fields).
//   - IC-Bin: DEVICE/ERP/MARKING/QTY/TESTPROGRAM/BIN/YYYY-MM-DD[/SERIAL], where
//     DEVICE is LEFT-RIGHT and TESTPROGRAM is LEFT_RIGHT.
//
// Composite halves are split on the first delimiter when decoding. A '-' in
// the left device half (or '_' in the left test program half) therefore moves
// to the right half: the joined DEVICE and TESTPROGRAM strings round-trip,
// the individual halves do not.
//
// The three shapes implement Payload; Decode picks the codec from a
// models.Source tag.
//
// # Errors
//
// Encoding reports *ValidationError (errors.Is common.ErrValidation) for user
// input faults. Decoding reports *ParseError (errors.Is
// common.ErrUnrecognizedFormat). Smart encoding never fails: callers run
// Smart.Validate first.
package payload
