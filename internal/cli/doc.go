// Package cli provides the interactive qrkeeper command-line client.
//
// It generates Text, Smart and IC-Bin QR codes from prompted fields, files
// scanned strings under the right format, and manages the history list.
//
// Key features:
//   - text / smart / icbin: prompt, validate, encode, save and render a code
//   - scan: classify a pasted scan, save it, copy it, offer to open links
//   - list / search / edit / copy / delete / clear / purge on the history
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
