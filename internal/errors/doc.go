// Package errors provides the structured error type shared by rpg-sheet.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. The codes form the sheet taxonomy:
//   - FORMAT: the character document does not decode to an object
//   - MISSING_FILE: a template or input document path does not exist
//   - RENDER: substitution or writing of the output failed
//
// plus the general INVALID_ARGUMENT, NOT_FOUND, PERMISSION_DENIED,
// UNAVAILABLE and INTERNAL codes used by the web boundary and storage.
//
// # Basic Usage
//
//	err := errors.Formatf("document %s must be an object", path)
//	err := errors.MissingFile("template file not found").
//	    WithMeta("path", templatePath)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := loader.LoadFile(path); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// # Layer-Specific Guidelines
//
// Only the document loader, the renderer and the orchestrator that writes
// output return errors from the conversion pipeline. Extractors never
// fail; they fall back to placeholder text instead.
//
// The web boundary maps codes to HTTP status with Code.HTTPStatus and
// shows GetMessage to the caller.
package errors
