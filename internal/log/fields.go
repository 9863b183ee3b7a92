// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID     = "run_id"
	FieldChannelID = "channel_id"

	// Process / pipeline fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldStart     = "start"

	// Counters
	FieldChannels   = "channels"
	FieldProgrammes = "programmes"
	FieldSkipped    = "skipped"
	FieldDone       = "done"
	FieldTotal      = "total"
	FieldCategories = "categories"

	// Path fields
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
)
