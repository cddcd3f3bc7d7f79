// Package settings projects the configuration document onto the typed
// record the player consumes.
//
// Population is a single load→read→close cycle: defaults are established
// first, the document is walked group by group ([SIDPlayfp], [Console],
// [Audio], [Emulation]), and each known key is coerced into its typed field.
// Keys absent from the file are inserted with empty values so the file
// self-documents on first run; the document is rewritten on close only when
// such an insertion (or any other mutation) occurred.
//
// The fallback policy is uniform: a missing or empty value leaves the field
// at its default, and a present value that fails coercion is reported via
// the logger and likewise leaves the field unchanged. Errors never
// propagate out of population; Load always yields a usable Settings.
package settings
