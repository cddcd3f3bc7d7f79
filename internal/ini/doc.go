// Package ini implements the ordered, comment-preserving configuration
// document used by sidplayfp-compatible players.
//
// A document is an ordered sequence of sections, each an ordered sequence of
// entries. An entry is either a key/value pair or a verbatim passthrough line
// (comments starting with ';' or '#'), so comments survive a load/save round
// trip attached to the section they appeared under. Blank lines are dropped
// during parsing and are not restored on write; this matches the historical
// file format behavior and is intentional.
//
// Lookup is first-match-wins for both sections and keys. Duplicate names are
// legal and preserved; existing sidplayfp.ini files rely on this.
//
// Key operations are only available on a *Section handle obtained from
// [Document.Section] or [Document.AddSection], so there is no "no section
// selected" state to misuse.
//
// The document tracks a dirty flag: any section or key insertion or removal
// sets it, and [Document.Close] rewrites the backing file only when it is
// set. Reads never dirty the document.
package ini
