// Package inkling turns a single H1-delimited source document (exported as
// HTML) into personalized newsletter emails and a static archive website.
// It extracts one "edition" per top-level heading, sanitizes the fragment,
// relocates embedded images for the rendering target (inline email
// attachments or static site files), and composes the final documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bluemonday/, sqlite/).
package inkling
