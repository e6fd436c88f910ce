// Package ucd fetches module descriptors from UCD's public module
// directory. Candidate codes come from a configured code list file or
// are generated from the catalogue's naming patterns; descriptors are
// parsed out of the directory's accordion-style HTML pages.
package ucd
