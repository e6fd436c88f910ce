// Package services implements the taxonomy pipeline use cases: outcome
// classification, per-module skill extraction, consolidation of equal
// skill names, taxonomy construction, dataset statistics, and the
// scrape orchestration that feeds them.
//
// Every stage is a pure, single-pass batch transform over in-memory
// collections. The services hold no process-wide state and perform no
// I/O of their own; catalogues, stores, and LLMs come in through the
// driven ports.
package services
