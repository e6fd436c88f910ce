// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the module catalogue, skill extractors,
// persistence stores, configuration, and the optional LLM service.
//
// Services in internal/core/services depend on these interfaces only;
// concrete implementations live under internal/adapters/driven and
// internal/connectors.
package driven
