// Package provider defines the metadata provider contract and the registry
// that composes several providers into a fallback chain.
//
// A provider owns a probing tool executor and a declarative pipeline schema;
// Describe drives probe -> classify -> normalize -> assemble for one file.
// The registry tries each accepting provider in order until one succeeds;
// retry and fallback policy lives here, never inside a provider.
package provider
