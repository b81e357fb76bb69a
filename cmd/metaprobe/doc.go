// Package main hosts the metaprobe CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into provider
// scans, provider availability checks, and scan history queries. It
// centralizes configuration resolution, mapping profile loading, and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
