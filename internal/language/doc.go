// Package language canonicalizes the language codes and names reported by
// probing tools.
//
// Probe output mixes ISO 639-1 codes ("en"), ISO 639-2 codes including
// bibliographic variants ("eng", "fre"), full names ("English"), and BCP-47
// tags ("en-US"). Parse reduces all of them to a canonical two-letter tag;
// unrecognized input is rejected rather than propagated.
package language
