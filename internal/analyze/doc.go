// Package analyze sends commit diffs to the Gemini API and parses the
// free-form feedback into structured results.
//
// Analyze never returns an error: a missing API key yields the "N/A"
// sentinel without any network call, and every failure mode (transport,
// timeout, non-200 status, malformed body) degrades to the "Error" sentinel
// with the failure detail in the feedback text.
package analyze
