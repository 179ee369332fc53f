// Package gemini implements the generation boundary interfaces using
// Google's Gemini API. It owns prompt construction for each content type,
// rate-limit retry with exponential backoff, and post-processing of code
// responses.
package gemini
