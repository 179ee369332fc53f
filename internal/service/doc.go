// Package service orchestrates content generation: it invokes the AI and
// speech boundaries, applies post-processing (dependency detection, setup
// instructions, placeholder fallback), and persists the resulting artifacts
// through the file store.
package service
