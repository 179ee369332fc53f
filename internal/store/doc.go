// Package store manages the on-disk layout of generated artifacts. Each
// content kind (code, audio, image) owns a subdirectory of the output root;
// files are append-only, named by sanitized topic slug plus timestamp, and
// identified solely by their filename.
package store
