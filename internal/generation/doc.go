// Package generation defines the boundary interfaces between the
// application core and the external AI text/image and speech-synthesis
// services, along with the sentinel errors those boundaries return.
package generation
