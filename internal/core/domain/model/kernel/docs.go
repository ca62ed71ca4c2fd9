// Package kernel holds the primitives shared by every aggregate of the ordering
// domain: the UUID identifier value object and the Clock abstraction used for
// timestamps.
package kernel
