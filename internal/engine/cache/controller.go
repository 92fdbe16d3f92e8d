// Package cache drives cache line eviction and forced loads.
package cache

import "go.trai.ch/peek/internal/core/ports"

// Controller evicts and loads cache lines through a Platform.
type Controller struct {
	platform ports.Platform
}

// NewController creates a Controller on top of platform.
func NewController(platform ports.Platform) *Controller {
	return &Controller{platform: platform}
}

// Flush evicts the line holding addr from every cache level.
func (c *Controller) Flush(addr *byte) {
	c.platform.Flush(addr)
}

// Touch loads addr repeats times. A single load does not always make it
// through every level while other tenants compete for the cache.
func (c *Controller) Touch(addr *byte, repeats int) {
	for range repeats {
		c.platform.ForcedTouch(addr)
	}
}
