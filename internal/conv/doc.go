// Package conv provides checked integer conversions for sizes that come from
// disk or from callers and must fit the platform's int before they can be
// used to size or index a mapping.
package conv
