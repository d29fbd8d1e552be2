// Package wardrobe holds module-wide metadata.
package wardrobe

// Version is the wardrobe release version.
const Version = "0.1.0"
