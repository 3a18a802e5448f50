//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package ucare

// Effect is image effect supported by CDN
type Effect string

const (
	// Flip image vertically
	Flip = Effect("flip")
	// Grayscale drops colors
	Grayscale = Effect("grayscale")
	// Invert colors
	Invert = Effect("invert")
	// Mirror image horizontally
	Mirror = Effect("mirror")
)

// Effects lists the vocabulary of supported effects
func Effects() []Effect { return []Effect{Flip, Grayscale, Invert, Mirror} }

// ParseEffect validates effect name against the vocabulary
func ParseEffect(name string) (Effect, error) {
	for _, e := range Effects() {
		if string(e) == name {
			return e, nil
		}
	}

	return "", invalid(string(TagEffect)+"/"+name, "unknown effect")
}
