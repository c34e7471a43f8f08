/*
Package mipgen generates placeholder launcher icons for Android applications,
covering every generalized screen density with a drawn health themed motif or,
when the drawing path is left out of the build, with a minimal pre-encoded PNG.

The package provides a command line interface. A plain invocation populates
the conventional resource tree:

	$ mipgen

writes ic_launcher.png and ic_launcher_round.png into the mipmap-mdpi, -hdpi,
-xhdpi, -xxhdpi and -xxxhdpi directories under app/src/main/res. To check the
supported flags type:

	$ mipgen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/droidres/mipgen"
	)

	func main() {
		em := mipgen.NewEmitter(mipgen.DefaultResDir, mipgen.NewRenderer())

		if _, err := em.EmitAll(); err != nil {
			log.Fatalf("error generating the launcher icons: %v", err)
		}
	}
*/
package mipgen
