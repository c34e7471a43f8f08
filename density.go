package mipgen

// Density describes one generalized Android screen density bucket and
// the launcher icon edge length it requires. The icons are quadratic,
// a single size covers both dimensions.
type Density struct {
	Name string
	Size int
}

// Densities lists the density buckets a launcher icon set has to cover,
// ordered from the lowest to the highest resolution. The emitter walks
// the table in this order.
var Densities = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// IconNames holds the launcher icon file names the Android resource
// system expects inside every mipmap directory.
var IconNames = []string{"ic_launcher.png", "ic_launcher_round.png"}

// DefaultResDir is the conventional Android resource tree root.
const DefaultResDir = "app/src/main/res"

// Dir returns the mipmap resource directory name of the density bucket.
func (d Density) Dir() string {
	return "mipmap-" + d.Name
}

// MaxDensity returns the bucket with the biggest icon size.
func MaxDensity() Density {
	max := Densities[0]
	for _, d := range Densities[1:] {
		if d.Size > max.Size {
			max = d
		}
	}
	return max
}
