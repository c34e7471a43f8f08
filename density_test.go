package mipgen

import "testing"

func TestDensity_TableOrder(t *testing.T) {
	expected := []string{"mdpi", "hdpi", "xhdpi", "xxhdpi", "xxxhdpi"}

	if len(Densities) != len(expected) {
		t.Fatalf("Density table expected to hold %v buckets. Got %v", len(expected), len(Densities))
	}
	for i, d := range Densities {
		if d.Name != expected[i] {
			t.Errorf("Density at index %v expected to be %v. Got %v", i, expected[i], d.Name)
		}
	}
	for i := 1; i < len(Densities); i++ {
		if Densities[i].Size <= Densities[i-1].Size {
			t.Errorf("Density sizes expected to increase. Got %v after %v",
				Densities[i].Size, Densities[i-1].Size)
		}
	}
}

func TestDensity_Sizes(t *testing.T) {
	sizes := map[string]int{
		"mdpi":    48,
		"hdpi":    72,
		"xhdpi":   96,
		"xxhdpi":  144,
		"xxxhdpi": 192,
	}

	for _, d := range Densities {
		if sizes[d.Name] != d.Size {
			t.Errorf("Size of %v expected to be %v. Got %v", d.Name, sizes[d.Name], d.Size)
		}
	}
}

func TestDensity_Dir(t *testing.T) {
	d := Density{Name: "xhdpi", Size: 96}
	if dir := d.Dir(); dir != "mipmap-xhdpi" {
		t.Errorf("Density dir expected to be %v. Got %v", "mipmap-xhdpi", dir)
	}
}

func TestDensity_Max(t *testing.T) {
	if max := MaxDensity(); max.Name != "xxxhdpi" || max.Size != 192 {
		t.Errorf("Biggest density expected to be %v with size %v. Got %v with size %v",
			"xxxhdpi", 192, max.Name, max.Size)
	}
}
