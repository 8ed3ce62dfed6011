package climage

import "testing"

func TestExtensionIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"", ExtEmpty},
		{"noext", ExtMissing},
		{".png", ExtMissing},
		{"dir/.png", ExtMissing},
		{"out.d/photo", ExtMissing},
		{"file.xyz", ExtInvalid},
		{"file.", ExtInvalid},
		{"file.PNG", ExtInvalid},
		{"file.png", 0},
		{"file.jpg", 1},
		{"file.jpeg", 2},
		{"file.pbm", 3},
		{"file.pgm", 4},
		{"file.ppm", 5},
		{"archive.tar.png", 0},
		{"out.d/photo.ppm", 5},
	}
	for _, tt := range tests {
		if got := ExtensionIndex(tt.name); got != tt.want {
			t.Errorf("ExtensionIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestLookupFormat(t *testing.T) {
	f, ok := LookupFormat("photo.jpeg")
	if !ok {
		t.Fatal("LookupFormat should find .jpeg")
	}
	if f.Param != ParamJPEGQuality || f.Level != 100 {
		t.Errorf("Unexpected format %+v", f)
	}
	if _, ok := LookupFormat("photo.gif"); ok {
		t.Error("LookupFormat should reject .gif")
	}
}

func TestFormatsIsACopy(t *testing.T) {
	fs := Formats()
	if len(fs) != 6 {
		t.Fatalf("Expected 6 formats, got %d", len(fs))
	}
	fs[0].Level = 0
	if Formats()[0].Level != 9 {
		t.Error("Mutating the result of Formats should not change the table")
	}

	want := map[string]struct {
		param Param
		level int
	}{
		".png":  {ParamPNGCompression, 9},
		".jpg":  {ParamJPEGQuality, 100},
		".jpeg": {ParamJPEGQuality, 100},
		".pbm":  {ParamPXMBinary, 1},
		".pgm":  {ParamPXMBinary, 1},
		".ppm":  {ParamPXMBinary, 1},
	}
	for _, f := range Formats() {
		w, ok := want[f.Ext]
		if !ok || w.param != f.Param || w.level != f.Level {
			t.Errorf("Unexpected format %+v", f)
		}
	}
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"photo.png", "photo", true},
		{"photo.tar.gz", "photo.tar", true},
		{"dir/photo.xyz", "dir/photo", true},
		{"photo", "photo", false},
		{".png", ".png", false},
		{"", "", false},
		{"out.d/photo", "out.d/photo", false},
	}
	for _, tt := range tests {
		got, ok := StripExtension(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StripExtension(%q) = %q, %v, want %q, %v",
				tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDeriveCopyFilename(t *testing.T) {
	tests := []struct {
		seed string
		want string
	}{
		{"photo.png", "photo_1.png"},
		{"photo_1.png", "photo_2.png"},
		{"photo_9.jpg", "photo_10.jpg"},
		{"photo_009.ppm", "photo_10.ppm"},
		{"photo2.png", "photo2.png"},
		{"123.png", "123.png"},
		{"_1.png", "_1.png"},
		{"a_1.png", "a_2.png"},
		{"dir_1/photo.png", "dir_1/photo_1.png"},
		{"dir/photo_41.pgm", "dir/photo_42.pgm"},
		{"photo_18446744073709551615.png", "photo_18446744073709551615.png"},
		{"photo_99999999999999999999999.png", "photo_99999999999999999999999.png"},
		{"", ""},
		{"photo", ""},
		{"photo.gif", ""},
	}
	for _, tt := range tests {
		if got := DeriveCopyFilename(tt.seed); got != tt.want {
			t.Errorf("DeriveCopyFilename(%q) = %q, want %q", tt.seed, got, tt.want)
		}
	}
}

func TestDeriveCopyFilenameChain(t *testing.T) {
	name := "shot.png"
	for i := 0; i < 12; i++ {
		name = DeriveCopyFilename(name)
	}
	if name != "shot_12.png" {
		t.Errorf("Expected shot_12.png after 12 copies, got %s", name)
	}
}
