package cvmat

import (
	"io"
	"log"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"github.com/wbrown/climage"
	"github.com/wbrown/climage/imageutil"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestMatGetSet(t *testing.T) {
	for channels := 1; channels <= 4; channels++ {
		m := Wrap(gocv.NewMatWithSize(4, 6, matType8U(channels)))
		defer m.Close()

		if m.Channels() != channels {
			t.Fatalf("Expected %d channels, got %d", channels, m.Channels())
		}
		for ch := 0; ch < channels; ch++ {
			m.Set(2, 5, ch, uint8(40+ch))
		}
		for ch := 0; ch < channels; ch++ {
			if got := m.At(2, 5, ch); got != uint8(40+ch) {
				t.Errorf("%d channels: At(2, 5, %d) = %d, want %d",
					channels, ch, got, 40+ch)
			}
		}
	}
}

func TestMatCloneIsDeep(t *testing.T) {
	m := Wrap(gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC3))
	defer m.Close()

	clone := m.Clone()
	defer clone.Close()

	clone.Set(0, 0, 0, 99)
	if m.At(0, 0, 0) != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

// TestCompareBackends writes a pattern with OpenCV and checks the pure Go
// backend decodes the same channel values, and the other way round.
func TestCompareBackends(t *testing.T) {
	dir := t.TempDir()
	src := imageutil.CreateColorBarsMat(16, 32)

	goPath := filepath.Join(dir, "bars_go.png")
	if err := (climage.GoBackend{}).Write(goPath, climage.WrapMat(src), climage.Formats()[0]); err != nil {
		t.Fatalf("GoBackend.Write failed: %v", err)
	}

	cv := New()
	m, err := cv.Read(goPath)
	if err != nil {
		t.Fatalf("Backend.Read failed: %v", err)
	}
	defer m.Close()

	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			for ch := 0; ch < 3; ch++ {
				if m.At(y, x, ch) != src.At(y, x, ch) {
					t.Fatalf("(%d, %d, %d): opencv %d, go %d",
						y, x, ch, m.At(y, x, ch), src.At(y, x, ch))
				}
			}
		}
	}

	cvPath := filepath.Join(dir, "bars_cv.png")
	if err := cv.Write(cvPath, m, climage.Formats()[0]); err != nil {
		t.Fatalf("Backend.Write failed: %v", err)
	}
	back, err := imageutil.LoadMat(cvPath)
	if err != nil {
		t.Fatalf("LoadMat failed: %v", err)
	}
	if diff := imageutil.CalculateMaxDiff(src, back); diff != 0 {
		t.Errorf("OpenCV written PNG differs by %d", diff)
	}
}

func TestImageWithOpenCV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	if err := imageutil.SavePNG(imageutil.CreateSolidMat(8, 8, 10, 20, 30), path, 9); err != nil {
		t.Fatal(err)
	}

	img := climage.New(path, climage.WithBackend(New()), climage.WithLogger(quietLogger()))
	defer img.Close()
	if !img.Initialized() {
		t.Fatal("Image should load through OpenCV")
	}
	if got := img.PixelIntensity(3, 3, 3); got != 20 {
		t.Errorf("PixelIntensity = %v, want 20", got)
	}

	copyImg := img.Clone()
	defer copyImg.Close()
	if err := copyImg.SetPixel(0, 0, []uint8{1, 2, 3}); err != nil {
		t.Fatalf("SetPixel failed: %v", err)
	}
	if err := copyImg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if copyImg.Filename() != filepath.Join(dir, "photo_1.png") {
		t.Errorf("Unexpected copy filename %s", copyImg.Filename())
	}

	for _, name := range []string{"photo.jpg", "photo.ppm"} {
		out := climage.NewFromMatrix(img.Matrix().Clone(), filepath.Join(dir, name),
			climage.WithBackend(New()), climage.WithLogger(quietLogger()))
		if err := out.Save(); err != nil {
			t.Errorf("Save(%s) failed: %v", name, err)
		}
		out.Close()
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := New().Read(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Read should fail for a missing file")
	}
}
