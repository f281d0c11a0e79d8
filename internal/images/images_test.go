package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	for _, name := range []string{"a.png", "b.JPG", "c.jpeg", "d.Gif"} {
		require.True(t, Allowed(name), name)
	}
	for _, name := range []string{"a.txt", "png", "b.png.exe", "", "c.svg"} {
		require.False(t, Allowed(name), name)
	}
}

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":               "photo.png",
		"../../etc/passwd":        "passwd",
		`C:\Users\nurse\bed.jpg`:  "bed.jpg",
		"my ward  photo.png":      "my_ward_photo.png",
		"weird*<name>?.gif":       "weirdname.gif",
		".hidden.png":             "hidden.png",
		"ünïcode.jpeg":            "ncode.jpeg",
		"/":                       "",
	}
	for in, want := range cases {
		require.Equal(t, want, SecureFilename(in), in)
	}
}

func TestContentType(t *testing.T) {
	require.Equal(t, "image/png", ContentType("x.PNG"))
	require.Equal(t, "application/octet-stream", ContentType("x"))
}

func TestUniqueName(t *testing.T) {
	a, b := UniqueName("pic.png"), UniqueName("pic.png")
	require.NotEqual(t, a, b)
	require.True(t, strings.HasSuffix(a, "_pic.png"))
	require.True(t, validName(a), a)
	require.True(t, Allowed(a))
}
