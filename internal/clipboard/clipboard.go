// Package clipboard copies text to the system clipboard by shelling out to
// the platform's clipboard tool.
package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool found")

type tool struct {
	name string
	args []string
}

// tools lists candidates for the current platform in order of preference.
func tools() []tool {
	switch runtime.GOOS {
	case "darwin":
		return []tool{{"pbcopy", nil}}
	case "windows":
		return []tool{{"clip", nil}}
	}
	var out []tool
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		out = append(out, tool{"wl-copy", nil})
	}
	return append(out,
		tool{"xclip", []string{"-selection", "clipboard"}},
		tool{"xsel", []string{"--clipboard", "--input"}},
	)
}

func find() (tool, bool) {
	for _, t := range tools() {
		if _, err := exec.LookPath(t.name); err == nil {
			return t, true
		}
	}
	return tool{}, false
}

// Write copies text to the system clipboard.
func Write(text string) error {
	t, ok := find()
	if !ok {
		return ErrUnavailable
	}
	cmd := exec.Command(t.name, t.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether a clipboard tool is installed.
func Available() bool {
	_, ok := find()
	return ok
}
