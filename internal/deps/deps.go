package deps

import (
	"os/exec"
	"strings"
)

// Status represents the installation status of a dependency
type Status struct {
	Installed bool
	Path      string
	Version   string
}

// Check looks up an executable on PATH. When versionArgs are given the
// first line the command prints with them is used as the version.
func Check(name string, versionArgs ...string) Status {
	path, err := exec.LookPath(name)
	if err != nil {
		return Status{Installed: false}
	}

	status := Status{
		Installed: true,
		Path:      path,
	}

	if len(versionArgs) == 0 {
		return status
	}

	cmd := exec.Command(path, versionArgs...)
	output, err := cmd.Output()
	if err == nil {
		lines := strings.Split(string(output), "\n")
		if len(lines) > 0 {
			status.Version = strings.TrimSpace(lines[0])
		}
	}

	return status
}

// CheckNotifySend checks if notify-send is available for desktop notifications
func CheckNotifySend() Status {
	return Check("notify-send")
}
