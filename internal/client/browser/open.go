// Package browser hands files and URLs to the desktop's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

var (
	goos  = runtime.GOOS
	start = func(name string, args ...string) error {
		_, err := startDetached(exec.Command(name, args...))
		return err
	}
)

// startDetached starts cmd and reaps it in the background. The returned
// channel yields the exit result once the launcher is gone.
func startDetached(cmd *exec.Cmd) (<-chan error, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	return done, nil
}

// command returns the launcher for target on the current OS.
func command(target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Open opens target (a URL or a local file path) in the default browser
// without waiting for it to exit.
func Open(target string) error {
	name, args, err := command(target)
	if err != nil {
		return err
	}
	if err := start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}
