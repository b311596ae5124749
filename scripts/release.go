// Command scripts builds versioned cllsim binaries and cuts GitHub releases.
//
//	go run ./scripts -action build -version v1.2.3
//	go run ./scripts -action release -version patch
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const distDir = "dist"

func must(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	actionFlag  string
	versionFlag string
	goosFlag    string
	goarchFlag  string
)

func main() {
	flag.StringVar(&actionFlag, "action", "", "build or release")
	flag.StringVar(&versionFlag, "version", "", "major, minor, patch or an exact version (e.g. v1.2.3)")
	flag.StringVar(&goosFlag, "goos", "linux", "Target OS")
	flag.StringVar(&goarchFlag, "goarch", "amd64", "Target architecture")
	flag.Parse()

	switch actionFlag {
	case "":
		fmt.Println("An action is required")
		os.Exit(1)

	case "build":
		v, err := nextVersion()
		must(err)
		_, err = build(v)
		must(err)

	case "release":
		must(release())

	default:
		fmt.Printf("Invalid action: %q\n", actionFlag)
		os.Exit(1)
	}
}

func git(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	return strings.TrimSpace(string(out)), err
}

func nextVersion() (SemanticVersion, error) {
	if versionFlag == "" {
		return SemanticVersion{}, fmt.Errorf("-version is required")
	}
	if sv, err := ParseSemVer(versionFlag); err == nil {
		return sv, nil
	}

	current, err := git("describe", "--tags", "--abbrev=0")
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("git describe: %w", err)
	}
	fmt.Println("Current version:", current)

	sv, err := ParseSemVer(current)
	if err != nil {
		return SemanticVersion{}, err
	}
	return sv.Bump(versionFlag)
}

// ldflags fills the version variables in package main
func ldflags(version SemanticVersion, commit string, built time.Time) string {
	return strings.Join([]string{
		"-X main.version=" + version.String(),
		"-X main.buildUnixTimestamp=" + strconv.FormatInt(built.Unix(), 10),
		"-X main.commitHash=" + commit,
	}, " ")
}

func build(version SemanticVersion) (string, error) {
	commit, err := git("rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}

	name := fmt.Sprintf("cllsim-%s-%s-%s", version, goosFlag, goarchFlag)
	binPath := filepath.Join(distDir, name, "cllsim")
	fmt.Println("Building", binPath)

	cmd := exec.Command("go", "build",
		"-ldflags", ldflags(version, commit, time.Now()),
		"-o", binPath,
		".",
	)
	cmd.Env = append(os.Environ(), "GOOS="+goosFlag, "GOARCH="+goarchFlag, "CGO_ENABLED=0")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", err
	}

	archive := filepath.Join(distDir, name+".tgz")
	tar := exec.Command("tar", "-czf", archive, "-C", distDir, name)
	tar.Stdout = os.Stdout
	tar.Stderr = os.Stderr
	if err := tar.Run(); err != nil {
		return "", err
	}

	return archive, nil
}

func release() error {
	fmt.Println("Cutting new release")

	version, err := nextVersion()
	if err != nil {
		return err
	}
	fmt.Println("New version:", version)

	archive, err := build(version)
	if err != nil {
		return err
	}

	cmd := exec.Command("gh", "release", "create",
		version.String(),
		"--generate-notes",
		archive,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
