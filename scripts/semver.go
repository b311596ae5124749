package main

import (
	"fmt"
	"regexp"
	"strconv"
)

var semverRegex = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)

type SemanticVersion struct {
	major int
	minor int
	patch int
}

func ParseSemVer(s string) (SemanticVersion, error) {
	m := semverRegex.FindStringSubmatch(s)
	if len(m) != 4 {
		return SemanticVersion{}, fmt.Errorf("invalid semantic version: %q", s)
	}

	var sv SemanticVersion
	var err error
	if sv.major, err = strconv.Atoi(m[1]); err != nil {
		return SemanticVersion{}, err
	}
	if sv.minor, err = strconv.Atoi(m[2]); err != nil {
		return SemanticVersion{}, err
	}
	if sv.patch, err = strconv.Atoi(m[3]); err != nil {
		return SemanticVersion{}, err
	}

	return sv, nil
}

// Bump resolves a --version argument: "major", "minor", "patch" or an
// exact version such as v1.2.3
func (sv SemanticVersion) Bump(how string) (SemanticVersion, error) {
	switch how {
	case "major":
		return SemanticVersion{major: sv.major + 1}, nil
	case "minor":
		return SemanticVersion{major: sv.major, minor: sv.minor + 1}, nil
	case "patch":
		return SemanticVersion{major: sv.major, minor: sv.minor, patch: sv.patch + 1}, nil
	default:
		return ParseSemVer(how)
	}
}

func (sv SemanticVersion) String() string {
	return fmt.Sprintf("v%d.%d.%d", sv.major, sv.minor, sv.patch)
}
