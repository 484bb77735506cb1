package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tendermint/tendermint/version"
)

const (
	FMT_VERSTR = "v%v.%v.%v-%x@%s"
)

var (
	// it is changed using ldflags.
	//  ex) -ldflags "... -X 'github.com/beatoz/autoburn/cmd/version.GitCommit=$(XXX)'"
	Version   string
	GitCommit string

	majorVer  uint64 = 0
	minorVer  uint64 = 1
	patchVer  uint64 = 0
	commitVer uint64 = 0
)

var reVersion = regexp.MustCompile(`v(\d+)\.(\d+)\.(\d+)`)

func init() {
	if err := parseVersions(Version, GitCommit); err != nil {
		panic(err)
	}
}

func parseVersions(versionStr, gitCommit string) error {
	if versionStr == "" {
		return nil
	}

	matches := reVersion.FindStringSubmatch(versionStr)
	if matches == nil {
		return fmt.Errorf("invalid version string: %v", versionStr)
	}
	majorVer, _ = strconv.ParseUint(matches[1], 10, 64)
	minorVer, _ = strconv.ParseUint(matches[2], 10, 64)
	patchVer, _ = strconv.ParseUint(matches[3], 10, 64)

	if gitCommit != "" {
		c, err := strconv.ParseUint(gitCommit, 16, 64)
		if err != nil {
			return fmt.Errorf("invalid git commit %v: %w", gitCommit, err)
		}
		commitVer = c
	}
	return nil
}

// String returns the autoburn version with the tendermint version it is built with.
func String() string {
	return fmt.Sprintf(FMT_VERSTR, majorVer, minorVer, patchVer, commitVer, version.TMCoreSemVer)
}
