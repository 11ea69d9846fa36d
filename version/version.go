package version

import (
	"fmt"
	"strings"
	"sync"
)

// validCharacters is the set of characters allowed in appBuild.
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 1
	appMinor uint = 0
	appPatch uint = 0
)

// appBuild can be set at build time with
// '-ldflags "-X github.com/kaspanet/hdkeychain/version.appBuild=foo"'.
// It is ignored unless it only contains validCharacters.
var appBuild string

var (
	version     string
	versionOnce sync.Once
)

// Version returns the application version in semantic versioning form.
func Version() string {
	versionOnce.Do(func() {
		version = fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
		if build := checkAppBuild(appBuild); build != "" {
			version = fmt.Sprintf("%s-%s", version, build)
		}
	})
	return version
}

// checkAppBuild returns str, or an empty string if str holds any character
// outside validCharacters.
func checkAppBuild(str string) string {
	for _, r := range str {
		if !strings.ContainsRune(validCharacters, r) {
			return ""
		}
	}
	return str
}
