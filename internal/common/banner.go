package common

import (
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner
func PrintBanner(name, version string) {
	banner.PrintSimple(name, version)
}
