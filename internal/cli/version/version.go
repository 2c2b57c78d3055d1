package version

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	nadia "github.com/nadia-api/nadia-cli"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
)

func init() {
	cmd := root.Command("version", "Show version.")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		fmt.Println(nadia.Version)
		return nil
	})
}
