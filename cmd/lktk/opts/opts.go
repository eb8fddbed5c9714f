package opts

import (
	"github.com/walteh/lktk/pkg/config"
)

// RootOpts contains shared options used by all commands.
// It is filled in once flags have been parsed. The console logger travels
// on the command context, see log.FromContext.
type RootOpts struct {
	Config *config.Config
}
